// fsutil.go: filesystem helpers for locating candidate plugin libraries.
//
// Grounded on the C++ ancestor's fsutil.cpp (listFilesInDir/appDir), ported
// to os.ReadDir and os.Executable rather than tinydir and
// whereami.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import (
	"os"
	"path/filepath"
)

// listLibraries returns every file under dir (optionally recursing into
// subdirectories) whose extension matches LibraryExtension for the current
// platform. Entries are returned in the order the filesystem walk visits
// them; callers that need a stable order should sort.
func listLibraries(dir string, recursive bool) ([]string, error) {
	ext := "." + LibraryExtension()
	var found []string

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if recursive {
				sub, err := listLibraries(full, recursive)
				if err != nil {
					return nil, err
				}
				found = append(found, sub...)
			}
			continue
		}
		if filepath.Ext(entry.Name()) == ext {
			found = append(found, full)
		}
	}

	return found, nil
}

// appDirectory returns the directory containing the running executable,
// as reported by Manager.AppDirectory and the broker's GET_APPDIRECTORY
// request.
func appDirectory() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		resolved = exe
	}
	return filepath.Dir(resolved), nil
}
