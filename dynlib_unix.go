//go:build linux || darwin

// dynlib_unix.go: DynLib implementation over the standard library's plugin
// package, available on the two platforms it supports.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import (
	"fmt"
	"plugin"
	"runtime"
)

// nativeDynLib wraps *plugin.Plugin. See DynLib.Unload for why unloading is
// logical rather than physical on this platform.
type nativeDynLib struct {
	p      *plugin.Plugin
	closed bool
}

func newNativeDynLib() DynLib {
	return &nativeDynLib{}
}

func (d *nativeDynLib) Load(path string) error {
	p, err := plugin.Open(path)
	if err != nil {
		return fmt.Errorf("jpplugins: open %s: %w", path, err)
	}
	d.p = p
	d.closed = false
	return nil
}

func (d *nativeDynLib) IsLoaded() bool {
	return d.p != nil && !d.closed
}

func (d *nativeDynLib) HasSymbol(name string) bool {
	if !d.IsLoaded() {
		return false
	}
	_, err := d.p.Lookup(name)
	return err == nil
}

func (d *nativeDynLib) Symbol(name string) (any, error) {
	if !d.IsLoaded() {
		return nil, fmt.Errorf("jpplugins: library not loaded")
	}
	sym, err := d.p.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("jpplugins: lookup %s: %w", name, err)
	}
	return sym, nil
}

func (d *nativeDynLib) Unload() error {
	d.closed = true
	return nil
}

// LibraryExtension returns the shared-library file extension for this
// platform.
func LibraryExtension() string {
	if runtime.GOOS == "darwin" {
		return "dylib"
	}
	return "so"
}
