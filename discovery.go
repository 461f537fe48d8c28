// discovery.go: scanning a directory for candidate plugin libraries.
//
// Grounded on PluginManager::searchForPlugins (pluginmanager.cpp) and
// fsutil.cpp's listLibrariesInDir.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

// DiscoveryEvent is what SearchForPlugins reports to its callback for a
// skipped or problematic candidate; it never reports successes (those are
// visible afterward via PluginsList).
type DiscoveryEvent struct {
	Code ReturnCode
	Path string
}

// DiscoveryCallback is invoked synchronously, once per notable event,
// before SearchForPlugins returns.
type DiscoveryCallback func(DiscoveryEvent)

// searchForPlugins implements spec.md §4.5. dir is walked non-recursively
// unless recursive is true; every candidate file matching the platform
// library extension is probed for the three required ABI symbols.
func (m *Manager) searchForPlugins(dir string, recursive bool, cb DiscoveryCallback) ReturnCode {
	emit := func(code ReturnCode, path string) {
		if cb != nil {
			cb(DiscoveryEvent{Code: code, Path: path})
		}
	}

	candidates, err := listLibraries(dir, recursive)
	if err != nil {
		emit(SearchListFilesError, err.Error())
		return SearchListFilesError
	}

	atLeastOneFound := false

	for _, path := range candidates {
		lib := newDynLib()
		if loadErr := lib.Load(path); loadErr != nil {
			// Not an ABI error: some other file merely happened to share
			// the platform extension. Skip silently per spec.md §4.5.2a.
			continue
		}

		if !lib.HasSymbol(symJpName) || !lib.HasSymbol(symJpMetadata) || !lib.HasSymbol(symJpCreatePlugin) {
			_ = lib.Unload()
			continue
		}

		name, err := readNameSymbol(lib)
		if err != nil {
			_ = lib.Unload()
			continue
		}

		if _, exists := m.registry.get(name); exists {
			emit(SearchNameAlreadyExists, path)
			_ = lib.Unload()
			continue
		}

		metaBytes, err := readMetadataSymbol(lib)
		if err != nil {
			emit(SearchCannotParseMetadata, path)
			_ = lib.Unload()
			continue
		}

		descriptor := parseMetadata(metaBytes)
		if !descriptor.Valid() {
			emit(SearchCannotParseMetadata, path)
			_ = lib.Unload()
			continue
		}

		m.registry.add(&pluginRecord{
			path:       path,
			lib:        lib,
			descriptor: descriptor,
		})
		atLeastOneFound = true
	}

	if atLeastOneFound {
		m.registry.scanLocations = appendDistinct(m.registry.scanLocations, dir)
		return Success
	}
	return SearchNothingFound
}

// appendDistinct appends v to list unless already present, preserving
// order — this is what keeps scan_locations a set in practice, matching
// spec.md invariant 1 (discovery idempotence).
func appendDistinct(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
