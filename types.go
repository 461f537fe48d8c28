// types.go: core data types shared by discovery, resolution and lifecycle.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import "time"

// PluginAPI is the host API version every plugin's descriptor is checked
// against. ABI compatibility is only guaranteed within the same major
// version (see Version.Compatible).
const PluginAPI = "1.0.0"

// Dependency is a named, version-gated requirement on another plugin.
// Version is the minimum required version under the caret compatibility
// rule (same major, minor.patch not earlier than required).
type Dependency struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// PluginDescriptor is the decoded jp_metadata JSON blob embedded in a
// plugin's shared object.
//
// A descriptor whose Name is empty is invalid and causes the whole plugin
// to be rejected by discovery.
type PluginDescriptor struct {
	Name         string       `json:"name"`
	PrettyName   string       `json:"prettyName"`
	Version      string       `json:"version"`
	Author       string       `json:"author"`
	URL          string       `json:"url"`
	License      string       `json:"license"`
	Copyright    string       `json:"copyright"`
	APIVersion   string       `json:"api"`
	Dependencies []Dependency `json:"dependencies"`
}

// Valid reports whether the descriptor can be used by a plugin record. Per
// spec, a plugin with an empty name is always rejected.
func (d PluginDescriptor) Valid() bool {
	return d.Name != ""
}

// PluginInfo is the public, read-only view of a plugin's metadata returned
// by Manager.PluginInfo and handed out over the broker's
// GET_PLUGININFO request.
type PluginInfo struct {
	Name         string       `json:"name"`
	PrettyName   string       `json:"prettyName"`
	Version      string       `json:"version"`
	Author       string       `json:"author"`
	URL          string       `json:"url"`
	License      string       `json:"license"`
	Copyright    string       `json:"copyright"`
	Dependencies []Dependency `json:"dependencies"`

	// LoadedAt is the zero time if the plugin has never been loaded.
	// Observability only; never consulted by the lifecycle or resolver.
	LoadedAt time.Time `json:"loadedAt,omitempty"`
}

func (d PluginDescriptor) toPluginInfo() PluginInfo {
	deps := make([]Dependency, len(d.Dependencies))
	copy(deps, d.Dependencies)
	return PluginInfo{
		Name:         d.Name,
		PrettyName:   d.PrettyName,
		Version:      d.Version,
		Author:       d.Author,
		URL:          d.URL,
		License:      d.License,
		Copyright:    d.Copyright,
		Dependencies: deps,
	}
}

// triState is a memoized tri-state value: unknown until the Resolver has
// run, then either yes or no. It is the Go equivalent of the source's
// indeterminate boolean used to cache dependency-check results across
// LoadAll calls.
type triState int

const (
	triUnknown triState = iota
	triYes
	triNo
)
