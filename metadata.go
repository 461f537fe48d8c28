// metadata.go: decoding the jp_metadata JSON descriptor.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import "encoding/json"

// rawDescriptor mirrors the JSON schema in spec.md §4.4/§6. It is decoded
// first so a missing required field can be rejected explicitly rather than
// silently zero-valued.
type rawDescriptor struct {
	API          string       `json:"api"`
	Name         string       `json:"name"`
	PrettyName   string       `json:"prettyName"`
	Version      string       `json:"version"`
	Author       string       `json:"author"`
	URL          string       `json:"url"`
	License      string       `json:"license"`
	Copyright    string       `json:"copyright"`
	Dependencies []Dependency `json:"dependencies"`
}

// parseMetadata decodes the jp_metadata blob into a PluginDescriptor.
//
// On any error — malformed JSON, a missing required field, or an API
// version incompatible with PluginAPI — it returns an invalid descriptor
// (empty Name) rather than an error, matching spec.md §4.4: the caller
// checks PluginDescriptor.Valid(), it does not branch on a Go error.
func parseMetadata(data []byte) PluginDescriptor {
	var raw rawDescriptor
	if err := json.Unmarshal(data, &raw); err != nil {
		return PluginDescriptor{}
	}

	if raw.API == "" || raw.Name == "" || raw.PrettyName == "" || raw.Version == "" ||
		raw.Author == "" || raw.URL == "" || raw.License == "" || raw.Copyright == "" {
		return PluginDescriptor{}
	}

	if !ParseVersion(raw.API).Compatible(PluginAPI) {
		return PluginDescriptor{}
	}

	deps := make([]Dependency, len(raw.Dependencies))
	copy(deps, raw.Dependencies)

	return PluginDescriptor{
		Name:         raw.Name,
		PrettyName:   raw.PrettyName,
		Version:      raw.Version,
		Author:       raw.Author,
		URL:          raw.URL,
		License:      raw.License,
		Copyright:    raw.Copyright,
		APIVersion:   raw.API,
		Dependencies: deps,
	}
}
