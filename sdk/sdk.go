// Package sdk is the authoring template plugin implementations import to
// produce a conformant jp-plugins shared library.
//
// The C++ lineage of this project generates its three required exports
// and a compile-time name check via a macro pair,
// JP_DECLARE_PLUGIN/JP_REGISTER_PLUGIN. Go has no user-triggerable
// static_assert and no preprocessor, so the same contract is split in
// two: ValidateName replaces the compile-time check (run once, typically
// from an init() in the plugin's package main), and Descriptor's
// MarshalMetadata replaces the hand-written JSON literal. The three
// exports themselves (JpName, JpMetadata, JpCreatePlugin) must still be
// declared directly in the plugin's package main — //export-style symbol
// visibility across a plugin boundary only works from package main, and
// cannot be emitted on a plugin author's behalf by an imported library.
// A plugin author is expected to write:
//
//	package main
//
//	var JpName = "myplugin"
//	var JpMetadata = string(mustMarshal(myDescriptor))
//	var JpCreatePlugin jpplugins.CreateFunc = createMyPlugin
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package sdk

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/agilira/jp-plugins"
)

var nameIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateName reports an error if name does not satisfy the plugin ABI's
// identifier grammar (spec.md §6: [A-Za-z_][A-Za-z0-9_]*), the Go-idiomatic
// stand-in for the source's compile-time name check.
func ValidateName(name string) error {
	if !nameIdentifier.MatchString(name) {
		return fmt.Errorf("sdk: %q is not a valid plugin name (must match %s)", name, nameIdentifier.String())
	}
	return nil
}

// Descriptor is the typed form of the jp_metadata JSON blob; authors build
// one of these and marshal it rather than hand-writing JSON.
type Descriptor struct {
	Name         string                `json:"name"`
	PrettyName   string                `json:"prettyName"`
	Version      string                `json:"version"`
	Author       string                `json:"author"`
	URL          string                `json:"url"`
	License      string                `json:"license"`
	Copyright    string                `json:"copyright"`
	Dependencies []jpplugins.Dependency `json:"dependencies"`
}

// MarshalMetadata validates the descriptor's name and encodes it (stamped
// with the host API version it was built against) as the jp_metadata blob.
func (d Descriptor) MarshalMetadata() ([]byte, error) {
	if err := ValidateName(d.Name); err != nil {
		return nil, err
	}
	type wire struct {
		API string `json:"api"`
		Descriptor
	}
	return json.Marshal(wire{API: jpplugins.PluginAPI, Descriptor: d})
}
