// Package jpplugins implements the host-side core of a dynamic plugin
// management system: discovering shared-library plugins on disk, validating
// their self-describing JSON metadata, resolving a dependency graph between
// them with semantic version constraints, loading and unloading them in a
// safe topological order, and brokering request/response messages between
// plugins and the host.
//
// A plugin is a shared object (.so/.dylib/.dll) exporting three well-known
// symbols, spelled as exported Go identifiers (see symbols.go):
//
//	JpName         - a string, the plugin's unique identifier (jp_name)
//	JpMetadata     - a string, a JSON descriptor (jp_metadata, see PluginDescriptor)
//	JpCreatePlugin - a CreateFunc constructor (jp_createPlugin), see the sdk package
//
// Basic usage:
//
//	mgr := jpplugins.NewManager(jpplugins.DefaultLogger())
//	if code := mgr.SearchForPlugins("./plugins", false, nil); !code.OK() {
//		log.Fatal(code.Message())
//	}
//	if code := mgr.LoadAll(true, nil); !code.OK() {
//		log.Fatal(code.Message())
//	}
//	defer mgr.UnloadAll(nil)
//
// The manager is not safe for concurrent driving: SearchForPlugins, LoadAll,
// UnloadAll and the per-plugin variants must be serialized by the caller.
// The request broker, by contrast, is invoked synchronously by plugin code
// on whatever goroutine the plugin is using, and takes its own lock to keep
// registry reads consistent.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package jpplugins
