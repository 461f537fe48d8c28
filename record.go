// record.go: a single discovered/loaded plugin's bookkeeping entry.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import "time"

// pluginRecord is the manager's internal record for one plugin, from the
// moment it is found on disk through load and unload. It is grounded on the
// C++ ancestor's PluginInfoWrapper (pluginmanagerprivate.h): a descriptor
// plus the loader handle plus load-state bookkeeping, kept together so the
// registry never has to join across parallel maps.
type pluginRecord struct {
	path string
	lib  DynLib

	descriptor PluginDescriptor

	// instance is whatever jp_createPlugin returned; nil until loaded.
	instance any

	// dependenciesExist memoizes CheckDependencies' verdict for this plugin
	// so repeated checks (e.g. a diamond dependency) don't re-walk the
	// graph. Reset to triUnknown whenever the registry's plugin set changes.
	dependenciesExist triState

	// graphID is this record's index into the node list built by the most
	// recent LoadAll's Phase 1, or nil if it was excluded (failed
	// resolution under try_to_continue, or not attempted).
	graphID *int

	// loaded reports whether loaded() has been invoked on instance and
	// aboutToBeUnloaded() has not yet run to completion.
	loaded bool

	// isMain marks the single plugin registered via RegisterMainPlugin, the
	// only instance granted non-dependency peers through its PeerFunc.
	isMain bool

	// loadedAt is when loadOne last completed for this record, sourced
	// from go-timecache's cached clock rather than time.Now() since it is
	// read on the broker's hot path (GET_PLUGININFO) and only ever used
	// for observability, never for lifecycle decisions.
	loadedAt time.Time
}

// dependencyNames returns the plugin names this record depends on, in
// declaration order.
func (r *pluginRecord) dependencyNames() []string {
	names := make([]string, len(r.descriptor.Dependencies))
	for i, d := range r.descriptor.Dependencies {
		names[i] = d.Name
	}
	return names
}

// toPluginInfo builds the public view of this record, stamping the
// observability-only LoadedAt field alongside the descriptor's own
// fields.
func (r *pluginRecord) toPluginInfo() PluginInfo {
	info := r.descriptor.toPluginInfo()
	info.LoadedAt = r.loadedAt
	return info
}
