// resolver.go: tri-state memoized dependency verification.
//
// Grounded on PluginManagerPrivate::checkDependencies
// (pluginmanagerprivate.cpp): a recursive walk over each dependency,
// memoized on the record's own tri-state field so a diamond-shaped
// dependency graph is only checked once per plugin.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

// ResolverCallback is invoked synchronously on the first dependency
// failure encountered for a record, before checkDependencies returns.
type ResolverCallback func(DiscoveryEvent)

// checkDependencies implements spec.md §4.6. It mutates rec.dependenciesExist
// as a side effect, caching the verdict for later calls in the same load
// cycle (the registry resets every record's cache whenever the plugin set
// changes; see registry.invalidateDependencyCache).
//
// A plugin cycle (A depends on B, B depends on A) would make the source's
// unguarded recursive walk recurse forever — the C++ ancestor has this
// same property and relies on nothing ever exercising it, since its own
// cycle detection lives only in the topological sort (§4.3). Here a
// per-call visiting set breaks that recursion: a dependency already on
// the current path is treated as satisfied and the verdict is left for
// Phase 3's topological sort, which is equipped to detect it and abort
// the load cleanly instead of hanging.
func (r *registry) checkDependencies(rec *pluginRecord, cb ResolverCallback) ReturnCode {
	return r.checkDependenciesVisiting(rec, cb, make(map[string]bool))
}

func (r *registry) checkDependenciesVisiting(rec *pluginRecord, cb ResolverCallback, visiting map[string]bool) ReturnCode {
	if rec.dependenciesExist == triYes {
		return Success
	}
	if rec.dependenciesExist == triNo {
		return LoadDependencyNotFound
	}
	if visiting[rec.descriptor.Name] {
		return Success
	}
	visiting[rec.descriptor.Name] = true

	emit := func(code ReturnCode, path string) {
		if cb != nil {
			cb(DiscoveryEvent{Code: code, Path: path})
		}
	}

	for _, dep := range rec.descriptor.Dependencies {
		depRec, ok := r.get(dep.Name)
		if !ok {
			rec.dependenciesExist = triNo
			emit(LoadDependencyNotFound, rec.path)
			return LoadDependencyNotFound
		}

		if !ParseVersion(depRec.descriptor.Version).Compatible(dep.Version) {
			rec.dependenciesExist = triNo
			emit(LoadDependencyBadVersion, rec.path)
			return LoadDependencyBadVersion
		}

		if code := r.checkDependenciesVisiting(depRec, cb, visiting); !code.OK() {
			rec.dependenciesExist = triNo
			return code
		}
	}

	rec.dependenciesExist = triYes
	return Success
}
