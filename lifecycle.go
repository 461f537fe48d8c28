// lifecycle.go: load_all/unload_all and the single-plugin variants.
//
// Grounded on PluginManagerPrivate::loadPluginsInOrder/unloadPluginsInOrder
// and PluginManager::loadPlugin/loadPluginFromPath/unloadPlugin
// (pluginmanagerprivate.cpp, pluginmanager.cpp).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import (
	"fmt"
	"sort"

	"github.com/agilira/go-timecache"
)

// loadAll implements spec.md §4.7's five-phase load_all.
func (m *Manager) loadAll(tryToContinue bool, cb DiscoveryCallback) ReturnCode {
	emit := func(code ReturnCode, path string) {
		if cb != nil {
			cb(DiscoveryEvent{Code: code, Path: path})
		}
	}

	names := m.registry.names()
	sort.Strings(names)

	for _, name := range names {
		rec, _ := m.registry.get(name)
		rec.graphID = nil
	}

	// Phase 1: validate & build node list.
	var nodeNames []string
	for _, name := range names {
		rec, _ := m.registry.get(name)
		code := m.registry.checkDependencies(rec, ResolverCallback(cb))
		if !code.OK() {
			if !tryToContinue {
				return code
			}
			continue
		}
		idx := len(nodeNames)
		rec.graphID = &idx
		nodeNames = append(nodeNames, name)
	}

	// Phase 2: wire edges.
	nodes := make([]graphNode, len(nodeNames))
	for i, name := range nodeNames {
		rec, _ := m.registry.get(name)
		nodes[i] = graphNode{name: name}
		for _, depName := range rec.dependencyNames() {
			depRec, ok := m.registry.get(depName)
			if ok && depRec.graphID != nil {
				nodes[i].parents = append(nodes[i].parents, *depRec.graphID)
			}
		}
	}

	// Phase 3: topo sort.
	g := &graph{nodes: nodes}
	order, cycle := g.topologicalSort()
	if cycle {
		emit(LoadDependencyCycle, "")
		return LoadDependencyCycle
	}

	// Phase 4: load in order.
	for _, name := range order {
		rec, _ := m.registry.get(name)
		if err := m.loadOne(rec); err != nil {
			m.logger.Error("load plugin failed", "plugin", name, "error", err)
			continue
		}
	}
	m.registry.loadOrder = order

	// Phase 5: main plugin exec.
	if mainRec, ok := m.registry.mainPlugin(); ok && mainRec.loaded {
		if main, ok := mainRec.instance.(MainPlugin); ok {
			main.MainPluginExec()
		}
	}

	return Success
}

// loadOne resolves jp_createPlugin, assembles the dependency instance
// array in descriptor order, constructs the plugin, and runs Loaded().
func (m *Manager) loadOne(rec *pluginRecord) error {
	create, err := readCreateSymbol(rec.lib)
	if err != nil {
		return err
	}

	deps := make([]Plugin, len(rec.descriptor.Dependencies))
	for i, dep := range rec.descriptor.Dependencies {
		depRec, ok := m.registry.get(dep.Name)
		if !ok || !depRec.loaded {
			return fmt.Errorf("jpplugins: dependency %s of %s is not loaded", dep.Name, rec.descriptor.Name)
		}
		p, ok := depRec.instance.(Plugin)
		if !ok {
			return fmt.Errorf("jpplugins: dependency %s of %s has no live instance", dep.Name, rec.descriptor.Name)
		}
		deps[i] = p
	}

	instance := create(m.brokerRequest, m.peerRequest, deps, rec.isMain)
	if instance == nil {
		return fmt.Errorf("jpplugins: jp_createPlugin returned nil for %s", rec.descriptor.Name)
	}

	rec.instance = instance
	rec.loaded = true
	rec.loadedAt = timecache.CachedTime()
	instance.Loaded()
	return nil
}

// unloadOne implements unload_one: notify, release, unload, verify.
func (m *Manager) unloadOne(rec *pluginRecord) bool {
	if rec.instance != nil {
		if p, ok := rec.instance.(Plugin); ok {
			p.AboutToBeUnloaded()
		}
	}
	rec.instance = nil
	rec.loaded = false

	if err := rec.lib.Unload(); err != nil {
		m.logger.Error("unload library failed", "plugin", rec.descriptor.Name, "error", err)
	}
	return !rec.lib.IsLoaded()
}

// unloadAll implements spec.md §4.7's unload_all: reverse load order, then
// a remainder sweep whose order is explicitly NOT meaningful (see
// DESIGN.md — the source's own unloadPluginsInOrder has the same
// property).
func (m *Manager) unloadAll(cb DiscoveryCallback) ReturnCode {
	success := true
	processed := make(map[string]bool, len(m.registry.loadOrder))

	for i := len(m.registry.loadOrder) - 1; i >= 0; i-- {
		name := m.registry.loadOrder[i]
		rec, ok := m.registry.get(name)
		if !ok {
			continue
		}
		if !m.unloadOne(rec) {
			success = false
		}
		processed[name] = true
	}

	for _, name := range m.registry.names() {
		if processed[name] {
			continue
		}
		rec, _ := m.registry.get(name)
		if !m.unloadOne(rec) {
			success = false
		}
	}

	m.registry.scanLocations = nil
	m.registry.loadOrder = nil

	if !success {
		if cb != nil {
			cb(DiscoveryEvent{Code: UnloadNotAll})
		}
		return UnloadNotAll
	}
	return Success
}

// loadPlugin runs the Resolver and loadOne for a single already-discovered
// record, per spec.md §4.7's load_plugin(name).
func (m *Manager) loadPlugin(name string) bool {
	rec, ok := m.registry.get(name)
	if !ok {
		return false
	}
	if code := m.registry.checkDependencies(rec, nil); !code.OK() {
		return false
	}
	return m.loadOne(rec) == nil
}

// loadPluginFromPath probes, inserts, and loads a single plugin outside of
// a directory scan. Per spec.md §9's preferred resolution of the
// "insert-before-check" open question, a dependency failure unwinds the
// registry insertion rather than leaving an unresolved record behind.
func (m *Manager) loadPluginFromPath(path string) bool {
	lib := newDynLib()
	if err := lib.Load(path); err != nil {
		return false
	}
	if !lib.HasSymbol(symJpName) || !lib.HasSymbol(symJpMetadata) || !lib.HasSymbol(symJpCreatePlugin) {
		_ = lib.Unload()
		return false
	}

	name, err := readNameSymbol(lib)
	if err != nil {
		_ = lib.Unload()
		return false
	}
	if _, exists := m.registry.get(name); exists {
		_ = lib.Unload()
		return false
	}

	metaBytes, err := readMetadataSymbol(lib)
	if err != nil {
		_ = lib.Unload()
		return false
	}
	descriptor := parseMetadata(metaBytes)
	if !descriptor.Valid() {
		_ = lib.Unload()
		return false
	}

	rec := &pluginRecord{path: path, lib: lib, descriptor: descriptor}
	m.registry.add(rec)

	if code := m.registry.checkDependencies(rec, nil); !code.OK() {
		m.registry.remove(name)
		_ = lib.Unload()
		return false
	}

	if err := m.loadOne(rec); err != nil {
		m.registry.remove(name)
		_ = lib.Unload()
		return false
	}

	return true
}

// unloadPlugin implements spec.md §4.7's unload_plugin(name): dependents
// currently loaded are unwound first, recursively, before the target
// itself is unloaded and erased from the registry.
func (m *Manager) unloadPlugin(name string) bool {
	return m.unloadPluginRecursive(name, make(map[string]bool))
}

func (m *Manager) unloadPluginRecursive(name string, visiting map[string]bool) bool {
	if visiting[name] {
		return true
	}
	visiting[name] = true

	rec, ok := m.registry.get(name)
	if !ok {
		return true
	}

	for _, other := range m.registry.byName {
		if other.descriptor.Name == name || !other.loaded {
			continue
		}
		for _, dep := range other.descriptor.Dependencies {
			if dep.Name == name {
				if !m.unloadPluginRecursive(other.descriptor.Name, visiting) {
					return false
				}
				break
			}
		}
	}

	ok2 := m.unloadOne(rec)
	m.registry.remove(name)
	return ok2
}
