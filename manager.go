// manager.go: PluginManager, the host-facing facade over discovery,
// resolution, lifecycle and the broker.
//
// Grounded on PluginManager/PluginManagerPrivate (pluginmanager.h/.cpp):
// the source's process-wide singleton becomes an explicitly constructed
// Go value per spec.md §9's redesign note ("process-wide state with
// explicit init/teardown"). Nothing prevents a process from holding more
// than one Manager; the "process-wide" character of the broker is
// preserved per-Manager rather than via a package-level global.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import "sync"

// Manager is the host-side entry point into the plugin core: discovering
// plugins on disk, resolving their dependencies, driving their load and
// unload lifecycle, and brokering requests between loaded instances.
//
// Manager is not safe for concurrent driving: SearchForPlugins, LoadAll,
// UnloadAll and the per-plugin variants must be serialized by the caller
// (spec.md §5). The broker methods (reached only by plugin code through
// the function values passed to its constructor) take Manager's own lock
// and may be called from any goroutine a loaded plugin happens to use.
type Manager struct {
	registry *registry
	logger   Logger
	logging  bool
	mu       sync.RWMutex
}

// NewManager constructs an empty Manager. A nil logger defaults to
// DefaultLogger (a no-op).
func NewManager(logger Logger) *Manager {
	if logger == nil {
		logger = DefaultLogger()
	}
	return &Manager{
		registry: newRegistry(),
		logger:   logger,
		logging:  true,
	}
}

func (m *Manager) log(level string, msg string, kv ...any) {
	if !m.logging {
		return
	}
	switch level {
	case "debug":
		m.logger.Debug(msg, kv...)
	case "warn":
		m.logger.Warn(msg, kv...)
	case "error":
		m.logger.Error(msg, kv...)
	default:
		m.logger.Info(msg, kv...)
	}
}

// SetLogger replaces the manager's logger.
func (m *Manager) SetLogger(logger Logger) {
	if logger == nil {
		logger = DefaultLogger()
	}
	m.logger = logger
}

// EnableLogOutput toggles whether the manager emits its search, load and
// unload progress events; the logger itself is left in place. Broker
// dispatch messages and per-plugin load/unload failure messages are
// written to the logger whatever this setting.
func (m *Manager) EnableLogOutput(enabled bool) {
	m.logging = enabled
}

// SearchForPlugins scans dir (and, if recursive, its subdirectories) for
// candidate shared libraries and registers every one that satisfies the
// plugin ABI and has a fresh name. See spec.md §4.5.
func (m *Manager) SearchForPlugins(dir string, recursive bool, cb DiscoveryCallback) ReturnCode {
	m.log("info", "searching for plugins", "dir", dir, "recursive", recursive)
	code := m.searchForPlugins(dir, recursive, cb)
	m.log("info", "search complete", "dir", dir, "result", code.Message())
	return code
}

// RegisterMainPlugin designates name as the single privileged main
// plugin. Fails if a main plugin is already registered or name is
// unknown.
func (m *Manager) RegisterMainPlugin(name string) ReturnCode {
	if m.registry.mainPluginName != "" {
		return UnknownError
	}
	rec, ok := m.registry.get(name)
	if !ok {
		return UnknownError
	}
	rec.isMain = true
	m.registry.mainPluginName = name
	return Success
}

// LoadAll resolves dependencies and loads every known plugin in
// topological order. If tryToContinue is false, the first unresolved
// plugin aborts the whole operation; if true, unresolved plugins are
// skipped and the rest still load. See spec.md §4.7.
func (m *Manager) LoadAll(tryToContinue bool, cb DiscoveryCallback) ReturnCode {
	m.log("info", "loading all plugins", "tryToContinue", tryToContinue)
	code := m.loadAll(tryToContinue, cb)
	m.log("info", "load complete", "result", code.Message())
	return code
}

// UnloadAll unloads every loaded plugin in reverse load order, then
// sweeps any remaining (never-loaded) records.
func (m *Manager) UnloadAll(cb DiscoveryCallback) ReturnCode {
	m.log("info", "unloading all plugins")
	code := m.unloadAll(cb)
	m.log("info", "unload complete", "result", code.Message())
	return code
}

// LoadPlugin resolves dependencies and loads a single already-discovered
// plugin by name.
func (m *Manager) LoadPlugin(name string) bool {
	ok := m.loadPlugin(name)
	m.log("info", "load plugin", "plugin", name, "ok", ok)
	return ok
}

// LoadPluginFromPath discovers and loads a single plugin outside of a
// directory scan, unwinding its registry entry on any failure.
func (m *Manager) LoadPluginFromPath(path string) bool {
	ok := m.loadPluginFromPath(path)
	m.log("info", "load plugin from path", "path", path, "ok", ok)
	return ok
}

// UnloadPlugin unloads name and every currently-loaded plugin that
// depends on it (recursively, dependent-before-dependency), then erases
// the record.
func (m *Manager) UnloadPlugin(name string) bool {
	ok := m.unloadPlugin(name)
	m.log("info", "unload plugin", "plugin", name, "ok", ok)
	return ok
}

// PluginsCount returns the number of known plugins (loaded or not).
func (m *Manager) PluginsCount() int {
	return m.registry.count()
}

// PluginsList returns the names of every known plugin, in no particular
// order.
func (m *Manager) PluginsList() []string {
	return m.registry.names()
}

// PluginsLocation returns every directory SearchForPlugins has scanned
// that contributed at least one plugin.
func (m *Manager) PluginsLocation() []string {
	out := make([]string, len(m.registry.scanLocations))
	copy(out, m.registry.scanLocations)
	return out
}

// HasPlugin reports whether name is known. If minVersion is non-empty,
// it additionally requires the plugin's version to be Compatible with
// minVersion (spec.md invariant 7).
func (m *Manager) HasPlugin(name string, minVersion string) bool {
	rec, ok := m.registry.get(name)
	if !ok {
		return false
	}
	if minVersion == "" {
		return true
	}
	return ParseVersion(rec.descriptor.Version).Compatible(minVersion)
}

// IsPluginLoaded reports whether name is known and currently has a live
// instance.
func (m *Manager) IsPluginLoaded(name string) bool {
	rec, ok := m.registry.get(name)
	return ok && rec.loaded
}

// PluginObject returns the live instance for name, or nil if unknown or
// not currently loaded.
func (m *Manager) PluginObject(name string) Plugin {
	rec, ok := m.registry.get(name)
	if !ok || !rec.loaded {
		return nil
	}
	p, _ := rec.instance.(Plugin)
	return p
}

// PluginInfo returns the public metadata view for name, and whether name
// is known.
func (m *Manager) PluginInfo(name string) (PluginInfo, bool) {
	rec, ok := m.registry.get(name)
	if !ok {
		return PluginInfo{}, false
	}
	return rec.toPluginInfo(), true
}

// LoadOrder returns the topological order computed by the most recent
// LoadAll, or an empty slice if LoadAll has not yet succeeded.
func (m *Manager) LoadOrder() []string {
	out := make([]string, len(m.registry.loadOrder))
	copy(out, m.registry.loadOrder)
	return out
}

// AppDirectory returns the directory containing the host executable.
func (m *Manager) AppDirectory() (string, error) {
	return appDirectory()
}

// PluginAPIVersion returns the host's plugin API version string.
func (m *Manager) PluginAPIVersion() string {
	return PluginAPI
}
