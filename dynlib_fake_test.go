// dynlib_fake_test.go: an in-memory DynLib stand-in for tests, since no
// real shared object can be built in this environment.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import (
	"encoding/json"
	"errors"
	"testing"
)

var (
	errNotALibrary  = errors.New("fakeDynLib: not a valid library")
	errNotLoaded    = errors.New("fakeDynLib: library not loaded")
	errNoSuchSymbol = errors.New("fakeDynLib: no such symbol")
)

// fakeDynLib simulates a loaded shared library by holding a symbol table
// in memory instead of calling into the OS loader.
type fakeDynLib struct {
	symbols  map[string]any
	loaded   bool
	failLoad bool
}

func newFakeDynLib(symbols map[string]any, failLoad bool) *fakeDynLib {
	return &fakeDynLib{symbols: symbols, failLoad: failLoad}
}

// newLoadedFakeDynLib builds a fakeDynLib already in the loaded state, for
// tests that construct a pluginRecord directly rather than going through
// SearchForPlugins.
func newLoadedFakeDynLib(symbols map[string]any) *fakeDynLib {
	return &fakeDynLib{symbols: symbols, loaded: true}
}

func (f *fakeDynLib) Load(path string) error {
	if f.failLoad {
		return errNotALibrary
	}
	f.loaded = true
	return nil
}

func (f *fakeDynLib) IsLoaded() bool { return f.loaded }

func (f *fakeDynLib) HasSymbol(name string) bool {
	if !f.loaded {
		return false
	}
	_, ok := f.symbols[name]
	return ok
}

func (f *fakeDynLib) Symbol(name string) (any, error) {
	if !f.loaded {
		return nil, errNotLoaded
	}
	v, ok := f.symbols[name]
	if !ok {
		return nil, errNoSuchSymbol
	}
	return v, nil
}

func (f *fakeDynLib) Unload() error {
	f.loaded = false
	return nil
}

// routingDynLib lets discovery/lifecycle tests drive SearchForPlugins
// over real temp-directory paths while keeping the actual "library
// contents" in memory: newDynLib is swapped for a constructor that looks
// up the real fake by path at Load time.
type routingDynLib struct {
	table map[string]*fakeDynLib
	inner *fakeDynLib
}

func (r *routingDynLib) Load(path string) error {
	fake, ok := r.table[path]
	if !ok {
		return errNotALibrary
	}
	r.inner = fake
	return r.inner.Load(path)
}

func (r *routingDynLib) IsLoaded() bool {
	return r.inner != nil && r.inner.IsLoaded()
}

func (r *routingDynLib) HasSymbol(name string) bool {
	return r.inner != nil && r.inner.HasSymbol(name)
}

func (r *routingDynLib) Symbol(name string) (any, error) {
	if r.inner == nil {
		return nil, errNotLoaded
	}
	return r.inner.Symbol(name)
}

func (r *routingDynLib) Unload() error {
	if r.inner == nil {
		return nil
	}
	return r.inner.Unload()
}

// withRoutingDynLib swaps newDynLib for the duration of a test, routing
// Load(path) calls through table, and restores the original afterward.
func withRoutingDynLib(t *testing.T, table map[string]*fakeDynLib) {
	t.Helper()
	original := newDynLib
	newDynLib = func() DynLib { return &routingDynLib{table: table} }
	t.Cleanup(func() { newDynLib = original })
}

// fakePlugin is a minimal Plugin/MainPlugin implementation that records
// every lifecycle call it receives, for asserting ordering invariants.
type fakePlugin struct {
	name        string
	deps        []Plugin
	loadedCalls *[]string
	broker      BrokerFunc
	peer        PeerFunc
	isMain      bool
	mainRan     bool
}

func (p *fakePlugin) Loaded() {
	*p.loadedCalls = append(*p.loadedCalls, "loaded:"+p.name)
}

func (p *fakePlugin) AboutToBeUnloaded() {
	*p.loadedCalls = append(*p.loadedCalls, "unloading:"+p.name)
}

func (p *fakePlugin) HandleRequest(sender string, code RequestCode, data *BrokerData) BrokerStatus {
	return BrokerOK
}

func (p *fakePlugin) MainPluginExec() {
	p.mainRan = true
}

// pluginSymbols builds the symbol table a discovered plugin file must
// expose: its name, its raw jp_metadata JSON, and a constructor that
// records every instance it creates into loadedCalls via fakePlugin.
func pluginSymbols(name, metadataJSON string, create CreateFunc) map[string]any {
	return map[string]any{
		symJpName:         name,
		symJpMetadata:     metadataJSON,
		symJpCreatePlugin: create,
	}
}

// recordingCreateFunc returns a CreateFunc that builds a fakePlugin
// appending its lifecycle calls to log, capturing the deps it was handed
// and the broker/peer functions for later assertions.
func recordingCreateFunc(name string, log *[]string) CreateFunc {
	return func(broker BrokerFunc, peer PeerFunc, deps []Plugin, isMain bool) Plugin {
		return &fakePlugin{
			name:        name,
			deps:        deps,
			loadedCalls: log,
			broker:      broker,
			peer:        peer,
			isMain:      isMain,
		}
	}
}

// newRecord builds a pluginRecord backed by a loaded fakeDynLib, ready to
// be inserted directly into a registry for resolver/lifecycle tests.
func newRecord(name, version string, log *[]string, deps ...Dependency) *pluginRecord {
	descriptor := PluginDescriptor{
		Name: name, PrettyName: name, Version: version,
		Author: "t", URL: "https://example.invalid", License: "MIT", Copyright: "t",
		APIVersion: PluginAPI, Dependencies: deps,
	}
	lib := newLoadedFakeDynLib(map[string]any{
		symJpName:         name,
		symJpMetadata:     "{}",
		symJpCreatePlugin: recordingCreateFunc(name, log),
	})
	return &pluginRecord{path: "/fake/" + name, lib: lib, descriptor: descriptor}
}

func descriptorJSON(name, version string, deps ...Dependency) string {
	d := PluginDescriptor{
		Name:         name,
		PrettyName:   name,
		Version:      version,
		Author:       "test",
		URL:          "https://example.invalid",
		License:      "MIT",
		Copyright:    "test",
		APIVersion:   PluginAPI,
		Dependencies: deps,
	}
	b, err := json.Marshal(d)
	if err != nil {
		panic(err)
	}
	return string(b)
}
