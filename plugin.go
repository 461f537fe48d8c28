// plugin.go: the plugin-side ABI — the interface every loaded plugin
// instance must satisfy, and the function types passed into its
// constructor.
//
// Grounded on the C++ ancestor's IPlugin (iplugin.h) and the
// jp_createPlugin signature in spec.md §6. The raw `IPlugin** deps, int
// dep_count` positional array survives as a Go slice (design note in
// spec.md §9: "keep it as a {ptr, len} pair at the FFI edge" — a Go slice
// already is that pair, so no translation is needed at the call site).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

// RequestCode identifies a RequestBroker dispatch target. See §4.8.
type RequestCode uint16

const (
	ReqGetAppDirectory RequestCode = iota
	ReqGetPluginAPI
	ReqGetPluginsCount
	ReqGetPluginInfo
	ReqGetPluginVersion
	ReqCheckPlugin
	ReqCheckPluginLoaded
)

// BrokerStatus is the u16 result code returned by BrokerFunc and by a
// plugin's HandleRequest, mirroring the source's raw status values.
type BrokerStatus uint16

const (
	BrokerOK BrokerStatus = iota
	BrokerDataSizeNull
	BrokerNotFound
	BrokerUnknownRequest
	BrokerResultTrue
	BrokerResultFalse
)

// BrokerData is the in-out payload slot for a broker request. The source
// passes an opaque `void*` plus an in-out byte-size; here the same
// exchange is a single GC-owned field, so there is no separate allocate/
// free step for the caller to get wrong.
type BrokerData struct {
	Value any
}

// BrokerFunc is the process-wide request dispatch function handed to
// every plugin constructor. sender is the calling plugin's name.
type BrokerFunc func(sender string, code RequestCode, data *BrokerData) BrokerStatus

// PeerFunc is the privileged non-dependency peer lookup, handed only to
// the constructor as a capability; whether it actually grants access is
// enforced by the broker using the isMain flag passed alongside it, not
// by the caller's intent.
type PeerFunc func(sender, targetName string) (Plugin, bool)

// Plugin is the interface every loaded plugin instance satisfies. It is
// the Go-side counterpart of IPlugin (iplugin.h).
type Plugin interface {
	// Loaded is called exactly once after construction; every declared
	// dependency is guaranteed live for the duration of this call.
	Loaded()

	// AboutToBeUnloaded is called exactly once before the instance is
	// dropped; every declared dependency is still live for the duration
	// of this call.
	AboutToBeUnloaded()

	// HandleRequest answers a peer-to-peer request from another plugin.
	HandleRequest(sender string, code RequestCode, data *BrokerData) BrokerStatus
}

// MainPlugin is implemented additionally by the single plugin registered
// via RegisterMainPlugin.
type MainPlugin interface {
	Plugin
	// MainPluginExec runs once, after every plugin in the load cycle has
	// completed Loaded().
	MainPluginExec()
}

// CreateFunc is the signature jp_createPlugin must resolve to: the
// constructor every plugin shared library exports.
type CreateFunc func(broker BrokerFunc, peer PeerFunc, deps []Plugin, isMain bool) Plugin
