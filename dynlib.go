// dynlib.go: the DynLib capability — the host's view of a shared library.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import "errors"

// ErrUnsupportedPlatform is returned by DynLib.Load on platforms where the
// host has no dynamic-library loader (see dynlib_windows.go).
var ErrUnsupportedPlatform = errors.New("jpplugins: dynamic library loading is not supported on this platform")

// DynLib is the capability a shared-library plugin is loaded through. It is
// the one abstraction spec.md leaves external to the core; jp-plugins ships
// a concrete implementation (nativeDynLib) built on the standard library's
// plugin package rather than leaving it as a bare interface.
type DynLib interface {
	// Load opens the shared object at path. Implementations must be safe
	// to call at most once per instance.
	Load(path string) error

	// IsLoaded reports whether the library is currently open.
	IsLoaded() bool

	// HasSymbol reports whether name is exported by the library. Must
	// return false (never panic) if the library isn't loaded.
	HasSymbol(name string) bool

	// Symbol looks up an exported symbol by name. Returns an error if the
	// library isn't loaded or the symbol is absent.
	Symbol(name string) (any, error)

	// Unload releases the underlying OS handle. Go's runtime plugin
	// loader cannot truly unload a shared object (there is no portable
	// dlclose equivalent in the standard library); Unload instead marks
	// the handle closed so IsLoaded reports false and no further Symbol
	// lookups are permitted. The process keeps the library mapped until
	// it exits — this is documented, not hidden, behavior.
	Unload() error
}

// newDynLib constructs the platform DynLib implementation. Exists as a
// function (rather than a bare constructor) so tests can substitute a fake.
var newDynLib = func() DynLib {
	return newNativeDynLib()
}
