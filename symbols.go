// symbols.go: interpreting the three required exported ABI symbols.
//
// Go's plugin package resolves an exported variable to a pointer to its
// value and an exported function to the function value itself — there is
// no separate "read as string" step the way there is with a raw void* in
// the C++ ancestor. readNameSymbol/readMetadataSymbol encode the expected
// shapes once so discovery.go stays focused on the scan procedure.
//
// The source ABI names its three exports jp_name/jp_metadata/
// jp_createPlugin; Go's plugin.Lookup resolves symbols by their declared
// Go identifier, and only exported (upper-case) identifiers are visible
// across the plugin boundary. The sdk package's authoring template
// therefore exports JpName/JpMetadata/JpCreatePlugin — the same ABI
// concept, spelled the only way Go allows it to cross a plugin boundary.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import "fmt"

const (
	symJpName         = "JpName"
	symJpMetadata     = "JpMetadata"
	symJpCreatePlugin = "JpCreatePlugin"
)

// readNameSymbol reads jp_name, exported as `var JpName string` (or an
// equivalent *string) by the plugin's sdk-generated boilerplate.
func readNameSymbol(lib DynLib) (string, error) {
	sym, err := lib.Symbol(symJpName)
	if err != nil {
		return "", err
	}
	switch v := sym.(type) {
	case *string:
		return *v, nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("jpplugins: jp_name has unexpected type %T", sym)
	}
}

// readMetadataSymbol reads jp_metadata, exported as `var JpMetadata
// string` (or []byte) holding the raw JSON descriptor.
func readMetadataSymbol(lib DynLib) ([]byte, error) {
	sym, err := lib.Symbol(symJpMetadata)
	if err != nil {
		return nil, err
	}
	switch v := sym.(type) {
	case *string:
		return []byte(*v), nil
	case string:
		return []byte(v), nil
	case *[]byte:
		return *v, nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("jpplugins: jp_metadata has unexpected type %T", sym)
	}
}

// readCreateSymbol reads jp_createPlugin, exported as `var JpCreatePlugin
// CreateFunc` (or a bare func of the same signature).
func readCreateSymbol(lib DynLib) (CreateFunc, error) {
	sym, err := lib.Symbol(symJpCreatePlugin)
	if err != nil {
		return nil, err
	}
	switch v := sym.(type) {
	case *CreateFunc:
		return *v, nil
	case CreateFunc:
		return v, nil
	case func(BrokerFunc, PeerFunc, []Plugin, bool) Plugin:
		return v, nil
	default:
		return nil, fmt.Errorf("jpplugins: jp_createPlugin has unexpected type %T", sym)
	}
}
