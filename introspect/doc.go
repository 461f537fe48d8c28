// Package introspect implements a read-only gRPC facade over a
// *jpplugins.Manager, for monitoring only: it can list known plugins,
// fetch one plugin's metadata, and report the last computed load order.
// No RPC in this package can load, unload, or otherwise mutate a
// manager's registry.
//
// introspect.proto records the service's intended schema for a future
// protoc-gen-go/protoc-gen-go-grpc code generation pass. This package does
// not depend on that generated code today — running protoc is a build step
// this repository does not perform, and checking in hand-written stand-ins
// for generated output would misrepresent them as build artifacts. Instead
// Server is registered against a hand-written grpc.ServiceDesc (server.go)
// and exchanges google.protobuf.Struct values, the same pattern
// protoc-gen-go-grpc itself would produce, minus the generated message
// types.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package introspect
