// errors.go: ReturnCode taxonomy and structured error constructors.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import (
	"github.com/agilira/go-errors"
)

// Error codes for the jp-plugins system, one per ReturnCode.
const (
	ErrCodeSearchNothingFound        = "JP_100"
	ErrCodeSearchNameAlreadyExists   = "JP_101"
	ErrCodeSearchCannotParseMetadata = "JP_102"
	ErrCodeSearchListFilesError      = "JP_103"

	ErrCodeLoadDependencyBadVersion = "JP_200"
	ErrCodeLoadDependencyNotFound   = "JP_201"
	ErrCodeLoadDependencyCycle      = "JP_202"

	ErrCodeUnloadNotAll = "JP_300"

	ErrCodeUnknown = "JP_001"
)

// ReturnCode is the public taxonomy returned by every PluginManager
// operation. It is "truthy" (success) iff it equals Success.
type ReturnCode struct {
	code int
}

// The full return code taxonomy, per spec.
var (
	Success                   = ReturnCode{0}
	UnknownError              = ReturnCode{1}
	SearchNothingFound        = ReturnCode{100}
	SearchNameAlreadyExists   = ReturnCode{101}
	SearchCannotParseMetadata = ReturnCode{102}
	SearchListFilesError      = ReturnCode{103}
	LoadDependencyBadVersion  = ReturnCode{200}
	LoadDependencyNotFound    = ReturnCode{201}
	LoadDependencyCycle       = ReturnCode{202}
	UnloadNotAll              = ReturnCode{300}
)

// OK reports whether the code represents success. The implicit bool cast
// from the source language becomes an explicit method in Go.
func (r ReturnCode) OK() bool {
	return r == Success
}

// Message returns a fixed, human-readable message for the code.
func (r ReturnCode) Message() string {
	switch r {
	case Success:
		return "Success"
	case UnknownError:
		return "Unknown error"
	case SearchNothingFound:
		return "No plugins were found in that directory"
	case SearchCannotParseMetadata:
		return "Plugin metadata could not be parsed (it may be invalid)"
	case SearchNameAlreadyExists:
		return "A plugin with the same name was already found"
	case SearchListFilesError:
		return "An error occurred while scanning the plugin directory"
	case LoadDependencyBadVersion:
		return "The plugin requires a dependency in an incompatible version"
	case LoadDependencyNotFound:
		return "The plugin requires a dependency that was not found"
	case LoadDependencyCycle:
		return "The dependency graph contains a cycle"
	case UnloadNotAll:
		return "Not all plugins were unloaded"
	default:
		return ""
	}
}

// Err builds the structured *errors.Error counterpart for a ReturnCode,
// carrying the offending path/detail as context. Callers that only need the
// ReturnCode's OK()/Message() never touch this; it exists for callers that
// want a wrapped, contextual error (the CLI, the logger, tests).
func (r ReturnCode) Err(detail string) *errors.Error {
	var code errors.ErrorCode
	var userMsg string
	switch r {
	case SearchNothingFound:
		code, userMsg = ErrCodeSearchNothingFound, "No plugins were found in the searched directory"
	case SearchNameAlreadyExists:
		code, userMsg = ErrCodeSearchNameAlreadyExists, "A plugin with this name was already discovered"
	case SearchCannotParseMetadata:
		code, userMsg = ErrCodeSearchCannotParseMetadata, "Plugin metadata failed to parse"
	case SearchListFilesError:
		code, userMsg = ErrCodeSearchListFilesError, "Failed to enumerate the plugin directory"
	case LoadDependencyBadVersion:
		code, userMsg = ErrCodeLoadDependencyBadVersion, "A required dependency is present but incompatible"
	case LoadDependencyNotFound:
		code, userMsg = ErrCodeLoadDependencyNotFound, "A required dependency was not found"
	case LoadDependencyCycle:
		code, userMsg = ErrCodeLoadDependencyCycle, "The plugin dependency graph contains a cycle"
	case UnloadNotAll:
		code, userMsg = ErrCodeUnloadNotAll, "Some plugins failed to unload cleanly"
	default:
		code, userMsg = ErrCodeUnknown, "An unexpected error occurred"
	}

	e := errors.New(code, r.Message()).WithUserMessage(userMsg).WithSeverity("error")
	if detail != "" {
		e = e.WithContext("detail", detail)
	}
	return e
}
