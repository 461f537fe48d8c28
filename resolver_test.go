// resolver_test.go
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDependencies_AllSatisfied(t *testing.T) {
	var log []string
	r := newRegistry()
	a := newRecord("A", "1.0.0", &log)
	b := newRecord("B", "1.0.0", &log, Dependency{Name: "A", Version: "1.0.0"})
	r.add(a)
	r.add(b)

	code := r.checkDependencies(b, nil)
	assert.True(t, code.OK())
	assert.Equal(t, triYes, b.dependenciesExist)
}

func TestCheckDependencies_NotFound(t *testing.T) {
	var log []string
	r := newRegistry()
	b := newRecord("B", "1.0.0", &log, Dependency{Name: "missing", Version: "1.0.0"})
	r.add(b)

	var events []DiscoveryEvent
	code := r.checkDependencies(b, func(e DiscoveryEvent) { events = append(events, e) })
	assert.Equal(t, LoadDependencyNotFound, code)
	assert.Equal(t, triNo, b.dependenciesExist)
	assert.Len(t, events, 1)
}

func TestCheckDependencies_BadVersion(t *testing.T) {
	var log []string
	r := newRegistry()
	a := newRecord("A", "1.0.0", &log)
	b := newRecord("B", "1.0.0", &log, Dependency{Name: "A", Version: "2.0.0"})
	r.add(a)
	r.add(b)

	code := r.checkDependencies(b, nil)
	assert.Equal(t, LoadDependencyBadVersion, code)
}

func TestCheckDependencies_MemoizedAfterSuccess(t *testing.T) {
	var log []string
	r := newRegistry()
	a := newRecord("A", "1.0.0", &log)
	r.add(a)
	assert.True(t, r.checkDependencies(a, nil).OK())
	assert.Equal(t, triYes, a.dependenciesExist)

	// A second check returns the cached verdict without walking again.
	assert.True(t, r.checkDependencies(a, nil).OK())
}

func TestCheckDependencies_TransitivePropagatesFailure(t *testing.T) {
	var log []string
	r := newRegistry()
	a := newRecord("A", "1.0.0", &log, Dependency{Name: "missing", Version: "1.0.0"})
	b := newRecord("B", "1.0.0", &log, Dependency{Name: "A", Version: "1.0.0"})
	r.add(a)
	r.add(b)

	code := r.checkDependencies(b, nil)
	assert.Equal(t, LoadDependencyNotFound, code)
	assert.Equal(t, triNo, a.dependenciesExist)
	assert.Equal(t, triNo, b.dependenciesExist)
}
