// logging_test.go
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoOpLogger_DiscardsEverything(t *testing.T) {
	var l Logger = NewNoOpLogger()
	assert.NotPanics(t, func() {
		l.Debug("debug", "k", "v")
		l.Info("info")
		l.Warn("warn")
		l.Error("error")
	})
	assert.Same(t, l, l.With("k", "v"))
}

func TestDefaultLogger_IsNoOp(t *testing.T) {
	_, ok := DefaultLogger().(*NoOpLogger)
	assert.True(t, ok)
}

func TestTestLogger_CapturesEachLevel(t *testing.T) {
	tl := NewTestLogger()
	tl.Debug("d", "k", 1)
	tl.Info("i")
	tl.Warn("w")
	tl.Error("e")

	require := assert.New(t)
	require.Len(tl.Messages, 4)
	require.Equal("DEBUG", tl.Messages[0].Level)
	require.Equal("d", tl.Messages[0].Message)
	require.Equal([]any{"k", 1}, tl.Messages[0].Args)
	require.Equal("INFO", tl.Messages[1].Level)
	require.Equal("WARN", tl.Messages[2].Level)
	require.Equal("ERROR", tl.Messages[3].Level)
}

func TestTestLogger_HasMessage(t *testing.T) {
	tl := NewTestLogger()
	tl.Info("search complete")
	assert.True(t, tl.HasMessage("INFO", "search complete"))
	assert.False(t, tl.HasMessage("INFO", "something else"))
	assert.False(t, tl.HasMessage("ERROR", "search complete"))
}

func TestTestLogger_Clear(t *testing.T) {
	tl := NewTestLogger()
	tl.Info("one")
	tl.Clear()
	assert.Empty(t, tl.Messages)
}

func TestTestLogger_WithReturnsIndependentSnapshot(t *testing.T) {
	tl := NewTestLogger()
	tl.Info("before")

	snapshot := tl.With("request_id", "abc")
	tl.Info("after")

	snapshotLogger, ok := snapshot.(*TestLogger)
	assert.True(t, ok)
	assert.Len(t, snapshotLogger.Messages, 1)
	assert.Len(t, tl.Messages, 2)
}
