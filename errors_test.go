// errors_test.go
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReturnCode_OK(t *testing.T) {
	assert.True(t, Success.OK())
	assert.False(t, UnloadNotAll.OK())
	assert.False(t, UnknownError.OK())
}

func TestReturnCode_Message(t *testing.T) {
	assert.Equal(t, "Success", Success.Message())
	assert.NotEmpty(t, LoadDependencyCycle.Message())
	assert.NotEmpty(t, SearchNameAlreadyExists.Message())
}

func TestReturnCode_Err(t *testing.T) {
	err := LoadDependencyCycle.Err("pluginA")
	assert.Equal(t, ErrCodeLoadDependencyCycle, string(err.ErrorCode()))
	assert.Equal(t, "pluginA", err.Context["detail"])
	assert.Equal(t, "error", err.Severity)
}

func TestReturnCode_ErrWithoutDetail(t *testing.T) {
	err := SearchNothingFound.Err("")
	assert.Equal(t, ErrCodeSearchNothingFound, string(err.ErrorCode()))
	assert.NotContains(t, err.Context, "detail")
}

func TestReturnCode_ErrUnknownDefaultsToUnknownCode(t *testing.T) {
	err := ReturnCode{code: 999}.Err("")
	assert.Equal(t, ErrCodeUnknown, string(err.ErrorCode()))
}
