// broker_test.go
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_DataSizeNull(t *testing.T) {
	m := NewManager(nil)
	status := m.brokerRequest("x", ReqGetPluginAPI, nil)
	assert.Equal(t, BrokerDataSizeNull, status)
}

func TestBroker_GetPluginAPI(t *testing.T) {
	m := NewManager(nil)
	data := &BrokerData{}
	status := m.brokerRequest("x", ReqGetPluginAPI, data)
	assert.Equal(t, BrokerOK, status)
	assert.Equal(t, PluginAPI, data.Value)
}

func TestBroker_GetPluginsCount(t *testing.T) {
	var log []string
	m := newTestManager(newRecord("A", "1.0.0", &log), newRecord("B", "1.0.0", &log))
	data := &BrokerData{}
	status := m.brokerRequest("A", ReqGetPluginsCount, data)
	assert.Equal(t, BrokerOK, status)
	assert.Equal(t, 2, data.Value)
}

func TestBroker_GetPluginInfoBySenderAndByName(t *testing.T) {
	var log []string
	m := newTestManager(newRecord("A", "1.0.0", &log), newRecord("B", "2.0.0", &log))

	data := &BrokerData{}
	status := m.brokerRequest("A", ReqGetPluginInfo, data)
	require.Equal(t, BrokerOK, status)
	info, ok := data.Value.(PluginInfo)
	require.True(t, ok)
	assert.Equal(t, "A", info.Name)

	data = &BrokerData{Value: "B"}
	status = m.brokerRequest("A", ReqGetPluginInfo, data)
	require.Equal(t, BrokerOK, status)
	info, ok = data.Value.(PluginInfo)
	require.True(t, ok)
	assert.Equal(t, "B", info.Name)

	data = &BrokerData{Value: "missing"}
	status = m.brokerRequest("A", ReqGetPluginInfo, data)
	assert.Equal(t, BrokerNotFound, status)
}

func TestBroker_CheckPluginAndCheckPluginLoaded(t *testing.T) {
	var log []string
	m := newTestManager(newRecord("A", "1.0.0", &log))

	data := &BrokerData{Value: "A"}
	assert.Equal(t, BrokerResultTrue, m.brokerRequest("A", ReqCheckPlugin, data))
	assert.Equal(t, BrokerResultFalse, m.brokerRequest("A", ReqCheckPluginLoaded, data))

	require.True(t, m.LoadAll(true, nil).OK())
	assert.Equal(t, BrokerResultTrue, m.brokerRequest("A", ReqCheckPluginLoaded, data))

	data = &BrokerData{Value: "nope"}
	assert.Equal(t, BrokerResultFalse, m.brokerRequest("A", ReqCheckPlugin, data))
}

func TestBroker_UnknownRequest(t *testing.T) {
	m := NewManager(nil)
	status := m.brokerRequest("x", RequestCode(999), &BrokerData{})
	assert.Equal(t, BrokerUnknownRequest, status)
}
