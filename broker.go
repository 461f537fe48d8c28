// broker.go: the process-wide request dispatch function and the
// main-plugin-only peer access entry point.
//
// Grounded on PluginManagerPrivate::handleRequest and getNonDepPlugin
// (pluginmanagerprivate.cpp). The source's static free function becomes a
// Manager method bound into a BrokerFunc/PeerFunc closure at construction
// time, per spec.md §9's "process-wide state with explicit init/teardown"
// redesign note.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

// brokerRequest is the BrokerFunc handed to every plugin constructor. It
// takes the manager's coarse lock for the duration of the dispatch, per
// spec.md §5's requirement that the broker "take a coarse internal mutex
// to make registry reads consistent."
func (m *Manager) brokerRequest(sender string, code RequestCode, data *BrokerData) BrokerStatus {
	if data == nil {
		return BrokerDataSizeNull
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	m.logger.Debug("broker request", "sender", sender, "code", code)

	switch code {
	case ReqGetAppDirectory:
		dir, err := appDirectory()
		if err != nil {
			dir = ""
		}
		data.Value = dir
		return BrokerOK

	case ReqGetPluginAPI:
		data.Value = PluginAPI
		return BrokerOK

	case ReqGetPluginsCount:
		// The source sets dataSize=1 meaning "one element," inconsistent
		// with the byte-length convention used by the string paths above
		// (see spec.md §9). BrokerData folds size and value into one
		// field, so that inconsistency has no surface here; the count
		// itself is preserved faithfully.
		data.Value = m.registry.count()
		return BrokerOK

	case ReqGetPluginInfo:
		name := brokerTargetName(sender, data)
		rec, ok := m.registry.get(name)
		if !ok {
			return BrokerNotFound
		}
		data.Value = rec.toPluginInfo()
		return BrokerOK

	case ReqGetPluginVersion:
		name := brokerTargetName(sender, data)
		rec, ok := m.registry.get(name)
		if !ok {
			return BrokerNotFound
		}
		data.Value = rec.descriptor.Version
		return BrokerOK

	case ReqCheckPlugin:
		name, _ := data.Value.(string)
		if _, ok := m.registry.get(name); ok {
			return BrokerResultTrue
		}
		return BrokerResultFalse

	case ReqCheckPluginLoaded:
		name, _ := data.Value.(string)
		rec, ok := m.registry.get(name)
		if ok && rec.loaded {
			return BrokerResultTrue
		}
		return BrokerResultFalse

	default:
		return BrokerUnknownRequest
	}
}

// brokerTargetName resolves GET_PLUGININFO/GET_PLUGINVERSION's target:
// data.Value as a plugin name if present and non-empty, else sender.
func brokerTargetName(sender string, data *BrokerData) string {
	if name, ok := data.Value.(string); ok && name != "" {
		return name
	}
	return sender
}

// peerRequest is the PeerFunc handed to every plugin constructor. It
// returns a live instance only when sender is the registered main plugin
// and targetName is currently loaded, per spec.md §4.8's privilege rule.
func (m *Manager) peerRequest(sender, targetName string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	senderRec, ok := m.registry.get(sender)
	if !ok || !senderRec.isMain {
		return nil, false
	}

	targetRec, ok := m.registry.get(targetName)
	if !ok || !targetRec.loaded {
		return nil, false
	}

	p, ok := targetRec.instance.(Plugin)
	return p, ok
}
