// hostconfig.go: the manager's own bootstrap configuration.
//
// Grounded on LibraryConfigWatcher (argus_config_watcher.go in this
// project's earlier incarnation): an argus.Watcher polling a single config
// file and republishing it through a callback. Narrowed to the one file
// this manager actually needs — where to search and how to behave on
// load — and explicitly NOT wired to plugin hot-reload (spec.md §1 keeps
// that a non-goal; this only lets an operator change the *next*
// SearchForPlugins/LoadAll call's defaults without a process restart).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package jpplugins

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agilira/argus"
	"gopkg.in/yaml.v3"
)

// defaultHostConfigPollInterval matches the teacher's library_config_watcher.go
// default: host config changes far less often than plugins themselves, so a
// 10-second poll is plenty responsive without adding CPU overhead.
const defaultHostConfigPollInterval = 10 * time.Second

// ManagerConfig is the manager's own startup configuration, distinct from
// any plugin's jp_metadata descriptor.
type ManagerConfig struct {
	SearchDirs     []string `json:"searchDirs" yaml:"searchDirs"`
	Recursive      bool     `json:"recursive" yaml:"recursive"`
	TryToContinue  bool     `json:"tryToContinue" yaml:"tryToContinue"`
	MainPluginName string   `json:"mainPluginName" yaml:"mainPluginName"`
	LogLevel       string   `json:"logLevel" yaml:"logLevel"`
}

// LoadHostConfig reads a ManagerConfig from path, dispatching on its
// extension (.yaml/.yml via yaml.v3, anything else via encoding/json).
func LoadHostConfig(path string) (ManagerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ManagerConfig{}, err
	}

	var cfg ManagerConfig
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return ManagerConfig{}, err
	}
	return cfg, nil
}

// HostConfigCallback is invoked with the freshly re-read configuration
// whenever WatchHostConfig's underlying file changes.
type HostConfigCallback func(ManagerConfig)

// WatchHostConfig polls path for changes via argus and invokes onChange
// with the re-parsed ManagerConfig each time it does, skipping deletions
// (there is nothing to reload from a deleted file). The returned stop
// function releases the watcher; callers should defer it.
//
// This never touches an already-loaded plugin: it only republishes the
// host's own bootstrap settings for the caller to apply to its next
// SearchForPlugins/LoadAll call.
func WatchHostConfig(path string, logger Logger, onChange HostConfigCallback) (stop func() error, err error) {
	if logger == nil {
		logger = DefaultLogger()
	}

	w := argus.New(argus.Config{
		PollInterval:         defaultHostConfigPollInterval,
		OptimizationStrategy: argus.OptimizationSingleEvent,
		ErrorHandler: func(err error, file string) {
			logger.Error("host config watch error", "error", err, "file", file)
		},
	})

	watchErr := w.Watch(path, func(event argus.ChangeEvent) {
		if event.IsDelete {
			logger.Warn("host config file deleted, skipping reload", "path", event.Path)
			return
		}
		cfg, err := LoadHostConfig(path)
		if err != nil {
			logger.Error("host config reload failed", "path", event.Path, "error", err)
			return
		}
		logger.Info("host config reloaded", "path", event.Path)
		onChange(cfg)
	})
	if watchErr != nil {
		return nil, watchErr
	}

	if err := w.Start(); err != nil {
		return nil, err
	}

	return w.Stop, nil
}
