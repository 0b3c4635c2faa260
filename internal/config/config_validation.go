// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Bus.Type != "" && cfg.Bus.Type != "session" && cfg.Bus.Type != "system" {
		return ErrInvalidBusConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Bus.Name == "" || strings.HasPrefix(cfg.Bus.Name, ".") || !strings.Contains(cfg.Bus.Name, ".") {
		return ErrInvalidBusConfigs
	}

	if !strings.HasPrefix(cfg.Bus.ObjectPath, "/") || path.Clean(cfg.Bus.ObjectPath) != cfg.Bus.ObjectPath {
		return ErrInvalidBusConfigs
	}

	if cfg.Calls.LookupTimeout <= 0 || cfg.Calls.ActionTimeout <= 0 {
		return ErrInvalidCallConfigs
	}

	if cfg.Monitor.RetryInterval <= 0 {
		return ErrInvalidMonitorConfigs
	}

	if cfg.Paths.DefaultSyncRoot == "" {
		return ErrInvalidPathConfigs
	}

	return nil
}
