// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for
// lnxdrive-shell. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Bus identifies the daemon on the inter-process bus.
	Bus Bus `envPrefix:"BUS_"`

	// Calls holds per-call timeouts for remote operations.
	Calls Calls `envPrefix:"CALLS_"`

	// Monitor holds availability monitor settings.
	Monitor Monitor `envPrefix:"MONITOR_"`

	// Paths holds local filesystem settings.
	Paths Paths `envPrefix:"PATHS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Notify holds user notification settings.
	Notify Notify `envPrefix:"NOTIFY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via LNXDRIVE_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Bus identifies the daemon's well-known name and object.
type Bus struct {
	// Name is the well-known bus name owned by the daemon. Every interface
	// name is derived from it (Name + ".Files", Name + ".Settings", ...).
	// Env: LNXDRIVE_BUS_NAME
	Name string `env:"NAME"`

	// ObjectPath is the object exporting all daemon interfaces.
	// Env: LNXDRIVE_BUS_OBJECT_PATH
	ObjectPath string `env:"OBJECT_PATH"`

	// Type selects the "session" or "system" bus.
	// Env: LNXDRIVE_BUS_TYPE
	Type string `env:"TYPE"`

	// Address, when set, is dialled instead of the standard bus of Type.
	// Env: LNXDRIVE_BUS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Calls holds remote call timeouts.
type Calls struct {
	// LookupTimeout bounds read-only calls such as GetBatchFileStatus.
	// Env: LNXDRIVE_CALLS_LOOKUP_TIMEOUT
	LookupTimeout time.Duration `env:"LOOKUP_TIMEOUT"`

	// ActionTimeout bounds mutating calls; pinning may imply a download.
	// Env: LNXDRIVE_CALLS_ACTION_TIMEOUT
	ActionTimeout time.Duration `env:"ACTION_TIMEOUT"`
}

// Monitor holds availability monitor settings.
type Monitor struct {
	// RetryInterval is how often a degraded client probes for the daemon.
	// Env: LNXDRIVE_MONITOR_RETRY_INTERVAL
	RetryInterval time.Duration `env:"RETRY_INTERVAL"`
}

// Paths holds local filesystem settings.
type Paths struct {
	// DefaultSyncRoot is used when the daemon's configuration cannot be read.
	// Env: LNXDRIVE_PATHS_DEFAULT_SYNC_ROOT
	DefaultSyncRoot string `env:"DEFAULT_SYNC_ROOT"`

	// Watch lists directories whose entries the status panel displays.
	// Env: LNXDRIVE_PATHS_WATCH (comma separated)
	Watch []string `env:"WATCH" envSeparator:","`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LNXDRIVE_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File overrides the default log file under the XDG state directory.
	// Env: LNXDRIVE_LOG_FILE
	File string `env:"FILE"`
}

// Notify holds user notification settings.
type Notify struct {
	// Desktop enables org.freedesktop.Notifications delivery.
	// Env: LNXDRIVE_NOTIFY_DESKTOP
	Desktop *bool `env:"DESKTOP"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags registered by [RegisterFlags] on fs
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
