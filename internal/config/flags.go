package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig        = "config"
	FlagBusName       = "bus-name"
	FlagBusAddress    = "bus-address"
	FlagSystemBus     = "system-bus"
	FlagLookupTimeout = "lookup-timeout"
	FlagActionTimeout = "action-timeout"
	FlagRetryInterval = "retry-interval"
	FlagSyncRoot      = "sync-root"
	FlagWatch         = "watch"
	FlagLogLevel      = "log-level"
	FlagLogFile       = "log-file"
	FlagNoDesktop     = "no-desktop-notify"
)

// RegisterFlags declares all configuration flags on fs. Callers typically
// pass the persistent flag set of the root command.
//
// Flags:
//
//	-c/--config          json file path with configs
//	--bus-name           well-known bus name of the daemon
//	--bus-address        explicit bus address to dial
//	--system-bus         use the system bus instead of the session bus
//	--lookup-timeout     timeout for status lookups (e.g., "5s")
//	--action-timeout     timeout for file actions (e.g., "30s")
//	--retry-interval     daemon probe interval while disconnected
//	--sync-root          fallback sync root directory
//	-w/--watch           directories shown in the status panel
//	--log-level          zerolog level
//	--log-file           log file path
//	--no-desktop-notify  disable desktop notifications
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagBusName, "", "Well-known bus name of the daemon")
	fs.String(FlagBusAddress, "", "Bus address to dial instead of the standard bus")
	fs.Bool(FlagSystemBus, false, "Use the system bus")
	fs.Duration(FlagLookupTimeout, 0, "Status lookup timeout (e.g., 5s)")
	fs.Duration(FlagActionTimeout, 0, "File action timeout (e.g., 30s)")
	fs.Duration(FlagRetryInterval, 0, "Daemon probe interval while disconnected")
	fs.String(FlagSyncRoot, "", "Fallback sync root directory")
	fs.StringSliceP(FlagWatch, "w", nil, "Directories shown in the status panel")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Log file path")
	fs.Bool(FlagNoDesktop, false, "Disable desktop notifications")
}

// flagValues converts flags explicitly set on fs into a partial
// [StructuredConfig]. Unset flags stay zero so they never override earlier
// sources during the merge.
func flagValues(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	str := func(name string, dst *string) {
		if err != nil || !fs.Changed(name) {
			return
		}
		*dst, err = fs.GetString(name)
	}
	dur := func(name string, dst *time.Duration) {
		if err != nil || !fs.Changed(name) {
			return
		}
		*dst, err = fs.GetDuration(name)
	}

	str(FlagConfig, &cfg.JSONFilePath)
	str(FlagBusName, &cfg.Bus.Name)
	str(FlagBusAddress, &cfg.Bus.Address)
	str(FlagSyncRoot, &cfg.Paths.DefaultSyncRoot)
	str(FlagLogLevel, &cfg.Log.Level)
	str(FlagLogFile, &cfg.Log.File)
	dur(FlagLookupTimeout, &cfg.Calls.LookupTimeout)
	dur(FlagActionTimeout, &cfg.Calls.ActionTimeout)
	dur(FlagRetryInterval, &cfg.Monitor.RetryInterval)

	if err == nil && fs.Changed(FlagWatch) {
		cfg.Paths.Watch, err = fs.GetStringSlice(FlagWatch)
	}

	if err == nil && fs.Changed(FlagSystemBus) {
		var system bool
		if system, err = fs.GetBool(FlagSystemBus); system {
			cfg.Bus.Type = "system"
		}
	}

	if err == nil && fs.Changed(FlagNoDesktop) {
		var off bool
		if off, err = fs.GetBool(FlagNoDesktop); off {
			desktop := false
			cfg.Notify.Desktop = &desktop
		}
	}

	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}
