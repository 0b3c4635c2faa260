package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientBus holds the resolved bus coordinates.
type ClientBus struct {
	Name       string
	ObjectPath string
	System     bool
	Address    string
}

// Interface returns the fully-qualified name of a daemon interface group,
// e.g. Interface("Files") == "org.enigmora.LNXDrive.Files".
func (b ClientBus) Interface(group string) string {
	return b.Name + "." + group
}

// ClientCalls holds per-call timeouts.
type ClientCalls struct {
	LookupTimeout time.Duration
	ActionTimeout time.Duration
}

// ClientMonitor holds availability monitor settings.
type ClientMonitor struct {
	RetryInterval time.Duration
}

// ClientPaths holds local filesystem settings.
type ClientPaths struct {
	DefaultSyncRoot string
	Watch           []string
}

// ClientLog holds logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the runtime configuration view consumed by the core and
// its UI surfaces, assembled from [StructuredConfig].
type ClientConfig struct {
	Bus            ClientBus
	Calls          ClientCalls
	Monitor        ClientMonitor
	Paths          ClientPaths
	Log            ClientLog
	DesktopNotify  bool
	ConfigFilePath string
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	desktop := cfg.Notify.Desktop == nil || *cfg.Notify.Desktop

	return &ClientConfig{
		Bus: ClientBus{
			Name:       cfg.Bus.Name,
			ObjectPath: cfg.Bus.ObjectPath,
			System:     cfg.Bus.Type == "system",
			Address:    cfg.Bus.Address,
		},
		Calls: ClientCalls{
			LookupTimeout: cfg.Calls.LookupTimeout,
			ActionTimeout: cfg.Calls.ActionTimeout,
		},
		Monitor: ClientMonitor{RetryInterval: cfg.Monitor.RetryInterval},
		Paths: ClientPaths{
			DefaultSyncRoot: cfg.Paths.DefaultSyncRoot,
			Watch:           cfg.Paths.Watch,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
		DesktopNotify:  desktop,
		ConfigFilePath: cfg.JSONFilePath,
	}
}
