package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	DefaultBusName       = "org.enigmora.LNXDrive"
	DefaultObjectPath    = "/org/enigmora/LNXDrive"
	DefaultLookupTimeout = 5 * time.Second
	DefaultActionTimeout = 30 * time.Second
	DefaultRetryInterval = 5 * time.Second
)

func defaultConfig() *StructuredConfig {
	desktop := true
	return &StructuredConfig{
		Bus: Bus{
			Name:       DefaultBusName,
			ObjectPath: DefaultObjectPath,
			Type:       "session",
		},
		Calls: Calls{
			LookupTimeout: DefaultLookupTimeout,
			ActionTimeout: DefaultActionTimeout,
		},
		Monitor: Monitor{RetryInterval: DefaultRetryInterval},
		Paths:   Paths{DefaultSyncRoot: filepath.Join(xdg.Home, "OneDrive")},
		Log:     Log{Level: "info"},
		Notify:  Notify{Desktop: &desktop},
	}
}
