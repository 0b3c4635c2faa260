package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestNewClientConfig_FromDefaults(t *testing.T) {
	cfg := validClientConfig()

	assert.Equal(t, "org.enigmora.LNXDrive.Files", cfg.Bus.Interface("Files"))
	assert.Equal(t, "org.enigmora.LNXDrive.Settings", cfg.Bus.Interface("Settings"))
	assert.False(t, cfg.Bus.System)
	assert.True(t, cfg.DesktopNotify)
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "empty bus name", mutate: func(c *ClientConfig) { c.Bus.Name = "" }, wantErr: ErrInvalidBusConfigs},
		{name: "bus name without dot", mutate: func(c *ClientConfig) { c.Bus.Name = "lnxdrive" }, wantErr: ErrInvalidBusConfigs},
		{name: "relative object path", mutate: func(c *ClientConfig) { c.Bus.ObjectPath = "org/enigmora" }, wantErr: ErrInvalidBusConfigs},
		{name: "unclean object path", mutate: func(c *ClientConfig) { c.Bus.ObjectPath = "/org//x/" }, wantErr: ErrInvalidBusConfigs},
		{name: "zero lookup timeout", mutate: func(c *ClientConfig) { c.Calls.LookupTimeout = 0 }, wantErr: ErrInvalidCallConfigs},
		{name: "negative action timeout", mutate: func(c *ClientConfig) { c.Calls.ActionTimeout = -time.Second }, wantErr: ErrInvalidCallConfigs},
		{name: "zero retry interval", mutate: func(c *ClientConfig) { c.Monitor.RetryInterval = 0 }, wantErr: ErrInvalidMonitorConfigs},
		{name: "empty sync root", mutate: func(c *ClientConfig) { c.Paths.DefaultSyncRoot = "" }, wantErr: ErrInvalidPathConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_NilFlagSet(t *testing.T) {
	t.Setenv("LNXDRIVE_BUS_OBJECT_PATH", "/org/example/Drive")

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "/org/example/Drive", cfg.Bus.ObjectPath)
	assert.Equal(t, DefaultBusName, cfg.Bus.Name)
}
