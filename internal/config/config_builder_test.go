package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields leave them untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Bus: Bus{Name: "a.b", ObjectPath: "/a/b"}},
		&StructuredConfig{Bus: Bus{Name: "c.d"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "c.d", cfg.Bus.Name)
	assert.Equal(t, "/a/b", cfg.Bus.ObjectPath)
}

func TestBuild_RejectsUnknownBusType(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Bus: Bus{Type: "user"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidBusConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_CanonicalValues(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "org.enigmora.LNXDrive", cfg.Bus.Name)
	assert.Equal(t, "/org/enigmora/LNXDrive", cfg.Bus.ObjectPath)
	assert.Equal(t, "session", cfg.Bus.Type)
	assert.Equal(t, 5*time.Second, cfg.Calls.LookupTimeout)
	assert.Equal(t, 30*time.Second, cfg.Calls.ActionTimeout)
	assert.Equal(t, 5*time.Second, cfg.Monitor.RetryInterval)
	assert.NotEmpty(t, cfg.Paths.DefaultSyncRoot)
	require.NotNil(t, cfg.Notify.Desktop)
	assert.True(t, *cfg.Notify.Desktop)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsPrefixedVars(t *testing.T) {
	t.Setenv("LNXDRIVE_BUS_NAME", "org.example.Drive")
	t.Setenv("LNXDRIVE_CALLS_ACTION_TIMEOUT", "45s")
	t.Setenv("LNXDRIVE_PATHS_WATCH", "/a,/b")
	t.Setenv("LNXDRIVE_NOTIFY_DESKTOP", "false")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	got := b.configs[0]
	assert.Equal(t, "org.example.Drive", got.Bus.Name)
	assert.Equal(t, 45*time.Second, got.Calls.ActionTimeout)
	assert.Equal(t, []string{"/a", "/b"}, got.Paths.Watch)
	require.NotNil(t, got.Notify.Desktop)
	assert.False(t, *got.Notify.Desktop)
}

func TestWithEnv_IgnoresUnprefixedVars(t *testing.T) {
	t.Setenv("BUS_NAME", "org.example.Other")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Empty(t, b.configs[0].Bus.Name)
}

func TestWithEnv_SetsErrorOnBadDuration(t *testing.T) {
	t.Setenv("LNXDRIVE_MONITOR_RETRY_INTERVAL", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilFlagSet(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithFlags_OnlyChangedFlags(t *testing.T) {
	fs := newFlagSet(t, "--bus-name", "org.example.Flag", "--system-bus", "-w", "/x", "--no-desktop-notify")

	b := newConfigBuilder()
	b.withFlags(fs)

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	got := b.configs[0]
	assert.Equal(t, "org.example.Flag", got.Bus.Name)
	assert.Equal(t, "system", got.Bus.Type)
	assert.Equal(t, []string{"/x"}, got.Paths.Watch)
	assert.Zero(t, got.Calls.LookupTimeout)
	require.NotNil(t, got.Notify.Desktop)
	assert.False(t, *got.Notify.Desktop)
}

func TestWithFlags_OverrideEnv(t *testing.T) {
	t.Setenv("LNXDRIVE_CALLS_LOOKUP_TIMEOUT", "2s")
	fs := newFlagSet(t, "--lookup-timeout", "3s")

	cfg, err := newConfigBuilder().withDefaults().withEnv().withFlags(fs).build()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Calls.LookupTimeout)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"bus":     map[string]any{"name": "org.example.Json"},
		"calls":   map[string]any{"lookup_timeout": "1s", "action_timeout": "1m"},
		"monitor": map[string]any{"retry_interval": "250ms"},
		"paths":   map[string]any{"watch": []string{"/srv/drive"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	got := b.configs[1]
	assert.Equal(t, "org.example.Json", got.Bus.Name)
	assert.Equal(t, time.Second, got.Calls.LookupTimeout)
	assert.Equal(t, time.Minute, got.Calls.ActionTimeout)
	assert.Equal(t, 250*time.Millisecond, got.Monitor.RetryInterval)
	assert.Equal(t, []string{"/srv/drive"}, got.Paths.Watch)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_FileWinsOverFlags verifies the JSON file is the last source.
func TestWithJSON_FileWinsOverFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "debug"}})
	fs := newFlagSet(t, "-c", path, "--log-level", "warn")

	cfg, err := newConfigBuilder().withDefaults().withEnv().withFlags(fs).withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"1m30s"`, want: 90 * time.Second},
		{name: "number nanoseconds", in: `1000000000`, want: time.Second},
		{name: "bad string", in: `"later"`, wantErr: true},
		{name: "bad type", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(5 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"5s"`, string(data))
}
