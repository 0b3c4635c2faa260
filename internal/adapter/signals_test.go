package adapter

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigmora/lnxdrive-shell/models"
)

const testBusName = "org.enigmora.LNXDrive"

func signal(member string, body ...any) *dbus.Signal {
	return &dbus.Signal{
		Path: "/org/enigmora/LNXDrive",
		Name: testBusName + "." + member,
		Body: body,
	}
}

func TestDecodeSignal(t *testing.T) {
	tests := []struct {
		name string
		sig  *dbus.Signal
		want models.Event
	}{
		{
			name: "file status changed",
			sig:  signal("Files.FileStatusChanged", "/home/u/OneDrive/a.txt", "syncing"),
			want: models.FileStatusChanged{Path: "/home/u/OneDrive/a.txt", Status: models.StatusSyncing},
		},
		{
			name: "unknown status string",
			sig:  signal("Files.FileStatusChanged", "/p", "teleporting"),
			want: models.FileStatusChanged{Path: "/p", Status: models.StatusUnknown},
		},
		{name: "sync started", sig: signal("Sync.SyncStarted"), want: models.SyncStarted{}},
		{
			name: "sync completed",
			sig:  signal("Sync.SyncCompleted", uint32(12), uint32(1)),
			want: models.SyncCompleted{FilesSynced: 12, Errors: 1},
		},
		{
			name: "sync progress",
			sig:  signal("Sync.SyncProgress", "b.txt", uint32(3), uint32(9)),
			want: models.SyncProgress{File: "b.txt", Current: 3, Total: 9},
		},
		{
			name: "sync conflict detected",
			sig:  signal("Sync.ConflictDetected", "/p/c.txt", "both_modified"),
			want: models.ConflictDetected{Path: "/p/c.txt", Type: "both_modified"},
		},
		{
			name: "conflict resolved",
			sig:  signal("Conflicts.ConflictResolved", "c-1", "keep_local"),
			want: models.ConflictResolved{ID: "c-1", Strategy: "keep_local"},
		},
		{
			name: "quota changed",
			sig:  signal("Status.QuotaChanged", uint64(10), uint64(100)),
			want: models.QuotaChanged{Quota: models.Quota{Used: 10, Total: 100}},
		},
		{
			name: "connection changed",
			sig:  signal("Status.ConnectionChanged", "offline"),
			want: models.ConnectionChanged{Status: "offline"},
		},
		{name: "config changed", sig: signal("Settings.ConfigChanged", "sync_root"), want: models.ConfigChanged{Key: "sync_root"}},
		{name: "auth changed", sig: signal("Auth.AuthStateChanged", "authenticated"), want: models.AuthStateChanged{State: "authenticated"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := decodeSignal(testBusName, tt.sig)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeSignal_ConflictJSON(t *testing.T) {
	sig := signal("Conflicts.ConflictDetected", `{"id":"c-9","item_id":"i-1","item_path":"/p/d.txt","detected_at":"2026-01-02T03:04:05Z"}`)

	got, ok, err := decodeSignal(testBusName, sig)
	require.NoError(t, err)
	require.True(t, ok)

	detected, isDetected := got.(models.ConflictDetected)
	require.True(t, isDetected)
	require.NotNil(t, detected.Conflict)
	assert.Equal(t, "c-9", detected.Conflict.ID)
	assert.Equal(t, "/p/d.txt", detected.Path)
}

func TestDecodeSignal_Malformed(t *testing.T) {
	_, ok, err := decodeSignal(testBusName, signal("Files.FileStatusChanged", uint32(1)))
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrMalformedReply)

	_, _, err = decodeSignal(testBusName, signal("Conflicts.ConflictDetected", "{broken"))
	assert.ErrorIs(t, err, ErrMalformedReply)
}

func TestDecodeSignal_ForeignSignal(t *testing.T) {
	_, ok, err := decodeSignal(testBusName, &dbus.Signal{Name: "org.gnome.Shell.Something"})
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = decodeSignal(testBusName, signal("Files.SomethingNew", "x"))
	assert.NoError(t, err)
	assert.False(t, ok)
}
