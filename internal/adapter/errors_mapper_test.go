package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
)

func TestMapBusError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "file in use", err: dbus.Error{Name: "org.enigmora.LNXDrive.Error.FileInUse", Body: []any{"busy"}}, want: ErrFileInUse},
		{name: "legacy prefix", err: dbus.Error{Name: "com.enigmora.LNXDrive.Error.FileInUse"}, want: ErrFileInUse},
		{name: "disk space", err: dbus.Error{Name: "org.enigmora.LNXDrive.Error.InsufficientDiskSpace"}, want: ErrInsufficientDiskSpace},
		{name: "invalid path", err: dbus.Error{Name: "org.enigmora.LNXDrive.Error.InvalidPath"}, want: ErrInvalidPath},
		{name: "invalid config", err: dbus.Error{Name: "org.enigmora.LNXDrive.Error.InvalidConfig"}, want: ErrInvalidConfig},
		{name: "network", err: dbus.Error{Name: "org.enigmora.LNXDrive.Error.NetworkError"}, want: ErrNetwork},
		{name: "not authenticated", err: dbus.Error{Name: "org.enigmora.LNXDrive.Error.NotAuthenticated"}, want: ErrNotAuthenticated},
		{name: "daemon not running", err: dbus.Error{Name: "org.enigmora.LNXDrive.Error.NotRunning"}, want: ErrNotRunning},
		{name: "service unknown", err: dbus.Error{Name: dbusErrServiceUnknown}, want: ErrNotRunning},
		{name: "no owner", err: &dbus.Error{Name: dbusErrNameHasNoOwner}, want: ErrNotRunning},
		{name: "no reply", err: dbus.Error{Name: dbusErrNoReply}, want: ErrTimeout},
		{name: "deadline", err: context.DeadlineExceeded, want: ErrTimeout},
		{name: "unknown daemon error", err: dbus.Error{Name: "org.enigmora.LNXDrive.Error.Exploded"}, want: ErrRemote},
		{name: "plain error", err: errors.New("boom"), want: ErrRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapBusError(context.Background(), tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapBusError_Nil(t *testing.T) {
	assert.NoError(t, mapBusError(context.Background(), nil))
}

func TestMapBusError_ExpiredContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	got := mapBusError(ctx, errors.New("connection reset"))
	assert.ErrorIs(t, got, ErrTimeout)
}

func TestMapBusError_CancelledPassesThrough(t *testing.T) {
	got := mapBusError(context.Background(), context.Canceled)
	assert.ErrorIs(t, got, context.Canceled)
	assert.NotErrorIs(t, got, ErrRemote)
}

func TestMapBusError_KeepsMessage(t *testing.T) {
	got := mapBusError(context.Background(), dbus.Error{
		Name: "org.enigmora.LNXDrive.Error.FileInUse",
		Body: []any{"report.odt is open in LibreOffice"},
	})
	assert.Contains(t, got.Error(), "report.odt is open in LibreOffice")
}
