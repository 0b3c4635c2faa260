package adapter

import (
	"bytes"
	"context"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigmora/lnxdrive-shell/internal/logger"
)

func TestDesktopNotifier_CallsNotify(t *testing.T) {
	obj := newFakeBusObject()
	obj.reply(notificationsNotify, uint32(7))
	n := &desktopNotifier{obj: obj, logger: logger.Nop()}

	require.NoError(t, n.Notify(context.Background(), "File In Use", "Close it first."))

	require.Equal(t, []string{notificationsNotify}, obj.methods)
	args := obj.args[0]
	require.Len(t, args, 8)
	assert.Equal(t, "LNXDrive", args[0])
	assert.Equal(t, "File In Use", args[3])
	assert.Equal(t, "Close it first.", args[4])
}

func TestFallbackNotifier_UsesFallbackOnFailure(t *testing.T) {
	obj := newFakeBusObject()
	obj.fail(notificationsNotify, dbus.Error{Name: dbusErrServiceUnknown})

	var buf bytes.Buffer
	l := logger.NewLogger("test", "debug")
	l.Logger = l.Output(&buf)

	n := NewFallbackNotifier(&desktopNotifier{obj: obj, logger: l}, NewLogNotifier(l))
	require.NoError(t, n.Notify(context.Background(), "Network Error", "Check your connection."))

	assert.Contains(t, buf.String(), "Network Error")
	assert.Contains(t, buf.String(), "Check your connection.")
}
