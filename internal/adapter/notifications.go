package adapter

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/enigmora/lnxdrive-shell/internal/logger"
)

const (
	notificationsName   = "org.freedesktop.Notifications"
	notificationsPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	notificationsNotify = notificationsName + ".Notify"

	notificationApp     = "LNXDrive"
	notificationIcon    = "lnxdrive"
	notificationTimeout = int32(-1)
)

type desktopNotifier struct {
	obj    dbus.BusObject
	logger *logger.Logger
}

// NewDesktopNotifier returns a [Notifier] that posts through the
// org.freedesktop.Notifications service on the session bus.
func NewDesktopNotifier(conn *dbus.Conn, logger *logger.Logger) Notifier {
	return &desktopNotifier{
		obj:    conn.Object(notificationsName, notificationsPath),
		logger: logger,
	}
}

// Notify implements [Notifier].
func (n *desktopNotifier) Notify(ctx context.Context, title, body string) error {
	call := n.obj.CallWithContext(ctx, notificationsNotify, 0,
		notificationApp,
		uint32(0),
		notificationIcon,
		title,
		body,
		[]string{},
		map[string]dbus.Variant{},
		notificationTimeout,
	)
	if call.Err != nil {
		return fmt.Errorf("desktop notification: %w", mapBusError(ctx, call.Err))
	}
	return nil
}

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that records notifications as warnings.
// It is used when desktop notifications are disabled or unreachable.
func NewLogNotifier(logger *logger.Logger) Notifier {
	return &logNotifier{logger: logger}
}

// Notify implements [Notifier].
func (n *logNotifier) Notify(_ context.Context, title, body string) error {
	n.logger.Warn().Str("title", title).Msg(body)
	return nil
}

type fallbackNotifier struct {
	primary  Notifier
	fallback Notifier
}

// NewFallbackNotifier tries primary and hands the notification to fallback
// when primary fails, so a notification is never silently lost.
func NewFallbackNotifier(primary, fallback Notifier) Notifier {
	return &fallbackNotifier{primary: primary, fallback: fallback}
}

// Notify implements [Notifier].
func (n *fallbackNotifier) Notify(ctx context.Context, title, body string) error {
	if err := n.primary.Notify(ctx, title, body); err == nil {
		return nil
	}
	return n.fallback.Notify(ctx, title, body)
}
