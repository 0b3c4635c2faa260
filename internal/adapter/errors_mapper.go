package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	dbusErrServiceUnknown = "org.freedesktop.DBus.Error.ServiceUnknown"
	dbusErrNameHasNoOwner = "org.freedesktop.DBus.Error.NameHasNoOwner"
	dbusErrNoReply        = "org.freedesktop.DBus.Error.NoReply"
	dbusErrTimeout        = "org.freedesktop.DBus.Error.Timeout"
	dbusErrTimedOut       = "org.freedesktop.DBus.Error.TimedOut"
)

var daemonErrors = map[string]error{
	"NotRunning":            ErrNotRunning,
	"NotAuthenticated":      ErrNotAuthenticated,
	"InvalidPath":           ErrInvalidPath,
	"InvalidConfig":         ErrInvalidConfig,
	"NetworkError":          ErrNetwork,
	"InsufficientDiskSpace": ErrInsufficientDiskSpace,
	"FileInUse":             ErrFileInUse,
}

// mapBusError translates a failed call into one of the package sentinels.
// Daemon errors are matched on the name suffix after ".Error." so both the
// org. and com. prefixed names resolve identically.
func mapBusError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	name, body, ok := busErrorName(err)
	if !ok {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}

	switch name {
	case dbusErrServiceUnknown, dbusErrNameHasNoOwner:
		return fmt.Errorf("%w: %s", ErrNotRunning, body)
	case dbusErrNoReply, dbusErrTimeout, dbusErrTimedOut:
		return fmt.Errorf("%w: %s", ErrTimeout, body)
	}

	if i := strings.LastIndex(name, ".Error."); i >= 0 {
		if sentinel, found := daemonErrors[name[i+len(".Error."):]]; found {
			return fmt.Errorf("%w: %s", sentinel, body)
		}
	}

	return fmt.Errorf("%w: %s: %s", ErrRemote, name, body)
}

func busErrorName(err error) (name, body string, ok bool) {
	var value dbus.Error
	if errors.As(err, &value) {
		return value.Name, value.Error(), true
	}

	var ptr *dbus.Error
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Name, ptr.Error(), true
	}

	return "", "", false
}
