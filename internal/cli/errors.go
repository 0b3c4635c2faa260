package cli

import (
	"errors"
	"fmt"

	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/internal/app"
	"github.com/enigmora/lnxdrive-shell/internal/service"
)

// ErrActionsFailed is returned when at least one target of a file action
// failed. Failures were already printed.
var ErrActionsFailed = errors.New("some actions failed")

// userError rewrites err into the wording used by desktop notifications.
func userError(err error) error {
	if err == nil {
		return nil
	}

	if actionErr, ok := service.AsActionError(err); ok {
		title, body := service.NotificationText(actionErr)
		return fmt.Errorf("%s: %s: %w", title, body, err)
	}

	switch {
	case errors.Is(err, service.ErrNotRunning), errors.Is(err, adapter.ErrNotRunning):
		return fmt.Errorf("%s: %s: %w", app.TitleNotRunning, app.MsgNotRunning, err)
	case errors.Is(err, adapter.ErrNotAuthenticated), errors.Is(err, service.ErrNotAuthenticated):
		return fmt.Errorf("%s: %s: %w", app.TitleNotAuthenticated, app.MsgNotAuthenticated, err)
	case errors.Is(err, adapter.ErrTimeout):
		return fmt.Errorf("%s: %s: %w", app.TitleTimeout, app.MsgTimeout, err)
	}
	return err
}
