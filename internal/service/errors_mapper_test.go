package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/internal/app"
	"github.com/enigmora/lnxdrive-shell/models"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind ErrorKind
		wantIs   error
	}{
		{"disk space", adapter.ErrInsufficientDiskSpace, ErrorInsufficientDiskSpace, ErrInsufficientDiskSpace},
		{"file in use", adapter.ErrFileInUse, ErrorFileInUse, ErrFileInUse},
		{"invalid path", adapter.ErrInvalidPath, ErrorInvalidPath, ErrInvalidPath},
		{"not authenticated", adapter.ErrNotAuthenticated, ErrorNotAuthenticated, ErrNotAuthenticated},
		{"network", adapter.ErrNetwork, ErrorNetwork, ErrNetwork},
		{"timeout", adapter.ErrTimeout, ErrorTimeout, ErrTimeout},
		{"deadline", context.DeadlineExceeded, ErrorTimeout, ErrTimeout},
		{"not running", adapter.ErrNotRunning, ErrorNotRunning, ErrNotRunning},
		{"bus gone", adapter.ErrBusUnavailable, ErrorNotRunning, ErrNotRunning},
		{"invalid config", adapter.ErrInvalidConfig, ErrorInvalidConfig, ErrInvalidConfig},
		{"malformed reply", adapter.ErrMalformedReply, ErrorOther, ErrActionFailed},
		{"remote", adapter.ErrRemote, ErrorOther, ErrActionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("Files.PinFile: %w: details", tt.err)

			err := mapAdapterError(models.ActionPin, "/x", wrapped)

			actionErr, ok := AsActionError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, actionErr.Kind)
			assert.Equal(t, "details", actionErr.Message)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMapAdapterError_NilAndExisting(t *testing.T) {
	assert.NoError(t, mapAdapterError(models.ActionPin, "/x", nil))

	existing := &ActionError{Kind: ErrorFileInUse, Action: models.ActionUnpin}
	assert.Same(t, existing, mapAdapterError(models.ActionPin, "/x", fmt.Errorf("wrapped: %w", existing)))
}

func TestActionError_Message(t *testing.T) {
	err := &ActionError{Kind: ErrorFileInUse, Action: models.ActionUnpin, Target: "/a.txt"}
	assert.Equal(t, "Free Up Space /a.txt: file in use", err.Error())

	err = &ActionError{Kind: ErrorOther, Action: models.ActionSyncNow, Message: "boom"}
	assert.Equal(t, "Sync Now: boom", err.Error())
	assert.False(t, errors.Is(err, ErrFileInUse))
}

func TestNotificationText(t *testing.T) {
	title, body := NotificationText(&ActionError{Kind: ErrorFileInUse})
	assert.Equal(t, app.TitleFileInUse, title)
	assert.Equal(t, app.MsgFileInUse, body)

	title, body = NotificationText(&ActionError{Kind: ErrorOther, Action: models.ActionPauseSync, Message: "daemon busy"})
	assert.Equal(t, app.TitleOperationFailed, title)
	assert.Equal(t, `The "Pause Sync" operation failed: daemon busy`, body)

	_, body = NotificationText(&ActionError{Kind: ErrorOther, Action: models.ActionSyncNow})
	assert.Equal(t, `The "Sync Now" operation failed: action failed`, body)
}

func TestErrorKind_UnlistedKindReadsAsFailure(t *testing.T) {
	kind := ErrorKind(42)

	assert.Equal(t, ErrActionFailed.Error(), kind.String())
	assert.ErrorIs(t, &ActionError{Kind: kind}, ErrActionFailed)
	assert.Equal(t, ErrFileInUse.Error(), ErrorFileInUse.String())
}
