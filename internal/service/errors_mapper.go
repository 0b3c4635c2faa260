// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/models"
)

// mapAdapterError translates the adapter's transport error into a typed
// action error. Malformed replies and unrecognised failures become
// ErrorOther carrying the remote message.
func mapAdapterError(action models.ActionKind, target string, err error) error {
	if err == nil {
		return nil
	}

	if existing, ok := AsActionError(err); ok {
		return existing
	}

	kind := ErrorOther
	switch {
	case errors.Is(err, adapter.ErrInsufficientDiskSpace):
		kind = ErrorInsufficientDiskSpace
	case errors.Is(err, adapter.ErrFileInUse):
		kind = ErrorFileInUse
	case errors.Is(err, adapter.ErrInvalidPath):
		kind = ErrorInvalidPath
	case errors.Is(err, adapter.ErrNotAuthenticated):
		kind = ErrorNotAuthenticated
	case errors.Is(err, adapter.ErrNetwork):
		kind = ErrorNetwork
	case errors.Is(err, adapter.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		kind = ErrorTimeout
	case errors.Is(err, adapter.ErrNotRunning), errors.Is(err, adapter.ErrBusUnavailable):
		kind = ErrorNotRunning
	case errors.Is(err, adapter.ErrInvalidConfig):
		kind = ErrorInvalidConfig
	}

	return &ActionError{
		Kind:    kind,
		Action:  action,
		Target:  target,
		Message: extractBody(err),
		Err:     err,
	}
}

// extractBody extracts the remote message from an error of the form
// "Files.UnpinFile: file in use: <message>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

func refused(kind ErrorKind, action models.ActionKind, target string) error {
	return &ActionError{Kind: kind, Action: action, Target: target, Err: kind.sentinel()}
}
