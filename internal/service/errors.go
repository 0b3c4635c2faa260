package service

import (
	"errors"
	"fmt"

	"github.com/enigmora/lnxdrive-shell/models"
)

// ErrorKind classifies a failed action for user-facing reporting.
type ErrorKind int

const (
	ErrorOther ErrorKind = iota
	ErrorInsufficientDiskSpace
	ErrorFileInUse
	ErrorInvalidPath
	ErrorNotAuthenticated
	ErrorNetwork
	ErrorTimeout
	ErrorNotRunning
	ErrorInvalidConfig
)

var (
	ErrInsufficientDiskSpace = errors.New("insufficient disk space")
	ErrFileInUse             = errors.New("file in use")
	ErrInvalidPath           = errors.New("path outside sync root")
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrNetwork               = errors.New("network error")
	ErrTimeout               = errors.New("operation timed out")
	ErrNotRunning            = errors.New("service not running")
	ErrInvalidConfig         = errors.New("invalid configuration")
	ErrActionFailed          = errors.New("action failed")

	ErrDispatcherClosed = errors.New("dispatcher closed")
	ErrUnknownStrategy  = errors.New("unknown conflict strategy")
	ErrNotResolved      = errors.New("conflict was not resolved")
)

var kindSentinels = map[ErrorKind]error{
	ErrorOther:                 ErrActionFailed,
	ErrorInsufficientDiskSpace: ErrInsufficientDiskSpace,
	ErrorFileInUse:             ErrFileInUse,
	ErrorInvalidPath:           ErrInvalidPath,
	ErrorNotAuthenticated:      ErrNotAuthenticated,
	ErrorNetwork:               ErrNetwork,
	ErrorTimeout:               ErrTimeout,
	ErrorNotRunning:            ErrNotRunning,
	ErrorInvalidConfig:         ErrInvalidConfig,
}

func (k ErrorKind) String() string {
	return k.sentinel().Error()
}

// sentinel returns the error matched by kinds, with unlisted kinds treated
// as ErrorOther.
func (k ErrorKind) sentinel() error {
	if err, ok := kindSentinels[k]; ok {
		return err
	}
	return ErrActionFailed
}

// ActionError is the typed outcome of a failed remote operation.
type ActionError struct {
	Kind    ErrorKind
	Action  models.ActionKind
	Target  string
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %s", e.Action.Title(), e.Target, msg)
	}
	return fmt.Sprintf("%s: %s", e.Action.Title(), msg)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind, so callers can write
// errors.Is(err, service.ErrFileInUse).
func (e *ActionError) Is(target error) bool {
	return e.Kind.sentinel() == target
}

// AsActionError extracts an *ActionError from err's chain.
func AsActionError(err error) (*ActionError, bool) {
	var actionErr *ActionError
	if errors.As(err, &actionErr) {
		return actionErr, true
	}
	return nil, false
}
