package adapter

import "errors"

// Errors reported by the daemon, keyed by the suffix of its D-Bus error name.
var (
	ErrNotRunning            = errors.New("daemon not running")
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrInvalidPath           = errors.New("invalid path")
	ErrInvalidConfig         = errors.New("invalid configuration")
	ErrNetwork               = errors.New("network error")
	ErrInsufficientDiskSpace = errors.New("insufficient disk space")
	ErrFileInUse             = errors.New("file in use")
)

// Transport errors.
var (
	// ErrBusUnavailable means the local bus could not be reached at all.
	ErrBusUnavailable = errors.New("bus unavailable")
	ErrTimeout        = errors.New("call timed out")
	ErrMalformedReply = errors.New("malformed reply")
	ErrRemote         = errors.New("remote error")
)
