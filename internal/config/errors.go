package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBusConfigs indicates an unusable bus name, object path or
	// bus type.
	ErrInvalidBusConfigs = errors.New("invalid bus configuration")
	// ErrInvalidCallConfigs indicates a non-positive call timeout.
	ErrInvalidCallConfigs = errors.New("invalid call timeout configuration")
	// ErrInvalidMonitorConfigs indicates a non-positive retry interval.
	ErrInvalidMonitorConfigs = errors.New("invalid monitor configuration")
	// ErrInvalidPathConfigs indicates a missing fallback sync root.
	ErrInvalidPathConfigs = errors.New("invalid path configuration")
)
