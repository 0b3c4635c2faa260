// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the LNXDrive daemon over the inter-process bus.
//
// [BusConnection] owns the bus handle, reports who owns the daemon's
// well-known name and delivers decoded push notifications. [ServiceProxy] is
// the typed binding for every daemon interface group (Files, Sync, Status,
// Settings, Auth, Conflicts, Manager). Both ship with a godbus implementation
// ([Connect], [NewDBusServiceProxy]).
//
// Error values defined in errors.go are mapped from D-Bus error names by
// mapBusError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrFileInUse], [ErrNotRunning], [ErrTimeout]).
package adapter

import (
	"context"

	"github.com/enigmora/lnxdrive-shell/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BusConnection is the live handle to the inter-process bus.
type BusConnection interface {
	// NameOwner returns the unique bus name currently owning the daemon's
	// well-known name, or "" when nobody owns it. An error is returned only
	// when the bus itself cannot be queried.
	NameOwner(ctx context.Context) (string, error)

	// WatchNameOwner registers callback to be invoked with the new owner
	// ("" when the name was released) every time ownership changes. The
	// returned function removes the registration.
	WatchNameOwner(callback func(owner string)) (unwatch func())

	// Subscribe registers callback for every push notification emitted by
	// the daemon, delivered one at a time in emission order. Registration
	// does not require the daemon to be running. The returned function
	// removes the registration.
	Subscribe(callback func(models.Event)) (unsubscribe func())

	// Close tears down signal delivery and closes the bus connection.
	Close() error
}

// FilesProxy binds the Files interface.
type FilesProxy interface {
	GetFileStatus(ctx context.Context, path string) (models.StatusKind, error)

	// GetBatchFileStatus resolves every path in a single round trip. Paths
	// the daemon omits from its reply are absent from the returned map.
	GetBatchFileStatus(ctx context.Context, paths []string) (map[string]models.StatusKind, error)

	PinFile(ctx context.Context, path string) error
	UnpinFile(ctx context.Context, path string) error
	SyncPath(ctx context.Context, path string) error
	GetConflictPaths(ctx context.Context) ([]string, error)
}

// SyncProxy binds the Sync interface.
type SyncProxy interface {
	SyncNow(ctx context.Context) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error

	// GetSyncState reads the SyncStatus, LastSyncTime and PendingChanges
	// properties in one call.
	GetSyncState(ctx context.Context) (models.SyncState, error)
}

// StatusProxy binds the Status interface.
type StatusProxy interface {
	GetQuota(ctx context.Context) (models.Quota, error)
	GetAccountInfo(ctx context.Context) (models.AccountInfo, error)
	GetConnectionStatus(ctx context.Context) (string, error)
}

// SettingsProxy binds the Settings interface. GetConfig returns the daemon's
// YAML configuration text verbatim.
type SettingsProxy interface {
	GetConfig(ctx context.Context) (string, error)
	SetConfig(ctx context.Context, text string) error
	GetSelectedFolders(ctx context.Context) ([]string, error)
	SetSelectedFolders(ctx context.Context, folders []string) error
	GetExclusionPatterns(ctx context.Context) ([]string, error)
	SetExclusionPatterns(ctx context.Context, patterns []string) error
	GetRemoteFolderTree(ctx context.Context) (string, error)
}

// AuthProxy binds the Auth interface.
type AuthProxy interface {
	StartAuth(ctx context.Context) (models.AuthSession, error)
	CompleteAuth(ctx context.Context, code, state string) (bool, error)
	IsAuthenticated(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
}

// ConflictsProxy binds the Conflicts interface. List and details are returned
// as the daemon's raw JSON documents.
type ConflictsProxy interface {
	ListConflicts(ctx context.Context) (string, error)
	GetConflictDetails(ctx context.Context, id string) (string, error)
	ResolveConflict(ctx context.Context, id, strategy string) (bool, error)
	ResolveAllConflicts(ctx context.Context, strategy string) (uint32, error)
}

// ManagerProxy binds the Manager interface.
type ManagerProxy interface {
	GetManagerState(ctx context.Context) (models.ManagerState, error)
}

// ServiceProxy is the typed binding for every daemon interface group.
// Read-only calls are bounded by the lookup timeout and mutating calls by
// the action timeout; expiry is reported as [ErrTimeout].
type ServiceProxy interface {
	FilesProxy
	SyncProxy
	StatusProxy
	SettingsProxy
	AuthProxy
	ConflictsProxy
	ManagerProxy
}

// Notifier delivers a user-visible notification.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}
