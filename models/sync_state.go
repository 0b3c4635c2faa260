package models

import "time"

// SyncState mirrors the Sync interface properties.
type SyncState struct {
	Status         string
	LastSyncTime   time.Time
	PendingChanges uint32
}

// Paused reports whether the daemon is paused.
func (s SyncState) Paused() bool {
	return s.Status == "paused"
}

// ManagerState mirrors the Manager interface.
type ManagerState struct {
	Status  string
	Version string
}
