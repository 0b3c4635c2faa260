package models

// Event is a push notification received from the daemon. Concrete types are
// delivered to subscribers in the order the daemon emitted them.
type Event interface {
	isEvent()
}

// FileStatusChanged is emitted by the Files interface when a path changes state.
type FileStatusChanged struct {
	Path   string
	Status StatusKind
}

// SyncStarted is emitted when a sync cycle begins.
type SyncStarted struct{}

// SyncCompleted is emitted when a sync cycle ends.
type SyncCompleted struct {
	FilesSynced uint32
	Errors      uint32
}

// SyncProgress reports per-file progress of the running sync cycle.
type SyncProgress struct {
	File    string
	Current uint32
	Total   uint32
}

// ConflictDetected is emitted by the Sync interface (Path and Type set) or by
// the Conflicts interface (Conflict set, decoded from its JSON payload).
type ConflictDetected struct {
	Path     string
	Type     string
	Conflict *Conflict
}

// ConflictResolved is emitted after a conflict was resolved.
type ConflictResolved struct {
	ID       string
	Strategy string
}

// QuotaChanged reports a new storage usage.
type QuotaChanged struct {
	Quota Quota
}

// ConnectionChanged reports the daemon's connectivity to the cloud provider.
type ConnectionChanged struct {
	Status string
}

// ConfigChanged names the settings key that changed.
type ConfigChanged struct {
	Key string
}

// AuthStateChanged reports a new authentication state, e.g. "authenticated".
type AuthStateChanged struct {
	State string
}

func (FileStatusChanged) isEvent() {}
func (SyncStarted) isEvent()       {}
func (SyncCompleted) isEvent()     {}
func (SyncProgress) isEvent()      {}
func (ConflictDetected) isEvent()  {}
func (ConflictResolved) isEvent()  {}
func (QuotaChanged) isEvent()      {}
func (ConnectionChanged) isEvent() {}
func (ConfigChanged) isEvent()     {}
func (AuthStateChanged) isEvent()  {}
