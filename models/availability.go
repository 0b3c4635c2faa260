package models

// AvailabilityState describes whether the remote daemon currently owns its
// well-known bus name.
type AvailabilityState int

const (
	// AvailabilityDisconnected is the degraded mode: the daemon is not on the bus.
	AvailabilityDisconnected AvailabilityState = iota
	// AvailabilityReconnecting means a recovery attempt is scheduled or running.
	AvailabilityReconnecting
	// AvailabilityConnected means the daemon owns its name and the cache is authoritative.
	AvailabilityConnected
)

func (s AvailabilityState) String() string {
	switch s {
	case AvailabilityConnected:
		return "connected"
	case AvailabilityReconnecting:
		return "reconnecting"
	default:
		return "disconnected"
	}
}

// CanTransitionTo reports whether moving from s to next is a valid edge of
// the availability state machine.
func (s AvailabilityState) CanTransitionTo(next AvailabilityState) bool {
	switch s {
	case AvailabilityConnected:
		return next == AvailabilityDisconnected
	case AvailabilityDisconnected:
		return next == AvailabilityReconnecting
	case AvailabilityReconnecting:
		return next == AvailabilityConnected
	}
	return false
}
