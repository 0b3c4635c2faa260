// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StatusKind is the closed set of per-path sync states reported by the daemon.
type StatusKind int

const (
	StatusUnknown StatusKind = iota
	StatusSynced
	StatusCloudOnly
	StatusSyncing
	StatusPending
	StatusConflict
	StatusError
	StatusExcluded
)

var statusWire = map[StatusKind]string{
	StatusUnknown:   "unknown",
	StatusSynced:    "synced",
	StatusCloudOnly: "cloud-only",
	StatusSyncing:   "syncing",
	StatusPending:   "pending",
	StatusConflict:  "conflict",
	StatusError:     "error",
	StatusExcluded:  "excluded",
}

var statusLabels = map[StatusKind]string{
	StatusUnknown:   "Unknown",
	StatusSynced:    "Synced",
	StatusCloudOnly: "Cloud Only",
	StatusSyncing:   "Syncing",
	StatusPending:   "Pending",
	StatusConflict:  "Conflict",
	StatusError:     "Error",
	StatusExcluded:  "Excluded",
}

// ParseStatus converts the daemon's wire string into a [StatusKind].
// Unrecognised strings map to [StatusUnknown].
func ParseStatus(s string) StatusKind {
	for kind, wire := range statusWire {
		if wire == s {
			return kind
		}
	}
	return StatusUnknown
}

// String returns the wire representation used on the bus.
func (s StatusKind) String() string {
	if wire, ok := statusWire[s]; ok {
		return wire
	}
	return statusWire[StatusUnknown]
}

// Label returns the user-facing name shown in status columns and panels.
func (s StatusKind) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return statusLabels[StatusUnknown]
}

// Emblem returns the overlay icon name for the status. Excluded paths carry
// no emblem so they look like ordinary unmanaged files; ok is false then.
func (s StatusKind) Emblem() (name string, ok bool) {
	if s == StatusExcluded {
		return "", false
	}
	if _, known := statusWire[s]; !known {
		s = StatusUnknown
	}
	return "lnxdrive-" + statusWire[s], true
}

// StatusEntry is the last observed status of one path inside the sync root.
//
// ObservedAt records when this client observed the value; the daemon does not
// report per-file sync timestamps.
type StatusEntry struct {
	Path       string
	Status     StatusKind
	ObservedAt time.Time
}
