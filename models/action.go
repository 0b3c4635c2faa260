// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ActionKind enumerates user-triggered mutating operations.
type ActionKind int

const (
	ActionPin ActionKind = iota + 1
	ActionUnpin
	ActionForceSync
	ActionResolveConflict
	ActionResolveAllConflicts
	ActionSyncNow
	ActionPauseSync
	ActionResumeSync
	ActionSetConfig
	ActionLogout
)

var actionTitles = map[ActionKind]string{
	ActionPin:                 "Keep Available Offline",
	ActionUnpin:               "Free Up Space",
	ActionForceSync:           "Sync Now",
	ActionResolveConflict:     "Resolve Conflict",
	ActionResolveAllConflicts: "Resolve All Conflicts",
	ActionSyncNow:             "Sync Now",
	ActionPauseSync:           "Pause Sync",
	ActionResumeSync:          "Resume Sync",
	ActionSetConfig:           "Save Settings",
	ActionLogout:              "Sign Out",
}

// Title is the user-facing action name used in menus and notifications.
func (k ActionKind) Title() string {
	if t, ok := actionTitles[k]; ok {
		return t
	}
	return "Unknown Action"
}

// TargetsPath reports whether the action's target is a filesystem path that
// must lie inside the sync root.
func (k ActionKind) TargetsPath() bool {
	switch k {
	case ActionPin, ActionUnpin, ActionForceSync:
		return true
	}
	return false
}

// ActionState is the lifecycle stage of a [PendingAction].
type ActionState int

const (
	ActionInFlight ActionState = iota
	ActionSucceeded
	ActionFailed
)

func (s ActionState) String() string {
	switch s {
	case ActionSucceeded:
		return "succeeded"
	case ActionFailed:
		return "failed"
	default:
		return "in-flight"
	}
}

// ActionRequest describes one dispatcher invocation. Targets fan out into one
// remote call each. Argument carries the strategy for conflict resolution or
// the config text for ActionSetConfig.
type ActionRequest struct {
	Kind     ActionKind
	Targets  []string
	Argument string
}

// PendingAction tracks a single in-flight remote call. It is transient and
// never persisted.
type PendingAction struct {
	ID        string
	Kind      ActionKind
	Target    string
	State     ActionState
	StartedAt time.Time
}

// ActionResult is the terminal outcome of one [PendingAction]. Err is nil on
// success.
type ActionResult struct {
	Action PendingAction
	Err    error
}
