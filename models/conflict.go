// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path"
	"strings"
)

// ConflictStrategy is a resolution strategy understood by the daemon.
type ConflictStrategy string

const (
	KeepLocal  ConflictStrategy = "keep_local"
	KeepRemote ConflictStrategy = "keep_remote"
	KeepBoth   ConflictStrategy = "keep_both"
)

// Valid reports whether s is one of the strategies the daemon accepts.
func (s ConflictStrategy) Valid() bool {
	switch s {
	case KeepLocal, KeepRemote, KeepBoth:
		return true
	}
	return false
}

// ConflictVersion describes one side of a conflict.
type ConflictVersion struct {
	Hash       string `json:"hash"`
	SizeBytes  uint64 `json:"size_bytes"`
	ModifiedAt string `json:"modified_at"`
}

// Conflict is an unresolved divergence between the local and remote copy of
// an item, as listed by the Conflicts interface.
type Conflict struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"item_id"`
	ItemPath      string          `json:"item_path"`
	DetectedAt    string          `json:"detected_at"`
	LocalVersion  ConflictVersion `json:"local_version"`
	RemoteVersion ConflictVersion `json:"remote_version"`
}

// Valid reports whether the required identifying fields are present.
func (c Conflict) Valid() bool {
	return c.ID != "" && c.ItemID != "" && c.DetectedAt != ""
}

// FileName returns the last path component of the conflicting item.
func (c Conflict) FileName() string {
	if c.ItemPath == "" {
		return "unknown"
	}
	return path.Base(strings.TrimRight(c.ItemPath, "/"))
}
