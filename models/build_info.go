// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoUnset = "N/A"

// BuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags and shown by the version command.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo]; empty values are reported as "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orUnset := func(s string) string {
		if s == "" {
			return buildInfoUnset
		}
		return s
	}
	return BuildInfo{
		version: orUnset(version),
		date:    orUnset(date),
		commit:  orUnset(commit),
	}
}

func (b BuildInfo) Version() string { return b.version }
func (b BuildInfo) Date() string    { return b.date }
func (b BuildInfo) Commit() string  { return b.commit }

func (b BuildInfo) String() string {
	return fmt.Sprintf("lnxdrive-shell %s (commit %s, built %s)", b.version, b.commit, b.date)
}
