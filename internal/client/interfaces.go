// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for a running status
// synchronization core.
type Client interface {
	// Start launches background processing and returns immediately.
	Start(ctx context.Context)

	// WaitConnected blocks until the daemon is available or ctx ends.
	WaitConnected(ctx context.Context) error

	// Close stops background processing and releases the bus connection.
	Close() error
}

var _ Client = (*App)(nil)
