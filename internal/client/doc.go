// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the process-level runtime of the status
// synchronization client.
//
// [App] is constructed explicitly and owned by the entrypoint. It wires the
// bus connection, the daemon proxy, the status cache and the services built
// on top of them, and runs the availability monitor and folder watcher as
// background workers until [App.Close].
package client
