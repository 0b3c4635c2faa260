// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// lnxdrive-shell surfaces.
//
// Title* and Msg* constants are the user-visible notification texts reported
// when an action fails. Keeping them in one place ensures every surface
// reports an error with identical wording.
package app

const (
	// TitleInsufficientDiskSpace is shown when pinning needs more local space.
	TitleInsufficientDiskSpace = "Not Enough Disk Space"
	// MsgInsufficientDiskSpace explains how to recover from a full disk.
	MsgInsufficientDiskSpace = "There is not enough disk space to complete this operation. Free up some space and try again."

	// TitleFileInUse is shown when a file cannot be dehydrated.
	TitleFileInUse = "File In Use"
	// MsgFileInUse asks the user to close the file first.
	MsgFileInUse = "The file is currently in use by another process. Close the file and try again."

	// TitleInvalidPath is shown for paths outside the sync root.
	TitleInvalidPath = "File Not in Sync Folder"
	// MsgInvalidPath explains the sync root boundary.
	MsgInvalidPath = "This file is not inside the LNXDrive sync folder."

	// TitleNotRunning is shown when the daemon is not on the bus.
	TitleNotRunning = "Service Not Running"
	// MsgNotRunning asks the user to start the daemon.
	MsgNotRunning = "The LNXDrive service is not running. Start it and try again."

	// TitleNotAuthenticated is shown when the account is signed out.
	TitleNotAuthenticated = "Not Signed In"
	// MsgNotAuthenticated asks the user to sign in.
	MsgNotAuthenticated = "Sign in to your LNXDrive account to continue."

	// TitleNetworkError is shown when the daemon cannot reach the cloud.
	TitleNetworkError = "Network Error"
	// MsgNetworkError asks the user to check connectivity.
	MsgNetworkError = "LNXDrive could not reach the cloud service. Check your connection and try again."

	// TitleTimeout is shown when the daemon did not answer in time.
	TitleTimeout = "Operation Timed Out"
	// MsgTimeout explains that the operation may still finish.
	MsgTimeout = "The LNXDrive service did not respond in time. The operation may still complete in the background."

	// TitleInvalidConfig is shown when the daemon rejects settings.
	TitleInvalidConfig = "Invalid Configuration"
	// MsgInvalidConfig asks the user to review the settings.
	MsgInvalidConfig = "The LNXDrive service rejected the configuration. Review your settings and try again."

	// TitleOperationFailed is the generic failure title.
	TitleOperationFailed = "LNXDrive: Operation Failed"
	// MsgOperationFailedFormat takes the action title and the remote message.
	MsgOperationFailedFormat = "The \"%s\" operation failed: %s"

	// MenuServiceNotRunning labels the disabled menu entry in degraded mode.
	MenuServiceNotRunning = "LNXDrive: Service Not Running"
	// MenuSyncFolder labels the background action on a directory.
	MenuSyncFolder = "Sync This Folder"
)
