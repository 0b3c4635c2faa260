package cli

const (
	MsgRootShort = "LNXDrive desktop status client"
	MsgRootLong  = `lnxdrive-shell shows the synchronization status of files managed by the
LNXDrive daemon and runs file actions (keep offline, free up space, sync) over
the session bus.

Without a command it opens the interactive status panel.`

	MsgStatusShort     = "Show the sync status of paths"
	MsgPinShort        = "Keep files available offline"
	MsgUnpinShort      = "Free up space by making files cloud-only"
	MsgSyncShort       = "Sync paths now, or everything when no path is given"
	MsgPauseShort      = "Pause synchronization"
	MsgResumeShort     = "Resume synchronization"
	MsgQuotaShort      = "Show storage usage"
	MsgAccountShort    = "Show account and sync state"
	MsgConflictsShort  = "List and resolve sync conflicts"
	MsgAuthShort       = "Sign in and out of the cloud account"
	MsgConfigShort     = "Read or replace the daemon configuration"
	MsgFoldersShort    = "Manage selective sync folders"
	MsgExclusionsShort = "Manage exclusion patterns"
	MsgMonitorShort    = "Open the interactive status panel"
	MsgVersionShort    = "Print build information"

	MsgNotManaged  = "(not in sync folder)"
	MsgSignedIn    = "Signed in"
	MsgNotSignedIn = "Not signed in"
	MsgOpenURL     = "Open this URL in a browser to sign in:"
	MsgURLCopied   = "(URL copied to clipboard)"
	MsgThenRun     = "Then run: lnxdrive-shell auth complete CODE STATE"
	MsgNoConflicts = "No conflicts"
)
