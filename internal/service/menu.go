package service

import (
	"github.com/enigmora/lnxdrive-shell/internal/app"
	"github.com/enigmora/lnxdrive-shell/models"
)

// MenuItem is one entry offered for a file selection. Request targets only
// the selected paths the action applies to.
type MenuItem struct {
	Label   string
	Tooltip string
	Enabled bool
	Request models.ActionRequest
}

// AvailableActions computes the file actions offered for selection.
// Unmanaged paths are dropped from the selection and nothing is offered when
// none remain; while the daemon is away a single disabled entry is returned.
func AvailableActions(status *StatusService, avail AvailabilityReader, selection []string) []MenuItem {
	selection = managedOnly(status, selection)
	if len(selection) == 0 {
		return nil
	}

	if avail.State() != models.AvailabilityConnected {
		return []MenuItem{{
			Label:   app.MenuServiceNotRunning,
			Tooltip: "The LNXDrive synchronization service is not running",
		}}
	}

	var cloudOnly, synced []string
	for _, p := range selection {
		switch s, _ := status.GetStatus(p); s {
		case models.StatusCloudOnly:
			cloudOnly = append(cloudOnly, p)
		case models.StatusSynced:
			synced = append(synced, p)
		}
	}

	items := make([]MenuItem, 0, 3)
	if len(cloudOnly) > 0 {
		items = append(items, MenuItem{
			Label:   models.ActionPin.Title(),
			Tooltip: "Download selected cloud-only files and keep them available offline",
			Enabled: true,
			Request: models.ActionRequest{Kind: models.ActionPin, Targets: cloudOnly},
		})
	}
	if len(synced) > 0 {
		items = append(items, MenuItem{
			Label:   models.ActionUnpin.Title(),
			Tooltip: "Convert selected files to cloud-only placeholders to free disk space",
			Enabled: true,
			Request: models.ActionRequest{Kind: models.ActionUnpin, Targets: synced},
		})
	}
	items = append(items, MenuItem{
		Label:   models.ActionForceSync.Title(),
		Tooltip: "Immediately synchronize selected files",
		Enabled: true,
		Request: models.ActionRequest{Kind: models.ActionForceSync, Targets: selection},
	})

	return items
}

func managedOnly(status *StatusService, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if status.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// BackgroundActions computes the actions offered for the folder being
// browsed.
func BackgroundActions(status *StatusService, avail AvailabilityReader, folder string) []MenuItem {
	if !status.Contains(folder) || avail.State() != models.AvailabilityConnected {
		return nil
	}

	return []MenuItem{{
		Label:   app.MenuSyncFolder,
		Tooltip: "Immediately synchronize this folder",
		Enabled: true,
		Request: models.ActionRequest{Kind: models.ActionForceSync, Targets: []string{folder}},
	}}
}
