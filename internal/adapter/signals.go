package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/enigmora/lnxdrive-shell/models"
)

// Interface groups exported by the daemon object.
const (
	GroupFiles     = "Files"
	GroupSync      = "Sync"
	GroupStatus    = "Status"
	GroupSettings  = "Settings"
	GroupAuth      = "Auth"
	GroupConflicts = "Conflicts"
	GroupManager   = "Manager"
)

var signalGroups = []string{GroupFiles, GroupSync, GroupStatus, GroupSettings, GroupAuth, GroupConflicts}

// decodeSignal converts a daemon signal into a typed event. busName is the
// daemon's well-known name from which interface names are derived. ok is
// false for signals that do not belong to the daemon.
func decodeSignal(busName string, sig *dbus.Signal) (event models.Event, ok bool, err error) {
	prefix := busName + "."
	if !strings.HasPrefix(sig.Name, prefix) {
		return nil, false, nil
	}

	member := strings.TrimPrefix(sig.Name, prefix)
	switch member {
	case GroupFiles + ".FileStatusChanged":
		var path, status string
		if err := dbus.Store(sig.Body, &path, &status); err != nil {
			return nil, true, malformed(member, err)
		}
		return models.FileStatusChanged{Path: path, Status: models.ParseStatus(status)}, true, nil

	case GroupSync + ".SyncStarted":
		return models.SyncStarted{}, true, nil

	case GroupSync + ".SyncCompleted":
		var e models.SyncCompleted
		if err := dbus.Store(sig.Body, &e.FilesSynced, &e.Errors); err != nil {
			return nil, true, malformed(member, err)
		}
		return e, true, nil

	case GroupSync + ".SyncProgress":
		var e models.SyncProgress
		if err := dbus.Store(sig.Body, &e.File, &e.Current, &e.Total); err != nil {
			return nil, true, malformed(member, err)
		}
		return e, true, nil

	case GroupSync + ".ConflictDetected":
		var e models.ConflictDetected
		if err := dbus.Store(sig.Body, &e.Path, &e.Type); err != nil {
			return nil, true, malformed(member, err)
		}
		return e, true, nil

	case GroupConflicts + ".ConflictDetected":
		var raw string
		if err := dbus.Store(sig.Body, &raw); err != nil {
			return nil, true, malformed(member, err)
		}
		var conflict models.Conflict
		if err := json.Unmarshal([]byte(raw), &conflict); err != nil {
			return nil, true, malformed(member, err)
		}
		return models.ConflictDetected{Path: conflict.ItemPath, Conflict: &conflict}, true, nil

	case GroupConflicts + ".ConflictResolved":
		var e models.ConflictResolved
		if err := dbus.Store(sig.Body, &e.ID, &e.Strategy); err != nil {
			return nil, true, malformed(member, err)
		}
		return e, true, nil

	case GroupStatus + ".QuotaChanged":
		var q models.Quota
		if err := dbus.Store(sig.Body, &q.Used, &q.Total); err != nil {
			return nil, true, malformed(member, err)
		}
		return models.QuotaChanged{Quota: q}, true, nil

	case GroupStatus + ".ConnectionChanged":
		var e models.ConnectionChanged
		if err := dbus.Store(sig.Body, &e.Status); err != nil {
			return nil, true, malformed(member, err)
		}
		return e, true, nil

	case GroupSettings + ".ConfigChanged":
		var e models.ConfigChanged
		if err := dbus.Store(sig.Body, &e.Key); err != nil {
			return nil, true, malformed(member, err)
		}
		return e, true, nil

	case GroupAuth + ".AuthStateChanged":
		var e models.AuthStateChanged
		if err := dbus.Store(sig.Body, &e.State); err != nil {
			return nil, true, malformed(member, err)
		}
		return e, true, nil
	}

	return nil, false, nil
}

func malformed(member string, err error) error {
	return fmt.Errorf("%w: signal %s: %v", ErrMalformedReply, member, err)
}
