package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/enigmora/lnxdrive-shell/internal/config"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/utils"
	"github.com/enigmora/lnxdrive-shell/models"
)

const propertiesGetAll = "org.freedesktop.DBus.Properties.GetAll"

type dbusServiceProxy struct {
	obj    dbus.BusObject
	bus    config.ClientBus
	calls  config.ClientCalls
	logger *logger.Logger
}

// NewDBusServiceProxy constructs the godbus implementation of [ServiceProxy]
// bound to the daemon object on conn. Constructing the proxy performs no
// remote call, so it succeeds whether or not the daemon is running.
func NewDBusServiceProxy(conn *DBusConnection, calls config.ClientCalls, logger *logger.Logger) ServiceProxy {
	obj := conn.Conn().Object(conn.bus.Name, dbus.ObjectPath(conn.bus.ObjectPath))
	return newDBusServiceProxy(obj, conn.bus, calls, logger)
}

func newDBusServiceProxy(obj dbus.BusObject, bus config.ClientBus, calls config.ClientCalls, logger *logger.Logger) *dbusServiceProxy {
	return &dbusServiceProxy{obj: obj, bus: bus, calls: calls, logger: logger}
}

// lookup performs a read-only call bounded by the lookup timeout.
func (p *dbusServiceProxy) lookup(ctx context.Context, group, method string, args []any, ret ...any) error {
	return p.call(ctx, p.calls.LookupTimeout, group, method, args, ret...)
}

// act performs a mutating call bounded by the action timeout.
func (p *dbusServiceProxy) act(ctx context.Context, group, method string, args []any, ret ...any) error {
	return p.call(ctx, p.calls.ActionTimeout, group, method, args, ret...)
}

func (p *dbusServiceProxy) call(ctx context.Context, timeout time.Duration, group, method string, args []any, ret ...any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	member := p.bus.Interface(group) + "." + method
	call := p.obj.CallWithContext(ctx, member, 0, args...)
	if call.Err != nil {
		err := mapBusError(ctx, call.Err)
		event := p.logger.Debug().Err(err).Str("method", member)
		if id, ok := utils.GetActionIDFromContext(ctx); ok {
			event = event.Str("action_id", id)
		}
		event.Msg("bus call failed")
		return fmt.Errorf("%s.%s: %w", group, method, err)
	}

	if len(ret) == 0 {
		return nil
	}

	if err := call.Store(ret...); err != nil {
		p.logger.Error().Err(err).Str("method", member).Msg("malformed reply")
		return fmt.Errorf("%s.%s: %w: %v", group, method, ErrMalformedReply, err)
	}

	return nil
}

func (p *dbusServiceProxy) properties(ctx context.Context, group string) (map[string]dbus.Variant, error) {
	ctx, cancel := context.WithTimeout(ctx, p.calls.LookupTimeout)
	defer cancel()

	props := make(map[string]dbus.Variant)
	call := p.obj.CallWithContext(ctx, propertiesGetAll, 0, p.bus.Interface(group))
	if call.Err != nil {
		return nil, fmt.Errorf("%s properties: %w", group, mapBusError(ctx, call.Err))
	}
	if err := call.Store(&props); err != nil {
		return nil, fmt.Errorf("%s properties: %w: %v", group, ErrMalformedReply, err)
	}

	return props, nil
}

// ── Files ─────────────────────────────────────────────────────────────────────

func (p *dbusServiceProxy) GetFileStatus(ctx context.Context, path string) (models.StatusKind, error) {
	var status string
	if err := p.lookup(ctx, GroupFiles, "GetFileStatus", []any{path}, &status); err != nil {
		return models.StatusUnknown, err
	}
	return models.ParseStatus(status), nil
}

func (p *dbusServiceProxy) GetBatchFileStatus(ctx context.Context, paths []string) (map[string]models.StatusKind, error) {
	var raw map[string]string
	if err := p.lookup(ctx, GroupFiles, "GetBatchFileStatus", []any{paths}, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]models.StatusKind, len(raw))
	for path, status := range raw {
		out[path] = models.ParseStatus(status)
	}
	return out, nil
}

func (p *dbusServiceProxy) PinFile(ctx context.Context, path string) error {
	return p.act(ctx, GroupFiles, "PinFile", []any{path})
}

func (p *dbusServiceProxy) UnpinFile(ctx context.Context, path string) error {
	return p.act(ctx, GroupFiles, "UnpinFile", []any{path})
}

func (p *dbusServiceProxy) SyncPath(ctx context.Context, path string) error {
	return p.act(ctx, GroupFiles, "SyncPath", []any{path})
}

func (p *dbusServiceProxy) GetConflictPaths(ctx context.Context) ([]string, error) {
	var paths []string
	if err := p.lookup(ctx, GroupFiles, "GetConflicts", nil, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// ── Sync ──────────────────────────────────────────────────────────────────────

func (p *dbusServiceProxy) SyncNow(ctx context.Context) error {
	return p.act(ctx, GroupSync, "SyncNow", nil)
}

func (p *dbusServiceProxy) Pause(ctx context.Context) error {
	return p.act(ctx, GroupSync, "Pause", nil)
}

func (p *dbusServiceProxy) Resume(ctx context.Context) error {
	return p.act(ctx, GroupSync, "Resume", nil)
}

func (p *dbusServiceProxy) GetSyncState(ctx context.Context) (models.SyncState, error) {
	props, err := p.properties(ctx, GroupSync)
	if err != nil {
		return models.SyncState{}, err
	}

	var state models.SyncState
	if v, ok := props["SyncStatus"].Value().(string); ok {
		state.Status = v
	}
	if v, ok := props["LastSyncTime"].Value().(int64); ok && v > 0 {
		state.LastSyncTime = time.Unix(v, 0)
	}
	if v, ok := props["PendingChanges"].Value().(uint32); ok {
		state.PendingChanges = v
	}
	return state, nil
}

// ── Status ────────────────────────────────────────────────────────────────────

func (p *dbusServiceProxy) GetQuota(ctx context.Context) (models.Quota, error) {
	var q models.Quota
	if err := p.lookup(ctx, GroupStatus, "GetQuota", nil, &q.Used, &q.Total); err != nil {
		return models.Quota{}, err
	}
	return q, nil
}

func (p *dbusServiceProxy) GetAccountInfo(ctx context.Context) (models.AccountInfo, error) {
	var raw map[string]dbus.Variant
	if err := p.lookup(ctx, GroupStatus, "GetAccountInfo", nil, &raw); err != nil {
		return models.AccountInfo{}, err
	}

	info := models.AccountInfo{Extra: make(map[string]string)}
	for key, v := range raw {
		text := fmt.Sprint(v.Value())
		switch key {
		case "email":
			info.Email = text
		case "display_name":
			info.DisplayName = text
		case "provider":
			info.Provider = text
		default:
			info.Extra[key] = text
		}
	}
	return info, nil
}

func (p *dbusServiceProxy) GetConnectionStatus(ctx context.Context) (string, error) {
	props, err := p.properties(ctx, GroupStatus)
	if err != nil {
		return "", err
	}
	status, _ := props["ConnectionStatus"].Value().(string)
	return status, nil
}

// ── Settings ──────────────────────────────────────────────────────────────────

func (p *dbusServiceProxy) GetConfig(ctx context.Context) (string, error) {
	var text string
	if err := p.lookup(ctx, GroupSettings, "GetConfig", nil, &text); err != nil {
		return "", err
	}
	return text, nil
}

func (p *dbusServiceProxy) SetConfig(ctx context.Context, text string) error {
	return p.act(ctx, GroupSettings, "SetConfig", []any{text})
}

func (p *dbusServiceProxy) GetSelectedFolders(ctx context.Context) ([]string, error) {
	var folders []string
	if err := p.lookup(ctx, GroupSettings, "GetSelectedFolders", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (p *dbusServiceProxy) SetSelectedFolders(ctx context.Context, folders []string) error {
	return p.act(ctx, GroupSettings, "SetSelectedFolders", []any{folders})
}

func (p *dbusServiceProxy) GetExclusionPatterns(ctx context.Context) ([]string, error) {
	var patterns []string
	if err := p.lookup(ctx, GroupSettings, "GetExclusionPatterns", nil, &patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}

func (p *dbusServiceProxy) SetExclusionPatterns(ctx context.Context, patterns []string) error {
	return p.act(ctx, GroupSettings, "SetExclusionPatterns", []any{patterns})
}

func (p *dbusServiceProxy) GetRemoteFolderTree(ctx context.Context) (string, error) {
	var tree string
	if err := p.lookup(ctx, GroupSettings, "GetRemoteFolderTree", nil, &tree); err != nil {
		return "", err
	}
	return tree, nil
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func (p *dbusServiceProxy) StartAuth(ctx context.Context) (models.AuthSession, error) {
	var s models.AuthSession
	if err := p.act(ctx, GroupAuth, "StartAuth", nil, &s.URL, &s.State); err != nil {
		return models.AuthSession{}, err
	}
	return s, nil
}

func (p *dbusServiceProxy) CompleteAuth(ctx context.Context, code, state string) (bool, error) {
	var ok bool
	if err := p.act(ctx, GroupAuth, "CompleteAuth", []any{code, state}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (p *dbusServiceProxy) IsAuthenticated(ctx context.Context) (bool, error) {
	var ok bool
	if err := p.lookup(ctx, GroupAuth, "IsAuthenticated", nil, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (p *dbusServiceProxy) Logout(ctx context.Context) error {
	return p.act(ctx, GroupAuth, "Logout", nil)
}

// ── Conflicts ─────────────────────────────────────────────────────────────────

func (p *dbusServiceProxy) ListConflicts(ctx context.Context) (string, error) {
	var doc string
	if err := p.lookup(ctx, GroupConflicts, "List", nil, &doc); err != nil {
		return "", err
	}
	return doc, nil
}

func (p *dbusServiceProxy) GetConflictDetails(ctx context.Context, id string) (string, error) {
	var doc string
	if err := p.lookup(ctx, GroupConflicts, "GetDetails", []any{id}, &doc); err != nil {
		return "", err
	}
	return doc, nil
}

func (p *dbusServiceProxy) ResolveConflict(ctx context.Context, id, strategy string) (bool, error) {
	var ok bool
	if err := p.act(ctx, GroupConflicts, "Resolve", []any{id, strategy}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (p *dbusServiceProxy) ResolveAllConflicts(ctx context.Context, strategy string) (uint32, error) {
	var n uint32
	if err := p.act(ctx, GroupConflicts, "ResolveAll", []any{strategy}, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// ── Manager ───────────────────────────────────────────────────────────────────

func (p *dbusServiceProxy) GetManagerState(ctx context.Context) (models.ManagerState, error) {
	var state models.ManagerState
	if err := p.lookup(ctx, GroupManager, "GetStatus", nil, &state.Status); err != nil {
		return models.ManagerState{}, err
	}

	props, err := p.properties(ctx, GroupManager)
	if err != nil {
		return state, nil
	}
	state.Version, _ = props["Version"].Value().(string)
	return state, nil
}
