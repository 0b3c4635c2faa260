package service

import (
	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/internal/config"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
)

// ClientServices is the fully wired status synchronization core. The bus
// subscription and the background loops are started by the caller.
type ClientServices struct {
	Cache      *StatusCache
	Sinks      *InvalidationRegistry
	Status     *StatusService
	SyncRoot   *SyncRootService
	Monitor    *AvailabilityMonitor
	Dispatcher *ActionDispatcher
	Settings   *SettingsService
	Conflicts  *ConflictService
	Account    *AccountService
	Auth       *AuthService
	Watcher    *FolderWatcher
}

func NewClientServices(
	bus adapter.BusConnection,
	proxy adapter.ServiceProxy,
	notifier adapter.Notifier,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	cache := NewStatusCache()
	cache.SetRoot(cfg.Paths.DefaultSyncRoot)
	sinks := NewInvalidationRegistry()

	statusSvc := NewStatusService(proxy, cache, sinks, logger.WithComponent("status"))
	roots := NewSyncRootService(proxy, cache, cfg.Paths.DefaultSyncRoot, logger.WithComponent("sync_root"))
	monitor := NewAvailabilityMonitor(bus, cache, sinks, roots, statusSvc, cfg.Monitor.RetryInterval, logger.WithComponent("monitor"))
	dispatcher := NewActionDispatcher(proxy, cache, sinks, monitor, notifier, logger.WithComponent("dispatcher"))

	watcher := NewFolderWatcher(statusSvc, cfg.Paths.Watch, logger.WithComponent("watcher"))
	sinks.RegisterSource(watcher)

	return &ClientServices{
		Cache:      cache,
		Sinks:      sinks,
		Status:     statusSvc,
		SyncRoot:   roots,
		Monitor:    monitor,
		Dispatcher: dispatcher,
		Settings:   NewSettingsService(proxy, roots, logger.WithComponent("settings")),
		Conflicts:  NewConflictService(proxy, proxy, logger.WithComponent("conflicts")),
		Account:    NewAccountService(proxy, proxy, proxy),
		Auth:       NewAuthService(proxy, logger.WithComponent("auth")),
		Watcher:    watcher,
	}
}
