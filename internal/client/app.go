package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/internal/config"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/service"
	"github.com/enigmora/lnxdrive-shell/internal/workers"
	"github.com/enigmora/lnxdrive-shell/models"
)

// App owns one status synchronization core: the bus connection, the wired
// services and their background loops. Every UI surface of the process
// shares the same App.
type App struct {
	Services *service.ClientServices

	cfg     *config.ClientConfig
	bus     adapter.BusConnection
	workers *workers.Workers
	logger  *logger.Logger

	mu          sync.Mutex
	started     bool
	closed      bool
	cancel      context.CancelFunc
	done        chan error
	unsubscribe func()
}

// NewApp connects to the bus and wires the core. It succeeds while the
// daemon is away; only an unreachable bus is an error.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	conn, err := adapter.Connect(ctx, cfg.Bus, log.WithComponent("bus"))
	if err != nil {
		return nil, fmt.Errorf("connect bus: %w", err)
	}

	proxy := adapter.NewDBusServiceProxy(conn, cfg.Calls, log.WithComponent("proxy"))

	notifier := adapter.NewLogNotifier(log.WithComponent("notify"))
	if cfg.DesktopNotify {
		notifier = adapter.NewFallbackNotifier(adapter.NewDesktopNotifier(conn.Conn(), log.WithComponent("notify")), notifier)
	}

	return Assemble(conn, proxy, notifier, cfg, log), nil
}

// Assemble wires a core over an existing bus connection and proxy.
func Assemble(bus adapter.BusConnection, proxy adapter.ServiceProxy, notifier adapter.Notifier, cfg *config.ClientConfig, log *logger.Logger) *App {
	svcs := service.NewClientServices(bus, proxy, notifier, cfg, log)

	ws := workers.NewWorkers(log.WithComponent("workers")).
		Add("availability_monitor", svcs.Monitor).
		Add("folder_watcher", svcs.Watcher)

	return &App{
		Services: svcs,
		cfg:      cfg,
		bus:      bus,
		workers:  ws,
		logger:   log,
	}
}

// Start subscribes to daemon push notifications and launches the monitor
// and folder watcher. The first connection attempt happens immediately.
func (a *App) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started || a.closed {
		return
	}
	a.started = true

	a.unsubscribe = a.bus.Subscribe(a.Services.Status.HandleEvent)

	runCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.done = make(chan error, 1)
	go func() {
		a.done <- a.workers.Run(runCtx)
	}()

	a.logger.Info().Str("bus_name", a.cfg.Bus.Name).Msg("core started")
}

// WaitConnected blocks until the daemon is available. It returns
// [service.ErrNotRunning] when ctx ends first.
func (a *App) WaitConnected(ctx context.Context) error {
	connected := make(chan struct{}, 1)
	off := a.Services.Monitor.OnStateChange(func(state models.AvailabilityState) {
		if state == models.AvailabilityConnected {
			select {
			case connected <- struct{}{}:
			default:
			}
		}
	})
	defer off()

	if a.Services.Monitor.State() == models.AvailabilityConnected {
		return nil
	}

	select {
	case <-connected:
		return nil
	case <-ctx.Done():
		return service.ErrNotRunning
	}
}

// SetConfig replaces the daemon configuration and reloads the sync root.
func (a *App) SetConfig(ctx context.Context, text string) error {
	if err := a.Services.Dispatcher.Do(ctx, models.ActionSetConfig, "", text); err != nil {
		return err
	}
	a.Services.Settings.ReloadSyncRoot(ctx)
	return nil
}

// Close tears the core down: dispatcher, background loops, push
// subscription, then the bus connection. It is safe to call more than once.
func (a *App) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	cancel, done, unsubscribe := a.cancel, a.done, a.unsubscribe
	a.mu.Unlock()

	a.Services.Dispatcher.Close()

	var errs []error
	if cancel != nil {
		cancel()
		if err := <-done; err != nil {
			errs = append(errs, err)
		}
	}
	if unsubscribe != nil {
		unsubscribe()
	}
	if err := a.bus.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close bus: %w", err))
	}

	a.logger.Info().Msg("core stopped")
	return errors.Join(errs...)
}
