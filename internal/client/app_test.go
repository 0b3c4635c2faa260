package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enigmora/lnxdrive-shell/internal/config"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/mock"
	"github.com/enigmora/lnxdrive-shell/internal/service"
	"github.com/enigmora/lnxdrive-shell/models"
)

func testConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Bus: config.ClientBus{Name: "org.enigmora.LNXDrive", ObjectPath: "/org/enigmora/LNXDrive"},
		Calls: config.ClientCalls{
			LookupTimeout: time.Second,
			ActionTimeout: time.Second,
		},
		Monitor: config.ClientMonitor{RetryInterval: 20 * time.Millisecond},
		Paths:   config.ClientPaths{DefaultSyncRoot: "/home/user/OneDrive"},
	}
}

// teardownLog records teardown steps in the order they happen.
type teardownLog struct {
	mu    sync.Mutex
	steps []string
}

func (l *teardownLog) add(step string) {
	l.mu.Lock()
	l.steps = append(l.steps, step)
	l.mu.Unlock()
}

func (l *teardownLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.steps...)
}

func TestApp_StartConnectsAndCloseTearsDownInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock.NewMockBusConnection(ctrl)
	proxy := mock.NewMockServiceProxy(ctrl)
	notifier := mock.NewMockNotifier(ctrl)
	steps := &teardownLog{}

	bus.EXPECT().Subscribe(gomock.Any()).Return(func() { steps.add("unsubscribe") })
	bus.EXPECT().WatchNameOwner(gomock.Any()).Return(func() { steps.add("unwatch") })
	bus.EXPECT().NameOwner(gomock.Any()).Return(":1.42", nil).AnyTimes()
	proxy.EXPECT().GetConfig(gomock.Any()).Return("sync_root: /home/user/Cloud\n", nil)
	bus.EXPECT().Close().DoAndReturn(func() error {
		steps.add("close")
		return nil
	})

	app := Assemble(bus, proxy, notifier, testConfig(), logger.Nop())
	app.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, app.WaitConnected(ctx))

	assert.Equal(t, "/home/user/Cloud", app.Services.Cache.Root())
	assert.True(t, app.Services.Status.Contains("/home/user/Cloud/a.txt"))

	require.NoError(t, app.Close())
	assert.Equal(t, []string{"unwatch", "unsubscribe", "close"}, steps.get())

	// Second close is a no-op.
	require.NoError(t, app.Close())
}

func TestApp_WaitConnected_TimesOutWhileDaemonAway(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock.NewMockBusConnection(ctrl)
	proxy := mock.NewMockServiceProxy(ctrl)

	bus.EXPECT().Subscribe(gomock.Any()).Return(func() {})
	bus.EXPECT().WatchNameOwner(gomock.Any()).Return(func() {})
	bus.EXPECT().NameOwner(gomock.Any()).Return("", nil).AnyTimes()
	bus.EXPECT().Close().Return(nil)

	app := Assemble(bus, proxy, mock.NewMockNotifier(ctrl), testConfig(), logger.Nop())
	app.Start(context.Background())
	defer app.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := app.WaitConnected(ctx)
	assert.ErrorIs(t, err, service.ErrNotRunning)
	assert.NotEqual(t, models.AvailabilityConnected, app.Services.Monitor.State())
}

func TestApp_PushUpdatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock.NewMockBusConnection(ctrl)
	proxy := mock.NewMockServiceProxy(ctrl)

	var push func(models.Event)
	bus.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(cb func(models.Event)) func() {
		push = cb
		return func() {}
	})
	bus.EXPECT().WatchNameOwner(gomock.Any()).Return(func() {})
	bus.EXPECT().NameOwner(gomock.Any()).Return(":1.7", nil).AnyTimes()
	proxy.EXPECT().GetConfig(gomock.Any()).Return("sync_root: /home/user/OneDrive\n", nil)
	bus.EXPECT().Close().Return(nil)

	app := Assemble(bus, proxy, mock.NewMockNotifier(ctrl), testConfig(), logger.Nop())
	app.Start(context.Background())
	defer app.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, app.WaitConnected(ctx))
	require.NotNil(t, push)

	push(models.FileStatusChanged{Path: "/home/user/OneDrive/photos", Status: models.StatusSyncing})

	status, ok := app.Services.Status.GetStatus("/home/user/OneDrive/photos")
	require.True(t, ok)
	assert.Equal(t, models.StatusSyncing, status)
}
