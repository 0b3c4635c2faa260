package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enigmora/lnxdrive-shell/internal/config"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/mock"
	"github.com/enigmora/lnxdrive-shell/internal/service"
	"github.com/enigmora/lnxdrive-shell/models"
)

const testRoot = "/home/user/OneDrive"

func testServices(ctrl *gomock.Controller) (*service.ClientServices, *mock.MockBusConnection, *mock.MockServiceProxy) {
	bus := mock.NewMockBusConnection(ctrl)
	proxy := mock.NewMockServiceProxy(ctrl)
	cfg := &config.ClientConfig{
		Monitor: config.ClientMonitor{RetryInterval: 20 * time.Millisecond},
		Paths:   config.ClientPaths{DefaultSyncRoot: testRoot},
	}

	svcs := service.NewClientServices(bus, proxy, mock.NewMockNotifier(ctrl), cfg, logger.Nop())
	return svcs, bus, proxy
}

// connect runs the availability monitor against a daemon that is present
// and waits for the Connected state.
func connect(t *testing.T, svcs *service.ClientServices, bus *mock.MockBusConnection, proxy *mock.MockServiceProxy) {
	t.Helper()

	bus.EXPECT().WatchNameOwner(gomock.Any()).Return(func() {})
	bus.EXPECT().NameOwner(gomock.Any()).Return(":1.9", nil).AnyTimes()
	proxy.EXPECT().GetConfig(gomock.Any()).Return("sync_root: "+testRoot+"\n", nil)
	proxy.EXPECT().GetBatchFileStatus(gomock.Any(), gomock.Any()).Return(map[string]models.StatusKind{}, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = svcs.Monitor.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	require.Eventually(t, func() bool {
		return svcs.Monitor.State() == models.AvailabilityConnected
	}, 2*time.Second, 5*time.Millisecond)
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

// collect runs cmd and every command batched inside it, returning the
// produced messages. Ticks are skipped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(200 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// ── Invalidation ────────────────────────────────────────────────────────────

func TestPanel_InvalidationRereadsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs, _, _ := testServices(ctrl)

	path := testRoot + "/photos"
	svcs.Cache.SetRoot(testRoot)
	svcs.Cache.GoOnline()

	m := newPanelModel(context.Background(), svcs)
	m.loading = false
	m.entries = []entry{{path: path, status: models.StatusSynced}}

	require.True(t, svcs.Cache.ApplyPush(path, models.StatusSyncing))
	updated, _ := m.Update(invalidatedMsg{path: path})

	assert.Equal(t, models.StatusSyncing, updated.(panelModel).entries[0].status)
}

func TestPanel_DisconnectShowsDegradedState(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs, _, _ := testServices(ctrl)

	path := testRoot + "/document.pdf"
	svcs.Cache.SetRoot(testRoot)
	svcs.Cache.GoOnline()
	require.True(t, svcs.Cache.ApplyPush(path, models.StatusSynced))

	m := newPanelModel(context.Background(), svcs)
	m.loading = false
	m.state = models.AvailabilityConnected
	m.entries = []entry{{path: path, status: models.StatusSynced}}

	svcs.Cache.GoOffline()
	updated, cmd := m.Update(availabilityMsg{state: models.AvailabilityDisconnected})
	got := updated.(panelModel)

	assert.Nil(t, cmd)
	assert.Equal(t, models.StatusUnknown, got.entries[0].status)
	assert.Contains(t, got.View(), "Service Not Running")
	assert.Contains(t, got.View(), "document.pdf")
}

// ── Keys ────────────────────────────────────────────────────────────────────

func TestPanel_QuitKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs, _, _ := testServices(ctrl)

	m := newPanelModel(context.Background(), svcs)
	_, cmd := m.Update(runeKey("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPanel_CursorMovement(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs, _, _ := testServices(ctrl)

	m := newPanelModel(context.Background(), svcs)
	m.entries = []entry{{path: testRoot + "/a"}, {path: testRoot + "/b"}}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, next.(panelModel).idx)

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, next.(panelModel).idx)

	next, _ = next.Update(runeKey("k"))
	assert.Equal(t, 0, next.(panelModel).idx)
}

func TestPanel_PinRefusedWhileDisconnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs, _, _ := testServices(ctrl)
	svcs.Cache.SetRoot(testRoot)

	m := newPanelModel(context.Background(), svcs)
	m.entries = []entry{{path: testRoot + "/report.docx"}}

	updated, _ := m.Update(runeKey("p"))
	got := updated.(panelModel)

	assert.Equal(t, 0, got.inFlight)
	assert.Contains(t, got.errMsg, "not available")
}

func TestPanel_PinDispatchesForCloudOnlyEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs, bus, proxy := testServices(ctrl)
	connect(t, svcs, bus, proxy)

	path := testRoot + "/photos/beach.jpg"
	require.True(t, svcs.Cache.ApplyPush(path, models.StatusCloudOnly))
	proxy.EXPECT().PinFile(gomock.Any(), path).Return(nil)

	m := newPanelModel(context.Background(), svcs)
	m.state = models.AvailabilityConnected
	m.entries = []entry{{path: path, status: models.StatusCloudOnly}}

	updated, cmd := m.Update(runeKey("p"))
	got := updated.(panelModel)
	assert.Equal(t, 1, got.inFlight)

	var done *actionDoneMsg
	for _, msg := range collect(cmd) {
		if d, ok := msg.(actionDoneMsg); ok {
			done = &d
		}
	}
	require.NotNil(t, done)
	assert.Equal(t, models.ActionPin, done.kind)
	assert.NoError(t, done.err)

	final, _ := got.Update(*done)
	assert.Equal(t, 0, final.(panelModel).inFlight)
	assert.Contains(t, final.(panelModel).status, "Keep Available Offline")
}

// ── Summary ─────────────────────────────────────────────────────────────────

func TestPanel_SummaryRendered(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs, _, _ := testServices(ctrl)

	m := newPanelModel(context.Background(), svcs)
	m.state = models.AvailabilityConnected
	updated, _ := m.Update(summaryLoadedMsg{summary: service.AccountSummary{
		Account:    models.AccountInfo{Email: "user@example.com", Provider: "onedrive"},
		Quota:      models.Quota{Used: 1_000_000_000, Total: 5_000_000_000},
		Sync:       models.SyncState{Status: "idle"},
		Connection: "online",
	}})

	view := updated.(panelModel).View()
	assert.Contains(t, view, "user@example.com (onedrive)")
	assert.Contains(t, view, "1.0 GB of 5.0 GB used (20%)")
	assert.Contains(t, view, "last sync never")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "...7890", fitText("1234567890", 7))
}

func TestDisplayPath(t *testing.T) {
	assert.Equal(t, "a/b.txt", displayPath(testRoot, testRoot+"/a/b.txt"))
	assert.Equal(t, "/etc/passwd", displayPath(testRoot, "/etc/passwd"))
}
