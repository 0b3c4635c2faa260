package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enigmora/lnxdrive-shell/internal/service"
	"github.com/enigmora/lnxdrive-shell/models"
)

const summaryRefreshInterval = 30 * time.Second

// entry is one watched path shown in the panel.
type entry struct {
	path   string
	status models.StatusKind
}

type panelModel struct {
	ctx      context.Context
	services *service.ClientServices

	state   models.AvailabilityState
	entries []entry
	idx     int

	loading   bool
	reloading bool
	inFlight  int
	spinner   spinner.Model
	help      help.Model

	summary    *service.AccountSummary
	summaryErr string

	status string
	errMsg string
}

func newPanelModel(ctx context.Context, services *service.ClientServices) panelModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return panelModel{
		ctx:      ctx,
		services: services,
		state:    services.Monitor.State(),
		loading:  true,
		spinner:  s,
		help:     help.New(),
	}
}

func (m panelModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadEntries(), m.cmdLoadSummary(), cmdSummaryTick())
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invalidatedMsg:
		return m.applyInvalidation(msg.path)

	case availabilityMsg:
		m.state = msg.state
		m.refreshStatuses()
		if msg.state == models.AvailabilityConnected {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLoadEntries(), m.cmdLoadSummary())
		}
		if msg.state == models.AvailabilityDisconnected {
			m.summary = nil
		}
		return m, nil

	case entriesLoadedMsg:
		m.loading = false
		m.reloading = false
		m.entries = msg.entries
		if m.idx >= len(m.entries) {
			m.idx = len(m.entries) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case summaryLoadedMsg:
		if msg.err != nil {
			m.summary = nil
			m.summaryErr = humanizeError(msg.err)
			return m, nil
		}
		m.summaryErr = ""
		m.summary = &msg.summary
		return m, nil

	case summaryTickMsg:
		return m, tea.Batch(m.cmdLoadSummary(), cmdSummaryTick())

	case actionDoneMsg:
		m.inFlight--
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, cmdClearStatus()
		}
		m.errMsg = ""
		m.status = msg.kind.Title() + ": done"
		if !msg.kind.TargetsPath() {
			return m, tea.Batch(m.cmdLoadSummary(), cmdClearStatus())
		}
		return m, cmdClearStatus()

	case authStartedMsg:
		m.inFlight--
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, cmdClearStatus()
		}
		m.errMsg = ""
		m.status = "Open in a browser to sign in: " + msg.session.URL
		if msg.copied {
			m.status += " (copied)"
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.status = "Copied " + msg.text
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		m.errMsg = ""
		return m, nil

	case spinner.TickMsg:
		if m.loading || m.inFlight > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m panelModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.pin):
		return m.dispatchOffered(models.ActionPin)
	case key.Matches(msg, keys.unpin):
		return m.dispatchOffered(models.ActionUnpin)
	case key.Matches(msg, keys.syncPath):
		return m.dispatchOffered(models.ActionForceSync)
	case key.Matches(msg, keys.syncNow):
		return m.dispatch(models.ActionSyncNow, "")
	case key.Matches(msg, keys.pause):
		if m.summary != nil && m.summary.Sync.Paused() {
			return m.dispatch(models.ActionResumeSync, "")
		}
		return m.dispatch(models.ActionPauseSync, "")
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadEntries(), m.cmdLoadSummary())
	case key.Matches(msg, keys.auth):
		m.inFlight++
		return m, tea.Batch(m.spinner.Tick, m.cmdStartAuth())
	case key.Matches(msg, keys.copy):
		if e, ok := m.current(); ok {
			return m, cmdCopyToClipboard(e.path)
		}
	}
	return m, nil
}

func (m panelModel) current() (entry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return entry{}, false
	}
	return m.entries[m.idx], true
}

// offered returns the menu items for the selected entry.
func (m panelModel) offered() []service.MenuItem {
	e, ok := m.current()
	if !ok {
		return nil
	}
	return service.AvailableActions(m.services.Status, m.services.Monitor, []string{e.path})
}

// dispatchOffered runs kind on the selected entry when the menu offers it.
func (m panelModel) dispatchOffered(kind models.ActionKind) (tea.Model, tea.Cmd) {
	for _, item := range m.offered() {
		if item.Enabled && item.Request.Kind == kind {
			return m.dispatch(kind, item.Request.Targets[0])
		}
	}
	m.errMsg = kind.Title() + " is not available for the selected item"
	return m, cmdClearStatus()
}

func (m panelModel) dispatch(kind models.ActionKind, target string) (tea.Model, tea.Cmd) {
	m.inFlight++
	m.status = kind.Title() + "..."
	return m, tea.Batch(m.spinner.Tick, m.cmdAction(kind, target))
}

// applyInvalidation re-reads one path from the cache. Paths the panel does
// not list yet trigger a relist.
func (m panelModel) applyInvalidation(path string) (tea.Model, tea.Cmd) {
	for i := range m.entries {
		if m.entries[i].path == path {
			m.entries[i].status, _ = m.services.Status.GetStatus(path)
			return m, nil
		}
	}

	if m.reloading || m.loading || !m.watched(path) {
		return m, nil
	}
	m.reloading = true
	return m, m.cmdLoadEntries()
}

func (m panelModel) watched(path string) bool {
	for _, p := range m.services.Watcher.VisiblePaths() {
		if p == path {
			return true
		}
	}
	return false
}

func (m *panelModel) refreshStatuses() {
	for i := range m.entries {
		m.entries[i].status, _ = m.services.Status.GetStatus(m.entries[i].path)
	}
}

func (m panelModel) cmdLoadEntries() tea.Cmd {
	ctx := m.ctx
	status := m.services.Status
	watcher := m.services.Watcher
	return func() tea.Msg {
		statuses := status.GetBatchStatus(ctx, watcher.VisiblePaths())

		entries := make([]entry, 0, len(statuses))
		for p, s := range statuses {
			entries = append(entries, entry{path: p, status: s})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].path < entries[j].path })
		return entriesLoadedMsg{entries: entries}
	}
}

func (m panelModel) cmdLoadSummary() tea.Cmd {
	ctx := m.ctx
	account := m.services.Account
	return func() tea.Msg {
		sum, err := account.Summary(ctx)
		return summaryLoadedMsg{summary: sum, err: err}
	}
}

func (m panelModel) cmdAction(kind models.ActionKind, target string) tea.Cmd {
	ctx := m.ctx
	dispatcher := m.services.Dispatcher
	return func() tea.Msg {
		err := dispatcher.Do(ctx, kind, target, "")
		return actionDoneMsg{kind: kind, target: target, err: err}
	}
}

func (m panelModel) cmdStartAuth() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		session, err := auth.Begin(ctx)
		if err != nil {
			return authStartedMsg{err: err}
		}
		copied := clipboard.WriteAll(session.URL) == nil
		return authStartedMsg{session: session, copied: copied}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{text: text}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdSummaryTick() tea.Cmd {
	return tea.Tick(summaryRefreshInterval, func(time.Time) tea.Msg {
		return summaryTickMsg{}
	})
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if actionErr, ok := service.AsActionError(err); ok {
		title, body := service.NotificationText(actionErr)
		return title + ": " + body
	}
	if errors.Is(err, context.Canceled) {
		return "Cancelled"
	}
	return err.Error()
}
