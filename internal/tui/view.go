package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/enigmora/lnxdrive-shell/internal/app"
	"github.com/enigmora/lnxdrive-shell/internal/service"
	"github.com/enigmora/lnxdrive-shell/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func (m panelModel) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	for _, line := range strings.Split(m.viewSummary(), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.viewEntries())

	if actions := m.viewActions(); actions != "" {
		b.WriteString("\n  ")
		b.WriteString(actions)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("  " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("  " + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("  " + helpStyle.Render(m.help.View(keys)))

	return appStyle.Render(b.String())
}

func (m panelModel) viewHeader() string {
	header := titleStyle.Render("LNXDrive")
	header += "  " + availabilityStyles[m.state].Render("● "+availabilityLabel(m.state))
	if m.loading || m.inFlight > 0 {
		header += "  " + m.spinner.View()
	}
	return header
}

func availabilityLabel(s models.AvailabilityState) string {
	switch s {
	case models.AvailabilityConnected:
		return "Connected"
	case models.AvailabilityReconnecting:
		return "Reconnecting..."
	default:
		return app.MenuServiceNotRunning
	}
}

func (m panelModel) viewSummary() string {
	if m.state != models.AvailabilityConnected {
		return "Status is unavailable while the service is not running."
	}
	if m.summaryErr != "" {
		return errorStyle.Render(m.summaryErr)
	}
	if m.summary == nil {
		return "-"
	}

	s := m.summary
	lines := []string{
		fmt.Sprintf("Account:  %s", accountLine(s.Account)),
		fmt.Sprintf("Sync:     %s, last sync %s, %d pending", valueOrDash(s.Sync.Status), service.FormatLastSync(s.Sync.LastSyncTime), s.Sync.PendingChanges),
		fmt.Sprintf("Storage:  %s", service.FormatQuota(s.Quota)),
		fmt.Sprintf("Network:  %s", valueOrDash(s.Connection)),
	}
	return strings.Join(lines, "\n")
}

func accountLine(a models.AccountInfo) string {
	name := a.DisplayName
	if name == "" {
		name = a.Email
	} else if a.Email != "" {
		name += " <" + a.Email + ">"
	}
	if a.Provider != "" {
		name += " (" + a.Provider + ")"
	}
	return valueOrDash(name)
}

func (m panelModel) viewEntries() string {
	if m.loading && len(m.entries) == 0 {
		return "  Loading...\n"
	}
	if len(m.entries) == 0 {
		return "  No watched files\n"
	}

	root := m.services.Cache.Root()
	var b strings.Builder
	for i, e := range m.entries {
		cursor := "  "
		if i == m.idx {
			cursor = cursorStyle.Render("> ")
		}
		label := statusStyle(e.status).Render(fmt.Sprintf("%-10s", e.status.Label()))
		b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, label, fitText(displayPath(root, e.path), 60)))
	}
	return b.String()
}

func (m panelModel) viewActions() string {
	items := m.offered()
	if len(items) == 0 {
		return ""
	}

	labels := make([]string, 0, len(items))
	for _, item := range items {
		if item.Enabled {
			labels = append(labels, item.Label)
		} else {
			labels = append(labels, disabledStyle.Render(item.Label))
		}
	}
	return helpStyle.Render("Actions: ") + strings.Join(labels, " · ")
}

func displayPath(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
		return path
	}
	return rel
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return "..." + v[len(v)-max+3:]
}
