package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/enigmora/lnxdrive-shell/models"
)

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

var availabilityStyles = map[models.AvailabilityState]lipgloss.Style{
	models.AvailabilityConnected:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	models.AvailabilityReconnecting: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	models.AvailabilityDisconnected: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

var statusColors = map[models.StatusKind]lipgloss.Color{
	models.StatusSynced:    lipgloss.Color("10"),
	models.StatusCloudOnly: lipgloss.Color("12"),
	models.StatusSyncing:   lipgloss.Color("14"),
	models.StatusPending:   lipgloss.Color("11"),
	models.StatusConflict:  lipgloss.Color("13"),
	models.StatusError:     lipgloss.Color("9"),
}

func statusStyle(s models.StatusKind) lipgloss.Style {
	if c, ok := statusColors[s]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Faint(true)
}
