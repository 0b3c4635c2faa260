package tui

import (
	"github.com/enigmora/lnxdrive-shell/internal/service"
	"github.com/enigmora/lnxdrive-shell/models"
)

type invalidatedMsg struct {
	path string
}

type availabilityMsg struct {
	state models.AvailabilityState
}

type entriesLoadedMsg struct {
	entries []entry
}

type summaryLoadedMsg struct {
	summary service.AccountSummary
	err     error
}

type actionDoneMsg struct {
	kind   models.ActionKind
	target string
	err    error
}

type authStartedMsg struct {
	session models.AuthSession
	copied  bool
	err     error
}

type copiedMsg struct {
	text string
	err  error
}

type summaryTickMsg struct{}

type clearStatusMsg struct{}
