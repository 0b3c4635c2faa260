// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/service"
	"github.com/enigmora/lnxdrive-shell/models"
)

// TUI is the terminal status panel. It is an invalidation sink of the core:
// every status or availability change is forwarded to the running program
// as a message.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, fmt.Errorf("tui: nil services")
	}
	return &TUI{services: services, logger: log}, nil
}

// Run shows the panel until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newPanelModel(ctx, t.services)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	unregister := t.services.Sinks.Register(service.InvalidationSinkFunc(func(path string) {
		p.Send(invalidatedMsg{path: path})
	}))
	defer unregister()

	off := t.services.Monitor.OnStateChange(func(state models.AvailabilityState) {
		p.Send(availabilityMsg{state: state})
	})
	defer off()

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run status panel: %w", err)
	}

	t.logger.Debug().Msg("status panel closed")
	return nil
}
