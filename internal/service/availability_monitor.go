// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/models"
)

// AvailabilityReader exposes the current availability state.
type AvailabilityReader interface {
	State() models.AvailabilityState
}

// SyncRootLoader fetches and installs the sync root.
type SyncRootLoader interface {
	Load(ctx context.Context) string
}

// VisibleRefresher re-queries the statuses the UI displays.
type VisibleRefresher interface {
	RefreshVisible(ctx context.Context)
}

// AvailabilityMonitor drives the Connected / Disconnected / Reconnecting
// state machine from name ownership changes and a periodic probe.
//
// Loss of the daemon is handled synchronously on the goroutine reporting it.
// Recovery runs on the monitor loop: sync root, cache warm-up, visible
// statuses, then the transition to Connected. Cached statuses become readable
// in the same critical section as that transition.
type AvailabilityMonitor struct {
	bus       adapter.BusConnection
	cache     *StatusCache
	sinks     *InvalidationRegistry
	roots     SyncRootLoader
	refresher VisibleRefresher
	interval  time.Duration
	logger    *logger.Logger

	wake chan struct{}

	mu        sync.Mutex
	state     models.AvailabilityState
	owner     string
	gen       uint64
	nextID    int
	listeners map[int]func(models.AvailabilityState)
}

func NewAvailabilityMonitor(
	bus adapter.BusConnection,
	cache *StatusCache,
	sinks *InvalidationRegistry,
	roots SyncRootLoader,
	refresher VisibleRefresher,
	interval time.Duration,
	logger *logger.Logger,
) *AvailabilityMonitor {
	return &AvailabilityMonitor{
		bus:       bus,
		cache:     cache,
		sinks:     sinks,
		roots:     roots,
		refresher: refresher,
		interval:  interval,
		logger:    logger,
		wake:      make(chan struct{}, 1),
		state:     models.AvailabilityDisconnected,
		listeners: make(map[int]func(models.AvailabilityState)),
	}
}

// State implements [AvailabilityReader].
func (m *AvailabilityMonitor) State() models.AvailabilityState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// OnStateChange registers fn for every transition and returns a function
// that removes it.
func (m *AvailabilityMonitor) OnStateChange(fn func(models.AvailabilityState)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners[id] = fn

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// Run watches the daemon until ctx is cancelled. It attempts to connect
// immediately and then probes every interval while the daemon is away.
func (m *AvailabilityMonitor) Run(ctx context.Context) error {
	unwatch := m.bus.WatchNameOwner(m.onOwnerChanged)
	defer unwatch()

	interval := m.interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	m.step(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-m.wake:
			m.step(ctx)
		case <-t.C:
			m.step(ctx)
		}
	}
}

func (m *AvailabilityMonitor) onOwnerChanged(owner string) {
	m.mu.Lock()
	replaced := m.state == models.AvailabilityConnected && owner != "" && owner != m.owner
	m.mu.Unlock()

	if owner == "" || replaced {
		m.handleLost()
	}
	m.kick()
}

func (m *AvailabilityMonitor) kick() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// handleLost invalidates the cache and notifies sinks for every cached and
// visible path before returning.
func (m *AvailabilityMonitor) handleLost() {
	m.mu.Lock()
	m.gen++
	cached := m.cache.GoOffline()
	if m.state != models.AvailabilityConnected {
		m.mu.Unlock()
		return
	}
	listeners := m.transitionLocked(models.AvailabilityDisconnected)
	m.owner = ""
	m.mu.Unlock()

	m.logger.Warn().Msg("daemon left the bus; entering degraded mode")
	m.sinks.Notify(m.affected(cached)...)
	m.emit(listeners, models.AvailabilityDisconnected)
}

func (m *AvailabilityMonitor) step(ctx context.Context) {
	if m.State() == models.AvailabilityDisconnected {
		m.mu.Lock()
		listeners := m.transitionLocked(models.AvailabilityReconnecting)
		m.mu.Unlock()
		m.emit(listeners, models.AvailabilityReconnecting)
	}

	if m.State() == models.AvailabilityReconnecting {
		if err := m.restore(ctx); err != nil {
			m.logger.Debug().Err(err).Msg("daemon still unavailable")
		}
	}
}

func (m *AvailabilityMonitor) restore(ctx context.Context) error {
	owner, err := m.bus.NameOwner(ctx)
	if err != nil {
		return fmt.Errorf("probe name owner: %w", err)
	}
	if owner == "" {
		return adapter.ErrNotRunning
	}

	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()

	m.roots.Load(ctx)

	m.mu.Lock()
	if m.gen != gen {
		m.mu.Unlock()
		return adapter.ErrNotRunning
	}
	m.cache.Warm()
	m.mu.Unlock()

	m.refresher.RefreshVisible(ctx)

	m.mu.Lock()
	if m.gen != gen || m.state != models.AvailabilityReconnecting {
		m.cache.GoOffline()
		m.mu.Unlock()
		return adapter.ErrNotRunning
	}
	m.cache.GoOnline()
	listeners := m.transitionLocked(models.AvailabilityConnected)
	m.owner = owner
	m.mu.Unlock()

	m.logger.Info().Str("owner", owner).Msg("daemon available")
	m.sinks.Notify(m.affected(m.cache.Paths())...)
	m.emit(listeners, models.AvailabilityConnected)
	return nil
}

func (m *AvailabilityMonitor) affected(cached []string) []string {
	return union(func(add func(string)) {
		for _, p := range cached {
			add(p)
		}
		for _, p := range m.sinks.VisiblePaths() {
			add(p)
		}
	})
}

// transitionLocked moves to next and returns the listeners to notify.
// Callers must hold m.mu.
func (m *AvailabilityMonitor) transitionLocked(next models.AvailabilityState) []func(models.AvailabilityState) {
	if !m.state.CanTransitionTo(next) {
		m.logger.Error().Stringer("from", m.state).Stringer("to", next).Msg("invalid availability transition")
		return nil
	}
	m.logger.Debug().Stringer("from", m.state).Stringer("to", next).Msg("availability transition")
	m.state = next

	out := make([]func(models.AvailabilityState), 0, len(m.listeners))
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func (m *AvailabilityMonitor) emit(listeners []func(models.AvailabilityState), state models.AvailabilityState) {
	for _, fn := range listeners {
		fn(state)
	}
}
