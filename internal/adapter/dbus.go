// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/enigmora/lnxdrive-shell/internal/config"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/models"
)

const (
	freedesktopName      = "org.freedesktop.DBus"
	freedesktopPath      = dbus.ObjectPath("/org/freedesktop/DBus")
	nameOwnerChanged     = "NameOwnerChanged"
	getNameOwnerMethod   = freedesktopName + ".GetNameOwner"
	signalBufferCapacity = 64
)

// DBusConnection is the godbus implementation of [BusConnection]. Signals
// are queued by a sequential handler and drained by a single goroutine, so
// callbacks run one at a time and in emission order even when a callback is
// slower than the daemon.
type DBusConnection struct {
	conn   *dbus.Conn
	bus    config.ClientBus
	logger *logger.Logger

	signals   chan *dbus.Signal
	done      chan struct{}
	closeOnce sync.Once

	mu       sync.Mutex
	nextID   int
	watchers map[int]func(string)
	subs     map[int]func(models.Event)
}

// Connect dials the configured bus and installs match rules for ownership
// changes of the daemon's name and for every daemon signal. It fails only
// when the local bus is unreachable; a missing daemon is not an error.
func Connect(ctx context.Context, bus config.ClientBus, logger *logger.Logger) (*DBusConnection, error) {
	conn, err := dial(ctx, bus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBusUnavailable, err)
	}

	c := newDBusConnection(conn, bus, logger)
	if err := c.addMatchRules(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrBusUnavailable, err)
	}

	conn.Signal(c.signals)
	go c.dispatch()

	return c, nil
}

func newDBusConnection(conn *dbus.Conn, bus config.ClientBus, logger *logger.Logger) *DBusConnection {
	return &DBusConnection{
		conn:     conn,
		bus:      bus,
		logger:   logger,
		signals:  make(chan *dbus.Signal, signalBufferCapacity),
		done:     make(chan struct{}),
		watchers: make(map[int]func(string)),
		subs:     make(map[int]func(models.Event)),
	}
}

func dial(ctx context.Context, bus config.ClientBus) (*dbus.Conn, error) {
	opts := []dbus.ConnOption{
		dbus.WithContext(ctx),
		dbus.WithSignalHandler(dbus.NewSequentialSignalHandler()),
	}
	switch {
	case bus.Address != "":
		return dbus.Connect(bus.Address, opts...)
	case bus.System:
		return dbus.ConnectSystemBus(opts...)
	default:
		return dbus.ConnectSessionBus(opts...)
	}
}

func (c *DBusConnection) addMatchRules(ctx context.Context) error {
	err := c.conn.AddMatchSignalContext(ctx,
		dbus.WithMatchSender(freedesktopName),
		dbus.WithMatchObjectPath(freedesktopPath),
		dbus.WithMatchInterface(freedesktopName),
		dbus.WithMatchMember(nameOwnerChanged),
		dbus.WithMatchArg(0, c.bus.Name),
	)
	if err != nil {
		return fmt.Errorf("match %s: %w", nameOwnerChanged, err)
	}

	for _, group := range signalGroups {
		err := c.conn.AddMatchSignalContext(ctx,
			dbus.WithMatchObjectPath(dbus.ObjectPath(c.bus.ObjectPath)),
			dbus.WithMatchInterface(c.bus.Interface(group)),
		)
		if err != nil {
			return fmt.Errorf("match %s signals: %w", group, err)
		}
	}

	return nil
}

// Conn exposes the underlying godbus connection to sibling adapters.
func (c *DBusConnection) Conn() *dbus.Conn {
	return c.conn
}

// NameOwner implements [BusConnection].
func (c *DBusConnection) NameOwner(ctx context.Context) (string, error) {
	var owner string
	err := c.conn.BusObject().CallWithContext(ctx, getNameOwnerMethod, 0, c.bus.Name).Store(&owner)
	if err == nil {
		return owner, nil
	}

	mapped := mapBusError(ctx, err)
	if errors.Is(mapped, ErrNotRunning) {
		return "", nil
	}
	return "", mapped
}

// WatchNameOwner implements [BusConnection].
func (c *DBusConnection) WatchNameOwner(callback func(owner string)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.watchers[id] = callback

	return func() {
		c.mu.Lock()
		delete(c.watchers, id)
		c.mu.Unlock()
	}
}

// Subscribe implements [BusConnection].
func (c *DBusConnection) Subscribe(callback func(models.Event)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.subs[id] = callback

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Close implements [BusConnection].
func (c *DBusConnection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		if c.conn == nil {
			return
		}
		c.conn.RemoveSignal(c.signals)
		err = c.conn.Close()
	})
	return err
}

func (c *DBusConnection) dispatch() {
	for {
		select {
		case <-c.done:
			return
		case sig, ok := <-c.signals:
			if !ok {
				return
			}
			c.handleSignal(sig)
		}
	}
}

func (c *DBusConnection) handleSignal(sig *dbus.Signal) {
	if sig == nil {
		return
	}

	if sig.Name == freedesktopName+"."+nameOwnerChanged {
		var name, oldOwner, newOwner string
		if err := dbus.Store(sig.Body, &name, &oldOwner, &newOwner); err != nil || name != c.bus.Name {
			return
		}
		c.logger.Debug().Str("old", oldOwner).Str("new", newOwner).Msg("daemon name owner changed")
		for _, watch := range c.snapshotWatchers() {
			watch(newOwner)
		}
		return
	}

	if string(sig.Path) != c.bus.ObjectPath {
		return
	}

	event, ok, err := decodeSignal(c.bus.Name, sig)
	if err != nil {
		c.logger.Err(err).Str("signal", sig.Name).Msg("dropping malformed signal")
		return
	}
	if !ok {
		return
	}

	for _, sub := range c.snapshotSubscribers() {
		sub(event)
	}
}

func (c *DBusConnection) snapshotWatchers() []func(string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]func(string), 0, len(c.watchers))
	for id := 0; id < c.nextID; id++ {
		if w, ok := c.watchers[id]; ok {
			out = append(out, w)
		}
	}
	return out
}

func (c *DBusConnection) snapshotSubscribers() []func(models.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]func(models.Event), 0, len(c.subs))
	for id := 0; id < c.nextID; id++ {
		if s, ok := c.subs[id]; ok {
			out = append(out, s)
		}
	}
	return out
}
