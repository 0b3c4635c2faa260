// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/utils"
	"github.com/enigmora/lnxdrive-shell/models"
)

// ActionProxy is the subset of the daemon binding the dispatcher calls.
type ActionProxy interface {
	adapter.FilesProxy
	adapter.SyncProxy
	adapter.ConflictsProxy
	adapter.SettingsProxy
	adapter.AuthProxy
}

// ActionDispatcher turns user intents into remote calls. Each target of a
// request runs independently; its outcome is reported through the done
// callback, a user notification on failure and sink invalidation on success.
type ActionDispatcher struct {
	proxy    ActionProxy
	cache    *StatusCache
	sinks    *InvalidationRegistry
	avail    AvailabilityReader
	notifier adapter.Notifier
	ids      *utils.UUIDGenerator
	logger   *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	closed  bool
	pending map[string]models.PendingAction
}

func NewActionDispatcher(
	proxy ActionProxy,
	cache *StatusCache,
	sinks *InvalidationRegistry,
	avail AvailabilityReader,
	notifier adapter.Notifier,
	logger *logger.Logger,
) *ActionDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &ActionDispatcher{
		proxy:    proxy,
		cache:    cache,
		sinks:    sinks,
		avail:    avail,
		notifier: notifier,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		pending:  make(map[string]models.PendingAction),
	}
}

// Dispatch starts one remote call per target and returns immediately with
// the created pending actions. done, when non-nil, is called once per
// target from the call's goroutine. Nothing is called after [Close].
func (d *ActionDispatcher) Dispatch(req models.ActionRequest, done func(models.ActionResult)) []models.PendingAction {
	targets := req.Targets
	if len(targets) == 0 {
		targets = []string{""}
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}

	started := make([]models.PendingAction, 0, len(targets))
	for _, target := range targets {
		action := models.PendingAction{
			ID:        d.ids.Generate(),
			Kind:      req.Kind,
			Target:    target,
			State:     models.ActionInFlight,
			StartedAt: time.Now(),
		}
		d.pending[action.ID] = action
		started = append(started, action)
	}
	d.wg.Add(len(started))
	d.mu.Unlock()

	for _, action := range started {
		go func(action models.PendingAction) {
			defer d.wg.Done()
			result := d.run(d.ctx, action, req.Argument)
			if d.ctx.Err() != nil {
				return
			}
			if done != nil {
				done(result)
			}
		}(action)
	}

	return started
}

// Do performs a single action synchronously with the same refusal, error
// mapping, notification and invalidation rules as [Dispatch].
func (d *ActionDispatcher) Do(ctx context.Context, kind models.ActionKind, target, argument string) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrDispatcherClosed
	}
	action := models.PendingAction{
		ID:        d.ids.Generate(),
		Kind:      kind,
		Target:    target,
		State:     models.ActionInFlight,
		StartedAt: time.Now(),
	}
	d.pending[action.ID] = action
	d.wg.Add(1)
	d.mu.Unlock()
	defer d.wg.Done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(d.ctx, cancel)
	defer stop()

	return d.run(ctx, action, argument).Err
}

// Pending returns a snapshot of in-flight actions ordered by start time.
func (d *ActionDispatcher) Pending() []models.PendingAction {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]models.PendingAction, 0, len(d.pending))
	for _, a := range d.pending {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out
}

// Close cancels every in-flight call and waits for their goroutines.
func (d *ActionDispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()
}

func (d *ActionDispatcher) run(ctx context.Context, action models.PendingAction, argument string) models.ActionResult {
	ctx = utils.WithActionID(ctx, action.ID)
	err := d.execute(ctx, action.Kind, action.Target, argument)

	d.mu.Lock()
	delete(d.pending, action.ID)
	d.mu.Unlock()

	if errors.Is(err, context.Canceled) {
		action.State = models.ActionFailed
		return models.ActionResult{Action: action, Err: err}
	}

	log := d.logger.Info()
	if err != nil {
		log = d.logger.Warn().Err(err)
	}
	log.Str("action_id", action.ID).Str("action", action.Kind.Title()).Str("target", action.Target).Msg("action finished")

	if err != nil {
		action.State = models.ActionFailed
		d.report(err)
		return models.ActionResult{Action: action, Err: err}
	}

	action.State = models.ActionSucceeded
	if action.Kind.TargetsPath() {
		d.sinks.Notify(utils.NormalizePath(action.Target))
	}
	return models.ActionResult{Action: action}
}

func (d *ActionDispatcher) report(err error) {
	actionErr, ok := AsActionError(err)
	if !ok || d.notifier == nil {
		return
	}

	title, body := NotificationText(actionErr)
	if nerr := d.notifier.Notify(d.ctx, title, body); nerr != nil {
		d.logger.Warn().Err(nerr).Str("title", title).Msg(body)
	}
}

func (d *ActionDispatcher) execute(ctx context.Context, kind models.ActionKind, target, argument string) error {
	if d.avail.State() != models.AvailabilityConnected {
		return refused(ErrorNotRunning, kind, target)
	}
	if kind.TargetsPath() && !d.cache.Contains(target) {
		return refused(ErrorInvalidPath, kind, target)
	}

	var err error
	switch kind {
	case models.ActionPin:
		err = d.proxy.PinFile(ctx, utils.NormalizePath(target))
	case models.ActionUnpin:
		err = d.proxy.UnpinFile(ctx, utils.NormalizePath(target))
	case models.ActionForceSync:
		err = d.proxy.SyncPath(ctx, utils.NormalizePath(target))
	case models.ActionResolveConflict:
		err = d.resolve(ctx, target, argument)
	case models.ActionResolveAllConflicts:
		if !models.ConflictStrategy(argument).Valid() {
			return &ActionError{Kind: ErrorOther, Action: kind, Message: argument, Err: ErrUnknownStrategy}
		}
		_, err = d.proxy.ResolveAllConflicts(ctx, argument)
	case models.ActionSyncNow:
		err = d.proxy.SyncNow(ctx)
	case models.ActionPauseSync:
		err = d.proxy.Pause(ctx)
	case models.ActionResumeSync:
		err = d.proxy.Resume(ctx)
	case models.ActionSetConfig:
		err = d.proxy.SetConfig(ctx, argument)
	case models.ActionLogout:
		err = d.proxy.Logout(ctx)
	default:
		return &ActionError{Kind: ErrorOther, Action: kind, Target: target, Message: "unsupported action", Err: ErrActionFailed}
	}

	if errors.Is(err, context.Canceled) {
		return err
	}
	return mapAdapterError(kind, target, err)
}

func (d *ActionDispatcher) resolve(ctx context.Context, id, strategy string) error {
	if !models.ConflictStrategy(strategy).Valid() {
		return &ActionError{Kind: ErrorOther, Action: models.ActionResolveConflict, Target: id, Message: strategy, Err: ErrUnknownStrategy}
	}

	ok, err := d.proxy.ResolveConflict(ctx, id, strategy)
	if err != nil {
		return err
	}
	if !ok {
		return &ActionError{Kind: ErrorOther, Action: models.ActionResolveConflict, Target: id, Message: ErrNotResolved.Error(), Err: ErrNotResolved}
	}
	return nil
}
