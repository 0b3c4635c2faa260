// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/utils"
)

const defaultWatchDebounce = 250 * time.Millisecond

// FolderWatcher keeps the statuses of the entries of a few local directories
// fresh. It is a [VisiblePathSource] listing those entries, and it re-queries
// their statuses whenever the directory contents change.
type FolderWatcher struct {
	status   *StatusService
	dirs     []string
	debounce time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	entries map[string][]string
}

func NewFolderWatcher(status *StatusService, dirs []string, logger *logger.Logger) *FolderWatcher {
	normalized := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if d = utils.NormalizePath(d); d != "" && d != "." {
			normalized = append(normalized, d)
		}
	}

	return &FolderWatcher{
		status:   status,
		dirs:     normalized,
		debounce: defaultWatchDebounce,
		logger:   logger,
		entries:  make(map[string][]string),
	}
}

// VisiblePaths returns the last listed entries of every watched directory.
func (w *FolderWatcher) VisiblePaths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return union(func(add func(string)) {
		for _, list := range w.entries {
			for _, p := range list {
				add(p)
			}
		}
	})
}

// Run lists and queries every watched directory, then re-queries a directory
// each time its contents settle after a change. It returns when ctx is done.
func (w *FolderWatcher) Run(ctx context.Context) error {
	if len(w.dirs) == 0 {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create folder watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range w.dirs {
		if err = watcher.Add(dir); err != nil {
			w.logger.Warn().Err(err).Str("dir", dir).Msg("cannot watch folder")
			continue
		}
		w.refresh(ctx, dir)
	}

	dirty := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			dirty[filepath.Dir(event.Name)] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				for _, dir := range w.dirs {
					dirty[dir] = struct{}{}
				}
				timer.Reset(w.debounce)
				continue
			}
			w.logger.Warn().Err(err).Msg("folder watcher error")

		case <-timer.C:
			for dir := range dirty {
				w.refresh(ctx, dir)
			}
			clear(dirty)
		}
	}
}

// refresh relists dir and queries the statuses of its entries.
func (w *FolderWatcher) refresh(ctx context.Context, dir string) {
	list, err := listDir(dir)
	if err != nil {
		w.logger.Debug().Err(err).Str("dir", dir).Msg("cannot list folder")
		list = nil
	}

	w.mu.Lock()
	w.entries[dir] = list
	w.mu.Unlock()

	if len(list) > 0 {
		w.status.GetBatchStatus(ctx, list)
	}
}

func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}
