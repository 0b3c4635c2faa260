// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"
	"sync"
	"time"

	"github.com/enigmora/lnxdrive-shell/internal/utils"
	"github.com/enigmora/lnxdrive-shell/models"
)

// BatchToken marks the cache position at which a batch query was issued.
type BatchToken struct {
	seq   uint64
	epoch uint64
}

type cacheEntry struct {
	entry models.StatusEntry
	seq   uint64
}

// StatusCache is the passive path → status store. It never calls the daemon.
//
// Every push update advances a sequence counter and tags its entry. A batch
// result merged with a [BatchToken] is dropped for any path pushed after the
// token was taken, so a slow query can never overwrite a newer push. Going
// offline advances the epoch, which discards every batch in flight.
//
// A warming cache accepts updates but still reads as Unknown until
// [StatusCache.GoOnline].
type StatusCache struct {
	mu      sync.RWMutex
	root    string
	warm    bool
	online  bool
	seq     uint64
	epoch   uint64
	entries map[string]cacheEntry

	now func() time.Time
}

func NewStatusCache() *StatusCache {
	return &StatusCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// SetRoot replaces the sync root and drops every entry outside it.
func (c *StatusCache) SetRoot(root string) {
	root = utils.NormalizePath(root)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.root = root
	for path := range c.entries {
		if !utils.IsWithin(root, path) {
			delete(c.entries, path)
		}
	}
}

func (c *StatusCache) Root() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.root
}

// Contains reports whether path lies inside the sync root.
func (c *StatusCache) Contains(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return utils.IsWithin(c.root, path)
}

// Online reports whether lookups return cached statuses.
func (c *StatusCache) Online() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.online
}

// Accepting reports whether batch results and pushes are recorded.
func (c *StatusCache) Accepting() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.warm
}

// Lookup returns the cached status of path. ok is false when path is outside
// the sync root; otherwise an uncached path, or any path while offline or
// warming, resolves to StatusUnknown.
func (c *StatusCache) Lookup(path string) (status models.StatusKind, ok bool) {
	entry, ok := c.Entry(path)
	return entry.Status, ok
}

// Entry is [StatusCache.Lookup] returning the whole entry.
func (c *StatusCache) Entry(path string) (models.StatusEntry, bool) {
	path = utils.NormalizePath(path)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if !utils.IsWithin(c.root, path) {
		return models.StatusEntry{}, false
	}

	e, found := c.entries[path]
	if !found || !c.online {
		return models.StatusEntry{Path: path, Status: models.StatusUnknown}, true
	}
	return e.entry, true
}

// BeginBatch records the position a batch query starts from.
func (c *StatusCache) BeginBatch() BatchToken {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return BatchToken{seq: c.seq, epoch: c.epoch}
}

// MergeBatch stores the statuses of a batch started at token and returns the
// paths whose cached status changed. Paths outside the root, paths pushed
// since token, and every path when the cache went offline since token, are
// skipped.
func (c *StatusCache) MergeBatch(token BatchToken, statuses map[string]models.StatusKind) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.warm || token.epoch != c.epoch {
		return nil
	}

	now := c.now()
	changed := make([]string, 0, len(statuses))
	for path, status := range statuses {
		path = utils.NormalizePath(path)
		if !utils.IsWithin(c.root, path) {
			continue
		}

		prev, found := c.entries[path]
		if found && prev.seq > token.seq {
			continue
		}

		c.entries[path] = cacheEntry{
			entry: models.StatusEntry{Path: path, Status: status, ObservedAt: now},
			seq:   token.seq,
		}
		if !found || prev.entry.Status != status {
			changed = append(changed, path)
		}
	}

	sort.Strings(changed)
	return changed
}

// ApplyPush records a pushed status. It returns false when the update was
// ignored because path is outside the root or the cache is offline.
// Updates recorded while warming stay hidden until [StatusCache.GoOnline].
func (c *StatusCache) ApplyPush(path string, status models.StatusKind) bool {
	path = utils.NormalizePath(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.warm || !utils.IsWithin(c.root, path) {
		return false
	}

	c.seq++
	c.entries[path] = cacheEntry{
		entry: models.StatusEntry{Path: path, Status: status, ObservedAt: c.now()},
		seq:   c.seq,
	}
	return true
}

// GoOffline marks every entry Unknown, discards batches in flight and makes
// the cache ignore updates until [StatusCache.GoOnline]. It returns every
// cached path.
func (c *StatusCache) GoOffline() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.warm = false
	c.online = false
	c.epoch++
	c.seq++

	now := c.now()
	paths := make([]string, 0, len(c.entries))
	for path, e := range c.entries {
		e.entry.Status = models.StatusUnknown
		e.entry.ObservedAt = now
		e.seq = c.seq
		c.entries[path] = e
		paths = append(paths, path)
	}

	sort.Strings(paths)
	return paths
}

// Warm re-enables updates without exposing them to lookups.
func (c *StatusCache) Warm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warm = true
}

// GoOnline re-enables updates and makes lookups return cached statuses.
func (c *StatusCache) GoOnline() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warm = true
	c.online = true
}

// Paths returns every cached path in sorted order.
func (c *StatusCache) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	paths := make([]string, 0, len(c.entries))
	for path := range c.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (c *StatusCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
