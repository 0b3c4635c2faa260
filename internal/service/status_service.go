package service

import (
	"context"
	"sync"

	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/utils"
	"github.com/enigmora/lnxdrive-shell/models"
)

// StatusChangedFunc receives pushed status changes after the cache applied
// them and before sinks are notified.
type StatusChangedFunc func(path string, status models.StatusKind)

// StatusService answers status reads from the cache, populates it with batch
// queries and applies pushed FileStatusChanged notifications.
type StatusService struct {
	files  adapter.FilesProxy
	cache  *StatusCache
	sinks  *InvalidationRegistry
	logger *logger.Logger

	mu        sync.Mutex
	nextID    int
	listeners map[int]StatusChangedFunc
}

func NewStatusService(files adapter.FilesProxy, cache *StatusCache, sinks *InvalidationRegistry, logger *logger.Logger) *StatusService {
	return &StatusService{
		files:     files,
		cache:     cache,
		sinks:     sinks,
		logger:    logger,
		listeners: make(map[int]StatusChangedFunc),
	}
}

// GetStatus reads the cache only. ok is false for paths outside the sync
// root, which must get no status display at all.
func (s *StatusService) GetStatus(path string) (models.StatusKind, bool) {
	return s.cache.Lookup(path)
}

// Contains reports whether path is managed by the daemon.
func (s *StatusService) Contains(path string) bool {
	return s.cache.Contains(path)
}

// GetBatchStatus resolves paths with a single remote call, merges the result
// into the cache and returns the status of every managed path. Paths outside
// the sync root are omitted. It never fails: while the daemon is away, or
// when the call fails, statuses degrade to Unknown.
func (s *StatusService) GetBatchStatus(ctx context.Context, paths []string) map[string]models.StatusKind {
	out := make(map[string]models.StatusKind, len(paths))
	normalized := make(map[string]string, len(paths))
	managed := make([]string, 0, len(paths))
	for _, p := range paths {
		if !s.cache.Contains(p) {
			continue
		}
		norm := utils.NormalizePath(p)
		if _, dup := out[p]; !dup {
			normalized[p] = norm
			managed = append(managed, norm)
		}
		out[p] = models.StatusUnknown
	}

	if len(managed) == 0 || !s.cache.Accepting() {
		return out
	}

	token := s.cache.BeginBatch()
	remote, err := s.files.GetBatchFileStatus(ctx, managed)
	if err != nil {
		s.logger.Warn().Err(err).Int("paths", len(managed)).Msg("batch status query failed")
		return out
	}

	merged := make(map[string]models.StatusKind, len(remote))
	for p, status := range remote {
		merged[utils.NormalizePath(p)] = status
	}

	changed := s.cache.MergeBatch(token, merged)
	for orig, norm := range normalized {
		out[orig], _ = s.cache.Lookup(norm)
	}

	s.logger.Debug().Int("paths", len(managed)).Int("changed", len(changed)).Msg("batch status merged")
	s.sinks.Notify(changed...)
	return out
}

// RefreshVisible re-queries every visible and every cached path.
func (s *StatusService) RefreshVisible(ctx context.Context) {
	paths := union(func(add func(string)) {
		for _, p := range s.sinks.VisiblePaths() {
			add(p)
		}
		for _, p := range s.cache.Paths() {
			add(p)
		}
	})
	if len(paths) == 0 {
		return
	}
	s.GetBatchStatus(ctx, paths)
}

// SubscribeStatusChanged registers fn for pushed status changes.
func (s *StatusService) SubscribeStatusChanged(fn StatusChangedFunc) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// HandleEvent applies a FileStatusChanged push: cache first, then
// listeners, then sinks. Other events are ignored.
func (s *StatusService) HandleEvent(event models.Event) {
	changed, ok := event.(models.FileStatusChanged)
	if !ok {
		return
	}

	if !s.cache.ApplyPush(changed.Path, changed.Status) {
		s.logger.Debug().Str("path", changed.Path).Msg("ignoring status push")
		return
	}
	s.logger.Debug().Str("path", changed.Path).Stringer("status", changed.Status).Msg("status pushed")

	for _, fn := range s.snapshotListeners() {
		fn(changed.Path, changed.Status)
	}
	s.sinks.Notify(changed.Path)
}

func (s *StatusService) snapshotListeners() []StatusChangedFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]StatusChangedFunc, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
