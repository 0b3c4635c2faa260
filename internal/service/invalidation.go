package service

import (
	"sort"
	"sync"
)

// InvalidationSink is implemented by UI surfaces that must redraw a path
// when its status changes.
type InvalidationSink interface {
	Notify(path string)
}

// InvalidationSinkFunc adapts a function to [InvalidationSink].
type InvalidationSinkFunc func(path string)

func (f InvalidationSinkFunc) Notify(path string) { f(path) }

// VisiblePathSource reports the paths a UI surface currently displays.
type VisiblePathSource interface {
	VisiblePaths() []string
}

// InvalidationRegistry holds the registered sinks and visible path sources.
// Sinks run synchronously on the caller's goroutine, in registration order,
// never while a registry lock is held.
type InvalidationRegistry struct {
	mu      sync.Mutex
	nextID  int
	sinks   map[int]InvalidationSink
	sources map[int]VisiblePathSource
}

func NewInvalidationRegistry() *InvalidationRegistry {
	return &InvalidationRegistry{
		sinks:   make(map[int]InvalidationSink),
		sources: make(map[int]VisiblePathSource),
	}
}

// Register adds sink and returns a function that removes it.
func (r *InvalidationRegistry) Register(sink InvalidationSink) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.sinks[id] = sink

	return func() {
		r.mu.Lock()
		delete(r.sinks, id)
		r.mu.Unlock()
	}
}

// RegisterSource adds a visible path source and returns a function that
// removes it.
func (r *InvalidationRegistry) RegisterSource(source VisiblePathSource) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.sources[id] = source

	return func() {
		r.mu.Lock()
		delete(r.sources, id)
		r.mu.Unlock()
	}
}

// Notify invokes every sink once per path.
func (r *InvalidationRegistry) Notify(paths ...string) {
	if len(paths) == 0 {
		return
	}

	for _, sink := range r.snapshot() {
		for _, path := range paths {
			sink.Notify(path)
		}
	}
}

// VisiblePaths returns the sorted union of every source's paths.
func (r *InvalidationRegistry) VisiblePaths() []string {
	r.mu.Lock()
	sources := make([]VisiblePathSource, 0, len(r.sources))
	for _, s := range r.sources {
		sources = append(sources, s)
	}
	r.mu.Unlock()

	return union(func(add func(string)) {
		for _, s := range sources {
			for _, p := range s.VisiblePaths() {
				add(p)
			}
		}
	})
}

func (r *InvalidationRegistry) snapshot() []InvalidationSink {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0, len(r.sinks))
	for id := range r.sinks {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]InvalidationSink, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.sinks[id])
	}
	return out
}

// union collects the distinct strings passed to add, sorted.
func union(collect func(add func(string))) []string {
	seen := make(map[string]struct{})
	collect(func(s string) {
		if s != "" {
			seen[s] = struct{}{}
		}
	})

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
