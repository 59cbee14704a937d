// Package registry stores the paths computed during a session and hands
// them out by a stable 1-based index.
//
// Entries are appended only. Register assigns 1, 2, 3… in call order and an
// index is never reused until Clear, which drops every entry and restarts
// numbering at 1. Clear is the caller's response to a replaced grid: paths
// computed on the old map are no longer trustworthy.
//
// Paths are copied on the way in and on the way out, so neither the caller
// nor a consumer can alter a stored route.
//
// All methods are safe for concurrent use; reads share an RWMutex.
package registry

import (
	"sync"

	"github.com/katalvlaran/gridroute/route"
)

// Registry is an append-only, index-addressed collection of paths.
// The zero value is ready to use.
type Registry struct {
	mu    sync.RWMutex
	paths []route.Path // paths[i] has index i+1
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register stores a copy of p and returns its index (≥ 1).
// Complexity: O(len(p)).
func (r *Registry) Register(p route.Path) int {
	cp := p.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, cp)
	return len(r.paths)
}

// Get returns a copy of the path at index i, or false if i was never
// assigned since the last Clear.
func (r *Registry) Get(i int) (route.Path, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 1 || i > len(r.paths) {
		return nil, false
	}
	return r.paths[i-1].Clone(), true
}

// Clear removes every entry and restarts numbering at 1.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.paths = nil
	r.mu.Unlock()
}

// Len returns the number of stored paths.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.paths)
}

// Indices returns all assigned indices in ascending order.
func (r *Registry) Indices() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int, len(r.paths))
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Each calls fn for every entry in index order until fn returns false.
// fn receives copies and runs without the lock held, so it may call back
// into the Registry.
func (r *Registry) Each(fn func(index int, p route.Path) bool) {
	r.mu.RLock()
	snapshot := make([]route.Path, len(r.paths))
	copy(snapshot, r.paths)
	r.mu.RUnlock()

	for i, p := range snapshot {
		if !fn(i+1, p.Clone()) {
			return
		}
	}
}
