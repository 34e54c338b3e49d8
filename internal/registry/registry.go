// Package registry owns the ScreeningState for every (movie, theater) pair
// that has ever needed one, creating it lazily on first use.
package registry

import (
	"sync"

	"cinebook-lld/internal/screening"
)

// key identifies a screening by the (movie, theater) pair it belongs to.
type key struct {
	movieID   uint32
	theaterID uint32
}

// Registry maps a screening key to its shared ScreeningState. The zero value
// is not ready to use; call New.
type Registry struct {
	mutex  sync.RWMutex
	states map[key]*screening.State
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		states: make(map[key]*screening.State),
	}
}

// Lookup is the read-side: it never blocks a concurrent Lookup, only a
// concurrent GetOrCreate. ok is false if no state has been created for the
// pair yet.
func (r *Registry) Lookup(movieID, theaterID uint32) (state *screening.State, ok bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	state, ok = r.states[key{movieID, theaterID}]
	return state, ok
}

// GetOrCreate returns the ScreeningState for (movieID, theaterID), creating
// it on first use. Safe to call concurrently from many goroutines racing on
// the same pair — exactly one of them creates the state.
//
// Protocol: optimistic read-only lookup first; on miss, acquire the
// exclusive region, re-check (another goroutine may have created it while we
// were waiting for the lock), and only then insert. The re-check is what
// keeps two racing callers from creating two different states for the same
// key.
func (r *Registry) GetOrCreate(movieID, theaterID uint32) *screening.State {
	k := key{movieID, theaterID}

	r.mutex.RLock()
	state, ok := r.states[k]
	r.mutex.RUnlock()
	if ok {
		return state
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if state, ok := r.states[k]; ok {
		return state
	}

	state = &screening.State{}
	r.states[k] = state
	return state
}
