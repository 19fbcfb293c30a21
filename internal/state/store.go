// Package state holds the client's view of the server-owned entities as a
// sequence of immutable snapshots produced by a single-writer store.
package state

import (
	"sync"

	"github.com/bnema/agent-dash-cli/internal/domain"
)

type Listener func(domain.Snapshot)

// Store serializes every state transition: Dispatch applies the reducer and
// notifies listeners before the next action is accepted, so a listener never
// observes a half-applied snapshot and all listeners see snapshots in the
// same order. Side effects live outside the store.
type Store struct {
	mu     sync.Mutex
	snap   domain.Snapshot
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn Listener
}

func NewStore() *Store {
	return &Store{snap: domain.Snapshot{Theme: domain.ThemeLight}}
}

// Dispatch applies action and returns the resulting snapshot. Unknown action
// values leave the snapshot unchanged.
func (s *Store) Dispatch(action Action) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = reduce(s.snap, action)
	for _, sub := range s.subs {
		sub.fn(s.snap)
	}
	return s.snap
}

// Subscribe registers fn for every snapshot produced after this call and
// returns its cancel function. Listeners run synchronously inside Dispatch,
// in subscription order; they must not dispatch.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns the current value synchronously.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
