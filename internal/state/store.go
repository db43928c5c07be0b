package state

import (
	"sync"
	"time"

	"github.com/five82/memberadmin/internal/roster"
)

// Snapshot is the session as seen by the UI: the table state plus what
// happened to the startup load.
type Snapshot struct {
	Roster    roster.State
	Loaded    bool
	LoadedAt  time.Time
	LoadError error
	Skipped   int // payload entries dropped during decode
}

// Loading reports whether the startup load has not finished yet.
func (s Snapshot) Loading() bool {
	return !s.Loaded && s.LoadError == nil
}

// Store owns the session state. The loader writes from its own goroutine, so
// access is serialized.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// Load records the outcome of the startup fetch. On error the collection is
// left as it was and the error is kept for display.
func (s *Store) Load(ds roster.Dataset, err error) {
	s.mu.Lock()
	if err != nil {
		s.snapshot.LoadError = err
		s.snapshot.LoadedAt = time.Now()
	} else {
		s.snapshot.Roster = s.snapshot.Roster.WithDataset(ds)
		s.snapshot.Loaded = true
		s.snapshot.LoadError = nil
		s.snapshot.LoadedAt = time.Now()
		s.snapshot.Skipped = ds.Skipped
	}
	snap := s.snapshot
	s.mu.Unlock()

	s.notify(snap)
}

// Apply runs op against the current table state and stores the result.
func (s *Store) Apply(op func(roster.State) roster.State) roster.State {
	s.mu.Lock()
	s.snapshot.Roster = op(s.snapshot.Roster)
	snap := s.snapshot
	s.mu.Unlock()

	s.notify(snap)
	return snap.Roster
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Subscribe registers fn to run after every Load or Apply. Callbacks run on
// the caller's goroutine once the store lock is released. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]func(Snapshot))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
