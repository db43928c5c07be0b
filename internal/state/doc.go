// Package state holds the session store shared by the member loader and the
// terminal UI.
//
// # Overview
//
// The Store keeps one Snapshot: the roster table state plus the outcome of
// the startup fetch. The loader writes it once from its own goroutine; the
// UI reads it and applies table operations through Apply.
//
//	Loader:                         UI:
//	┌──────────────────┐           ┌──────────────────┐
//	│ FetchMembers()   │           │ key press        │
//	│      ↓           │           │      ↓           │
//	│ store.Load()     │──(mutex)──│ store.Apply(op)  │
//	└──────────────────┘           │ store.Snapshot() │
//	                               └──────────────────┘
//
// # Load Semantics
//
//	store.Load(ds, nil)
//	→ Roster gets the new dataset (search term kept, page 1)
//	→ Loaded = true, LoadError = nil, Skipped = ds.Skipped
//
//	store.Load(roster.Dataset{}, err)
//	→ Roster unchanged
//	→ LoadError = err
//
// Snapshot.Loading reports true until either call has happened.
//
// # Subscriptions
//
// Subscribe registers a callback that runs after every Load and Apply, in
// registration order, once the store lock has been released. Callbacks may
// read the store but should not block.
//
// The zero Store is ready to use.
package state
