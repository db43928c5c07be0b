package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/memberadmin/internal/roster"
)

func dataset() roster.Dataset {
	return roster.Dataset{
		Schema: roster.Schema{Fields: []string{"id", "name"}},
		Records: []roster.Record{
			roster.NewRecord(map[string]string{"id": "1", "name": "Ann"}),
			roster.NewRecord(map[string]string{"id": "2", "name": "Bob"}),
		},
		Skipped: 1,
	}
}

func TestStore_ZeroValueIsLoading(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if !snap.Loading() || snap.Loaded || snap.Roster.Len() != 0 {
		t.Fatalf("zero snapshot = %#v, want loading with empty roster", snap)
	}
}

func TestStore_LoadPopulates(t *testing.T) {
	var s Store
	before := time.Now()
	s.Load(dataset(), nil)

	snap := s.Snapshot()
	if !snap.Loaded || snap.Loading() {
		t.Fatalf("Loaded = %v, want true", snap.Loaded)
	}
	if snap.Roster.Len() != 2 || snap.Skipped != 1 {
		t.Fatalf("len=%d skipped=%d, want 2 and 1", snap.Roster.Len(), snap.Skipped)
	}
	if snap.LoadedAt.Before(before) {
		t.Fatalf("LoadedAt = %v, want >= %v", snap.LoadedAt, before)
	}
}

func TestStore_LoadErrorKeepsEmptyCollection(t *testing.T) {
	var s Store
	origErr := errors.New("boom")
	s.Load(roster.Dataset{}, origErr)

	snap := s.Snapshot()
	if snap.Loaded || snap.Loading() {
		t.Fatalf("Loaded=%v Loading=%v, want both false after failure", snap.Loaded, snap.Loading())
	}
	if snap.Roster.Len() != 0 {
		t.Fatalf("roster len = %d, want 0", snap.Roster.Len())
	}
	if snap.LoadError != origErr || !errors.Is(snap.LoadError, origErr) {
		t.Fatalf("LoadError = %v, want the stored boom error", snap.LoadError)
	}
	if again := s.Snapshot(); again.LoadError != snap.LoadError {
		t.Fatalf("repeated snapshots returned different errors: %v vs %v", again.LoadError, snap.LoadError)
	}
}

func TestStore_ApplyReplacesState(t *testing.T) {
	var s Store
	s.Load(dataset(), nil)
	held := s.Snapshot()

	got := s.Apply(func(st roster.State) roster.State { return st.DeleteRow("1") })
	if got.Len() != 1 {
		t.Fatalf("Apply result len = %d, want 1", got.Len())
	}
	if s.Snapshot().Roster.Len() != 1 {
		t.Fatalf("stored len = %d, want 1", s.Snapshot().Roster.Len())
	}
	if held.Roster.Len() != 2 {
		t.Fatalf("earlier snapshot changed: len = %d, want 2", held.Roster.Len())
	}
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	var s Store
	var seen []int
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		seen = append(seen, snap.Roster.SelectedCount())
	})

	s.Load(dataset(), nil)
	s.Apply(func(st roster.State) roster.State { return st.ToggleRow("1") })
	unsubscribe()
	s.Apply(func(st roster.State) roster.State { return st.ToggleRow("2") })

	if want := []int{0, 1}; !reflect.DeepEqual(seen, want) {
		t.Fatalf("notifications = %v, want %v", seen, want)
	}
}

func TestStore_SubscriberMayReadStore(t *testing.T) {
	var s Store
	var lens []int
	s.Subscribe(func(Snapshot) {
		lens = append(lens, s.Snapshot().Roster.Len())
	})
	s.Load(dataset(), nil)
	if !reflect.DeepEqual(lens, []int{2}) {
		t.Fatalf("lens = %v, want [2]", lens)
	}
}
