package roster

// State is an immutable snapshot of the admin table: the record collection,
// the search term, the selection set and the current page, plus the
// filtered view derived from them. Every operation returns a new State and
// leaves the receiver untouched. The zero value is an empty table on page 1.
type State struct {
	schema   Schema
	records  []Record
	term     string
	filtered []Record
	selected map[string]struct{}
	page     int
}

// New returns a state holding ds on page 1 with an empty search.
func New(ds Dataset) State {
	return State{}.WithDataset(ds)
}

// WithDataset replaces the collection and schema with a freshly loaded
// dataset. The search term is kept.
func (s State) WithDataset(ds Dataset) State {
	s.schema = Schema{Fields: append([]string(nil), ds.Schema.Fields...)}
	if len(s.schema.Fields) == 0 && len(ds.Records) > 0 {
		s.schema = SchemaOf(ds.Records, nil)
	}
	return s.withRecords(append([]Record(nil), ds.Records...))
}

// withRecords installs a new collection and recomputes the derived views.
// Selection entries whose record is gone are dropped.
func (s State) withRecords(records []Record) State {
	s.records = records
	if len(s.selected) > 0 {
		kept := make(map[string]struct{}, len(s.selected))
		for _, rec := range records {
			if _, ok := s.selected[rec.id]; ok {
				kept[rec.id] = struct{}{}
			}
		}
		s.selected = kept
	}
	return s.recompute()
}

// recompute re-derives the filtered view and resets to page 1.
func (s State) recompute() State {
	s.filtered = Filter(s.records, s.term)
	s.page = 1
	return s
}

// Schema returns the displayable columns.
func (s State) Schema() Schema { return s.schema }

// Len returns the size of the record collection.
func (s State) Len() int { return len(s.records) }

// Records returns the record collection in order.
func (s State) Records() []Record { return append([]Record(nil), s.records...) }

// Term returns the current search term.
func (s State) Term() string { return s.term }

// Filtered returns the records matching the search term.
func (s State) Filtered() []Record { return append([]Record(nil), s.filtered...) }

// Record looks up a record by id.
func (s State) Record(id string) (Record, bool) {
	for _, rec := range s.records {
		if rec.id == id {
			return rec, true
		}
	}
	return Record{}, false
}

// SetSearch changes the search term and recomputes the filtered view.
func (s State) SetSearch(term string) State {
	s.term = term
	return s.recompute()
}

// Selection

// IsSelected reports whether id is in the selection set.
func (s State) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// SelectedCount returns the size of the selection set.
func (s State) SelectedCount() int { return len(s.selected) }

// SelectedIDs returns the selected ids in collection order.
func (s State) SelectedIDs() []string {
	var ids []string
	for _, rec := range s.records {
		if _, ok := s.selected[rec.id]; ok {
			ids = append(ids, rec.id)
		}
	}
	return ids
}

// AllSelected reports whether every record in the collection is selected.
func (s State) AllSelected() bool {
	if len(s.selected) != len(s.records) {
		return false
	}
	for _, rec := range s.records {
		if _, ok := s.selected[rec.id]; !ok {
			return false
		}
	}
	return true
}

// ToggleRow adds id to the selection set, or removes it when present. Ids
// that are not in the collection are ignored.
func (s State) ToggleRow(id string) State {
	if _, ok := s.Record(id); !ok {
		return s
	}
	selected := make(map[string]struct{}, len(s.selected)+1)
	for k := range s.selected {
		selected[k] = struct{}{}
	}
	if _, ok := selected[id]; ok {
		delete(selected, id)
	} else {
		selected[id] = struct{}{}
	}
	s.selected = selected
	return s
}

// ToggleSelectAll clears the selection when every record is selected and
// otherwise selects the whole collection, regardless of search or page.
func (s State) ToggleSelectAll() State {
	if s.AllSelected() {
		s.selected = nil
		return s
	}
	selected := make(map[string]struct{}, len(s.records))
	for _, rec := range s.records {
		selected[rec.id] = struct{}{}
	}
	s.selected = selected
	return s
}

// Editing

// ToggleEdit flips the EDIT flag on the record with id.
func (s State) ToggleEdit(id string) State {
	return s.mapRecord(id, func(rec Record) Record {
		return rec.withEditing(!rec.editing)
	})
}

// UpdateField overwrites field on the record with id. The value applies
// immediately and is not validated. The id field and the edit marker are
// read-only.
func (s State) UpdateField(id, field, value string) State {
	if field == FieldID || field == FieldEditing || field == "" {
		return s
	}
	return s.mapRecord(id, func(rec Record) Record {
		return rec.withValue(field, value)
	})
}

func (s State) mapRecord(id string, fn func(Record) Record) State {
	idx := -1
	for i, rec := range s.records {
		if rec.id == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	records := append([]Record(nil), s.records...)
	records[idx] = fn(records[idx])
	return s.withRecords(records)
}

// Deletion

// DeleteRow removes the record with id.
func (s State) DeleteRow(id string) State {
	if _, ok := s.Record(id); !ok {
		return s
	}
	records := make([]Record, 0, len(s.records)-1)
	for _, rec := range s.records {
		if rec.id != id {
			records = append(records, rec)
		}
	}
	return s.withRecords(records)
}

// DeleteSelected removes every selected record and clears the selection.
func (s State) DeleteSelected() State {
	records := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		if _, ok := s.selected[rec.id]; !ok {
			records = append(records, rec)
		}
	}
	s.selected = nil
	return s.withRecords(records)
}

// Pagination

// Page returns the current 1-based page.
func (s State) Page() int { return ClampPage(s.page, s.TotalPages()) }

// TotalPages returns the number of pages in the filtered view.
func (s State) TotalPages() int { return TotalPages(len(s.filtered)) }

// Visible returns the filtered rows on the current page.
func (s State) Visible() []Record {
	start, end := PageBounds(s.Page(), len(s.filtered))
	return append([]Record(nil), s.filtered[start:end]...)
}

// PageOf returns the page holding id in the filtered view, or 0 when the
// record is filtered out or absent.
func (s State) PageOf(id string) int {
	for i, rec := range s.filtered {
		if rec.id == id {
			return i/PageSize + 1
		}
	}
	return 0
}

// GoToPage moves to page n, clamped to [1, max(1, TotalPages)].
func (s State) GoToPage(n int) State {
	s.page = ClampPage(n, s.TotalPages())
	return s
}

// FirstPage moves to page 1.
func (s State) FirstPage() State { return s.GoToPage(1) }

// PrevPage moves back one page.
func (s State) PrevPage() State { return s.GoToPage(s.Page() - 1) }

// NextPage moves forward one page.
func (s State) NextPage() State { return s.GoToPage(s.Page() + 1) }

// LastPage moves to the final page; with nothing to show it stays on page 1.
func (s State) LastPage() State { return s.GoToPage(s.TotalPages()) }
