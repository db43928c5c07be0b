// Package roster holds the member table model: records, the search filter,
// pagination arithmetic and the immutable table state.
//
// # Overview
//
// A roster.State is a value. Operations such as ToggleRow, UpdateField or
// DeleteSelected return a new State and never modify the receiver, so a
// caller can keep any snapshot around (for rendering, undo, or comparison)
// without copying it first.
//
//	st := roster.New(ds)
//	st = st.SetSearch("ann")
//	st = st.ToggleRow("1")
//	st = st.DeleteSelected()
//
// # Records and Schema
//
// Decode reads the JSON array served by the member endpoint. Each object's
// key order is preserved: the first member fixes the column order and keys
// that only appear on later members are appended. Members without an "id"
// (or repeating one already seen) are dropped and counted in
// Dataset.Skipped. Field values are kept as text, rendered the way a browser
// would show them ("42", "true", "null").
//
// The "isEditing" marker is row state, not data. It is never part of the
// Schema, never searched and never exported.
//
// # Derived Views
//
// The filtered view is recomputed whenever the collection or the search term
// changes, and every recomputation returns to page 1:
//
//	records ──Filter(term)──> filtered ──PageBounds(page)──> Visible()
//
// Selection-only operations (ToggleRow, ToggleSelectAll) and page moves keep
// the current filtered view and page.
//
// # Pagination
//
// PageSize is fixed at 10. TotalPages is ceil(len(filtered)/10), which is 0
// for an empty view; the current page is always clamped to
// [1, max(1, TotalPages)], so LastPage on an empty view stays on page 1.
//
// # Selection
//
// ToggleSelectAll works on the entire collection, not just the rows that
// match the search or sit on the current page. Removing records prunes their
// ids from the selection.
//
// # Export
//
// WriteCSV, WriteJSON and WriteTable render records in schema order for the
// export command.
package roster
