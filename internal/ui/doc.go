// Package ui provides the Bubble Tea terminal interface for memberadmin.
//
// # Overview
//
// The UI is a single editable table over the member collection held in a
// state.Store. Every user action becomes a roster.State operation applied
// through Store.Apply; the Model never mutates records itself.
//
// # Layout
//
//	header        title, load status, member / shown / selected counts
//	command bar   key hints for the current mode
//	search line   "/" input, or the active term
//	table box     checkbox, one column per schema field, Actions
//	footer        First / Prev / pages / Next / Last, Delete Selected (n)
//
// # Modes
//
//   - browse: cursor movement, selection, paging, row actions
//   - search: the search input has focus; each keystroke re-filters
//   - edit: the cursor row shows one input per field; each keystroke is
//     written to the record immediately, enter or esc returns to browse
//
// The help overlay (?) and the Delete Selected confirmation sit above all
// modes and take every key while open.
//
// # Paging and the Cursor
//
// Any change to the collection or the search term sends the table back to
// page 1. After an edit, a selection toggle or a delete the Model moves to
// the page that holds the record under the cursor (or its nearest
// neighbour), so the table does not jump away from where the user was.
//
// # Files
//
//   - app.go: Model, Options, Init/Update/View, Run
//   - browse.go: browse and search key handling, row deletion
//   - edit.go: EDIT mode inputs
//   - table.go: grid rendering and column sizing
//   - pagination.go: footer with page buttons and bulk delete
//   - header.go: status header, command bar, search line
//   - help.go, modal.go: overlays
//   - keys.go: key bindings
//   - theme.go, style_helpers.go, strings.go, layout.go: presentation helpers
package ui
