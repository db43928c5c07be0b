package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/memberadmin/internal/roster"
)

// handleBrowseKey processes keyboard input while moving around the table.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.snapshot.Roster.Term() != "" {
			m.search.SetValue("")
			m.setSearch("")
		}

	// Cursor
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.snapshot.Roster.Visible()) - 1
		m.clampCursor()

	// Rows
	case key.Matches(msg, m.keys.ToggleRow):
		if rec, ok := m.cursorRecord(); ok {
			id := rec.ID()
			m.apply(func(st roster.State) roster.State { return st.ToggleRow(id) }, id)
		}
	case key.Matches(msg, m.keys.ToggleAll):
		follow := m.cursorID()
		m.apply(func(st roster.State) roster.State { return st.ToggleSelectAll() }, follow)
	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()
	case key.Matches(msg, m.keys.Delete):
		m.deleteCursorRow()
	case key.Matches(msg, m.keys.DeleteSelected):
		n := m.snapshot.Roster.SelectedCount()
		if n == 0 {
			m.notice = "No members selected"
			break
		}
		m.modal = newConfirmModal(
			"Delete Selected",
			fmt.Sprintf("Delete %s? This cannot be undone.", pluralize(n, "member", "members")),
			"Delete",
			deleteSelectedMsg{},
		)

	// Pages
	case key.Matches(msg, m.keys.FirstPage):
		m.turnPage(roster.State.FirstPage)
	case key.Matches(msg, m.keys.PrevPage):
		m.turnPage(roster.State.PrevPage)
	case key.Matches(msg, m.keys.NextPage):
		m.turnPage(roster.State.NextPage)
	case key.Matches(msg, m.keys.LastPage):
		m.turnPage(roster.State.LastPage)
	case key.Matches(msg, m.keys.GoToPage):
		n := int(msg.Runes[0] - '0')
		m.turnPage(func(st roster.State) roster.State { return st.GoToPage(n) })
	}

	return m, nil
}

// handleSearchKey processes keyboard input while the search box has focus.
// Every keystroke re-filters the table.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.search.Blur()
		m.mode = modeBrowse
		return m, nil

	case tea.KeyEsc:
		m.search.Blur()
		m.mode = modeBrowse
		if m.search.Value() != "" || m.snapshot.Roster.Term() != "" {
			m.search.SetValue("")
			m.setSearch("")
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.setSearch(after)
	}
	return m, cmd
}

func (m *Model) setSearch(term string) {
	m.apply(func(st roster.State) roster.State { return st.SetSearch(term) }, "")
	m.cursor = 0
}

// moveCursor moves within the page and spills onto the neighbouring page at
// either edge.
func (m *Model) moveCursor(delta int) {
	st := m.snapshot.Roster
	next := m.cursor + delta
	switch {
	case next >= len(st.Visible()) && st.Page() < st.TotalPages():
		m.turnPage(roster.State.NextPage)
	case next < 0 && st.Page() > 1:
		m.turnPage(roster.State.PrevPage)
		m.cursor = len(m.snapshot.Roster.Visible()) - 1
	default:
		m.cursor = next
		m.clampCursor()
	}
}

func (m *Model) turnPage(op func(roster.State) roster.State) {
	m.apply(op, "")
	m.cursor = 0
}

func (m Model) cursorID() string {
	if rec, ok := m.cursorRecord(); ok {
		return rec.ID()
	}
	return ""
}

// deleteCursorRow removes the record under the cursor and keeps the cursor
// on its neighbour in the filtered view.
func (m *Model) deleteCursorRow() {
	rec, ok := m.cursorRecord()
	if !ok {
		return
	}
	id := rec.ID()

	var neighbour string
	filtered := m.snapshot.Roster.Filtered()
	for i, r := range filtered {
		if r.ID() != id {
			continue
		}
		if i+1 < len(filtered) {
			neighbour = filtered[i+1].ID()
		} else if i > 0 {
			neighbour = filtered[i-1].ID()
		}
		break
	}

	m.apply(func(st roster.State) roster.State { return st.DeleteRow(id) }, neighbour)
	m.notice = fmt.Sprintf("Deleted member %s", id)
	m.log.Info("member deleted", zap.String("id", id))
}

// deleteSelected removes every selected record once the user confirmed.
func (m *Model) deleteSelected() {
	st := m.snapshot.Roster
	ids := st.SelectedIDs()
	if len(ids) == 0 {
		return
	}

	follow := m.cursorID()
	if st.IsSelected(follow) {
		follow = ""
	}

	m.apply(func(st roster.State) roster.State { return st.DeleteSelected() }, follow)
	m.notice = "Deleted " + pluralize(len(ids), "member", "members")
	m.log.Info("selected members deleted", zap.Strings("ids", ids))
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
