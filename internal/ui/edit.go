package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/memberadmin/internal/roster"
)

// editState holds the live inputs for the row being edited. Values are
// written to the store on every keystroke; there is no staging.
type editState struct {
	id     string
	fields []string
	inputs []textinput.Model
	focus  int
}

func (e *editState) focused() *textinput.Model {
	if e.focus < 0 || e.focus >= len(e.inputs) {
		return nil
	}
	return &e.inputs[e.focus]
}

// input returns the input bound to field, if any.
func (e editState) input(field string) (textinput.Model, bool) {
	for i, f := range e.fields {
		if f == field {
			return e.inputs[i], true
		}
	}
	return textinput.Model{}, false
}

// startEdit puts the cursor row into EDIT state and opens an input for each
// editable field.
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	rec, ok := m.cursorRecord()
	if !ok {
		return m, nil
	}
	id := rec.ID()

	var fields []string
	for _, f := range m.snapshot.Roster.Schema().Fields {
		if f != roster.FieldID {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		m.notice = "Nothing to edit"
		return m, nil
	}

	if !rec.Editing() {
		m.apply(func(st roster.State) roster.State { return st.ToggleEdit(id) }, id)
	}

	textStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Text)).
		Background(lipgloss.Color(m.theme.EditingBg))

	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.TextStyle = textStyle
		in.PlaceholderStyle = textStyle.Foreground(lipgloss.Color(m.theme.Faint))
		in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		in.SetValue(singleLine(rec.Value(f)))
		in.CursorEnd()
		inputs[i] = in
	}

	m.edit = editState{id: id, fields: fields, inputs: inputs}
	m.mode = modeEdit
	m.syncEditWidths()
	m.log.Debug("edit started", zap.String("id", id))
	return m, m.edit.inputs[0].Focus()
}

// handleEditKey processes keyboard input while a row is in EDIT state.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField(m.edit.focus + 1)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusField(m.edit.focus - 1)
	case msg.Type == tea.KeyEnter, msg.Type == tea.KeyEsc:
		m.finishEdit()
		return m, nil
	}

	in := m.edit.focused()
	if in == nil {
		return m, nil
	}
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if after := in.Value(); after != before {
		m.updateField(m.edit.fields[m.edit.focus], after)
	}
	return m, cmd
}

// focusField moves focus to input i, wrapping at either end.
func (m *Model) focusField(i int) tea.Cmd {
	n := len(m.edit.inputs)
	if n == 0 {
		return nil
	}
	i = ((i % n) + n) % n
	m.edit.inputs[m.edit.focus].Blur()
	m.edit.focus = i
	m.edit.inputs[i].CursorEnd()
	return m.edit.inputs[i].Focus()
}

// updateField writes value straight into the record. If the change takes
// the record out of the current search, editing ends.
func (m *Model) updateField(field, value string) {
	id := m.edit.id
	m.apply(func(st roster.State) roster.State { return st.UpdateField(id, field, value) }, id)
	m.syncEditWidths()

	if m.snapshot.Roster.PageOf(id) == 0 {
		m.apply(func(st roster.State) roster.State { return st.ToggleEdit(id) }, "")
		m.mode = modeBrowse
		m.edit = editState{}
		m.notice = fmt.Sprintf("Member %s no longer matches the search", id)
	}
}

// finishEdit returns the edited row to VIEW state.
func (m *Model) finishEdit() {
	id := m.edit.id
	if rec, ok := m.snapshot.Roster.Record(id); ok && rec.Editing() {
		m.apply(func(st roster.State) roster.State { return st.ToggleEdit(id) }, id)
	}
	m.mode = modeBrowse
	m.edit = editState{}
	m.log.Info("member edited", zap.String("id", id))
}

// syncEditWidths sizes each input to its table column so long values
// scroll inside the cell.
func (m *Model) syncEditWidths() {
	if m.mode != modeEdit || len(m.edit.inputs) == 0 {
		return
	}
	widths := m.columnWidths(m.tableInnerWidth())
	fields := m.snapshot.Roster.Schema().Fields
	for i, f := range m.edit.fields {
		for j, sf := range fields {
			if sf == f && j < len(widths) {
				m.edit.inputs[i].Width = max(widths[j]-1, 1)
			}
		}
	}
}
