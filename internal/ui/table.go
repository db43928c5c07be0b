package ui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/memberadmin/internal/roster"
)

// Messages shown in place of rows.
const (
	emptyMessage   = "No data available."
	loadingMessage = "Loading members..."
)

// tableInnerWidth is the usable width inside the table box borders, less
// one cell of left padding.
func (m Model) tableInnerWidth() int {
	return max(m.width-3, 0)
}

// columnWidths sizes each schema column for the current page. Columns start
// at their natural width (header or widest value, capped) and the widest is
// trimmed one cell at a time until the row fits.
func (m Model) columnWidths(inner int) []int {
	st := m.snapshot.Roster
	fields := st.Schema().Fields
	if len(fields) == 0 {
		return nil
	}

	widths := make([]int, len(fields))
	for i, f := range fields {
		widths[i] = ansi.StringWidth(columnLabel(f))
	}
	for _, rec := range st.Visible() {
		for i, f := range fields {
			widths[i] = max(widths[i], ansi.StringWidth(singleLine(rec.Value(f))))
		}
	}
	for i := range widths {
		widths[i] = min(max(widths[i], minColumnWidth), maxColumnWidth)
	}

	avail := inner - checkboxWidth - actionsWidth - columnGap*len(fields)
	for sum(widths) > avail {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

// renderTable renders the member grid inside a titled box.
func (m Model) renderTable(width, height int) string {
	st := m.snapshot.Roster
	focused := m.mode != modeSearch

	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}

	inner := m.tableInnerWidth()
	var lines []string
	switch {
	case m.snapshot.Loading():
		lines = m.renderEmptyTable(bgColor, loadingMessage)
	case len(st.Filtered()) == 0:
		lines = m.renderEmptyTable(bgColor, emptyMessage)
	default:
		widths := m.columnWidths(inner)
		lines = append(lines, m.renderColumnHeader(widths, bgColor))
		for i, rec := range st.Visible() {
			lines = append(lines, m.renderRow(rec, widths, bgColor, i == m.cursor && m.mode != modeSearch))
		}
	}

	return m.renderTitledBox(m.tableTitle(), strings.Join(lines, "\n"), width, height, focused)
}

func (m Model) renderEmptyTable(bgColor, message string) []string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	return []string{
		"",
		bg.Space() + bg.Render(message, styles.MutedText),
	}
}

// tableTitle summarises the filtered view for the box border.
func (m Model) tableTitle() string {
	st := m.snapshot.Roster
	title := "Members"
	if term := st.Term(); term != "" {
		title = fmt.Sprintf("Members matching %q", truncate(term, 24))
	}
	if n := len(st.Filtered()); n > 0 {
		title += fmt.Sprintf(" (%d)", n)
	}
	return title
}

func (m Model) renderColumnHeader(widths []int, bgColor string) string {
	st := m.snapshot.Roster
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	box := "[ ]"
	switch {
	case st.Len() > 0 && st.AllSelected():
		box = "[x]"
	case st.SelectedCount() > 0:
		box = "[-]"
	}

	var b strings.Builder
	b.WriteString(bg.Space())
	b.WriteString(bg.Cell(box, checkboxWidth, styles.ColumnHeader))
	for i, f := range st.Schema().Fields {
		b.WriteString(bg.Cell(columnLabel(f), widths[i], styles.ColumnHeader))
		b.WriteString(bg.Spaces(columnGap))
	}
	b.WriteString(bg.Cell("Actions", actionsWidth, styles.ColumnHeader))
	return b.String()
}

// renderRow renders one record. Cursor, EDIT state and selection each get
// their own background, in that order of precedence.
func (m Model) renderRow(rec roster.Record, widths []int, baseBg string, cursor bool) string {
	st := m.snapshot.Roster
	styles := m.theme.Styles()
	editingHere := m.mode == modeEdit && rec.ID() == m.edit.id
	selected := st.IsSelected(rec.ID())

	rowBg := baseBg
	textStyle := styles.Text
	switch {
	case rec.Editing():
		rowBg = m.theme.EditingBg
		textStyle = styles.WarningText
	case cursor:
		rowBg = m.theme.SelectionBg
		textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
	case selected:
		rowBg = m.theme.CheckedBg
	}
	if cursor && !editingHere {
		textStyle = textStyle.Bold(true)
	}
	bg := NewBgStyle(rowBg)

	box := "[ ]"
	if selected {
		box = "[x]"
	}

	var b strings.Builder
	b.WriteString(bg.Render(ternary(cursor, ">", " "), styles.AccentText))
	b.WriteString(bg.Cell(box, checkboxWidth, textStyle))
	for i, f := range st.Schema().Fields {
		if editingHere {
			if in, ok := m.edit.input(f); ok {
				b.WriteString(m.renderInputCell(in, widths[i], bg))
				b.WriteString(bg.Spaces(columnGap))
				continue
			}
		}
		style := textStyle
		if f == roster.FieldID && !cursor {
			style = styles.MutedText
		}
		b.WriteString(bg.Cell(singleLine(rec.Value(f)), widths[i], style))
		b.WriteString(bg.Spaces(columnGap))
	}
	b.WriteString(m.renderActions(rec, editingHere, cursor, bg))
	return b.String()
}

// renderInputCell shows a live input padded to its column.
func (m Model) renderInputCell(in textinput.Model, width int, bg BgStyle) string {
	view := ansi.Truncate(in.View(), width, "")
	if pad := width - ansi.StringWidth(view); pad > 0 {
		view += bg.Spaces(pad)
	}
	return view
}

func (m Model) renderActions(rec roster.Record, editingHere, cursor bool, bg BgStyle) string {
	styles := m.theme.Styles()
	switch {
	case editingHere:
		return bg.Render("enter", styles.AccentText) + bg.Space() +
			bg.Render(fit("Save", actionsWidth-6), styles.SuccessText)
	case rec.Editing():
		return bg.Cell("Save", actionsWidth, styles.SuccessText)
	case cursor:
		return bg.Render("Edit", styles.AccentText) + bg.Render(" · ", styles.MutedText) +
			bg.Render(fit("Delete", actionsWidth-7), styles.DangerText)
	default:
		return bg.Cell("Edit · Delete", actionsWidth, styles.FaintText)
	}
}

// renderTitledBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
// Lines wider than the box are cut, never wrapped.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := ansi.StringWidth(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(bgColor)

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = ansi.Truncate(contentLines[i], innerWidth, "")
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}

// columnLabel turns a field name into a column heading.
func columnLabel(field string) string {
	if field == roster.FieldID {
		return "ID"
	}
	r, size := utf8.DecodeRuneInString(field)
	if size == 0 || r == utf8.RuneError {
		return field
	}
	return string(unicode.ToUpper(r)) + field[size:]
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
