package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/memberadmin/internal/roster"
)

// renderFooter renders the pagination bar on the left and the bulk delete
// action on the right.
func (m Model) renderFooter() string {
	bg := NewBgStyle(m.theme.Surface)
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	left := m.renderPagination()

	n := m.snapshot.Roster.SelectedCount()
	deleteStyle := styles.FaintText
	if n > 0 {
		deleteStyle = styles.DangerText
	}
	right := bg.Render("D", styles.AccentText) + bg.Sep(":") +
		bg.Render("Delete Selected ("+strconv.Itoa(n)+")", deleteStyle)

	gap := m.width - 2 - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 2 {
		return styles.Footer.Width(m.width).Render(left)
	}
	return styles.Footer.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

// renderPagination renders First / Prev / numbered pages / Next / Last.
// Buttons that cannot move are dimmed.
func (m Model) renderPagination() string {
	bg := NewBgStyle(m.theme.Surface)
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	st := m.snapshot.Roster
	page, total := st.Page(), st.TotalPages()

	button := func(label string, enabled bool) string {
		if enabled {
			return bg.Render(label, styles.AccentText)
		}
		return bg.Render(label, styles.FaintText)
	}

	parts := []string{
		button("« First", page > 1),
		button("‹ Prev", page > 1),
	}
	for _, n := range roster.PageWindow(page, total, pageButtonSpan) {
		label := strconv.Itoa(n)
		if n == page {
			parts = append(parts, styles.Selected.Bold(true).Render(" "+label+" "))
			continue
		}
		parts = append(parts, bg.Render(label, styles.MutedText))
	}
	parts = append(parts,
		button("Next ›", page < total),
		button("Last »", page < total),
	)

	pages := total
	if pages == 0 {
		pages = 1
	}
	parts = append(parts, bg.Render("page "+strconv.Itoa(page)+" of "+strconv.Itoa(pages), styles.FaintText))

	return strings.Join(parts, bg.Spaces(2))
}
