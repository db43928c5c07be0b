package ui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/five82/memberadmin/internal/roster"
)

// renderHeader renders the status bar: title, load state and counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	parts := []string{bg.Render("memberadmin", styles.Logo)}

	snap := m.snapshot
	switch {
	case snap.Loading():
		parts = append(parts, bg.Render("Loading members...", styles.WarningText.Bold(true)))
		if host := sourceHost(m.source); host != "" && !compact {
			parts = append(parts, bg.Render(host, styles.MutedText))
		}

	case snap.LoadError != nil:
		parts = append(parts, bg.Render("Load failed: "+classifyLoadError(snap.LoadError), styles.DangerText))
		if !compact {
			parts = append(parts, bg.Render(truncate(snap.LoadError.Error(), 60), styles.MutedText))
		}

	default:
		st := snap.Roster
		parts = append(parts,
			bg.Render("Members:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", st.Len()), styles.Text),
			bg.Render("Shown:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(st.Filtered())), styles.Text),
		)

		selStyle := styles.MutedText
		if st.SelectedCount() > 0 {
			selStyle = styles.AccentText
		}
		parts = append(parts,
			bg.Render("Selected:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", st.SelectedCount()), selStyle),
		)

		if !compact && !snap.LoadedAt.IsZero() {
			parts = append(parts, bg.Render("loaded "+snap.LoadedAt.Format("15:04:05"), styles.FaintText))
		}
	}

	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.InfoText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// classifyLoadError returns a short description of why the load failed.
func classifyLoadError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, roster.ErrNotArray) {
		return "UNEXPECTED PAYLOAD"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "TIMEOUT"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	case strings.Contains(msg, "returned status"):
		return "HTTP ERROR"
	case strings.Contains(msg, "decode"):
		return "INVALID JSON"
	default:
		return "ERROR"
	}
}

func sourceHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return truncateMiddle(raw, 40)
	}
	return u.Host
}

// renderCommandBar renders the key hints for the current mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.mode {
	case modeSearch:
		commands = []cmd{
			{"enter", "Done"},
			{"esc", "Clear"},
		}
	case modeEdit:
		commands = []cmd{
			{"tab", "Next field"},
			{"shift+tab", "Prev field"},
			{"enter/esc", "Done"},
		}
	default:
		commands = []cmd{
			{"j/k", "Move"},
			{"Space", "Select"},
			{"a", "All"},
			{"e", "Edit"},
			{"d", "Delete"},
			{"D", "Delete selected"},
			{"/", "Search"},
			{"h/l", "Page"},
			{"?", "More"},
		}
		if m.snapshot.Roster.Term() != "" {
			commands = append(commands, cmd{"esc", "Clear search"})
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if m.mode == modeEdit {
		segments = append(segments,
			bg.Render("editing member "+truncate(m.edit.id, 12), styles.WarningText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// renderSearchLine shows the search box, or the active term when it is not
// focused.
func (m Model) renderSearchLine() string {
	bg := NewBgStyle(m.theme.Background)
	styles := m.theme.Styles().WithBackground(m.theme.Background)

	var content string
	switch term := m.snapshot.Roster.Term(); {
	case m.mode == modeSearch:
		content = bg.Space() + m.search.View()
	case term != "":
		content = bg.Space() + bg.Render("/ "+truncate(term, max(m.width-20, 8)), styles.AccentText) +
			bg.Spaces(2) + bg.Render("esc to clear", styles.FaintText)
	default:
		content = bg.Space() + bg.Render("/ to search", styles.FaintText)
	}
	return bg.FillLine(content, m.width)
}
