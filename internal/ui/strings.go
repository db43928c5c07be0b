package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// truncate shortens value to at most limit terminal cells, adding an
// ellipsis when something was cut.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	if ansi.StringWidth(value) <= limit {
		return value
	}
	if limit == 1 {
		return ansi.Truncate(value, 1, "")
	}
	return ansi.Truncate(value, limit, ellipsis)
}

// truncateMiddle keeps the start and end of value, which suits URLs and
// paths where the host and file name matter most.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return ""
	}
	width := ansi.StringWidth(value)
	if width <= limit {
		return value
	}
	if limit <= 3 {
		return ansi.Truncate(value, limit, "")
	}
	keep := limit - ansi.StringWidth(ellipsis)
	head := keep / 2
	tail := keep - head
	return ansi.Truncate(value, head, "") + ellipsis + ansi.TruncateLeft(value, width-tail, "")
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// fit truncates then pads so the result is exactly width cells wide.
func fit(s string, width int) string {
	return padRight(truncate(s, width), width)
}

// singleLine flattens control whitespace so a value cannot break a row.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
}
