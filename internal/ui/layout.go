package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100
)

// Table geometry.
const (
	// checkboxWidth holds "[x]" plus a gap.
	checkboxWidth = 4

	// actionsWidth holds the widest Actions cell ("Edit · Delete").
	actionsWidth = 14

	// minColumnWidth is the narrowest a data column shrinks to.
	minColumnWidth = 4

	// maxColumnWidth caps a column's natural width.
	maxColumnWidth = 40

	// columnGap separates adjacent columns.
	columnGap = 2

	// pageButtonSpan is how many numbered page buttons are shown at once.
	pageButtonSpan = 7
)
