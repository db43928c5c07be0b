package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/five82/memberadmin/internal/roster"
	"github.com/five82/memberadmin/internal/state"
)

// Format selects the export encoding.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat maps a flag value onto a Format. Empty selects CSV.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatCSV):
		return FormatCSV, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatTable):
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv, json or table)", s)
	}
}

// ExportOptions configure a non-interactive export.
type ExportOptions struct {
	ConfigPath string
	SourceURL  string
	Search     string
	Page       int // zero exports every matching record
	Format     Format
}

// Export loads the member list once, applies the search term and optional
// page, and writes the resulting view to w.
func Export(ctx context.Context, opts ExportOptions, w io.Writer) error {
	rt, err := boot(opts.ConfigPath, opts.SourceURL, true)
	if err != nil {
		return err
	}
	defer rt.flush()

	store := &state.Store{}
	if err := LoadMembers(ctx, store, rt.client, rt.log); err != nil {
		return fmt.Errorf("load members: %w", err)
	}

	st := store.Apply(func(st roster.State) roster.State {
		return st.SetSearch(opts.Search)
	})
	return WriteView(w, st, opts.Page, opts.Format)
}

// WriteView encodes the filtered view of st. A positive page limits output
// to that page, clamped to the available range.
func WriteView(w io.Writer, st roster.State, page int, format Format) error {
	rows := st.Filtered()
	if page > 0 {
		rows = st.GoToPage(page).Visible()
	}

	switch format {
	case FormatJSON:
		return roster.WriteJSON(w, st.Schema(), rows)
	case FormatTable:
		return roster.WriteTable(w, st.Schema(), rows)
	case FormatCSV, "":
		return roster.WriteCSV(w, st.Schema(), rows)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
