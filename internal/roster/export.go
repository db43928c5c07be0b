package roster

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// WriteCSV writes records as CSV with a header row taken from schema.
// The edit marker is never written.
func WriteCSV(w io.Writer, schema Schema, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(schema.Fields); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	row := make([]string, len(schema.Fields))
	for _, rec := range records {
		for i, field := range schema.Fields {
			row[i] = rec.Value(field)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", rec.ID(), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteJSON writes records as a JSON array of objects whose keys follow the
// schema order. Fields a record lacks are omitted.
func WriteJSON(w io.Writer, schema Schema, records []Record) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("["); err != nil {
		return err
	}
	for i, rec := range records {
		if i > 0 {
			_, _ = bw.WriteString(",")
		}
		_, _ = bw.WriteString("\n  {")
		first := true
		for _, field := range schema.Fields {
			if !rec.Has(field) {
				continue
			}
			key, err := json.Marshal(field)
			if err != nil {
				return fmt.Errorf("encode key %q: %w", field, err)
			}
			val, err := json.Marshal(rec.Value(field))
			if err != nil {
				return fmt.Errorf("encode %s.%s: %w", rec.ID(), field, err)
			}
			if !first {
				_, _ = bw.WriteString(", ")
			}
			first = false
			_, _ = bw.Write(key)
			_, _ = bw.WriteString(": ")
			_, _ = bw.Write(val)
		}
		_, _ = bw.WriteString("}")
	}
	if len(records) > 0 {
		_, _ = bw.WriteString("\n")
	}
	_, _ = bw.WriteString("]\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush json: %w", err)
	}
	return nil
}

// WriteTable writes records as an aligned text table for reading in a
// terminal. Cells are not wrapped.
func WriteTable(w io.Writer, schema Schema, records []Record) error {
	var out strings.Builder
	table := tablewriter.NewWriter(&out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(schema.Fields)
	for _, rec := range records {
		row := make([]string, len(schema.Fields))
		for i, field := range schema.Fields {
			row[i] = rec.Value(field)
		}
		table.Append(row)
	}
	table.Render()

	if _, err := io.WriteString(w, out.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
