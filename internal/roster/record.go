package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Well-known member fields.
const (
	FieldID      = "id"
	FieldEditing = "isEditing"
)

// ErrNotArray is returned by Decode when the payload is not a JSON array.
var ErrNotArray = errors.New("member payload is not a JSON array")

// Record is a single member entry. Field values are held in text form.
// Records are values: every mutation produces a copy.
type Record struct {
	id      string
	editing bool
	values  map[string]string
}

// NewRecord builds a record from text values. The id is taken from the "id"
// field; an "isEditing" key is never stored as a field.
func NewRecord(values map[string]string) Record {
	dup := make(map[string]string, len(values))
	for k, v := range values {
		if k == FieldEditing {
			continue
		}
		dup[k] = v
	}
	return Record{id: dup[FieldID], values: dup}
}

// ID returns the record's identity key.
func (r Record) ID() string { return r.id }

// Editing reports whether the row is in EDIT state.
func (r Record) Editing() bool { return r.editing }

// Value returns the text value of field, or "" when the record lacks it.
func (r Record) Value(field string) string { return r.values[field] }

// Has reports whether the record carries field.
func (r Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Values returns a copy of the record's fields.
func (r Record) Values() map[string]string {
	dup := make(map[string]string, len(r.values))
	for k, v := range r.values {
		dup[k] = v
	}
	return dup
}

func (r Record) withEditing(editing bool) Record {
	r.editing = editing
	return r
}

func (r Record) withValue(field, value string) Record {
	values := r.Values()
	values[field] = value
	r.values = values
	return r
}

// Schema is the ordered list of displayable field names.
type Schema struct {
	Fields []string
}

// Has reports whether field is part of the schema.
func (s Schema) Has(field string) bool {
	for _, f := range s.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// SchemaOf derives a schema from records. The first record fixes the leading
// column order; keys seen later are appended in first-seen order.
func SchemaOf(records []Record, firstKeys []string) Schema {
	seen := make(map[string]struct{})
	var fields []string
	add := func(k string) {
		if k == FieldEditing {
			return
		}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		fields = append(fields, k)
	}
	for _, k := range firstKeys {
		add(k)
	}
	for _, rec := range records {
		for _, k := range sortedKeys(rec.values) {
			add(k)
		}
	}
	return Schema{Fields: fields}
}

// Dataset is the decoded result of a member payload.
type Dataset struct {
	Schema  Schema
	Records []Record
	Skipped int // entries dropped for a missing or duplicate id
}

// Decode parses a JSON array of member objects, keeping each object's key
// order so the schema follows the payload.
func Decode(r io.Reader) (Dataset, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return Dataset{}, fmt.Errorf("read payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return Dataset{}, ErrNotArray
	}

	var (
		ds    Dataset
		ids   = make(map[string]struct{})
		order []string
		keyed = make(map[string]struct{})
	)
	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Dataset{}, fmt.Errorf("decode member: %w", err)
		}
		keys, rec, ok := decodeObject(raw)
		if !ok || rec.id == "" {
			ds.Skipped++
			continue
		}
		if _, dup := ids[rec.id]; dup {
			ds.Skipped++
			continue
		}
		ids[rec.id] = struct{}{}
		for _, k := range keys {
			if _, ok := keyed[k]; !ok {
				keyed[k] = struct{}{}
				order = append(order, k)
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	if _, err := dec.Token(); err != nil {
		return Dataset{}, fmt.Errorf("read payload: %w", err)
	}

	ds.Schema = SchemaOf(nil, order)
	return ds, nil
}

func decodeObject(raw json.RawMessage) ([]string, Record, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, Record{}, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, Record{}, false
	}

	var keys []string
	values := make(map[string]string)
	editing := false
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, Record{}, false
		}
		key, ok := tok.(string)
		if !ok {
			return nil, Record{}, false
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, Record{}, false
		}
		if key == FieldEditing {
			editing = strings.TrimSpace(string(val)) == "true"
			continue
		}
		if key == FieldID && strings.TrimSpace(string(val)) == "null" {
			continue
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = textOf(val)
	}

	rec := Record{id: values[FieldID], editing: editing, values: values}
	return keys, rec, true
}

// textOf renders a JSON value the way it reads in a browser cell.
func textOf(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err == nil {
			return buf.String()
		}
	case 't', 'f', 'n':
		return string(trimmed)
	default:
		if f, err := strconv.ParseFloat(string(trimmed), 64); err == nil {
			return formatNumber(f)
		}
	}
	return string(trimmed)
}

// formatNumber prints f in the shortest form a browser uses: plain digits
// for magnitudes in [1e-6, 1e21) and exponent form outside it.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
