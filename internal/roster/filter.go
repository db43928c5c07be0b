package roster

import "strings"

// Filter returns the records where any field's text contains term,
// ignoring case. An empty term keeps every record. Order is preserved and
// the input slice is never modified.
func Filter(records []Record, term string) []Record {
	needle := strings.ToLower(term)
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.Matches(needle) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether any field value contains needle. The needle must
// already be lower-cased.
func (r Record) Matches(needle string) bool {
	if needle == "" {
		return true
	}
	for _, v := range r.values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
