package roster

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	records := []Record{
		NewRecord(map[string]string{"id": "1", "name": "Aaron Miles", "email": "aaron@mailinator.com", "role": "member"}),
		NewRecord(map[string]string{"id": "2", "name": "Aishwarya Naik", "email": "aishwarya@mailinator.com", "role": "member"}),
		NewRecord(map[string]string{"id": "3", "name": "Arvind Kumar", "email": "arvind@mailinator.com", "role": "admin"}),
		NewRecord(map[string]string{"id": "14", "name": "Caterina", "email": "cat@mailinator.com", "role": "member"}),
	}

	cases := []struct {
		name string
		term string
		want []string
	}{
		{"empty matches all", "", []string{"1", "2", "3", "14"}},
		{"case insensitive", "ADMIN", []string{"3"}},
		{"any field", "cat@", []string{"14"}},
		{"id is searchable", "14", []string{"14"}},
		{"substring in several", "ar", []string{"1", "2", "3"}},
		{"no match", "zzz", []string{}},
		{"whitespace is literal", " kumar", []string{"3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(records, tc.term))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tc.term, got, tc.want)
			}
		})
	}
}

func TestFilter_IdempotentAndOrderPreserving(t *testing.T) {
	records := numberedDataset(30).Records
	once := Filter(records, "1")
	twice := Filter(once, "1")
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("Filter not idempotent: %v vs %v", ids(once), ids(twice))
	}

	pos := make(map[string]int, len(records))
	for i, rec := range records {
		pos[rec.ID()] = i
	}
	for i := 1; i < len(once); i++ {
		if pos[once[i-1].ID()] >= pos[once[i].ID()] {
			t.Fatalf("Filter reordered records: %v", ids(once))
		}
	}
}
