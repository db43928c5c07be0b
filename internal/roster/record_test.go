package roster

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecode_PreservesKeyOrderAndStringifies(t *testing.T) {
	payload := `[
		{"id": "1", "name": "Aaron Miles", "email": "aaron@mailinator.com", "role": "member"},
		{"id": 2, "name": "Aishwarya", "email": "aishwarya@mailinator.com", "role": "admin", "age": 31.50, "active": true, "team": null}
	]`

	ds, err := Decode(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if ds.Skipped != 0 {
		t.Fatalf("Skipped = %d, want 0", ds.Skipped)
	}

	wantFields := []string{"id", "name", "email", "role", "age", "active", "team"}
	if !reflect.DeepEqual(ds.Schema.Fields, wantFields) {
		t.Fatalf("Schema = %v, want %v", ds.Schema.Fields, wantFields)
	}
	if len(ds.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(ds.Records))
	}

	second := ds.Records[1]
	if second.ID() != "2" {
		t.Fatalf("ID = %q, want 2", second.ID())
	}
	checks := map[string]string{"age": "31.5", "active": "true", "team": "null", "role": "admin"}
	for field, want := range checks {
		if got := second.Value(field); got != want {
			t.Fatalf("Value(%q) = %q, want %q", field, got, want)
		}
	}
	if ds.Records[0].Has("age") {
		t.Fatalf("first record should not carry age")
	}
}

func TestDecode_EditingMarkerIsNotAField(t *testing.T) {
	ds, err := Decode(strings.NewReader(`[{"id":"1","isEditing":true,"name":"Ann"}]`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if ds.Schema.Has(FieldEditing) {
		t.Fatalf("schema %v should not include %s", ds.Schema.Fields, FieldEditing)
	}
	rec := ds.Records[0]
	if !rec.Editing() {
		t.Fatalf("Editing() = false, want true from payload marker")
	}
	if rec.Has(FieldEditing) {
		t.Fatalf("record should not store %s as a field", FieldEditing)
	}
}

func TestDecode_SkipsMissingAndDuplicateIDs(t *testing.T) {
	payload := `[{"id":"1","name":"a"},{"name":"no id"},{"id":null},{"id":"1","name":"dup"},"scalar",{"id":"2"}]`
	ds, err := Decode(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if ds.Skipped != 4 {
		t.Fatalf("Skipped = %d, want 4", ds.Skipped)
	}
	if len(ds.Records) != 2 || ds.Records[0].Value("name") != "a" || ds.Records[1].ID() != "2" {
		t.Fatalf("Records = %#v, want ids 1 and 2 with first name kept", ds.Records)
	}
}

func TestDecode_RejectsNonArray(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"items": []}`))
	if !errors.Is(err, ErrNotArray) {
		t.Fatalf("Decode error = %v, want ErrNotArray", err)
	}

	_, err = Decode(strings.NewReader(`[{"id":"1"}`))
	if err == nil {
		t.Fatalf("Decode returned nil error for truncated payload")
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	ds, err := Decode(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(ds.Records) != 0 || len(ds.Schema.Fields) != 0 {
		t.Fatalf("Dataset = %#v, want empty", ds)
	}
}

func TestTextOf(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"plain"`, "plain"},
		{`"esc\"aped"`, `esc"aped`},
		{`10`, "10"},
		{`1.250`, "1.25"},
		{`-3`, "-3"},
		{`-0`, "0"},
		{`1e21`, "1e+21"},
		{`-2.5e22`, "-2.5e+22"},
		{`1e20`, "100000000000000000000"},
		{`1e-7`, "1e-7"},
		{`1.5e-7`, "1.5e-7"},
		{`0.000001`, "0.000001"},
		{`false`, "false"},
		{`null`, "null"},
		{`{ "a" : [1, 2] }`, `{"a":[1,2]}`},
		{`  `, ""},
	}
	for _, tc := range cases {
		if got := textOf([]byte(tc.in)); got != tc.want {
			t.Fatalf("textOf(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDecode_LargeNumbersUseExponentForm(t *testing.T) {
	ds, err := Decode(strings.NewReader(`[{"id":1e21,"n":1e-7}]`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	rec := ds.Records[0]
	if rec.ID() != "1e+21" || rec.Value("n") != "1e-7" {
		t.Fatalf("record = %#v, want id 1e+21 and n 1e-7", rec)
	}
}

func TestNewRecord_CopiesValues(t *testing.T) {
	src := map[string]string{"id": "7", "name": "Ann", FieldEditing: "true"}
	rec := NewRecord(src)
	src["name"] = "changed"

	if rec.ID() != "7" || rec.Value("name") != "Ann" {
		t.Fatalf("record = %#v, want id 7 name Ann", rec)
	}
	if rec.Has(FieldEditing) || rec.Editing() {
		t.Fatalf("NewRecord should drop the edit marker")
	}

	vals := rec.Values()
	vals["name"] = "mutated"
	if rec.Value("name") != "Ann" {
		t.Fatalf("Values() should return a copy")
	}
}

func TestSchemaOf_AppendsLaterKeys(t *testing.T) {
	recs := []Record{
		NewRecord(map[string]string{"id": "1", "zeta": "z"}),
		NewRecord(map[string]string{"id": "2", "alpha": "a"}),
	}
	got := SchemaOf(recs, []string{"id", "name"}).Fields
	want := []string{"id", "name", "zeta", "alpha"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SchemaOf = %v, want %v", got, want)
	}
}
