package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/memberadmin/internal/config"
	"github.com/five82/memberadmin/internal/roster"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatCSV, false},
		{"csv", FormatCSV, false},
		{" JSON ", FormatJSON, false},
		{"table", FormatTable, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q (err %v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func numbered(n int) roster.State {
	ds := roster.Dataset{Schema: roster.Schema{Fields: []string{"id", "name"}}}
	for i := 1; i <= n; i++ {
		ds.Records = append(ds.Records, roster.NewRecord(map[string]string{
			"id":   fmt.Sprint(i),
			"name": fmt.Sprintf("member %02d", i),
		}))
	}
	return roster.New(ds)
}

func TestWriteView_PageAndSearch(t *testing.T) {
	st := numbered(25)

	var buf bytes.Buffer
	if err := WriteView(&buf, st, 3, FormatCSV); err != nil {
		t.Fatalf("WriteView returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 || lines[0] != "id,name" || lines[1] != "21,member 21" {
		t.Fatalf("page 3 csv = %q, want header plus 5 rows from 21", lines)
	}

	buf.Reset()
	if err := WriteView(&buf, st.SetSearch("member 1"), 0, FormatCSV); err != nil {
		t.Fatalf("WriteView returned error: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 11 {
		t.Fatalf("search export lines = %d, want 11:\n%s", got, buf.String())
	}
}

func TestWriteView_JSONExcludesEditMarker(t *testing.T) {
	st := numbered(2).ToggleEdit("1")

	var buf bytes.Buffer
	if err := WriteView(&buf, st, 0, FormatJSON); err != nil {
		t.Fatalf("WriteView returned error: %v", err)
	}
	if strings.Contains(buf.String(), roster.FieldEditing) {
		t.Fatalf("export leaked edit marker: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"name": "member 01"`) {
		t.Fatalf("export = %s, want member 01", buf.String())
	}
}

func TestWriteView_UnknownFormat(t *testing.T) {
	if err := WriteView(&bytes.Buffer{}, numbered(1), 0, Format("xml")); err == nil {
		t.Fatalf("WriteView accepted unknown format")
	}
}

func TestExport_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","name":"Ann"},{"id":"2","name":"Bob"},{"id":"3","name":"Cat"}]`))
	}))
	defer server.Close()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(config.EnvLogFile, filepath.Join(dir, "memberadmin.log"))
	t.Setenv(config.EnvLogLevel, "error")

	var buf bytes.Buffer
	err := Export(context.Background(), ExportOptions{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		SourceURL:  server.URL,
		Search:     "a",
		Format:     FormatCSV,
	}, &buf)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if want := "id,name\n1,Ann\n3,Cat\n"; buf.String() != want {
		t.Fatalf("Export output = %q, want %q", buf.String(), want)
	}
}

func TestExport_LoadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(config.EnvLogFile, filepath.Join(dir, "memberadmin.log"))
	t.Setenv(config.EnvLogLevel, "fatal")

	err := Export(context.Background(), ExportOptions{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		SourceURL:  server.URL,
	}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "load members") {
		t.Fatalf("Export error = %v, want load failure", err)
	}
}
