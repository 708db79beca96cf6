package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/meigma/mimeguess/internal/mimedb"
	"github.com/meigma/mimeguess/lut"
)

// Records returns a small dictionary covering the interesting shapes: a
// single-type extension, a media type with several extensions, an extension
// shared by two media types and a media type without extensions.
func Records() []lut.Record {
	return []lut.Record{
		{MediaType: "application/octet-stream", Extensions: []string{"bin", "exe"}},
		{MediaType: "application/x-msdownload", Extensions: []string{"exe", "dll"}},
		{MediaType: "application/xml", Extensions: []string{"xml", "xsl"}},
		{MediaType: "image/gif", Extensions: []string{"gif"}},
		{MediaType: "text/plain", Extensions: []string{"txt", "text", "conf"}},
		{MediaType: "text/x-empty"},
		{MediaType: "text/xml", Extensions: []string{"xml"}},
		{MediaType: "video/3gpp", Extensions: []string{"3gp"}},
	}
}

// MustBuild builds records into a table, failing the test on error.
func MustBuild(tb testing.TB, records []lut.Record, opts ...lut.BuildOption) *lut.Table {
	tb.Helper()

	t, err := lut.Build(records, opts...)
	if err != nil {
		tb.Fatalf("build table: %v", err)
	}
	return t
}

// Expected inverts records naively, giving the media types every lower-cased
// extension should map to in declaration order.
func Expected(records []lut.Record) map[string][]string {
	out := make(map[string][]string)
	for _, r := range records {
		for _, ext := range r.Extensions {
			key := lower(ext)
			if !slices.Contains(out[key], r.MediaType) {
				out[key] = append(out[key], r.MediaType)
			}
		}
	}
	return out
}

// DatabasePath returns the path of the bundled mime-db database.
func DatabasePath(tb testing.TB) string {
	tb.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		tb.Fatal("locate testutil source")
	}
	path := filepath.Join(filepath.Dir(file), "..", "..", "data", "db.json")
	if _, err := os.Stat(path); err != nil {
		tb.Fatalf("bundled database: %v", err)
	}
	return path
}

// DatabaseRecords parses the bundled mime-db database.
func DatabaseRecords(tb testing.TB) []lut.Record {
	tb.Helper()

	records, err := mimedb.ParseFile(DatabasePath(tb))
	if err != nil {
		tb.Fatalf("parse bundled database: %v", err)
	}
	return records
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
