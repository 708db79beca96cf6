package mimedb

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/meigma/mimeguess/lut"
)

// entry is one media type in db.json. Fields other than extensions
// (source, charset, compressible) are ignored.
type entry struct {
	Extensions []string `json:"extensions,omitempty"`
}

// Parse decodes a mime-db database into records sorted by media type.
// Media types without extensions are kept; the builder skips them.
func Parse(r io.Reader) ([]lut.Record, error) {
	var db map[string]entry
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		return nil, fmt.Errorf("mimedb: decode: %w", err)
	}
	if len(db) == 0 {
		return nil, ErrEmptyDatabase
	}

	records := make([]lut.Record, 0, len(db))
	for mediaType, e := range db {
		records = append(records, lut.Record{MediaType: mediaType, Extensions: e.Extensions})
	}
	lut.SortRecords(records)
	return records, nil
}

// ParseFile opens and parses the database at path.
func ParseFile(path string) ([]lut.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Merge concatenates record sets in argument order.
//
// Earlier sets declare their media types first, so for an extension present
// in several sets the earlier media types are listed first.
func Merge(sets ...[]lut.Record) []lut.Record {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make([]lut.Record, 0, n)
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// Stats summarizes a record set.
type Stats struct {
	MediaTypes     int
	WithExtensions int
	Extensions     int
}

// Summarize counts media types and extension declarations in records.
func Summarize(records []lut.Record) Stats {
	var s Stats
	for _, r := range records {
		s.MediaTypes++
		if len(r.Extensions) > 0 {
			s.WithExtensions++
		}
		s.Extensions += len(r.Extensions)
	}
	return s
}
