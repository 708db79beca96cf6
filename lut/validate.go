package lut

import "fmt"

// Validate checks every structural invariant of the table.
//
// Lookups never depend on Validate: malformed ranges degrade to misses. New,
// Decode and Encode call it so that a table which passes is fully consistent.
func (t *Table) Validate() error {
	if t == nil {
		return corrupt("nil table")
	}
	n := len(t.extensionOffsets) - 1
	if n < 1 {
		return corrupt("no extensions")
	}
	if len(t.mimeIndexOffsets) != n+1 {
		return corrupt("mime index offsets: have %d entries, want %d", len(t.mimeIndexOffsets), n+1)
	}
	if len(t.mimeOffsets) < 2 {
		return corrupt("no media types")
	}

	if err := checkOffsets("extension offsets", t.extensionOffsets, len(t.packedExtensions)); err != nil {
		return err
	}
	if err := checkOffsets("mime index offsets", t.mimeIndexOffsets, len(t.extensionMimes)); err != nil {
		return err
	}
	if err := checkOffsets("mime offsets", t.mimeOffsets, len(t.packedMimes)); err != nil {
		return err
	}
	if err := checkOffsets("bucket table", t.bucketTable, n); err != nil {
		return err
	}

	m := t.MediaTypeCount()
	for i, idx := range t.extensionMimes {
		if int(idx) >= m {
			return corrupt("extension mime %d references media type %d of %d", i, idx, m)
		}
	}

	return t.checkBuckets()
}

// checkBuckets verifies that every extension sits in the bucket of its leading
// byte and that each bucket is strictly ordered, which also rules out duplicates.
func (t *Table) checkBuckets() error {
	for b := range len(t.bucketTable) - 1 {
		start, end := int(t.bucketTable[b]), int(t.bucketTable[b+1])
		prev := ""
		for i := start; i < end; i++ {
			ext, _ := t.Extension(i)
			got, ok := BucketIndex(t.bucketOffset, ext)
			if !ok || int(got) != b {
				return corrupt("extension %d (%q) stored in bucket %d", i, ext, b)
			}
			if i > start && compareFoldASCII(prev, ext) >= 0 {
				return corrupt("extension %d (%q) out of order after %q", i, ext, prev)
			}
			prev = ext
		}
	}
	return nil
}

// checkOffsets verifies an offset array starts at zero, never decreases and
// ends exactly at limit.
func checkOffsets(name string, offsets []uint16, limit int) error {
	if len(offsets) < 2 {
		return corrupt("%s: have %d entries, want at least 2", name, len(offsets))
	}
	if offsets[0] != 0 {
		return corrupt("%s: first entry is %d, want 0", name, offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return corrupt("%s: entry %d (%d) below entry %d (%d)", name, i, offsets[i], i-1, offsets[i-1])
		}
	}
	if last := int(offsets[len(offsets)-1]); last != limit {
		return corrupt("%s: last entry is %d, want %d", name, last, limit)
	}
	return nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptTable, fmt.Sprintf(format, args...))
}
