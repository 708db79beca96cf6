package lut

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"unicode/utf8"
)

// MaxIndex is the largest offset or count a packed index can hold.
const MaxIndex = math.MaxUint16

// IndexWidth is the size in bytes of one packed index.
const IndexWidth = 2

// Parts holds the packed arrays of a Table.
//
// Parts is the exchange format between the builder, generated Go source and
// the binary codec. See the package documentation for the meaning of each field.
type Parts struct {
	BucketOffset     byte
	BucketTable      []uint16
	ExtensionOffsets []uint16
	PackedExtensions string
	MimeIndexOffsets []uint16
	ExtensionMimes   []uint16
	MimeOffsets      []uint16
	PackedMimes      string
}

// Table is a packed extension to media type lookup table.
//
// Table is immutable and safe for concurrent use. The zero value, like a nil
// *Table, is an empty table on which every lookup misses.
type Table struct {
	bucketOffset     byte
	bucketTable      []uint16
	extensionOffsets []uint16
	packedExtensions string
	mimeIndexOffsets []uint16
	extensionMimes   []uint16
	mimeOffsets      []uint16
	packedMimes      string
}

// New validates p and returns a Table backed by it.
//
// The slices in p are retained by the table; callers must not modify them
// after calling New.
func New(p Parts) (*Table, error) {
	t := &Table{
		bucketOffset:     p.BucketOffset,
		bucketTable:      p.BucketTable,
		extensionOffsets: p.ExtensionOffsets,
		packedExtensions: p.PackedExtensions,
		mimeIndexOffsets: p.MimeIndexOffsets,
		extensionMimes:   p.ExtensionMimes,
		mimeOffsets:      p.MimeOffsets,
		packedMimes:      p.PackedMimes,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNew is like New but panics if p is not a valid table.
// It is intended for generated source.
func MustNew(p Parts) *Table {
	t, err := New(p)
	if err != nil {
		panic(err)
	}
	return t
}

// Parts returns a copy of the packed arrays.
func (t *Table) Parts() Parts {
	if t == nil {
		return Parts{}
	}
	return Parts{
		BucketOffset:     t.bucketOffset,
		BucketTable:      slices.Clone(t.bucketTable),
		ExtensionOffsets: slices.Clone(t.extensionOffsets),
		PackedExtensions: t.packedExtensions,
		MimeIndexOffsets: slices.Clone(t.mimeIndexOffsets),
		ExtensionMimes:   slices.Clone(t.extensionMimes),
		MimeOffsets:      slices.Clone(t.mimeOffsets),
		PackedMimes:      t.packedMimes,
	}
}

// Lookup returns the media types associated with ext.
//
// Matching is ASCII case-insensitive. Lookup reports false for an empty
// extension, an extension whose leading byte is not ASCII, and unknown
// extensions. It does not allocate.
func (t *Table) Lookup(ext string) (Mimes, bool) {
	if t == nil {
		return Mimes{}, false
	}
	bucket, ok := BucketIndex(t.bucketOffset, ext)
	if !ok {
		return Mimes{}, false
	}

	start, end, ok := packedRange(t.bucketTable, int(bucket))
	if !ok {
		return Mimes{}, false
	}

	for i := start; i < end; i++ {
		candidate, ok := t.Extension(i)
		if !ok {
			return Mimes{}, false
		}
		if !equalFoldASCII(candidate, ext) {
			continue
		}
		return t.mimesAt(i)
	}
	return Mimes{}, false
}

// Len returns the number of extensions in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return max(len(t.extensionOffsets)-1, 0)
}

// MediaTypeCount returns the number of distinct media types in the table.
func (t *Table) MediaTypeCount() int {
	if t == nil {
		return 0
	}
	return max(len(t.mimeOffsets)-1, 0)
}

// Extension returns the text of the i-th extension in table order.
// The returned string aliases the table.
func (t *Table) Extension(i int) (string, bool) {
	if t == nil {
		return "", false
	}
	start, end, ok := packedRange(t.extensionOffsets, i)
	if !ok || end > len(t.packedExtensions) {
		return "", false
	}
	return t.packedExtensions[start:end], true
}

// MediaType returns the j-th distinct media type.
// The returned string aliases the table.
func (t *Table) MediaType(j int) (string, bool) {
	if t == nil {
		return "", false
	}
	start, end, ok := packedRange(t.mimeOffsets, j)
	if !ok || end > len(t.packedMimes) {
		return "", false
	}
	return t.packedMimes[start:end], true
}

// All returns an iterator over every extension and its media types in table order.
func (t *Table) All() iter.Seq2[string, Mimes] {
	return func(yield func(string, Mimes) bool) {
		for i := range t.Len() {
			ext, ok := t.Extension(i)
			if !ok {
				return
			}
			mimes, ok := t.mimesAt(i)
			if !ok {
				return
			}
			if !yield(ext, mimes) {
				return
			}
		}
	}
}

// mimesAt returns the view over the media types of the i-th extension.
func (t *Table) mimesAt(i int) (Mimes, bool) {
	start, end, ok := packedRange(t.mimeIndexOffsets, i)
	if !ok || end > len(t.extensionMimes) {
		return Mimes{}, false
	}
	return Mimes{indices: t.extensionMimes[start:end:end], table: t}, true
}

// BucketIndex returns the bucket of ext relative to offset.
//
// The bucket is the ASCII upper-cased leading byte of ext minus offset. It
// reports false when ext is empty, its leading byte is not ASCII, or the
// bucket would fall below offset.
func BucketIndex(offset byte, ext string) (byte, bool) {
	if len(ext) == 0 || ext[0] >= utf8.RuneSelf {
		return 0, false
	}
	c := upperASCII(ext[0])
	if c < offset {
		return 0, false
	}
	return c - offset, true
}

// packedRange reads the range [indices[i], indices[i+1]).
func packedRange(indices []uint16, i int) (start, end int, ok bool) {
	if i < 0 || i >= len(indices)-1 {
		return 0, 0, false
	}
	start, end = int(indices[i]), int(indices[i+1])
	if start > end {
		if debugAssertions {
			panic(fmt.Sprintf("lut: offsets decrease at %d: %d > %d", i, start, end))
		}
		return 0, 0, false
	}
	return start, end, true
}

func upperASCII(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// equalFoldASCII reports whether a and b are equal under ASCII case folding.
// Bytes outside ASCII must match exactly.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range len(a) {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

// compareFoldASCII orders a and b byte-wise under ASCII lower-casing.
func compareFoldASCII(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// toLowerASCII returns s with ASCII letters lower-cased.
// s is returned unchanged when it holds no upper-case ASCII.
func toLowerASCII(s string) string {
	upper := false
	for i := range len(s) {
		if 'A' <= s[i] && s[i] <= 'Z' {
			upper = true
			break
		}
	}
	if !upper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		b[i] = lowerASCII(c)
	}
	return string(b)
}
