package lut

import (
	"iter"
	"slices"
	"strings"
)

// Mimes is a read-only view of the media types associated with one extension.
//
// Media types are in the order they were declared in the builder input. The
// view aliases its Table and never copies media type text. The zero value is
// an empty view.
type Mimes struct {
	indices []uint16
	table   *Table
}

// Len returns the number of media types in the view.
func (m Mimes) Len() int {
	return len(m.indices)
}

// IsEmpty reports whether the view holds no media types.
func (m Mimes) IsEmpty() bool {
	return len(m.indices) == 0
}

// Get returns the i-th media type.
// It reports false when i is out of range.
func (m Mimes) Get(i int) (string, bool) {
	if i < 0 || i >= len(m.indices) {
		return "", false
	}
	return m.table.MediaType(int(m.indices[i]))
}

// All returns an iterator over the media types in order.
func (m Mimes) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range m.indices {
			mime, ok := m.Get(i)
			if !ok {
				return
			}
			if !yield(mime) {
				return
			}
		}
	}
}

// Strings returns a newly allocated slice of the media types.
func (m Mimes) Strings() []string {
	out := make([]string, 0, len(m.indices))
	for mime := range m.All() {
		out = append(out, mime)
	}
	return out
}

// Equal reports whether m and other refer to the same media types of the same
// Table.
//
// Equal compares table identity and media type indices, not text: views over
// two tables with identical content are not equal.
func (m Mimes) Equal(other Mimes) bool {
	return m.table == other.table && slices.Equal(m.indices, other.indices)
}

// String formats the view as a bracketed, space-separated list.
func (m Mimes) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range m.indices {
		if i > 0 {
			sb.WriteByte(' ')
		}
		mime, _ := m.Get(i)
		sb.WriteString(mime)
	}
	sb.WriteByte(']')
	return sb.String()
}
