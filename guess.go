package mimeguess

import (
	"iter"
	"strings"

	"github.com/meigma/mimeguess/lut"
)

// Fallback media types.
const (
	// OctetStream is the media type for arbitrary binary data.
	OctetStream = "application/octet-stream"

	// TextPlain is the media type for plain text.
	TextPlain = "text/plain"
)

// Guess is the result of guessing the media types of an extension or path.
//
// A Guess aliases the table it came from and does not allocate. The zero
// value is an empty guess.
type Guess struct {
	mimes lut.Mimes
}

// FromExt guesses media types for an extension given without a leading dot.
func FromExt(ext string) Guess {
	return FromExtIn(defaultTable, ext)
}

// FromExtIn is like FromExt but looks ext up in t. A nil t guesses nothing.
func FromExtIn(t *lut.Table, ext string) Guess {
	mimes, ok := t.Lookup(ext)
	if !ok {
		return Guess{}
	}
	return Guess{mimes: mimes}
}

// FromPath guesses media types from the extension of a slash- or
// OS-separated path. See Extension for how the extension is found.
func FromPath(path string) Guess {
	return FromPathIn(defaultTable, path)
}

// FromPathIn is like FromPath but looks the extension up in t.
func FromPathIn(t *lut.Table, path string) Guess {
	ext, ok := Extension(path)
	if !ok {
		return Guess{}
	}
	return FromExtIn(t, ext)
}

// Extension returns the extension of the last element of path, without the
// dot.
//
// A name whose only dot is its first byte (".bashrc") has no extension, and
// neither does a name ending in a dot.
func Extension(path string) (string, bool) {
	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return "", false
	}
	return name[dot+1:], true
}

// First returns the most likely media type.
func (g Guess) First() (string, bool) {
	return g.mimes.Get(0)
}

// FirstOr returns the most likely media type, or def if there is none.
func (g Guess) FirstOr(def string) string {
	if mime, ok := g.First(); ok {
		return mime
	}
	return def
}

// FirstOrOctetStream returns the most likely media type, or OctetStream.
func (g Guess) FirstOrOctetStream() string {
	return g.FirstOr(OctetStream)
}

// FirstOrTextPlain returns the most likely media type, or TextPlain.
func (g Guess) FirstOrTextPlain() string {
	return g.FirstOr(TextPlain)
}

// Len returns the number of guessed media types.
func (g Guess) Len() int {
	return g.mimes.Len()
}

// IsEmpty reports whether nothing was guessed.
func (g Guess) IsEmpty() bool {
	return g.mimes.IsEmpty()
}

// All returns an iterator over the guessed media types, best first.
func (g Guess) All() iter.Seq[string] {
	return g.mimes.All()
}

// Mimes returns the underlying table view.
func (g Guess) Mimes() lut.Mimes {
	return g.mimes
}
