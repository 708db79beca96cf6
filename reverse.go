package mimeguess

import (
	"iter"
	"strings"

	"github.com/meigma/mimeguess/lut"
)

// ExtensionsFor returns an iterator over the extensions registered for
// mediaType in the embedded table.
//
// mediaType is "type/subtype", "type/*" for every subtype of a top-level
// type, or "*/*" (or "*") for every extension. Matching is case-insensitive
// and parameters such as "; charset=utf-8" are ignored. Extensions are
// yielded in table order, each at most once.
func ExtensionsFor(mediaType string) iter.Seq[string] {
	return ExtensionsForIn(defaultTable, mediaType)
}

// ExtensionsForIn is like ExtensionsFor but searches t. A nil t has no
// extensions.
func ExtensionsForIn(t *lut.Table, mediaType string) iter.Seq[string] {
	match := mediaTypeMatcher(mediaType)
	return func(yield func(string) bool) {
		if match == nil {
			return
		}
		for ext, mimes := range t.All() {
			for mime := range mimes.All() {
				if !match(mime) {
					continue
				}
				if !yield(ext) {
					return
				}
				break
			}
		}
	}
}

// mediaTypeMatcher returns a predicate for pattern, or nil if pattern cannot
// match anything.
func mediaTypeMatcher(pattern string) func(string) bool {
	if i := strings.IndexByte(pattern, ';'); i >= 0 {
		pattern = pattern[:i]
	}
	pattern = strings.TrimSpace(pattern)

	if pattern == "*" || pattern == "*/*" {
		return func(string) bool { return true }
	}

	top, sub, ok := strings.Cut(pattern, "/")
	if !ok || top == "" || sub == "" {
		return nil
	}
	if sub == "*" {
		return func(mime string) bool {
			mtop, _, _ := strings.Cut(mime, "/")
			return strings.EqualFold(mtop, top)
		}
	}
	return func(mime string) bool {
		return strings.EqualFold(mime, pattern)
	}
}
