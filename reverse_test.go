package mimeguess

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meigma/mimeguess/internal/testutil"
)

func TestExtensionsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mediaType string
		want      []string
	}{
		{mediaType: "image/jpeg", want: []string{"jpe", "jpeg", "jpg"}},
		{mediaType: "IMAGE/JPEG", want: []string{"jpe", "jpeg", "jpg"}},
		{mediaType: "text/plain; charset=utf-8", want: []string{"conf", "def", "in", "ini", "list", "log", "text", "txt"}},
		{mediaType: "text/xml", want: []string{"xml"}},
		{mediaType: "font/*", want: []string{"otf", "ttc", "ttf", "woff", "woff2"}},
		{mediaType: "application/x-unknown"},
		{mediaType: "image"},
		{mediaType: "/gif"},
		{mediaType: ""},
	}

	for _, tt := range tests {
		got := slices.Collect(ExtensionsFor(tt.mediaType))
		assert.Equal(t, tt.want, got, "media type %q", tt.mediaType)
	}
}

func TestExtensionsForWildcards(t *testing.T) {
	t.Parallel()

	images := slices.Collect(ExtensionsFor("image/*"))
	assert.Len(t, images, 66)
	assert.Contains(t, images, "gif")
	assert.NotContains(t, images, "txt")

	all := slices.Collect(ExtensionsFor("*/*"))
	assert.Len(t, all, Default().Len())
	assert.Equal(t, all, slices.Collect(ExtensionsFor("*")))
	assert.True(t, slices.IsSortedFunc(all, func(a, b string) int {
		return compareBucketOrder(a, b)
	}))
}

func TestExtensionsForYieldsEachExtensionOnce(t *testing.T) {
	t.Parallel()

	// "xml" maps to two application and text types; a wildcard matching both
	// must still yield it once.
	table := testutil.MustBuild(t, testutil.Records())
	got := slices.Collect(ExtensionsForIn(table, "*/*"))
	assert.Equal(t, []string{"3gp", "bin", "conf", "dll", "exe", "gif", "text", "txt", "xml", "xsl"}, got)

	assert.Equal(t, []string{"bin", "dll", "exe", "xml", "xsl"}, slices.Collect(ExtensionsForIn(table, "application/*")))
}

func TestExtensionsForNilTable(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"*/*", "image/*", "image/gif"} {
		assert.NotPanics(t, func() {
			assert.Empty(t, slices.Collect(ExtensionsForIn(nil, pattern)), pattern)
		})
	}
}

func TestExtensionsForStopsEarly(t *testing.T) {
	t.Parallel()

	n := 0
	for range ExtensionsFor("*/*") {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

// compareBucketOrder orders extensions the way the table stores them.
func compareBucketOrder(a, b string) int {
	ua, ub := upper(a[0]), upper(b[0])
	if ua != ub {
		return int(ua) - int(ub)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
