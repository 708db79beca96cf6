package mimeguess

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/mimeguess/internal/testutil"
)

func TestFromExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext  string
		want []string
	}{
		{ext: "gif", want: []string{"image/gif"}},
		{ext: "GIF", want: []string{"image/gif"}},
		{ext: "txt", want: []string{"text/plain"}},
		{ext: "xml", want: []string{"application/xml", "text/xml"}},
		{ext: "exe", want: []string{"application/octet-stream", "application/x-msdos-program", "application/x-msdownload"}},
		{ext: "Mp3", want: []string{"audio/mp3", "audio/mpeg"}},
		{ext: "123", want: []string{"application/vnd.lotus-1-2-3"}},
		{ext: "7z", want: []string{"application/x-7z-compressed"}},
		{ext: "woff2", want: []string{"font/woff2"}},
		{ext: "md", want: []string{"text/markdown"}},
		{ext: ""},
		{ext: "zzzzznotreal"},
		{ext: "∅nonascii"},
		{ext: ".gif"},
		{ext: "gif "},
	}

	for _, tt := range tests {
		g := FromExt(tt.ext)
		assert.Equal(t, len(tt.want), g.Len(), "ext %q", tt.ext)
		if tt.want == nil {
			assert.True(t, g.IsEmpty(), "ext %q", tt.ext)
			continue
		}
		assert.Equal(t, tt.want, slices.Collect(g.All()), "ext %q", tt.ext)
	}
}

func TestFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "/path/to/file.gif", want: "image/gif"},
		{path: "file.GIF", want: "image/gif"},
		{path: "archive.tar.gz", want: "application/gzip"},
		{path: `C:\Users\me\notes.txt`, want: "text/plain"},
		{path: "dir.d/README", want: OctetStream},
		{path: ".bashrc", want: OctetStream},
		{path: "trailing.", want: OctetStream},
		{path: "dir/.gif", want: OctetStream},
		{path: "", want: OctetStream},
		{path: "file.unknownext", want: OctetStream},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FromPath(tt.path).FirstOrOctetStream(), "path %q", tt.path)
	}
}

func TestExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{path: "a.txt", want: "txt", ok: true},
		{path: "a.b.c", want: "c", ok: true},
		{path: "/x.y/z", ok: false},
		{path: `x\y.md`, want: "md", ok: true},
		{path: "..md", want: "md", ok: true},
		{path: ".hidden", ok: false},
		{path: "name.", ok: false},
		{path: "noext", ok: false},
		{path: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := Extension(tt.path)
		assert.Equal(t, tt.ok, ok, "path %q", tt.path)
		assert.Equal(t, tt.want, got, "path %q", tt.path)
	}
}

func TestGuessFallbacks(t *testing.T) {
	t.Parallel()

	var empty Guess
	assert.True(t, empty.IsEmpty())
	_, ok := empty.First()
	assert.False(t, ok)
	assert.Equal(t, OctetStream, empty.FirstOrOctetStream())
	assert.Equal(t, TextPlain, empty.FirstOrTextPlain())
	assert.Equal(t, "x/y", empty.FirstOr("x/y"))
	assert.Empty(t, slices.Collect(empty.All()))

	g := FromExt("xml")
	first, ok := g.First()
	require.True(t, ok)
	assert.Equal(t, "application/xml", first)
	assert.Equal(t, "application/xml", g.FirstOrTextPlain())
	assert.Equal(t, 2, g.Mimes().Len())
}

func TestGuessInCustomTable(t *testing.T) {
	t.Parallel()

	table := testutil.MustBuild(t, testutil.Records())

	assert.Equal(t, "application/octet-stream", FromExtIn(table, "EXE").FirstOrTextPlain())
	assert.Equal(t, []string{"application/xml", "text/xml"}, slices.Collect(FromPathIn(table, "feed.xml").All()))
	assert.True(t, FromExtIn(table, "html").IsEmpty(), "custom table does not fall back to the default")
	assert.True(t, FromPathIn(table, "noext").IsEmpty())

	// The same view compares equal across lookups in one table.
	assert.True(t, FromExtIn(table, "txt").Mimes().Equal(FromExtIn(table, "TEXT").Mimes()))
	assert.False(t, FromExtIn(table, "txt").Mimes().Equal(FromExt("txt").Mimes()))
}

func TestGuessInNilTable(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		g := FromExtIn(nil, "gif")
		assert.True(t, g.IsEmpty())
		assert.Equal(t, "application/octet-stream", g.FirstOrOctetStream())
		assert.True(t, FromPathIn(nil, "photo.gif").IsEmpty())
	})
}

func TestFromExtDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = FromPath("/var/www/Index.HTML").FirstOrOctetStream()
		_ = FromExt("zzzzznotreal").FirstOrOctetStream()
	})
	assert.Zero(t, allocs)
}
