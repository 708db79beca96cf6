package lut

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGoSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteGoSource(&buf, MustNew(gifTextParts()), GoSource{
		Package: "mimetypes",
		Var:     "builtin",
		Source:  "testdata",
	})
	require.NoError(t, err)

	src := buf.String()
	assert.True(t, strings.HasPrefix(src, "// Code generated by build-lut from testdata; DO NOT EDIT.\n"))
	assert.Contains(t, src, "package mimetypes\n")
	assert.Contains(t, src, `import "github.com/meigma/mimeguess/lut"`)
	assert.Contains(t, src, "// builtin holds 3 extensions and 2 media types.\n")
	assert.Contains(t, src, "var builtin = lut.MustNew(lut.Parts{\n")
	assert.Contains(t, src, "\tBucketOffset: 71,\n")
	assert.Contains(t, src, "\tPackedExtensions: \"giftexttxt\",\n")
	assert.Contains(t, src, "\tPackedMimes: \"image/giftext/plain\",\n")
	assert.Contains(t, src, "\tExtensionOffsets: []uint16{\n\t\t0, 3, 7, 10,\n\t},\n")

	f, err := parser.ParseFile(token.NewFileSet(), "table.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "mimetypes", f.Name.Name)
}

func TestWriteGoSourceInPackageLUT(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteGoSource(&buf, MustNew(gifTextParts()), GoSource{Package: "lut"})
	require.NoError(t, err)

	src := buf.String()
	assert.True(t, strings.HasPrefix(src, "// Code generated by build-lut; DO NOT EDIT.\n"))
	assert.NotContains(t, src, "import")
	assert.Contains(t, src, "var table = MustNew(Parts{\n")
}

func TestWriteGoSourceWrapsLines(t *testing.T) {
	t.Parallel()

	exts := make([]string, 40)
	for i := range exts {
		exts[i] = "x" + string(rune('a'+i%26)) + string(rune('a'+i/26))
	}
	table, err := Build([]Record{{MediaType: "application/x-test", Extensions: exts}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGoSource(&buf, table, GoSource{Package: "p"}))

	for line := range strings.Lines(buf.String()) {
		if !strings.HasPrefix(line, "\t\t") {
			continue
		}
		assert.LessOrEqual(t, strings.Count(line, ","), valuesPerLine, "line %q", line)
	}
}

func TestWriteGoSourceRequiresPackage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteGoSource(&buf, MustNew(gifTextParts()), GoSource{})
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestWriteGoSourceRejectsInvalidTable(t *testing.T) {
	t.Parallel()

	for _, table := range []*Table{nil, {}} {
		var buf bytes.Buffer
		err := WriteGoSource(&buf, table, GoSource{Package: "p"})
		require.ErrorIs(t, err, ErrCorruptTable)
		assert.Zero(t, buf.Len())
	}
}
