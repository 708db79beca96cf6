package mimeguess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/mimeguess/internal/testutil"
	"github.com/meigma/mimeguess/lut"
)

func TestDefaultTable(t *testing.T) {
	t.Parallel()

	table := Default()
	require.NoError(t, table.Validate())
	assert.Equal(t, 1079, table.Len())
	assert.Equal(t, 850, table.MediaTypeCount())
	assert.Same(t, table, Default())
}

// TestDefaultTableIsCurrent fails when table_data.go is stale; run
// go generate to refresh it.
func TestDefaultTableIsCurrent(t *testing.T) {
	t.Parallel()

	built := testutil.MustBuild(t, testutil.DatabaseRecords(t))
	assert.Equal(t, built.Parts(), Default().Parts())
}

func TestDefaultTableMatchesDatabase(t *testing.T) {
	t.Parallel()

	expected := testutil.Expected(testutil.DatabaseRecords(t))
	require.Len(t, expected, Default().Len())

	for ext, want := range expected {
		for _, variant := range caseVariants(ext) {
			got := FromExt(variant)
			require.False(t, got.IsEmpty(), "ext %q", variant)
			assert.Equal(t, want, got.Mimes().Strings(), "ext %q", variant)
		}
	}

	for ext := range Default().All() {
		_, ok := expected[ext]
		assert.True(t, ok, "table has unexpected extension %q", ext)
	}
}

func TestDefaultTableArtifactRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range []lut.Compression{lut.CompressionNone, lut.CompressionZstd} {
		data, err := lut.Encode(Default(), lut.EncodeWithCompression(c))
		require.NoError(t, err)

		loaded, err := lut.Decode(data, lut.DecodeWithDigest(lut.Digest(data)))
		require.NoError(t, err)
		assert.Equal(t, Default().Parts(), loaded.Parts())
		assert.Equal(t, "image/gif", FromPathIn(loaded, "a/b.GIF").FirstOrOctetStream())
	}
}

func TestReexportedErrors(t *testing.T) {
	t.Parallel()

	_, err := lut.Build(nil)
	require.ErrorIs(t, err, ErrEmptyDictionary)

	_, err = lut.Build([]lut.Record{{MediaType: "text/plain", Extensions: []string{""}}})
	require.ErrorIs(t, err, ErrInvalidExtension)

	_, err = lut.Decode([]byte("junk"))
	require.ErrorIs(t, err, ErrCorruptTable)
}

// caseVariants returns ext lower-cased, upper-cased and with alternating case.
func caseVariants(ext string) []string {
	upperExt := []byte(ext)
	mixed := []byte(ext)
	for i, c := range upperExt {
		upperExt[i] = upper(c)
		if i%2 == 0 {
			mixed[i] = upper(c)
		}
	}
	return []string{ext, string(upperExt), string(mixed)}
}
