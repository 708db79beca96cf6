package lut

import (
	"bytes"
	"math/rand/v2"
	"strconv"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
	digest "github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/mimeguess/lut/internal/fb"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	table, err := Build(sampleRecords())
	require.NoError(t, err)

	for _, c := range []Compression{CompressionNone, CompressionZstd} {
		t.Run(c.String(), func(t *testing.T) {
			t.Parallel()

			data, err := Encode(table, EncodeWithCompression(c))
			require.NoError(t, err)
			assert.Equal(t, c == CompressionZstd, bytes.HasPrefix(data, zstdMagic))

			got, err := Decode(data, DecodeWithDigest(Digest(data)))
			require.NoError(t, err)
			assert.Equal(t, table.Parts(), got.Parts())

			mimes, ok := got.Lookup("XML")
			require.True(t, ok)
			assert.Equal(t, []string{"application/xml", "text/xml"}, mimes.Strings())
		})
	}
}

func TestEncodeUnknownCompression(t *testing.T) {
	t.Parallel()

	_, err := Encode(MustNew(gifTextParts()), EncodeWithCompression(Compression(9)))
	require.Error(t, err)
	assert.Equal(t, "unknown", Compression(9).String())
}

func TestEncodeRejectsInvalidTable(t *testing.T) {
	t.Parallel()

	for _, table := range []*Table{nil, {}} {
		data, err := Encode(table)
		require.ErrorIs(t, err, ErrCorruptTable)
		assert.Nil(t, data)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	t.Parallel()

	table := MustNew(gifTextParts())
	a, err := Encode(table)
	require.NoError(t, err)
	b, err := Encode(table)
	require.NoError(t, err)
	assert.Equal(t, Digest(a), Digest(b))
}

func TestDecodeDigest(t *testing.T) {
	t.Parallel()

	data, err := Encode(MustNew(gifTextParts()))
	require.NoError(t, err)

	d := Digest(data)
	assert.Equal(t, digest.SHA256, d.Algorithm())

	_, err = Decode(data, DecodeWithDigest(digest.FromString("something else")))
	require.ErrorIs(t, err, ErrDigestMismatch)

	_, err = Decode(data, DecodeWithDigest(digest.Digest("sha256:nothex")))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDigestMismatch)
}

func TestDecodeRejectsVersionAndWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version uint32
		width   byte
		wantErr error
	}{
		{name: "future version", version: FormatVersion + 1, width: IndexWidth, wantErr: ErrUnsupportedVersion},
		{name: "missing version", version: 0, width: IndexWidth, wantErr: ErrUnsupportedVersion},
		{name: "wide indices", version: FormatVersion, width: 4, wantErr: ErrIndexWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := buildArtifact(gifTextParts(), tt.version, tt.width)
			_, err := Decode(data)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeValidatesTable(t *testing.T) {
	t.Parallel()

	p := gifTextParts()
	p.ExtensionMimes = []uint16{0, 5, 1}
	_, err := Decode(buildArtifact(p, FormatVersion, IndexWidth))
	require.ErrorIs(t, err, ErrCorruptTable)
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	valid, err := Encode(MustNew(gifTextParts()))
	require.NoError(t, err)

	inputs := map[string][]byte{
		"empty":     nil,
		"short":     {1, 2},
		"zeros":     make([]byte, 64),
		"ones":      bytes.Repeat([]byte{0xff}, 64),
		"truncated": valid[:len(valid)/2],
	}
	for i := 1; i < len(valid); i++ {
		inputs["prefix "+strconv.Itoa(i)] = valid[:i]
	}

	for name, data := range inputs {
		assert.NotPanics(t, func() {
			table, err := Decode(data)
			assert.Error(t, err, name)
			assert.Nil(t, table, name)
		}, name)
	}
}

func TestDecodeIgnoresBytesPastLength(t *testing.T) {
	t.Parallel()

	valid, err := Encode(MustNew(gifTextParts()))
	require.NoError(t, err)

	// The sub-slices share valid's backing array, so the missing tail is
	// still within their capacity.
	for _, cut := range []int{1, 2, 5} {
		data := valid[:len(valid)-cut]
		require.Greater(t, cap(data), len(data))

		table, err := Decode(data)
		require.ErrorIs(t, err, ErrCorruptTable, "cut %d", cut)
		assert.Nil(t, table)
	}

	// The packed mimes string is written first, so it ends the buffer.
	_, err = Decode(valid[:len(valid)-1])
	assert.ErrorContains(t, err, "packed mimes not terminated")
}

func TestDecodeRandomBytesNeverPanics(t *testing.T) {
	t.Parallel()

	valid, err := Encode(MustNew(gifTextParts()))
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		data := bytes.Clone(valid)
		for range 1 + rng.IntN(4) {
			data[rng.IntN(len(data))] = byte(rng.Uint32())
		}
		assert.NotPanics(t, func() {
			if table, err := Decode(data); err == nil {
				// Anything that decodes must be a valid table.
				assert.NoError(t, table.Validate())
			}
		})
	}
}

func TestDecodeZstdErrors(t *testing.T) {
	t.Parallel()

	table, err := Build(sampleRecords())
	require.NoError(t, err)
	data, err := Encode(table, EncodeWithCompression(CompressionZstd))
	require.NoError(t, err)

	_, err = Decode(data[:len(data)-3])
	require.ErrorIs(t, err, ErrDecompression)

	// Garbage after the frame magic is not a valid frame.
	_, err = Decode(append(bytes.Clone(zstdMagic), 0xde, 0xad, 0xbe, 0xef))
	require.ErrorIs(t, err, ErrDecompression)
}

func TestDecodeMaxSize(t *testing.T) {
	t.Parallel()

	raw := buildArtifact(gifTextParts(), FormatVersion, IndexWidth)
	padded := append(bytes.Clone(raw), make([]byte, 1<<16)...)

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	data := enc.EncodeAll(padded, nil)
	require.NoError(t, enc.Close())

	_, err = Decode(data, DecodeWithMaxSize(1<<10))
	require.ErrorIs(t, err, ErrDecompression)

	// Trailing bytes after the FlatBuffers root are ignored.
	got, err := Decode(data, DecodeWithMaxSize(0))
	require.NoError(t, err)
	assert.Equal(t, gifTextParts(), got.Parts())
}

// buildArtifact encodes p with an arbitrary header, bypassing validation.
func buildArtifact(p Parts, version uint32, width byte) []byte {
	b := flatbuffers.NewBuilder(256)

	vec := func(start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT, v []uint16) flatbuffers.UOffsetT {
		return uint16Vector(b, start, v)
	}
	packedMimes := b.CreateString(p.PackedMimes)
	mimeOffsets := vec(fb.PackedTableStartMimeOffsetsVector, p.MimeOffsets)
	extensionMimes := vec(fb.PackedTableStartExtensionMimesVector, p.ExtensionMimes)
	mimeIndexOffsets := vec(fb.PackedTableStartMimeIndexOffsetsVector, p.MimeIndexOffsets)
	packedExtensions := b.CreateString(p.PackedExtensions)
	extensionOffsets := vec(fb.PackedTableStartExtensionOffsetsVector, p.ExtensionOffsets)
	bucketTable := vec(fb.PackedTableStartBucketTableVector, p.BucketTable)

	fb.PackedTableStart(b)
	fb.PackedTableAddVersion(b, version)
	fb.PackedTableAddIndexWidth(b, width)
	fb.PackedTableAddBucketOffset(b, p.BucketOffset)
	fb.PackedTableAddBucketTable(b, bucketTable)
	fb.PackedTableAddExtensionOffsets(b, extensionOffsets)
	fb.PackedTableAddPackedExtensions(b, packedExtensions)
	fb.PackedTableAddMimeIndexOffsets(b, mimeIndexOffsets)
	fb.PackedTableAddExtensionMimes(b, extensionMimes)
	fb.PackedTableAddMimeOffsets(b, mimeOffsets)
	fb.PackedTableAddPackedMimes(b, packedMimes)
	fb.FinishPackedTableBuffer(b, fb.PackedTableEnd(b))
	return b.FinishedBytes()
}
