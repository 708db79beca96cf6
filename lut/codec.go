package lut

import (
	"bytes"
	_ "crypto/sha256" // register sha256 for go-digest
	"fmt"
	"slices"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
	digest "github.com/opencontainers/go-digest"

	"github.com/meigma/mimeguess/lut/internal/fb"
)

// FormatVersion is the artifact format version written by Encode.
const FormatVersion = 1

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Encode serializes t as a FlatBuffers artifact. It rejects tables that fail
// Validate.
func Encode(t *Table, opts ...EncodeOption) ([]byte, error) {
	var cfg encodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	data := encodeFlatBuffers(t)
	switch cfg.compression {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedBestCompression),
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			return nil, fmt.Errorf("create zstd encoder: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
	default:
		return nil, fmt.Errorf("lut: unknown compression %d", cfg.compression)
	}
}

// Decode parses an artifact produced by Encode and validates the table.
//
// Compressed artifacts are detected by their zstd frame header.
func Decode(data []byte, opts ...DecodeOption) (*Table, error) {
	cfg := decodeConfig{maxSize: DefaultMaxDecodedSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty artifact", ErrCorruptTable)
	}
	if cfg.digest != "" {
		if err := cfg.digest.Validate(); err != nil {
			return nil, fmt.Errorf("lut: expected digest: %w", err)
		}
		if got := cfg.digest.Algorithm().FromBytes(data); got != cfg.digest {
			return nil, fmt.Errorf("%w: got %s, want %s", ErrDigestMismatch, got, cfg.digest)
		}
	}

	raw := data
	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(cfg.maxSize),
		)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		defer dec.Close()
		raw, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
		}
	}
	return decodeFlatBuffers(raw)
}

// Digest returns the sha256 digest identifying an encoded artifact.
func Digest(data []byte) digest.Digest {
	return digest.FromBytes(data)
}

func encodeFlatBuffers(t *Table) []byte {
	b := flatbuffers.NewBuilder(len(t.packedMimes) + len(t.packedExtensions) + 8*t.Len())

	// Children must be written before the table that references them.
	packedMimes := b.CreateString(t.packedMimes)
	mimeOffsets := uint16Vector(b, fb.PackedTableStartMimeOffsetsVector, t.mimeOffsets)
	extensionMimes := uint16Vector(b, fb.PackedTableStartExtensionMimesVector, t.extensionMimes)
	mimeIndexOffsets := uint16Vector(b, fb.PackedTableStartMimeIndexOffsetsVector, t.mimeIndexOffsets)
	packedExtensions := b.CreateString(t.packedExtensions)
	extensionOffsets := uint16Vector(b, fb.PackedTableStartExtensionOffsetsVector, t.extensionOffsets)
	bucketTable := uint16Vector(b, fb.PackedTableStartBucketTableVector, t.bucketTable)

	fb.PackedTableStart(b)
	fb.PackedTableAddVersion(b, FormatVersion)
	fb.PackedTableAddIndexWidth(b, IndexWidth)
	fb.PackedTableAddBucketOffset(b, t.bucketOffset)
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

func uint16Vector(b *flatbuffers.Builder, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT, v []uint16) flatbuffers.UOffsetT {
	start(b, len(v))
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependUint16(v[i])
	}
	return b.EndVector(len(v))
}

// decodeFlatBuffers copies the artifact vectors into a new Table.
// Malformed buffers make the FlatBuffers accessors panic; that is reported as
// ErrCorruptTable.
func decodeFlatBuffers(data []byte) (t *Table, err error) {
	// Accessors re-slice up to capacity; a truncated artifact must not see
	// the caller's bytes beyond len(data).
	data = slices.Clip(data)

	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = fmt.Errorf("%w: %v", ErrCorruptTable, r)
		}
	}()
	if len(data) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("%w: artifact too short", ErrCorruptTable)
	}

	root := fb.GetRootAsPackedTable(data, 0)
	if v := root.Version(); v != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	if w := root.IndexWidth(); w != IndexWidth {
		return nil, fmt.Errorf("%w: artifact uses %d-byte indices, want %d", ErrIndexWidth, w, IndexWidth)
	}

	limit := len(data) / IndexWidth
	p := Parts{BucketOffset: root.BucketOffset()}
	vectors := []struct {
		dst *[]uint16
		n   int
		at  func(int) uint16
	}{
		{&p.BucketTable, root.BucketTableLength(), root.BucketTable},
		{&p.ExtensionOffsets, root.ExtensionOffsetsLength(), root.ExtensionOffsets},
		{&p.MimeIndexOffsets, root.MimeIndexOffsetsLength(), root.MimeIndexOffsets},
		{&p.ExtensionMimes, root.ExtensionMimesLength(), root.ExtensionMimes},
		{&p.MimeOffsets, root.MimeOffsetsLength(), root.MimeOffsets},
	}
	for _, v := range vectors {
		if v.n > limit {
			return nil, fmt.Errorf("%w: vector length %d exceeds artifact size", ErrCorruptTable, v.n)
		}
		out := make([]uint16, v.n)
		for i := range out {
			out[i] = v.at(i)
		}
		*v.dst = out
	}
	if p.PackedExtensions, err = terminatedString("packed extensions", root.PackedExtensions()); err != nil {
		return nil, err
	}
	if p.PackedMimes, err = terminatedString("packed mimes", root.PackedMimes()); err != nil {
		return nil, err
	}

	return New(p)
}

// terminatedString copies a FlatBuffers string, requiring the NUL byte that
// follows it in the buffer. b must alias a clipped buffer.
func terminatedString(name string, b []byte) (string, error) {
	if b == nil {
		return "", nil
	}
	if cap(b) <= len(b) || b[:len(b)+1][len(b)] != 0 {
		return "", fmt.Errorf("%w: %s not terminated", ErrCorruptTable, name)
	}
	return string(b), nil
}
