package lut

import digest "github.com/opencontainers/go-digest"

// Compression identifies how an encoded artifact is wrapped.
type Compression uint8

const (
	// CompressionNone stores the FlatBuffers buffer as is.
	CompressionNone Compression = iota
	// CompressionZstd wraps the FlatBuffers buffer in a zstd frame.
	CompressionZstd
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// DefaultMaxDecodedSize bounds the decompressed size of an artifact.
const DefaultMaxDecodedSize = 16 << 20

type encodeConfig struct {
	compression Compression
}

// EncodeOption configures Encode and SaveFile.
type EncodeOption func(*encodeConfig)

// EncodeWithCompression sets how the artifact is compressed.
func EncodeWithCompression(c Compression) EncodeOption {
	return func(cfg *encodeConfig) {
		cfg.compression = c
	}
}

type decodeConfig struct {
	digest  digest.Digest
	maxSize uint64
}

// DecodeOption configures Decode and LoadFile.
type DecodeOption func(*decodeConfig)

// DecodeWithDigest requires the artifact bytes to match d.
func DecodeWithDigest(d digest.Digest) DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.digest = d
	}
}

// DecodeWithMaxSize limits the decompressed artifact size.
// Zero uses DefaultMaxDecodedSize.
func DecodeWithMaxSize(n uint64) DecodeOption {
	return func(cfg *decodeConfig) {
		if n == 0 {
			n = DefaultMaxDecodedSize
		}
		cfg.maxSize = n
	}
}
