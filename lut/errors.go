package lut

import "errors"

// Build errors.
var (
	// ErrEmptyDictionary is returned when the builder input contains no extensions.
	ErrEmptyDictionary = errors.New("lut: empty dictionary")

	// ErrInvalidExtension is returned for an empty extension or one whose
	// leading byte is not ASCII.
	ErrInvalidExtension = errors.New("lut: invalid extension")

	// ErrInvalidMediaType is returned for an empty media type.
	ErrInvalidMediaType = errors.New("lut: invalid media type")

	// ErrIndexOverflow is returned when an offset or count does not fit the index width.
	ErrIndexOverflow = errors.New("lut: index overflow")
)

// Load errors.
var (
	// ErrCorruptTable is returned when packed data violates a table invariant.
	ErrCorruptTable = errors.New("lut: corrupt table")

	// ErrUnsupportedVersion is returned when an artifact has an unknown format version.
	ErrUnsupportedVersion = errors.New("lut: unsupported format version")

	// ErrIndexWidth is returned when an artifact was encoded with another index width.
	ErrIndexWidth = errors.New("lut: index width mismatch")

	// ErrDigestMismatch is returned when artifact bytes do not match the expected digest.
	ErrDigestMismatch = errors.New("lut: digest mismatch")

	// ErrDecompression is returned when a compressed artifact cannot be decoded.
	ErrDecompression = errors.New("lut: decompression failed")
)
