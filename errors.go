package mimeguess

import "github.com/meigma/mimeguess/lut"

// Errors re-exported from lut.
var (
	// ErrEmptyDictionary is returned when a table is built from no extensions.
	ErrEmptyDictionary = lut.ErrEmptyDictionary

	// ErrInvalidExtension is returned for an empty or non-ASCII-leading extension.
	ErrInvalidExtension = lut.ErrInvalidExtension

	// ErrIndexOverflow is returned when a table does not fit its index width.
	ErrIndexOverflow = lut.ErrIndexOverflow

	// ErrCorruptTable is returned when packed data violates a table invariant.
	ErrCorruptTable = lut.ErrCorruptTable

	// ErrDigestMismatch is returned when an artifact does not match its expected digest.
	ErrDigestMismatch = lut.ErrDigestMismatch
)
