package mimedb

import "errors"

var (
	// ErrEmptyDatabase is returned when a database holds no media types.
	ErrEmptyDatabase = errors.New("mimedb: empty database")

	// ErrInvalidRelease is returned for a release tag that cannot form a URL.
	ErrInvalidRelease = errors.New("mimedb: invalid release")

	// ErrFetchFailed is returned when the database download does not succeed.
	ErrFetchFailed = errors.New("mimedb: fetch failed")
)
