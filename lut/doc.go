//go:generate flatc --go --go-namespace fb -o internal schema/table.fbs

// Package lut implements a packed, read-only lookup table from file extensions
// to media types.
//
// A Table is a handful of flat uint16 offset arrays plus two string buffers:
//
//   - BucketTable narrows a lookup to the extensions sharing the query's
//     (ASCII upper-cased) leading character
//   - ExtensionOffsets and PackedExtensions hold the sorted extension text
//   - MimeIndexOffsets and ExtensionMimes map each extension to its media types
//   - MimeOffsets and PackedMimes hold every distinct media type exactly once
//
// Tables are produced offline by [Build] and embedded as generated Go source
// ([WriteGoSource]) or as a binary artifact ([Encode], [SaveFile]). Lookups
// scan one bucket, compare bytes ASCII case-insensitively, and return a [Mimes]
// view that aliases the table without allocating.
//
// A Table is immutable after construction and safe for concurrent use.
package lut
