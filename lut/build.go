package lut

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Record associates a media type with the extensions declared for it.
type Record struct {
	// MediaType is the media type, e.g. "text/plain".
	MediaType string

	// Extensions lists file extensions without a leading dot, e.g. "txt".
	Extensions []string
}

// SortRecords stably sorts records by media type.
//
// Build treats record order as declaration order. Sources without a defined
// order should be sorted first so that builds are reproducible.
func SortRecords(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return strings.Compare(a.MediaType, b.MediaType)
	})
}

// Build compiles records into a Table.
//
// Records are read in order. Each distinct media type is stored once, indexed
// by its first appearance; records without extensions are skipped. An
// extension declared by several records (compared ASCII case-insensitively)
// becomes one entry listing the media types in record order. Stored
// extensions are ASCII lower-cased.
//
// Build fails without producing a table if the input has no extensions, an
// extension is empty or does not start with an ASCII byte, a media type is
// empty, or any offset exceeds the index limit.
func Build(records []Record, opts ...BuildOption) (*Table, error) {
	cfg := buildConfig{indexLimit: MaxIndex}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &builder{
		cfg:       cfg,
		logger:    cfg.logger,
		mimeIndex: make(map[string]uint16),
		byKey:     make(map[string]*extEntry),
	}
	return b.build(records)
}

// extEntry is one inverted dictionary entry.
type extEntry struct {
	key    string
	bucket byte
	mimes  []uint16
}

// builder holds state for table construction.
type builder struct {
	cfg       buildConfig
	logger    *slog.Logger
	parts     Parts
	mimes     strings.Builder
	mimeIndex map[string]uint16
	byKey     map[string]*extEntry
	entries   []*extEntry
}

// log returns the logger, falling back to a discard logger if nil.
func (b *builder) log() *slog.Logger {
	if b.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.logger
}

func (b *builder) build(records []Record) (*Table, error) {
	if err := validateRecords(records); err != nil {
		return nil, err
	}

	b.parts.MimeOffsets = []uint16{0}
	if err := b.invert(records); err != nil {
		return nil, err
	}
	if len(b.entries) == 0 {
		return nil, ErrEmptyDictionary
	}
	if len(b.entries) > b.cfg.indexLimit {
		return nil, fmt.Errorf("%w: %d extensions exceed limit %d", ErrIndexOverflow, len(b.entries), b.cfg.indexLimit)
	}

	slices.SortFunc(b.entries, func(x, y *extEntry) int {
		if c := cmp.Compare(x.bucket, y.bucket); c != 0 {
			return c
		}
		return strings.Compare(x.key, y.key)
	})

	if err := b.pack(); err != nil {
		return nil, err
	}
	b.parts.PackedMimes = b.mimes.String()

	t, err := New(b.parts)
	if err != nil {
		return nil, fmt.Errorf("lut: built table failed validation: %w", err)
	}

	b.log().Info("built lookup table",
		"extensions", t.Len(),
		"media_types", t.MediaTypeCount(),
		"buckets", len(b.parts.BucketTable)-1,
		"bucket_offset", b.parts.BucketOffset,
		"extension_bytes", len(b.parts.PackedExtensions),
		"mime_bytes", len(b.parts.PackedMimes),
	)
	return t, nil
}

// validateRecords checks every record before any state is built.
func validateRecords(records []Record) error {
	for _, r := range records {
		if r.MediaType == "" {
			return fmt.Errorf("%w: empty media type with extensions %q", ErrInvalidMediaType, r.Extensions)
		}
		for _, ext := range r.Extensions {
			if _, ok := BucketIndex(0, ext); !ok {
				return fmt.Errorf("%w: %q for %s", ErrInvalidExtension, ext, r.MediaType)
			}
		}
	}
	return nil
}

// invert turns records into extension entries, assigning media type indices
// in order of first appearance.
func (b *builder) invert(records []Record) error {
	for _, r := range records {
		if len(r.Extensions) == 0 {
			continue
		}
		mi, err := b.assignMime(r.MediaType)
		if err != nil {
			return err
		}
		for _, ext := range r.Extensions {
			key := toLowerASCII(ext)
			e, ok := b.byKey[key]
			if !ok {
				bucket, _ := BucketIndex(0, key)
				e = &extEntry{key: key, bucket: bucket}
				b.byKey[key] = e
				b.entries = append(b.entries, e)
			}
			if slices.Contains(e.mimes, mi) {
				continue
			}
			if len(e.mimes) > 0 {
				b.log().Debug("merged extension", "extension", key, "media_type", r.MediaType)
			}
			e.mimes = append(e.mimes, mi)
		}
	}
	return nil
}

// assignMime returns the index of mediaType, storing it on first use.
func (b *builder) assignMime(mediaType string) (uint16, error) {
	if idx, ok := b.mimeIndex[mediaType]; ok {
		return idx, nil
	}
	idx, err := b.index(len(b.parts.MimeOffsets)-1, "media type index for "+mediaType)
	if err != nil {
		return 0, err
	}
	b.mimes.WriteString(mediaType)
	end, err := b.index(b.mimes.Len(), "media type text for "+mediaType)
	if err != nil {
		return 0, err
	}
	b.parts.MimeOffsets = append(b.parts.MimeOffsets, end)
	b.mimeIndex[mediaType] = idx
	return idx, nil
}

// pack walks the sorted entries once, filling the bucket table, extension
// text and media type index arrays.
func (b *builder) pack() error {
	p := &b.parts
	p.BucketOffset = b.entries[0].bucket
	p.BucketTable = []uint16{0}
	p.ExtensionOffsets = []uint16{0}
	p.MimeIndexOffsets = []uint16{0}

	var exts strings.Builder
	var last byte
	for i, e := range b.entries {
		bucket := e.bucket - p.BucketOffset
		if bucket != last {
			// Close the previous bucket and every empty one before this bucket.
			for range bucket - last {
				p.BucketTable = append(p.BucketTable, uint16(i)) //nolint:gosec // bounded by indexLimit
			}
			last = bucket
		}

		exts.WriteString(e.key)
		end, err := b.index(exts.Len(), "extension text for "+e.key)
		if err != nil {
			return err
		}
		p.ExtensionOffsets = append(p.ExtensionOffsets, end)

		p.ExtensionMimes = append(p.ExtensionMimes, e.mimes...)
		mimesEnd, err := b.index(len(p.ExtensionMimes), "media type indices for "+e.key)
		if err != nil {
			return err
		}
		p.MimeIndexOffsets = append(p.MimeIndexOffsets, mimesEnd)
	}
	p.BucketTable = append(p.BucketTable, uint16(len(b.entries))) //nolint:gosec // bounded by indexLimit
	p.PackedExtensions = exts.String()
	return nil
}

// index converts n to a packed index, failing if it exceeds the limit.
func (b *builder) index(n int, what string) (uint16, error) {
	if n > b.cfg.indexLimit {
		return 0, fmt.Errorf("%w: %s at %d exceeds limit %d", ErrIndexOverflow, what, n, b.cfg.indexLimit)
	}
	return uint16(n), nil //nolint:gosec // checked against indexLimit <= MaxIndex
}
