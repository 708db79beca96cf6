package lut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Parts)
	}{
		{name: "no extensions", mutate: func(p *Parts) { p.ExtensionOffsets = []uint16{0} }},
		{name: "nil offsets", mutate: func(p *Parts) { p.ExtensionOffsets = nil }},
		{name: "mime index length", mutate: func(p *Parts) { p.MimeIndexOffsets = []uint16{0, 1, 3} }},
		{name: "no media types", mutate: func(p *Parts) { p.MimeOffsets = []uint16{0} }},
		{name: "extension offsets start", mutate: func(p *Parts) { p.ExtensionOffsets[0] = 1 }},
		{name: "extension offsets decrease", mutate: func(p *Parts) { p.ExtensionOffsets[2] = 2 }},
		{name: "extension text longer", mutate: func(p *Parts) { p.PackedExtensions += "x" }},
		{name: "mime text shorter", mutate: func(p *Parts) { p.PackedMimes = p.PackedMimes[:18] }},
		{name: "extension mimes longer", mutate: func(p *Parts) { p.ExtensionMimes = append(p.ExtensionMimes, 0) }},
		{name: "media type index range", mutate: func(p *Parts) { p.ExtensionMimes[2] = 2 }},
		{name: "bucket table end", mutate: func(p *Parts) { p.BucketTable[len(p.BucketTable)-1] = 2 }},
		{name: "wrong bucket", mutate: func(p *Parts) { p.BucketOffset = 'F' }},
		{
			name: "bucket order",
			mutate: func(p *Parts) {
				p.PackedExtensions = "giftxttext"
				p.ExtensionOffsets = []uint16{0, 3, 6, 10}
			},
		},
		{
			name: "duplicate under case folding",
			mutate: func(p *Parts) {
				p.PackedExtensions = "giftxtTXT"
				p.ExtensionOffsets = []uint16{0, 3, 6, 9}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := gifTextParts()
			tt.mutate(&p)
			table, err := New(p)
			require.ErrorIs(t, err, ErrCorruptTable)
			assert.Nil(t, table)
		})
	}
}

func TestValidateAcceptsBuiltTables(t *testing.T) {
	t.Parallel()

	table, err := Build(sampleRecords())
	require.NoError(t, err)
	assert.NoError(t, table.Validate())
}
