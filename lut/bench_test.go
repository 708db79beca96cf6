package lut

import "testing"

func BenchmarkLookup(b *testing.B) {
	table, err := Build(sampleRecords())
	if err != nil {
		b.Fatal(err)
	}

	exts := []string{"xml", "EXE", "3gp", "conf", "missing", ""}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		table.Lookup(exts[i%len(exts)])
	}
}

func BenchmarkBuild(b *testing.B) {
	records := sampleRecords()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Build(records); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	table, err := Build(sampleRecords())
	if err != nil {
		b.Fatal(err)
	}

	for _, c := range []Compression{CompressionNone, CompressionZstd} {
		data, err := Encode(table, EncodeWithCompression(c))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(c.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Decode(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
