package lut

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
)

const importPath = "github.com/meigma/mimeguess/lut"

// valuesPerLine is the number of indices written on each line of generated source.
const valuesPerLine = 16

// GoSource configures WriteGoSource.
type GoSource struct {
	// Package is the package clause of the generated file.
	Package string

	// Var names the generated *Table variable. Defaults to "table".
	Var string

	// Source describes where the data came from; it is named in the header.
	Source string

	// Generator names the generating command. Defaults to "build-lut".
	Generator string
}

// WriteGoSource writes gofmt-formatted Go source declaring t as a package
// variable constructed with MustNew.
func WriteGoSource(w io.Writer, t *Table, src GoSource) error {
	if src.Package == "" {
		return fmt.Errorf("lut: generated source needs a package name")
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if src.Var == "" {
		src.Var = "table"
	}
	if src.Generator == "" {
		src.Generator = "build-lut"
	}
	qual := "lut."
	if src.Package == "lut" {
		qual = ""
	}

	var buf bytes.Buffer
	if src.Source != "" {
		fmt.Fprintf(&buf, "// Code generated by %s from %s; DO NOT EDIT.\n\n", src.Generator, src.Source)
	} else {
		fmt.Fprintf(&buf, "// Code generated by %s; DO NOT EDIT.\n\n", src.Generator)
	}
	fmt.Fprintf(&buf, "package %s\n\n", src.Package)
	if qual != "" {
		fmt.Fprintf(&buf, "import %q\n\n", importPath)
	}
	fmt.Fprintf(&buf, "// %s holds %d extensions and %d media types.\n", src.Var, t.Len(), t.MediaTypeCount())
	fmt.Fprintf(&buf, "var %s = %sMustNew(%sParts{\n", src.Var, qual, qual)
	fmt.Fprintf(&buf, "\tBucketOffset: %d,\n", t.bucketOffset)
	writeUint16s(&buf, "BucketTable", t.bucketTable)
	writeUint16s(&buf, "ExtensionOffsets", t.extensionOffsets)
	fmt.Fprintf(&buf, "\tPackedExtensions: %s,\n", strconv.Quote(t.packedExtensions))
	writeUint16s(&buf, "MimeIndexOffsets", t.mimeIndexOffsets)
	writeUint16s(&buf, "ExtensionMimes", t.extensionMimes)
	writeUint16s(&buf, "MimeOffsets", t.mimeOffsets)
	fmt.Fprintf(&buf, "\tPackedMimes: %s,\n", strconv.Quote(t.packedMimes))
	buf.WriteString("})\n")

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("lut: format generated source: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func writeUint16s(buf *bytes.Buffer, field string, values []uint16) {
	fmt.Fprintf(buf, "\t%s: []uint16{", field)
	if len(values) == 0 {
		buf.WriteString("},\n")
		return
	}
	buf.WriteString("\n")
	for i, v := range values {
		if i%valuesPerLine == 0 {
			buf.WriteString("\t\t")
		} else {
			buf.WriteByte(' ')
		}
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
		buf.WriteByte(',')
		if i%valuesPerLine == valuesPerLine-1 || i == len(values)-1 {
			buf.WriteByte('\n')
		}
	}
	buf.WriteString("\t},\n")
}
