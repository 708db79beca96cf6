// Package mimeguess guesses media types from file extensions.
//
// Guesses come from a packed lookup table generated from the jshttp mime-db
// database and compiled into the package. Lookups are ASCII case-insensitive,
// scan a small bucket of candidate extensions, and do not allocate.
//
// # Quick Start
//
// Guess from a path or an extension:
//
//	g := mimeguess.FromPath("/srv/www/index.html")
//	ct := g.FirstOrOctetStream() // "text/html"
//
//	for mime := range mimeguess.FromExt("xml").All() {
//	    fmt.Println(mime) // "application/xml", then "text/xml"
//	}
//
// Media types are listed in mime-db key order; the first is the best guess.
//
// # Reverse Lookup
//
// ExtensionsFor lists the extensions registered for a media type, or for a
// whole top-level type with a wildcard:
//
//	for ext := range mimeguess.ExtensionsFor("image/*") {
//	    fmt.Println(ext)
//	}
//
// # Custom Tables
//
// The [lut] subpackage builds, encodes and loads tables. Pass a loaded table
// to [FromExtIn], [FromPathIn] or [ExtensionsForIn] to use it instead of the
// embedded one.
package mimeguess
