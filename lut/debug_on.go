//go:build lutdebug

package lut

// debugAssertions turns offset inconsistencies found during lookups into panics.
// Release builds treat them as misses.
const debugAssertions = true
