//go:build !lutdebug

package lut

const debugAssertions = false
