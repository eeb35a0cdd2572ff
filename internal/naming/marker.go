// Copyright Pablo Medrano, 2026. All rights reserved.

package naming

import (
	"regexp"
	"strings"
)

// MarkerStyle selects the rewritten form of the multiplicity marker.
type MarkerStyle int

const (
	// Plain rewrites the marker as " d COPIAS" (standalone renamer).
	Plain MarkerStyle = iota
	// Parenthesized rewrites the marker as " (d COPIAS)" (PDF synthesis).
	Parenthesized
)

// markerPattern is the upscaler artifact embedded in input basenames,
// encoding a number of copies. Single digit only.
var markerPattern = regexp.MustCompile(`-X(\d)_waifu2x_noise3_scale4x`)

// RewriteMarker replaces the multiplicity marker in base with a
// human-readable COPIAS annotation and trims surrounding whitespace.
// Names without the marker pass through unchanged, which also makes the
// rewrite idempotent: the rewritten form no longer matches the pattern.
func RewriteMarker(base string, style MarkerStyle) string {
	repl := " $1 COPIAS"
	if style == Parenthesized {
		repl = " ($1 COPIAS)"
	}
	return strings.TrimSpace(markerPattern.ReplaceAllString(base, repl))
}

// copiesPattern matches a trailing unparenthesized "d COPIAS",
// optionally followed by a single extension. Already-wrapped names do
// not match: the closing ")" after COPIAS is neither an extension nor
// the end of the name.
var copiesPattern = regexp.MustCompile(`(\d+ COPIAS)(\.[^.]+)?$`)

// WrapCopies rewraps a trailing "d COPIAS" annotation into the
// parenthesized "(d COPIAS)" form, preserving any extension. This is
// the second-pass transform applied to files renamed with the Plain
// style; it never double-wraps.
func WrapCopies(filename string) string {
	return copiesPattern.ReplaceAllString(filename, "($1)$2")
}
