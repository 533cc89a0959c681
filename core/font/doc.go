/*
Package font models bitmap fonts and their lookup tables.

A font is an ordered set of glyphs, each glyph being a fixed-size 1-bit
bitmap tagged with the code point it depicts. All glyphs of a font share
the same dimensions. From a font a table is derived which classifies every
code point into printable, blank, newline or zero-width, and resolves code
points to glyph bitmaps in O(1).

A small builtin fallback font is always available, so that rendering can
proceed even when no requested font could be loaded.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'glyphbits.font'.
func tracer() tracing.Trace {
	return tracing.Select("glyphbits.font")
}
