/*
Package render composes code points into monochrome bitmaps.

The rasterizer tiles per-character glyph bitmaps over a rectangular text
block with no gaps, no scaling and no blending — a direct bit copy.
Convenience functions run the full pipeline: decode raw UTF-8/UTF-16
units, split and normalize lines, resolve the font table (falling back to
the builtin font when necessary), validate, rasterize.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'glyphbits.render'.
func tracer() tracing.Trace {
	return tracing.Select("glyphbits.render")
}
