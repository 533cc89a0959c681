/*
Package bitmap provides a single-bit-depth raster matrix.

Bitmaps are the common currency of this module: glyphs are bitmaps, the
glyph container is a bitmap, and rendering produces a bitmap. A bitmap has
explicit row/column extents and one bit per pixel. Conversions from and to
ordinary images (PNG, BMP) are provided, as containers usually travel as
image files.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bitmap

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'glyphbits.core'.
func tracer() tracing.Trace {
	return tracing.Select("glyphbits.core")
}
