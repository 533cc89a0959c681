/*
Package container implements the raster-packed glyph container codec.

A container serializes a complete bitmap font inside a single-bit-depth
raster, so that "the font file" is an ordinary monochrome image. Not every
deployment target of the original environment could ship arbitrary binary
files, but all of them could read and write images; the format survives
here unchanged.

Layout: pixel row 0 is the header, three 20-bit big-endian unsigned
integers packed one bit per pixel — glyph height, glyph width, glyph
count. The remaining rows tile glyph cells in a grid of up to 32 cells per
cell-row. A cell spans glyphWidth+1 pixel columns and glyphHeight pixel
rows; its leading column carries the glyph's code point as a big-endian
binary number in the last min(glyphHeight, 18) rows, the remaining columns
carry the glyph bitmap. Trailing cells of the last cell-row are padding.

The codec operates purely on in-memory bit matrices; how the raster itself
travels (PNG, BMP, anything) is the caller's concern.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package container

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'glyphbits.font'.
func tracer() tracing.Trace {
	return tracing.Select("glyphbits.font")
}
