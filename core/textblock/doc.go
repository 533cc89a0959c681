/*
Package textblock splits code-point sequences into logical lines and
normalizes them into rectangular blocks.

A block is what the rasterizer consumes: one row per logical line, all rows
padded with the space code point to a common length, zero-width code points
stripped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textblock

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'glyphbits.core'.
func tracer() tracing.Trace {
	return tracing.Select("glyphbits.core")
}
