package render

import (
	"github.com/npillmayer/glyphbits/core"
	"github.com/npillmayer/glyphbits/core/bitmap"
	"github.com/npillmayer/glyphbits/core/font"
	"github.com/npillmayer/glyphbits/core/textblock"
)

// Raster composes a validated rectangular text block into a single bitmap,
// placing the glyph for block position (r, c) at pixel position
// (r*glyphHeight, c*glyphWidth). The output spans rows*glyphHeight by
// cols*glyphWidth pixels. Identical inputs produce bit-identical output.
//
// Every code point of the block must resolve to a glyph in the table;
// callers normally guarantee this with Block.Validate beforehand.
func Raster(block textblock.Block, table *font.Table) (*bitmap.Bitmap, error) {
	h, w := table.Font().Height(), table.Font().Width()
	out := bitmap.New(block.Cols()*w, block.Rows()*h)
	for r := 0; r < block.Rows(); r++ {
		for c := 0; c < block.Cols(); c++ {
			cp := block.At(r, c)
			glyph, ok := table.Glyph(cp)
			if !ok {
				return nil, core.Error(core.EINVALID,
					"code point U+%04X at row %d, column %d has no glyph in font %s",
					uint32(cp), r, c, table.Font().Ident)
			}
			out.Blit(glyph, c*w, r*h)
		}
	}
	tracer().Debugf("rasterized %dx%d block into a %dx%d bitmap",
		block.Rows(), block.Cols(), out.Height(), out.Width())
	return out, nil
}
