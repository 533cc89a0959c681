package container

import (
	"github.com/npillmayer/glyphbits/core"
	"github.com/npillmayer/glyphbits/core/bitmap"
	"github.com/npillmayer/glyphbits/core/codepoint"
	"github.com/npillmayer/glyphbits/core/font"
)

const (
	headerFieldBits = 20 // each header integer occupies 20 pixels
	headerBits      = 3 * headerFieldBits
	cellsPerRow     = 32 // glyph cells per cell-row
	codeBitsMax     = 18 // rows of the leading cell column carrying the code point
)

// Encode serializes a font into a raster container. It fails when a glyph's
// code point does not fit into the bits available in the leading cell
// column, which holds min(glyphHeight, 18) of them.
func Encode(f *font.Font) (*bitmap.Bitmap, error) {
	h, w, count := f.Height(), f.Width(), f.GlyphCount()
	if h < 1 || w < 1 {
		return nil, core.Error(core.EINVALID, "font %s has degenerate glyph dimensions %dx%d", f.Ident, h, w)
	}
	codeBits := codeBitsMax
	if h < codeBits {
		codeBits = h
	}
	cellRows := (count + cellsPerRow - 1) / cellsPerRow
	gridCols := count
	if gridCols > cellsPerRow {
		gridCols = cellsPerRow
	}
	width := gridCols * (w + 1)
	if width < headerBits {
		width = headerBits
	}
	raster := bitmap.New(width, 1+cellRows*h)
	writeBits(raster, 0*headerFieldBits, 0, headerFieldBits, uint32(h))
	writeBits(raster, 1*headerFieldBits, 0, headerFieldBits, uint32(w))
	writeBits(raster, 2*headerFieldBits, 0, headerFieldBits, uint32(count))
	//
	i := 0
	var encodeErr error
	f.EachGlyph(func(g font.Glyph) {
		if encodeErr != nil {
			return
		}
		if g.Code >= 1<<codeBits {
			encodeErr = core.Error(core.EINVALID,
				"code point U+%04X of font %s does not fit into %d container bits",
				uint32(g.Code), f.Ident, codeBits)
			return
		}
		cellX := (i % cellsPerRow) * (w + 1)
		cellY := 1 + (i/cellsPerRow)*h
		// leading column: code point, big-endian, in the last codeBits rows
		writeColumnBits(raster, cellX, cellY+h-codeBits, codeBits, uint32(g.Code))
		// remaining columns: the glyph bitmap
		raster.Blit(g.Bitmap, cellX+1, cellY)
		i++
	})
	if encodeErr != nil {
		return nil, encodeErr
	}
	tracer().Debugf("encoded font %s into a %dx%d container raster",
		f.Ident, raster.Height(), raster.Width())
	return raster, nil
}

// Decode deserializes a raster container into a font. The result carries
// the given name; dimensions and glyph set come from the container. Decode
// fails with a malformed-container error when the raster's extents are
// inconsistent with its own header.
func Decode(name string, raster *bitmap.Bitmap) (*font.Font, error) {
	if raster == nil || raster.Height() < 1 || raster.Width() < headerBits {
		return nil, core.Error(core.EMALFORMED,
			"container raster too small for a %d-bit header", headerBits)
	}
	h := int(readBits(raster, 0*headerFieldBits, 0, headerFieldBits))
	w := int(readBits(raster, 1*headerFieldBits, 0, headerFieldBits))
	count := int(readBits(raster, 2*headerFieldBits, 0, headerFieldBits))
	if h < 1 || w < 1 {
		return nil, core.Error(core.EMALFORMED,
			"container declares degenerate glyph dimensions %dx%d", h, w)
	}
	codeBits := codeBitsMax
	if h < codeBits {
		codeBits = h
	}
	cellRows := (count + cellsPerRow - 1) / cellsPerRow
	gridCols := count
	if gridCols > cellsPerRow {
		gridCols = cellsPerRow
	}
	if raster.Height() < 1+cellRows*h {
		return nil, core.Error(core.EMALFORMED,
			"container declares %d glyphs but its raster has rows for only %d cell-rows of %d",
			count, (raster.Height()-1)/h, cellRows)
	}
	if raster.Width() < gridCols*(w+1) {
		return nil, core.Error(core.EMALFORMED,
			"container raster too narrow for %d glyph cells of width %d", gridCols, w+1)
	}
	f := font.NewFont(name, h, w)
	for i := 0; i < count; i++ {
		cellX := (i % cellsPerRow) * (w + 1)
		cellY := 1 + (i/cellsPerRow)*h
		cp := codepoint.CodePoint(readColumnBits(raster, cellX, cellY+h-codeBits, codeBits))
		bm := raster.Window(cellX+1, cellY, w, h)
		if err := f.AddGlyph(cp, bm); err != nil {
			return nil, core.WrapError(err, core.EMALFORMED,
				"container cell %d holds an unusable glyph", i)
		}
	}
	tracer().Debugf("decoded font %s: %d glyphs, %dx%d", f.Ident, count, h, w)
	return f, nil
}

// writeBits packs value into a horizontal pixel run, most significant bit
// first.
func writeBits(bm *bitmap.Bitmap, x, y, n int, value uint32) {
	for i := 0; i < n; i++ {
		bm.Set(x+i, y, value&(1<<(n-1-i)) != 0)
	}
}

// readBits accumulates a horizontal pixel run into an integer, most
// significant bit first.
func readBits(bm *bitmap.Bitmap, x, y, n int) uint32 {
	var value uint32
	for i := 0; i < n; i++ {
		value <<= 1
		if bm.At(x+i, y) {
			value |= 1
		}
	}
	return value
}

// writeColumnBits and readColumnBits are the vertical counterparts, used
// for the per-cell code-point column.
func writeColumnBits(bm *bitmap.Bitmap, x, y, n int, value uint32) {
	for i := 0; i < n; i++ {
		bm.Set(x, y+i, value&(1<<(n-1-i)) != 0)
	}
}

func readColumnBits(bm *bitmap.Bitmap, x, y, n int) uint32 {
	var value uint32
	for i := 0; i < n; i++ {
		value <<= 1
		if bm.At(x, y+i) {
			value |= 1
		}
	}
	return value
}
