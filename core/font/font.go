package font

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/glyphbits/core"
	"github.com/npillmayer/glyphbits/core/bitmap"
	"github.com/npillmayer/glyphbits/core/codepoint"
)

// Glyph is a fixed-size 1-bit bitmap depicting a single code point.
// Glyphs are immutable once added to a font.
type Glyph struct {
	Code   codepoint.CodePoint
	Bitmap *bitmap.Bitmap
}

// Font is a named, ordered set of glyphs with font-constant dimensions.
// No two glyphs of a font share a code point.
type Font struct {
	Name   string // display name
	Ident  string // canonical lowercase identifier
	Source string // locator, used by the acquisition layer only
	height int
	width  int
	glyphs *treemap.Map // codepoint.CodePoint -> Glyph, ascending
}

func codePointComparator(a, b interface{}) int {
	ca, cb := a.(codepoint.CodePoint), b.(codepoint.CodePoint)
	switch {
	case ca < cb:
		return -1
	case ca > cb:
		return 1
	}
	return 0
}

// NewFont creates an empty font with the given glyph dimensions.
// The canonical identifier is derived from the name.
func NewFont(name string, height, width int) *Font {
	return &Font{
		Name:   name,
		Ident:  NormalizeFontname(name),
		height: height,
		width:  width,
		glyphs: treemap.NewWith(codePointComparator),
	}
}

// Height returns the pixel height common to all glyphs of the font.
func (f *Font) Height() int {
	return f.height
}

// Width returns the pixel width common to all glyphs of the font.
func (f *Font) Width() int {
	return f.width
}

// GlyphCount returns the number of glyphs in the font.
func (f *Font) GlyphCount() int {
	return f.glyphs.Size()
}

// AddGlyph adds a glyph bitmap for a code point. It fails when the code
// point is out of range or already present, or when the bitmap does not
// match the font's dimensions.
func (f *Font) AddGlyph(cp codepoint.CodePoint, bm *bitmap.Bitmap) error {
	if !cp.IsValid() {
		return core.Error(core.EINVALID, "code point %#x out of Unicode range", uint32(cp))
	}
	if bm == nil || bm.Height() != f.height || bm.Width() != f.width {
		return core.Error(core.EINVALID,
			"glyph for U+%04X does not match font dimensions %dx%d", uint32(cp), f.height, f.width)
	}
	if _, ok := f.glyphs.Get(cp); ok {
		return core.Error(core.EINVALID, "duplicate glyph for U+%04X in font %s", uint32(cp), f.Ident)
	}
	f.glyphs.Put(cp, Glyph{Code: cp, Bitmap: bm})
	return nil
}

// Glyph returns the glyph for a code point, if present.
func (f *Font) Glyph(cp codepoint.CodePoint) (Glyph, bool) {
	g, ok := f.glyphs.Get(cp)
	if !ok {
		return Glyph{}, false
	}
	return g.(Glyph), true
}

// EachGlyph visits all glyphs in ascending code-point order.
func (f *Font) EachGlyph(visit func(Glyph)) {
	f.glyphs.Each(func(key, value interface{}) {
		visit(value.(Glyph))
	})
}

// CodePoints returns the font's code points in ascending order.
func (f *Font) CodePoints() []codepoint.CodePoint {
	cps := make([]codepoint.CodePoint, 0, f.glyphs.Size())
	f.glyphs.Each(func(key, value interface{}) {
		cps = append(cps, key.(codepoint.CodePoint))
	})
	return cps
}

// Equal reports whether two fonts carry the same glyph set: same
// dimensions, same code points, pixel-identical bitmaps. Name and source
// are not compared.
func (f *Font) Equal(other *Font) bool {
	if other == nil || f.height != other.height || f.width != other.width ||
		f.glyphs.Size() != other.glyphs.Size() {
		return false
	}
	equal := true
	f.glyphs.Each(func(key, value interface{}) {
		g, ok := other.Glyph(key.(codepoint.CodePoint))
		if !ok || !g.Bitmap.Equal(value.(Glyph).Bitmap) {
			equal = false
		}
	})
	return equal
}

// NormalizeFontname derives the canonical lowercase identifier for a font
// name: trimmed, blanks replaced, any file extension stripped.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}
