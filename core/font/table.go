package font

import (
	"github.com/npillmayer/glyphbits/core/bitmap"
	"github.com/npillmayer/glyphbits/core/codepoint"
)

// Class is the category a code point falls into with respect to a font
// table. The four renderable-or-structural classes are pairwise disjoint;
// a code point outside all of them is invalid for the font.
type Class int

const (
	ClassInvalid Class = iota
	ClassPrintable
	ClassBlank
	ClassNewline
	ClassZeroWidth
)

func (c Class) String() string {
	switch c {
	case ClassPrintable:
		return "printable"
	case ClassBlank:
		return "blank"
	case ClassNewline:
		return "newline"
	case ClassZeroWidth:
		return "zero-width"
	}
	return "invalid"
}

// Table is the render-time view of a font: a classification of code points
// plus O(1) glyph lookup. Tables are immutable after construction and may
// be shared between goroutines.
type Table struct {
	font       *Font
	printable  map[codepoint.CodePoint]*bitmap.Bitmap
	blankGlyph *bitmap.Bitmap // shared all-clear glyph for the blank class
}

// NewTable derives a table from a font. Code points of the fixed newline
// and zero-width sets never classify as printable, even if the font ships
// a glyph for them; the glyph is ignored in that case.
func NewTable(f *Font) *Table {
	t := &Table{
		font:       f,
		printable:  make(map[codepoint.CodePoint]*bitmap.Bitmap, f.GlyphCount()),
		blankGlyph: bitmap.New(f.Width(), f.Height()),
	}
	dropped := 0
	f.EachGlyph(func(g Glyph) {
		if codepoint.IsNewline(g.Code) || codepoint.IsZeroWidth(g.Code) {
			dropped++
			return
		}
		t.printable[g.Code] = g.Bitmap
	})
	if dropped > 0 {
		tracer().Infof("font %s ships %d glyph(s) for structural code points, ignored", f.Ident, dropped)
	}
	tracer().Debugf("table for font %s: %d printable glyphs, %dx%d",
		f.Ident, len(t.printable), f.Height(), f.Width())
	return t
}

// Font returns the font the table was derived from.
func (t *Table) Font() *Font {
	return t.font
}

// Class classifies a code point. Printable wins over blank for code points
// that have a real glyph.
func (t *Table) Class(cp codepoint.CodePoint) Class {
	switch {
	case codepoint.IsNewline(cp):
		return ClassNewline
	case codepoint.IsZeroWidth(cp):
		return ClassZeroWidth
	case t.printable[cp] != nil:
		return ClassPrintable
	case codepoint.IsBlank(cp):
		return ClassBlank
	}
	return ClassInvalid
}

// Valid reports whether cp belongs to any of the table's four classes.
func (t *Table) Valid(cp codepoint.CodePoint) bool {
	return t.Class(cp) != ClassInvalid
}

// HasGlyph reports whether cp resolves to a glyph bitmap, i.e. is
// printable or blank.
func (t *Table) HasGlyph(cp codepoint.CodePoint) bool {
	c := t.Class(cp)
	return c == ClassPrintable || c == ClassBlank
}

// Glyph resolves cp to its glyph bitmap. Blank code points resolve to a
// shared all-clear bitmap of the font's dimensions. The second return
// value is false for code points without a glyph.
func (t *Table) Glyph(cp codepoint.CodePoint) (*bitmap.Bitmap, bool) {
	if bm := t.printable[cp]; bm != nil {
		return bm, true
	}
	if codepoint.IsBlank(cp) {
		return t.blankGlyph, true
	}
	return nil, false
}
