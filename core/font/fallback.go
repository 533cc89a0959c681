package font

import (
	"sync"

	"github.com/npillmayer/glyphbits/core/bitmap"
	"github.com/npillmayer/glyphbits/core/codepoint"
)

// FallbackIdent is the identifier of the builtin fallback font.
const FallbackIdent = "fallback"

const (
	fallbackHeight = 5
	fallbackWidth  = 3
)

// fallbackMasks is a compact 3x5 glyph repertoire, one row per mask entry,
// bit 2 being the leftmost pixel. Lowercase letters alias the uppercase
// shapes.
var fallbackMasks = map[rune][fallbackHeight]uint8{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b001, 0b001},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b011, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b110, 0b100, 0b110, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b101, 0b101, 0b101},
	'N': {0b101, 0b111, 0b111, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b111, 0b011},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b101, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
	'!': {0b010, 0b010, 0b010, 0b000, 0b010},
	'?': {0b110, 0b001, 0b010, 0b000, 0b010},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	',': {0b000, 0b000, 0b000, 0b010, 0b100},
	':': {0b000, 0b010, 0b000, 0b010, 0b000},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'+': {0b000, 0b010, 0b111, 0b010, 0b000},
	'/': {0b001, 0b001, 0b010, 0b100, 0b100},
	'=': {0b000, 0b111, 0b000, 0b111, 0b000},
}

var fallbackLoading sync.Once
var fallbackFont *Font
var fallbackTable *Table

// FallbackFont returns the builtin font to be used when everything else
// fails. It is always present and covers a small ASCII repertoire.
func FallbackFont() *Font {
	fallbackLoading.Do(loadFallback)
	return fallbackFont
}

// FallbackTable returns the table derived from the builtin fallback font.
func FallbackTable() *Table {
	fallbackLoading.Do(loadFallback)
	return fallbackTable
}

func loadFallback() {
	f := NewFont(FallbackIdent, fallbackHeight, fallbackWidth)
	f.Source = "builtin"
	for r, masks := range fallbackMasks {
		if err := f.AddGlyph(codepoint.CodePoint(r), maskBitmap(masks)); err != nil {
			panic("cannot build fallback font") // this cannot happen
		}
	}
	for r := 'a'; r <= 'z'; r++ {
		masks := fallbackMasks[r-'a'+'A']
		if err := f.AddGlyph(codepoint.CodePoint(r), maskBitmap(masks)); err != nil {
			panic("cannot build fallback font")
		}
	}
	fallbackFont = f
	fallbackTable = NewTable(f)
	tracer().Infof("builtin fallback font loaded, %d glyphs", f.GlyphCount())
}

func maskBitmap(masks [fallbackHeight]uint8) *bitmap.Bitmap {
	bm := bitmap.New(fallbackWidth, fallbackHeight)
	for y, mask := range masks {
		for x := 0; x < fallbackWidth; x++ {
			bm.Set(x, y, mask&(1<<(fallbackWidth-1-x)) != 0)
		}
	}
	return bm
}
