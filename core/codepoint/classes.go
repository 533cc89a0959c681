package codepoint

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Fixed, font-independent classification sets. Every valid code point a
// font table knows about falls into exactly one of: printable (has a real
// glyph), blank, newline, zero-width.

// Newlines is the set of code points that terminate a logical line:
// LF, VT, FF, CR, NEL, LINE SEPARATOR and PARAGRAPH SEPARATOR.
var Newlines = map[CodePoint]bool{
	0x000A: true, // LF
	0x000B: true, // VT
	0x000C: true, // FF
	0x000D: true, // CR
	0x0085: true, // NEL
	0x2028: true, // LINE SEPARATOR
	0x2029: true, // PARAGRAPH SEPARATOR
}

// ZeroWidth is the set of code points with no visual extent. They are
// stripped from lines before rasterization.
var ZeroWidth = map[CodePoint]bool{
	0x00AD: true, // SOFT HYPHEN
	0x200B: true, // ZERO WIDTH SPACE
	0x200C: true, // ZERO WIDTH NON-JOINER
	0x200D: true, // ZERO WIDTH JOINER
	0x200E: true, // LEFT-TO-RIGHT MARK
	0x200F: true, // RIGHT-TO-LEFT MARK
	0x2060: true, // WORD JOINER
	0xFEFF: true, // ZERO WIDTH NO-BREAK SPACE / BOM
}

// blanks is TAB plus the Unicode space separators (category Zs, which
// includes SPACE and NBSP).
var blanks = rangetable.Merge(
	unicode.Zs,
	rangetable.New('\t'),
)

// IsNewline reports whether cp terminates a logical line.
func IsNewline(cp CodePoint) bool {
	return Newlines[cp]
}

// IsZeroWidth reports whether cp renders with no visual extent.
func IsZeroWidth(cp CodePoint) bool {
	return ZeroWidth[cp]
}

// IsBlank reports whether cp is a blank, i.e. renders as an empty glyph of
// the font's dimensions.
func IsBlank(cp CodePoint) bool {
	if !cp.IsValid() {
		return false
	}
	return unicode.Is(blanks, rune(cp))
}

// Blanks returns the blank set as an explicit list, in ascending order.
func Blanks() []CodePoint {
	var cps []CodePoint
	rangetable.Visit(blanks, func(r rune) {
		cps = append(cps, CodePoint(r))
	})
	return cps
}
