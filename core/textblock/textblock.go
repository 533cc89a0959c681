package textblock

import (
	"github.com/npillmayer/glyphbits/core"
	"github.com/npillmayer/glyphbits/core/codepoint"
)

// Block is a rectangular array of code points: one row per logical line,
// all rows of equal length.
type Block struct {
	grid [][]codepoint.CodePoint
}

const (
	cr codepoint.CodePoint = 0x0d
	lf codepoint.CodePoint = 0x0a
)

// Split cuts a code-point sequence into logical lines. CRLF counts as a
// single boundary and is matched before lone CR and lone LF; any other
// code point of the newline class is a boundary of its own.
//
// The sequence LF followed by CR is two boundaries, not one. This mirrors
// the documented behavior of the container format's origin and is not to
// be "fixed".
func Split(cps []codepoint.CodePoint) [][]codepoint.CodePoint {
	lines := make([][]codepoint.CodePoint, 0, 1)
	var cur []codepoint.CodePoint
	for i := 0; i < len(cps); {
		cp := cps[i]
		if cp == cr && i+1 < len(cps) && cps[i+1] == lf {
			lines = append(lines, cur)
			cur = nil
			i += 2
			continue
		}
		if codepoint.IsNewline(cp) {
			lines = append(lines, cur)
			cur = nil
			i++
			continue
		}
		cur = append(cur, cp)
		i++
	}
	lines = append(lines, cur)
	return lines
}

// Build normalizes one or more code-point sequences into a rectangular
// block. Each input row is split into lines independently and the
// resulting lines are concatenated in order. Zero-width code points are
// stripped from every line, then all lines are right-padded with the space
// code point to the length of the longest line.
//
// Build is idempotent: feeding a block's rows back in reproduces the block.
func Build(rows ...[]codepoint.CodePoint) Block {
	var lines [][]codepoint.CodePoint
	for _, row := range rows {
		lines = append(lines, Split(row)...)
	}
	width := 0
	for i, line := range lines {
		lines[i] = stripZeroWidth(line)
		if len(lines[i]) > width {
			width = len(lines[i])
		}
	}
	for i, line := range lines {
		for len(line) < width {
			line = append(line, codepoint.Space)
		}
		lines[i] = line
	}
	tracer().Debugf("normalized %d input row(s) into a %dx%d block", len(rows), len(lines), width)
	return Block{grid: lines}
}

func stripZeroWidth(line []codepoint.CodePoint) []codepoint.CodePoint {
	out := line[:0]
	for _, cp := range line {
		if codepoint.IsZeroWidth(cp) {
			continue
		}
		out = append(out, cp)
	}
	return out
}

// Rows returns the number of logical lines in the block.
func (b Block) Rows() int {
	return len(b.grid)
}

// Cols returns the common line length of the block.
func (b Block) Cols() int {
	if len(b.grid) == 0 {
		return 0
	}
	return len(b.grid[0])
}

// At returns the code point at row r, column c.
func (b Block) At(r, c int) codepoint.CodePoint {
	return b.grid[r][c]
}

// Line returns row r of the block. Callers must not modify it.
func (b Block) Line(r int) []codepoint.CodePoint {
	return b.grid[r]
}

// Grid returns the block's rows. Callers must not modify them.
func (b Block) Grid() [][]codepoint.CodePoint {
	return b.grid
}

// Equal reports whether two blocks hold identical code points.
func (b Block) Equal(other Block) bool {
	if len(b.grid) != len(other.grid) {
		return false
	}
	for i, row := range b.grid {
		if len(row) != len(other.grid[i]) {
			return false
		}
		for j, cp := range row {
			if cp != other.grid[i][j] {
				return false
			}
		}
	}
	return true
}

// Validate checks that every code point of the block is accepted by the
// given validity predicate, usually a font table's valid set. It returns
// an invalid-character error naming the first offending code point.
func (b Block) Validate(valid func(codepoint.CodePoint) bool) error {
	for r, row := range b.grid {
		for c, cp := range row {
			if !valid(cp) {
				return core.Error(core.EINVALID,
					"code point U+%04X at row %d, column %d has no entry in the active font", uint32(cp), r, c)
			}
		}
	}
	return nil
}
