package bitmap

import (
	"strings"
)

// Bitmap is a rectangular matrix of single-bit pixels, stored row-major.
// The zero value is an empty bitmap; use New to create a usable one.
type Bitmap struct {
	width  int
	height int
	bits   []bool
}

// New creates an all-clear bitmap with h rows and w columns.
// Negative extents are treated as zero.
func New(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{
		width:  w,
		height: h,
		bits:   make([]bool, w*h),
	}
}

// Width returns the number of pixel columns.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the number of pixel rows.
func (b *Bitmap) Height() int {
	return b.height
}

// At returns the pixel at column x, row y. Out-of-bounds pixels read as
// clear.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.bits[y*b.width+x]
}

// Set sets the pixel at column x, row y. Out-of-bounds coordinates are
// ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.bits[y*b.width+x] = on
}

// Blit copies src into b with src's origin placed at column x, row y of b.
// Pixels falling outside of b are dropped.
func (b *Bitmap) Blit(src *Bitmap, x, y int) {
	if src == nil {
		return
	}
	for row := 0; row < src.height; row++ {
		for col := 0; col < src.width; col++ {
			b.Set(x+col, y+row, src.bits[row*src.width+col])
		}
	}
}

// Window returns a copy of the rectangular region of b with origin at
// column x, row y and the given extents. Out-of-bounds pixels read as clear.
func (b *Bitmap) Window(x, y, w, h int) *Bitmap {
	win := New(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			win.Set(col, row, b.At(x+col, y+row))
		}
	}
	return win
}

// Clone returns a deep copy of b.
func (b *Bitmap) Clone() *Bitmap {
	c := New(b.width, b.height)
	copy(c.bits, b.bits)
	return c
}

// Equal reports whether two bitmaps have identical extents and pixels.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if other == nil {
		return b == nil
	}
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, px := range b.bits {
		if px != other.bits[i] {
			return false
		}
	}
	return true
}

// String renders b as ASCII art, one line per pixel row, '#' for set pixels
// and '.' for clear ones. Intended for tracing and test output.
func (b *Bitmap) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.bits[row*b.width+col] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FromRows builds a bitmap from rows of '.'-and-'#' strings, the inverse of
// String. All rows must have equal length; shorter rows are padded with
// clear pixels.
func FromRows(rows []string) *Bitmap {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	b := New(w, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			b.Set(x, y, r[x] == '#')
		}
	}
	return b
}
