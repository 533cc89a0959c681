package textblock

import (
	"testing"

	"github.com/npillmayer/glyphbits/core"
	"github.com/npillmayer/glyphbits/core/codepoint"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func cps(s string) []codepoint.CodePoint {
	var out []codepoint.CodePoint
	for _, r := range s {
		out = append(out, codepoint.CodePoint(r))
	}
	return out
}

func TestSplitCRLF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	lines := Split([]codepoint.CodePoint{65, 13, 10, 66}) // "A\r\nB"
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	assert.Equal(t, []codepoint.CodePoint{65}, lines[0])
	assert.Equal(t, []codepoint.CodePoint{66}, lines[1])
}

func TestSplitLFCRIsTwoBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	lines := Split([]codepoint.CodePoint{65, 10, 13, 66}) // "A\n\rB"
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines for LFCR, got %d", len(lines))
	}
	if len(lines[1]) != 0 {
		t.Errorf("expected empty middle line, got %v", lines[1])
	}
}

func TestSplitUnicodeNewlines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	for _, nl := range []codepoint.CodePoint{0x0b, 0x0c, 0x85, 0x2028, 0x2029} {
		lines := Split([]codepoint.CodePoint{65, nl, 66})
		if len(lines) != 2 {
			t.Errorf("expected U+%04X to split into 2 lines, got %d", uint32(nl), len(lines))
		}
	}
}

func TestBuildRectangular(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	b := Build(cps("ab\ncdef\ng"))
	if b.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", b.Rows())
	}
	if b.Cols() != 4 {
		t.Fatalf("expected 4 columns, got %d", b.Cols())
	}
	for r := 0; r < b.Rows(); r++ {
		if len(b.Line(r)) != 4 {
			t.Errorf("row %d not padded to block width", r)
		}
	}
	assert.Equal(t, cps("ab  "), b.Line(0))
	assert.Equal(t, cps("g   "), b.Line(2))
}

func TestBuildStripsZeroWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	b := Build([]codepoint.CodePoint{65, 0x200b, 66, 0xad, 67})
	assert.Equal(t, 1, b.Rows())
	assert.Equal(t, cps("ABC"), b.Line(0))
}

func TestBuildMultipleInputRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	b := Build(cps("a\nb"), cps("c"))
	if b.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", b.Rows())
	}
	assert.Equal(t, cps("a"), b.Line(0))
	assert.Equal(t, cps("b"), b.Line(1))
	assert.Equal(t, cps("c"), b.Line(2))
}

func TestBuildIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	b := Build(cps("one\ntwo longer\nthree"))
	again := Build(b.Grid()...)
	if !b.Equal(again) {
		t.Errorf("normalization is not idempotent")
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	b := Build(cps("AB"))
	err := b.Validate(func(cp codepoint.CodePoint) bool { return cp == 65 || cp == 32 })
	if err == nil {
		t.Fatal("expected invalid-character error for 'B', got none")
	}
	if core.Code(err) != core.EINVALID {
		t.Errorf("expected error code EINVALID, got %d", core.Code(err))
	}
	err = b.Validate(func(codepoint.CodePoint) bool { return true })
	if err != nil {
		t.Errorf("expected all-valid block to pass, got %v", err)
	}
}
