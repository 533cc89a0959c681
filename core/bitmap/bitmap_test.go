package bitmap

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestSetAndAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	b := New(4, 3)
	b.Set(2, 1, true)
	if !b.At(2, 1) || b.At(1, 2) {
		t.Errorf("pixel addressing is off")
	}
	if b.At(-1, 0) || b.At(4, 0) || b.At(0, 3) {
		t.Errorf("out-of-bounds pixels must read as clear")
	}
}

func TestFromRowsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	rows := []string{
		"#..#",
		".##.",
		"#..#",
	}
	b := FromRows(rows)
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("expected a 3x4 bitmap, got %dx%d", b.Height(), b.Width())
	}
	want := "#..#\n.##.\n#..#\n"
	if b.String() != want {
		t.Errorf("expected\n%sgot\n%s", want, b.String())
	}
}

func TestBlitAndWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	glyph := FromRows([]string{"##", "#."})
	canvas := New(4, 4)
	canvas.Blit(glyph, 1, 2)
	if !canvas.At(1, 2) || !canvas.At(2, 2) || !canvas.At(1, 3) || canvas.At(2, 3) {
		t.Errorf("blit misplaced pixels:\n%s", canvas)
	}
	if !canvas.Window(1, 2, 2, 2).Equal(glyph) {
		t.Errorf("window does not recover the blitted glyph")
	}
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	b := FromRows([]string{"#.", ".#"})
	c := b.Clone()
	c.Set(0, 0, false)
	if !b.At(0, 0) {
		t.Errorf("clone shares pixels with the original")
	}
}

func TestPNGRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	b := FromRows([]string{"#.#.#", ".#.#.", "#####"})
	var buf bytes.Buffer
	require.NoError(t, b.EncodePNG(&buf))
	back, err := DecodePNG(&buf)
	require.NoError(t, err)
	require.True(t, b.Equal(back))
}

func TestBMPRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	b := FromRows([]string{"..#", "#..", ".#."})
	var buf bytes.Buffer
	require.NoError(t, b.EncodeBMP(&buf))
	back, err := DecodeBMP(&buf)
	require.NoError(t, err)
	require.True(t, b.Equal(back))
}
