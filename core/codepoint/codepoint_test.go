package codepoint

import (
	"testing"

	"github.com/npillmayer/glyphbits/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeASCII(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	cps, err := DecodeUTF8([]byte{72, 105})
	if err != nil {
		t.Fatal(err)
	}
	if len(cps) != 2 || cps[0] != 72 || cps[1] != 105 {
		t.Errorf("expected [72 105], got %v", cps)
	}
}

func TestDecodeUTF8MultiByte(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	for _, tc := range []struct {
		in   []byte
		want CodePoint
	}{
		{[]byte{0xc3, 0xa9}, 0x00e9},             // é
		{[]byte{0xe2, 0x82, 0xac}, 0x20ac},       // €
		{[]byte{0xf0, 0x9f, 0x98, 0x80}, 0x1f600}, // 😀
	} {
		cps, err := DecodeUTF8(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if len(cps) != 1 || cps[0] != tc.want {
			t.Errorf("expected [%#x], got %v", tc.want, cps)
		}
	}
}

func TestDecodeUTF8Errors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	for _, in := range [][]byte{
		{0xe2, 0x82},       // truncated 3-byte sequence
		{0xc3, 0x28},       // continuation header missing
		{0x80},             // stray continuation byte
		{0xf0, 0x9f, 0x98}, // truncated 4-byte sequence
	} {
		_, err := DecodeUTF8(in)
		if err == nil {
			t.Errorf("expected encoding error for % x, got none", in)
			continue
		}
		if core.Code(err) != core.EENCODING {
			t.Errorf("expected error code EENCODING for % x, got %d", in, core.Code(err))
		}
	}
}

func TestDecodeUTF8Lenient(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	raw, decoded, ok := DecodeUTF8Lenient([]byte{72, 0xc3, 0xa9, 0x80, 73})
	assert.False(t, ok, "input contains a stray continuation byte")
	assert.Equal(t, []CodePoint{72, 0xc3, 0xa9, 0x80, 73}, raw)
	assert.Equal(t, []CodePoint{72, 0xe9, 0x80, 73}, decoded)
	//
	raw, decoded, ok = DecodeUTF8Lenient([]byte("Hi"))
	assert.True(t, ok)
	assert.Equal(t, raw, decoded)
}

func TestUTF8RoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	// sample the code space, skipping the surrogate range
	var cps []CodePoint
	for cp := CodePoint(0); cp <= Max; cp += 611 {
		if cp >= surrMin && cp <= surrMax {
			continue
		}
		cps = append(cps, cp)
	}
	cps = append(cps, 0, 0x7f, 0x80, 0x7ff, 0x800, 0xffff, 0x10000, Max)
	decoded, err := DecodeUTF8(EncodeUTF8(cps))
	require.NoError(t, err)
	require.Equal(t, cps, decoded)
}

func TestDecodeUTF16Surrogates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	cps, err := DecodeUTF16([]uint16{0xd83d, 0xde00}) // 😀
	if err != nil {
		t.Fatal(err)
	}
	if len(cps) != 1 || cps[0] != 0x1f600 {
		t.Errorf("expected [0x1f600], got %v", cps)
	}
}

func TestDecodeUTF16Errors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	for _, in := range [][]uint16{
		{0xd800},         // lone high surrogate at end of input
		{0xd800, 0x0041}, // high surrogate without low surrogate
		{0xdc00},         // unpaired low surrogate
	} {
		_, err := DecodeUTF16(in)
		if err == nil {
			t.Errorf("expected encoding error for % x, got none", in)
			continue
		}
		if core.Code(err) != core.EENCODING {
			t.Errorf("expected error code EENCODING for % x, got %d", in, core.Code(err))
		}
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	var cps []CodePoint
	for cp := CodePoint(0x10000); cp <= Max; cp += 257 {
		cps = append(cps, cp)
	}
	cps = append(cps, 0x10000, Max)
	decoded, err := DecodeUTF16(EncodeUTF16(cps))
	require.NoError(t, err)
	require.Equal(t, cps, decoded)
}

func TestDecodeUTF16Lenient(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	raw, decoded, ok := DecodeUTF16Lenient([]uint16{0x0041, 0xd800, 0x0042})
	assert.False(t, ok)
	assert.Equal(t, []CodePoint{0x41, 0xd800, 0x42}, raw)
	assert.Equal(t, []CodePoint{0x41, 0xd800, 0x42}, decoded)
}

func TestClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbits.core")
	defer teardown()
	//
	if !IsNewline(0x0a) || !IsNewline(0x0d) || !IsNewline(0x2028) {
		t.Errorf("expected LF, CR and LS to classify as newlines")
	}
	if !IsZeroWidth(0x00ad) || !IsZeroWidth(0x200d) {
		t.Errorf("expected SHY and ZWJ to classify as zero-width")
	}
	if !IsBlank(Space) || !IsBlank(0x09) || !IsBlank(0x00a0) || !IsBlank(0x3000) {
		t.Errorf("expected SPACE, TAB, NBSP and ideographic space to classify as blanks")
	}
	if IsBlank(0x41) || IsNewline(0x41) || IsZeroWidth(0x41) {
		t.Errorf("'A' must not classify as blank, newline or zero-width")
	}
	// the three sets are disjoint
	for _, cp := range Blanks() {
		if IsNewline(cp) || IsZeroWidth(cp) {
			t.Errorf("blank %#x also classifies as newline or zero-width", cp)
		}
	}
}
