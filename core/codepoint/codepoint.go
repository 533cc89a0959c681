package codepoint

import (
	"github.com/npillmayer/glyphbits/core"
)

// CodePoint is a Unicode code point, an unsigned integer in [0, 0x10FFFF].
type CodePoint uint32

// Max is the largest valid Unicode code point.
const Max CodePoint = 0x10FFFF

// Space is the blank code point used for padding lines.
const Space CodePoint = 0x20

// IsValid reports whether cp lies within the Unicode code space.
func (cp CodePoint) IsValid() bool {
	return cp <= Max
}

// surrogate range in UTF-16
const (
	surrMin  = 0xD800
	surrHigh = 0xDBFF // end of high-surrogate range
	surrMax  = 0xDFFF
)

// --- UTF-8 ------------------------------------------------------------------

// DecodeUTF8 converts a sequence of 8-bit units into code points. Units
// below 128 pass through unchanged; multi-byte sequences collapse into a
// single code point each.
//
// DecodeUTF8 fails when a lead byte announces more continuation bytes than
// remain in the buffer, when a continuation position does not carry the
// 10xxxxxx header, or when a byte matches no lead pattern at all.
func DecodeUTF8(b []byte) ([]CodePoint, error) {
	cps := make([]CodePoint, 0, len(b))
	for i := 0; i < len(b); {
		cp, l, err := decodeUTF8At(b, i)
		if err != nil {
			return nil, err
		}
		cps = append(cps, cp)
		i += l
	}
	return cps, nil
}

// DecodeUTF8Lenient decodes best-effort. It returns the raw input
// reinterpreted as code points (one per byte, no merging), the best-attempt
// decoded sequence with undecodable bytes passed through verbatim, and a
// success flag. Callers needing guaranteed well-formedness must treat
// ok == false as fatal.
func DecodeUTF8Lenient(b []byte) (raw []CodePoint, decoded []CodePoint, ok bool) {
	raw = make([]CodePoint, len(b))
	for i, c := range b {
		raw[i] = CodePoint(c)
	}
	ok = true
	decoded = make([]CodePoint, 0, len(b))
	for i := 0; i < len(b); {
		cp, l, err := decodeUTF8At(b, i)
		if err != nil {
			tracer().Debugf("lenient UTF-8 decoding skips offset %d: %v", i, err)
			decoded = append(decoded, CodePoint(b[i]))
			i++
			ok = false
			continue
		}
		decoded = append(decoded, cp)
		i += l
	}
	return raw, decoded, ok
}

// decodeUTF8At decodes one scalar starting at offset i, returning the code
// point and the number of bytes consumed. Lead patterns are matched longest
// first: the 4-byte lead range overlaps parts of the shorter lead ranges
// numerically, so precedence matters.
func decodeUTF8At(b []byte, i int) (CodePoint, int, error) {
	c := b[i]
	if c < 0x80 {
		return CodePoint(c), 1, nil
	}
	var l int
	var cp CodePoint
	switch {
	case c&0xf8 == 0xf0:
		l, cp = 4, CodePoint(c&0x07)
	case c&0xf0 == 0xe0:
		l, cp = 3, CodePoint(c&0x0f)
	case c&0xe0 == 0xc0:
		l, cp = 2, CodePoint(c&0x1f)
	default:
		return 0, 0, core.Error(core.EENCODING,
			"byte 0x%02x at offset %d matches no UTF-8 lead pattern", c, i)
	}
	if i+l > len(b) {
		return 0, 0, core.Error(core.EENCODING,
			"UTF-8 sequence at offset %d truncated: lead byte announces %d continuation bytes, %d remain",
			i, l-1, len(b)-i-1)
	}
	for j := 1; j < l; j++ {
		cc := b[i+j]
		if cc&0xc0 != 0x80 {
			return 0, 0, core.Error(core.EENCODING,
				"byte 0x%02x at offset %d is not a continuation byte", cc, i+j)
		}
		cp = cp<<6 | CodePoint(cc&0x3f)
	}
	return cp, l, nil
}

// EncodeUTF8 converts code points back into 8-bit units, the inverse of
// DecodeUTF8 over valid input.
func EncodeUTF8(cps []CodePoint) []byte {
	b := make([]byte, 0, len(cps))
	for _, cp := range cps {
		switch {
		case cp < 0x80:
			b = append(b, byte(cp))
		case cp < 0x800:
			b = append(b, 0xc0|byte(cp>>6), 0x80|byte(cp&0x3f))
		case cp < 0x10000:
			b = append(b, 0xe0|byte(cp>>12), 0x80|byte(cp>>6&0x3f), 0x80|byte(cp&0x3f))
		default:
			b = append(b, 0xf0|byte(cp>>18), 0x80|byte(cp>>12&0x3f),
				0x80|byte(cp>>6&0x3f), 0x80|byte(cp&0x3f))
		}
	}
	return b
}

// --- UTF-16 -----------------------------------------------------------------

// DecodeUTF16 converts a sequence of 16-bit units into code points. Units
// outside the surrogate range pass through unchanged; a high surrogate
// immediately followed by a low surrogate combines into one code point
// above 0xFFFF.
//
// DecodeUTF16 fails when a high surrogate is not immediately followed by a
// low surrogate, or when a low surrogate appears unpaired.
func DecodeUTF16(u []uint16) ([]CodePoint, error) {
	cps := make([]CodePoint, 0, len(u))
	for i := 0; i < len(u); {
		cp, l, err := decodeUTF16At(u, i)
		if err != nil {
			return nil, err
		}
		cps = append(cps, cp)
		i += l
	}
	return cps, nil
}

// DecodeUTF16Lenient decodes best-effort, in the manner of
// DecodeUTF8Lenient: unpaired surrogates pass through as their unit values
// and the success flag is cleared.
func DecodeUTF16Lenient(u []uint16) (raw []CodePoint, decoded []CodePoint, ok bool) {
	raw = make([]CodePoint, len(u))
	for i, c := range u {
		raw[i] = CodePoint(c)
	}
	ok = true
	decoded = make([]CodePoint, 0, len(u))
	for i := 0; i < len(u); {
		cp, l, err := decodeUTF16At(u, i)
		if err != nil {
			tracer().Debugf("lenient UTF-16 decoding skips offset %d: %v", i, err)
			decoded = append(decoded, CodePoint(u[i]))
			i++
			ok = false
			continue
		}
		decoded = append(decoded, cp)
		i += l
	}
	return raw, decoded, ok
}

func decodeUTF16At(u []uint16, i int) (CodePoint, int, error) {
	c := u[i]
	switch {
	case c < surrMin || c > surrMax:
		return CodePoint(c), 1, nil
	case c <= surrHigh: // high surrogate
		if i+1 >= len(u) {
			return 0, 0, core.Error(core.EENCODING,
				"high surrogate 0x%04x at offset %d at end of input", c, i)
		}
		low := u[i+1]
		if low < surrHigh+1 || low > surrMax {
			return 0, 0, core.Error(core.EENCODING,
				"high surrogate 0x%04x at offset %d not followed by a low surrogate", c, i)
		}
		cp := 0x10000 + (CodePoint(c)-surrMin)<<10 + (CodePoint(low) - (surrHigh + 1))
		return cp, 2, nil
	default:
		return 0, 0, core.Error(core.EENCODING,
			"unpaired low surrogate 0x%04x at offset %d", c, i)
	}
}

// EncodeUTF16 converts code points back into 16-bit units, the inverse of
// DecodeUTF16 over valid input. Code points above 0xFFFF become surrogate
// pairs.
func EncodeUTF16(cps []CodePoint) []uint16 {
	u := make([]uint16, 0, len(cps))
	for _, cp := range cps {
		if cp < 0x10000 {
			u = append(u, uint16(cp))
			continue
		}
		v := cp - 0x10000
		u = append(u, uint16(surrMin+v>>10), uint16(surrHigh+1+v&0x3ff))
	}
	return u
}
