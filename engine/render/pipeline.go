package render

import (
	"github.com/npillmayer/glyphbits/core"
	"github.com/npillmayer/glyphbits/core/bitmap"
	"github.com/npillmayer/glyphbits/core/codepoint"
	"github.com/npillmayer/glyphbits/core/font"
	"github.com/npillmayer/glyphbits/core/font/fontregistry"
	"github.com/npillmayer/glyphbits/core/locate/resources"
	"github.com/npillmayer/glyphbits/core/textblock"
)

// Params configures a pipeline run. The zero value renders with the
// builtin fallback font and the default acquisition strategy.
type Params struct {
	Fontname string                   // font to render with; empty selects the fallback font
	Provider resources.RasterProvider // container acquisition; nil selects the default strategy
	Registry *fontregistry.Registry   // font cache; nil selects the global registry
}

// UTF8Text renders a sequence of 8-bit units. The decoder is strict; for
// tolerant decoding run codepoint.DecodeUTF8Lenient first and pass the
// result to CodePoints.
func UTF8Text(units []byte, p Params) (*bitmap.Bitmap, error) {
	cps, err := codepoint.DecodeUTF8(units)
	if err != nil {
		return nil, err
	}
	return CodePoints(cps, p)
}

// UTF16Text renders a sequence of 16-bit units.
func UTF16Text(units []uint16, p Params) (*bitmap.Bitmap, error) {
	cps, err := codepoint.DecodeUTF16(units)
	if err != nil {
		return nil, err
	}
	return CodePoints(cps, p)
}

// CodePoints renders an already decoded code-point sequence: split into
// lines, normalize, resolve the font table, validate, rasterize.
//
// An unknown or unloadable font is not fatal: rendering proceeds with the
// builtin fallback font, and the failure is only reported if the input
// cannot be rendered with the fallback's glyph set either.
func CodePoints(cps []codepoint.CodePoint, p Params) (*bitmap.Bitmap, error) {
	block := textblock.Build(cps)
	table, err := resolveTable(p)
	if err != nil {
		tracer().Infof("falling back to builtin font: %v", core.UserMessage(err))
	}
	if verr := block.Validate(table.Valid); verr != nil {
		if err != nil {
			return nil, core.WrapError(verr, core.EINVALID,
				"input not renderable with fallback font (%s unavailable)", p.Fontname)
		}
		return nil, verr
	}
	return Raster(block, table)
}

func resolveTable(p Params) (*font.Table, error) {
	registry := p.Registry
	if registry == nil {
		registry = fontregistry.GlobalRegistry()
	}
	if p.Fontname == "" {
		return registry.Table(font.FallbackIdent, nil)
	}
	provider := p.Provider
	if provider == nil {
		provider = resources.Provider()
	}
	return registry.Table(p.Fontname, resources.FontLoader(provider))
}
