/*
Package codepoint decodes raw UTF-8/UTF-16 code units into validated
Unicode code points.

The decoders are deliberately strict: any structural violation of the
encoding rules is reported as an error carrying the offending byte/unit
offset. For callers that can tolerate partially broken input, lenient
variants decode best-effort and report success separately.

The package also carries the fixed, font-independent classification sets
for newline, zero-width and blank code points, which the font table builds
upon.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codepoint

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'glyphbits.core'.
func tracer() tracing.Trace {
	return tracing.Select("glyphbits.core")
}
