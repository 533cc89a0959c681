/*
Package fontregistry manages the process-wide cache of font tables.

Tables are populated lazily, on first use, through a caller-supplied
loader. Population is guarded per font identifier: concurrent callers for
the same not-yet-loaded font share a single loader invocation, while
callers for different fonts proceed independently. When a font cannot be
produced at all, the registry falls back to the builtin fallback font and
reports the failure as a recoverable error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'glyphbits.font'.
func tracer() tracing.Trace {
	return tracing.Select("glyphbits.font")
}
