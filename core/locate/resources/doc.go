/*
Package resources acquires glyph container rasters for fonts.

The codec and the renderer never perform I/O themselves; they consume
in-memory rasters. This package provides the strategies to obtain such a
raster for a font identifier — from the user's cache directory, from
container images dropped into system font directories, or from a remote
container repository — behind a single injectable provider interface.

As resource loading may be a time-consuming task, some functions in this
package work in an async/await fashion by returning a promise. Functions
named

	Resolve…(…)

return a resource-specific promise type, which the client will call later
to receive the loaded resource. The call to the promise-function will then
block until loading has completed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'glyphbits.resources'.
func tracer() tracing.Trace {
	return tracing.Select("glyphbits.resources")
}
