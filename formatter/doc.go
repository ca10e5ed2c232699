/*
Package formatter renders the contents of a sequence for inspection on a
console or into a text stream.

Elements are output in order, optionally prefixed by their position, and
wrapped into lines of a configured display width. Display widths are
measured by grapheme and East Asian width rules (UAX#11), so wide or
combined characters in element values do not break the layout.

	[0] alpha  [1] beta  [2] gamma
	[3] delta  ⊣

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.

*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
