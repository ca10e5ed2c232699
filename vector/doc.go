/*
Package vector implements a linear sequence on top of contiguous, growable
storage.

Storage is allocated lazily. The first growth allocates room for 16 elements,
every further growth doubles the capacity. A growth copies all live elements
to a new buffer, which makes appending amortized O(1). Capacity never shrinks.

Iterators are indices into a vector. Any reallocation invalidates all
iterators issued before it, even though their indices would still be
meaningful: using such an iterator fails with linear.ErrStalePosition.
Inserting or erasing shifts the elements behind the affected position, and an
iterator held across such a call may denote a different element afterwards.
This is not detected.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package vector

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
