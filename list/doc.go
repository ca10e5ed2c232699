/*
Package list implements a linear sequence as a doubly linked ring of nodes.

Every list owns one sentinel node which never carries a value. It is both the
node before the first element and the node after the last one: following the
next links from the sentinel visits all elements and returns to the sentinel,
and the same holds for the prev links in reverse. An empty list is a sentinel
linked to itself.

Membership in the ring is ownership. Nodes are released when they are unlinked,
and a list handing its ring to another list (Move, MoveFrom) receives a fresh
sentinel of its own, so it stays usable.

Iterators are node references bound to a list's ring. The end position is the
sentinel itself. Iterators survive insertions and removals of other elements;
an iterator denoting a removed element reports linear.ErrStalePosition.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package list

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
