/*
Package seqtest provides a conformance harness for implementations of
linear.Sequence.

The harness checks the shared iterator contract and the operation semantics
every sequence representation has to satisfy identically. Representation
packages run it unmodified from their tests:

	func TestConformance(t *testing.T) {
		seqtest.Run(t, seqtest.Impl[vector.ConstIterator[int], vector.Iterator[int], *vector.Vector[int]]{
			New:   vector.From[int],
			Clone: (*vector.Vector[int]).Clone,
			Move:  (*vector.Vector[int]).Move,
		})
	}

RunModel additionally drives a sequence with a pseudo-random series of
operations and compares it step by step against a reference deque.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package seqtest
