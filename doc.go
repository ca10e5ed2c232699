/*
Package linear offers linear sequence containers with positional access.

Sequences

A sequence is an ordered, mutable collection of elements. This package tree
provides two representations of the same abstraction:

	vector.Vector[T]   contiguous growable storage, index based iterators
	list.List[T]       doubly linked nodes in a ring around a sentinel node

Both expose the same set of operations and the same bidirectional iterator
contract, so clients may switch representations without changing call
sites. The contract is captured in Go by the generic interfaces Cursor,
WriteCursor and Sequence of this package.

	Operation     |   Vector        |  List
	--------------+-----------------+---------
	Append        |   O(1) amort.   |   O(1)
	Prepend       |   O(n)          |   O(1)
	Insert        |   O(n-i)        |   O(1)
	PopFirst      |   O(n)          |   O(1)
	PopLast       |   O(1)          |   O(1)
	Erase         |   O(n-i)        |   O(1)
	EraseRange    |   O(n-i)        |   O(k)
	Iterator ±d   |   O(d)          |   O(d)

Iterators

Iterators are position tokens bound to one container. They are small values;
stepping an iterator returns a new iterator and leaves the receiver alone.
Every boundary violation (dereferencing the end position, stepping past
either end, erasing at the end position) is reported as an error wrapping
one of the error constants of this package. Use errors.Is to tell them apart.

Containers are not safe for concurrent use. Clients have to serialize access
to a shared container.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package linear

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SequenceError is an error type for the linear module.
type SequenceError string

func (e SequenceError) Error() string {
	return string(e)
}

// ErrEmptyContainer is flagged whenever an element is removed from a
// container of size 0.
const ErrEmptyContainer = SequenceError("container is empty")

// ErrOutOfRange is flagged whenever a position is dereferenced, stepped or
// erased beyond the boundaries of its container.
const ErrOutOfRange = SequenceError("position out of range")

// ErrInvalidRange is flagged whenever the endpoints of a range are out of
// order.
const ErrInvalidRange = SequenceError("invalid range")

// ErrStalePosition is flagged for iterators which have been invalidated,
// either by a reallocation of the underlying storage or by removal of the
// element they denote.
const ErrStalePosition = SequenceError("position has been invalidated")

// ErrForeignPosition is flagged whenever a container is handed a position
// issued by a different container.
const ErrForeignPosition = SequenceError("position belongs to another container")
