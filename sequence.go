package linear

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Cursor is the read-only iterator contract shared by all sequences.
//
// C is the concrete cursor type itself. Stepping never modifies the receiver
// but returns a new cursor. Add and Sub are defined as d repeated calls of
// Next resp. Prev and fail with the same errors; a negative d reverses the
// direction.
type Cursor[T any, C any] interface {
	// Value dereferences the cursor. The end position fails with ErrOutOfRange.
	Value() (T, error)
	// Next returns the cursor one step towards the end.
	Next() (C, error)
	// Prev returns the cursor one step towards the beginning.
	Prev() (C, error)
	Add(d int) (C, error)
	Sub(d int) (C, error)
	// Equal compares owning container and position. Cursors of different
	// containers are never equal.
	Equal(other C) bool
	// IsEnd reports whether the cursor denotes the one-past-the-end position.
	IsEnd() bool
}

// WriteCursor is the mutable variant of a cursor. It is identical to its
// read-only counterpart C, but additionally allows writing through it.
type WriteCursor[T any, C any, W any] interface {
	Cursor[T, W]
	// Set replaces the element the cursor denotes.
	Set(item T) error
	// Const returns the read-only cursor for the same position.
	Const() C
}

// Collection is the part of a sequence which is independent of positions.
type Collection[T any] interface {
	IsEmpty() bool
	Size() int
	Clear()
	Values() []T
}

// Sequence is the operation set every sequence representation implements.
//
// Positions handed to Insert, Erase and EraseRange have to be issued by the
// same container. Mutating operations validate their arguments before
// changing any state; a failed call leaves the sequence untouched.
type Sequence[T any, C Cursor[T, C], W WriteCursor[T, C, W]] interface {
	Collection[T]
	Append(item T)
	Prepend(item T)
	// Insert places item right before pos. Inserting at CEnd() appends.
	Insert(pos C, item T) error
	PopFirst() (T, error)
	PopLast() (T, error)
	Erase(pos C) error
	// EraseRange removes the half-open range [first, last).
	EraseRange(first, last C) error
	Begin() W
	End() W
	CBegin() C
	CEnd() C
	All() iter.Seq[T]
	Backward() iter.Seq[T]
	// Check validates the structural invariants of the representation.
	Check() error
}
