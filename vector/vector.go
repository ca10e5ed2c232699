package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"

	"github.com/npillmayer/linear"
)

// BaseCapacity is the capacity allocated by the first growth of a vector.
const BaseCapacity = 16

// Vector is a sequence of elements stored contiguously.
//
// A vector created by
//
//	Vector[T]{}
//
// is a valid object and behaves like the empty sequence. A vector must not be
// copied by value after first use; use Clone or Move instead.
type Vector[T any] struct {
	storage []T    // len(storage) is the capacity; slots [size, cap) are zero
	size    int    // number of live elements
	epoch   uint64 // incremented on every reallocation
}

var _ linear.Sequence[int, ConstIterator[int], Iterator[int]] = (*Vector[int])(nil)

// New creates an empty vector. No storage is allocated.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// From creates a vector holding items in order. The capacity equals the
// number of items.
func From[T any](items ...T) *Vector[T] {
	v := &Vector[T]{}
	if len(items) > 0 {
		v.storage = make([]T, len(items))
		copy(v.storage, items)
		v.size = len(items)
	}
	return v
}

// Clone returns a deep copy of v with the same capacity. v is left untouched.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{size: v.size}
	if len(v.storage) > 0 {
		c.storage = make([]T, len(v.storage))
		copy(c.storage, v.storage[:v.size])
	}
	return c
}

// CopyFrom replaces the contents of v with a deep copy of other.
// All iterators of v are invalidated.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	var storage []T
	if len(other.storage) > 0 {
		storage = make([]T, len(other.storage))
		copy(storage, other.storage[:other.size])
	}
	v.storage, v.size = storage, other.size
	v.epoch++
}

// Move transfers the storage of v to a new vector in O(1). v is left empty
// and remains usable. All iterators of v are invalidated.
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{storage: v.storage, size: v.size}
	v.release()
	tracer().Debugf("vector: moved %d elements (cap %d)", dst.size, len(dst.storage))
	return dst
}

// MoveFrom transfers the storage of other to v in O(1), releasing the former
// storage of v. other is left empty and remains usable. Iterators of both
// vectors are invalidated.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.storage, v.size = other.storage, other.size
	v.epoch++
	other.release()
	tracer().Debugf("vector: moved %d elements (cap %d)", v.size, len(v.storage))
}

func (v *Vector[T]) release() {
	v.storage = nil
	v.size = 0
	v.epoch++
}

// IsEmpty reports whether v has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Size returns the number of elements in v.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of elements v can hold without reallocation.
func (v *Vector[T]) Capacity() int {
	return len(v.storage)
}

// Clear removes all elements. The storage is kept.
func (v *Vector[T]) Clear() {
	clear(v.storage[:v.size])
	v.size = 0
}

// Values returns a copy of the elements of v in order.
func (v *Vector[T]) Values() []T {
	values := make([]T, v.size)
	copy(values, v.storage[:v.size])
	return values
}

// All returns an iterator over all elements, first to last.
func (v *Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.storage[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over all elements, last to first.
func (v *Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(v.storage[i]) {
				return
			}
		}
	}
}

// grow reallocates storage: to BaseCapacity for a vector without storage,
// to double the capacity otherwise.
func (v *Vector[T]) grow() {
	capacity := BaseCapacity
	if len(v.storage) > 0 {
		capacity = 2 * len(v.storage)
	}
	assert(capacity > v.size, "vector.grow: new capacity does not exceed size")
	storage := make([]T, capacity)
	copy(storage, v.storage[:v.size])
	tracer().Debugf("vector: growing capacity %d -> %d", len(v.storage), capacity)
	v.storage = storage
	v.epoch++
}

// Append adds item after the last element. Amortized O(1).
func (v *Vector[T]) Append(item T) {
	err := v.Insert(v.CEnd(), item)
	assert(err == nil, "vector.Append: cannot insert at end")
}

// Prepend adds item before the first element. O(n).
func (v *Vector[T]) Prepend(item T) {
	err := v.Insert(v.CBegin(), item)
	assert(err == nil, "vector.Prepend: cannot insert at begin")
}

// Insert places item right before pos, shifting all elements from pos on by
// one slot. pos may be CEnd(), which appends. If an insert would exceed the
// capacity, the storage is reallocated first, invalidating all iterators.
func (v *Vector[T]) Insert(pos ConstIterator[T], item T) error {
	if err := v.owns(pos); err != nil {
		return err
	}
	if v.size >= len(v.storage) {
		v.grow()
	}
	i := pos.index
	copy(v.storage[i+1:v.size+1], v.storage[i:v.size])
	v.storage[i] = item
	v.size++
	return nil
}

// PopFirst removes and returns the first element. O(n).
func (v *Vector[T]) PopFirst() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, fmt.Errorf("%w: cannot pop first element", linear.ErrEmptyContainer)
	}
	item := v.storage[0]
	copy(v.storage, v.storage[1:v.size])
	v.size--
	v.storage[v.size] = zero
	return item, nil
}

// PopLast removes and returns the last element. O(1).
func (v *Vector[T]) PopLast() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, fmt.Errorf("%w: cannot pop last element", linear.ErrEmptyContainer)
	}
	v.size--
	item := v.storage[v.size]
	v.storage[v.size] = zero
	return item, nil
}

// Erase removes the element at pos, shifting all elements behind it by one
// slot towards the beginning. pos must not be the end position.
func (v *Vector[T]) Erase(pos ConstIterator[T]) error {
	if err := v.owns(pos); err != nil {
		return err
	}
	if pos.index >= v.size {
		return fmt.Errorf("%w: cannot erase end position", linear.ErrOutOfRange)
	}
	i := pos.index
	copy(v.storage[i:v.size-1], v.storage[i+1:v.size])
	v.size--
	var zero T
	v.storage[v.size] = zero
	return nil
}

// EraseRange removes the elements in [first, last) with a single shift of
// the tail. Equal endpoints are a no-op.
func (v *Vector[T]) EraseRange(first, last ConstIterator[T]) error {
	if err := v.owns(first); err != nil {
		return err
	}
	if err := v.owns(last); err != nil {
		return err
	}
	if first.index > last.index {
		tracer().Debugf("vector: erase range [%d, %d) refused", first.index, last.index)
		return fmt.Errorf("%w: first index %d is greater than last index %d",
			linear.ErrInvalidRange, first.index, last.index)
	}
	n := last.index - first.index
	if n == 0 {
		return nil
	}
	copy(v.storage[first.index:], v.storage[last.index:v.size])
	clear(v.storage[v.size-n : v.size])
	v.size -= n
	return nil
}

// owns checks that pos is a current position of v, in [begin, end].
func (v *Vector[T]) owns(pos ConstIterator[T]) error {
	if pos.v != v {
		return linear.ErrForeignPosition
	}
	if pos.epoch != v.epoch {
		return fmt.Errorf("%w: vector has been reallocated", linear.ErrStalePosition)
	}
	if pos.index < 0 || pos.index > v.size {
		return fmt.Errorf("%w: index %d not in [0, %d]", linear.ErrOutOfRange, pos.index, v.size)
	}
	return nil
}

// Begin returns a mutable iterator at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v.CBegin()}
}

// End returns a mutable iterator at the one-past-the-end position.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v.CEnd()}
}

// CBegin returns a read-only iterator at the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{v: v, index: 0, epoch: v.epoch}
}

// CEnd returns a read-only iterator at the one-past-the-end position.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{v: v, index: v.size, epoch: v.epoch}
}

// At returns a read-only iterator at index i, where i may be Size().
func (v *Vector[T]) At(i int) (ConstIterator[T], error) {
	if i < 0 || i > v.size {
		return ConstIterator[T]{}, fmt.Errorf("%w: index %d not in [0, %d]", linear.ErrOutOfRange, i, v.size)
	}
	return ConstIterator[T]{v: v, index: i, epoch: v.epoch}, nil
}
