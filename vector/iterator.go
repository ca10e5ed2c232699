package vector

import (
	"fmt"
	"math"

	"github.com/npillmayer/linear"
)

// ConstIterator is a read-only position in a vector.
//
// It is an index bound to one vector and to the vector's storage at the time
// the iterator was issued. The zero value is not bound to any vector; all of
// its operations fail.
type ConstIterator[T any] struct {
	v     *Vector[T]
	index int
	epoch uint64
}

var _ linear.Cursor[int, ConstIterator[int]] = ConstIterator[int]{}

// Index returns the index the iterator denotes.
func (it ConstIterator[T]) Index() int {
	return it.index
}

func (it ConstIterator[T]) valid() error {
	if it.v == nil {
		return fmt.Errorf("%w: iterator not bound to a vector", linear.ErrOutOfRange)
	}
	if it.epoch != it.v.epoch {
		return fmt.Errorf("%w: vector has been reallocated", linear.ErrStalePosition)
	}
	return nil
}

// Value returns the element at the iterator's position.
func (it ConstIterator[T]) Value() (T, error) {
	var zero T
	if err := it.valid(); err != nil {
		return zero, err
	}
	if it.index < 0 || it.index >= it.v.size {
		return zero, fmt.Errorf("%w: cannot dereference index %d of %d", linear.ErrOutOfRange,
			it.index, it.v.size)
	}
	return it.v.storage[it.index], nil
}

// Next returns an iterator at the following position.
func (it ConstIterator[T]) Next() (ConstIterator[T], error) {
	return it.Add(1)
}

// Prev returns an iterator at the preceding position.
func (it ConstIterator[T]) Prev() (ConstIterator[T], error) {
	return it.Sub(1)
}

// Add returns an iterator d positions towards the end. It fails in the same
// way d calls of Next would, but takes O(1).
func (it ConstIterator[T]) Add(d int) (ConstIterator[T], error) {
	if d < 0 {
		if d == math.MinInt {
			return it, it.overstep(d)
		}
		return it.Sub(-d)
	}
	if err := it.valid(); err != nil {
		return it, err
	}
	if d > it.v.size-it.index {
		return it, fmt.Errorf("%w: cannot increment index %d by %d beyond end %d", linear.ErrOutOfRange,
			it.index, d, it.v.size)
	}
	it.index += d
	return it, nil
}

// Sub returns an iterator d positions towards the beginning.
func (it ConstIterator[T]) Sub(d int) (ConstIterator[T], error) {
	if d < 0 {
		if d == math.MinInt {
			return it, it.overstep(d)
		}
		return it.Add(-d)
	}
	if err := it.valid(); err != nil {
		return it, err
	}
	if it.index < d || it.index > it.v.size {
		return it, fmt.Errorf("%w: cannot decrement index %d by %d", linear.ErrOutOfRange, it.index, d)
	}
	it.index -= d
	return it, nil
}

// overstep reports a step count whose magnitude exceeds any vector.
func (it ConstIterator[T]) overstep(d int) error {
	if err := it.valid(); err != nil {
		return err
	}
	return fmt.Errorf("%w: cannot step by %d", linear.ErrOutOfRange, d)
}

// Equal reports whether both iterators are bound to the same vector and
// denote the same index.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.v == other.v && it.index == other.index
}

// IsEnd reports whether it denotes the one-past-the-end position. An unbound
// iterator is always at its end.
func (it ConstIterator[T]) IsEnd() bool {
	return it.v == nil || it.index >= it.v.size
}

func (it ConstIterator[T]) String() string {
	return fmt.Sprintf("vector@%d", it.index)
}

// Iterator is a mutable position in a vector. Apart from Set it behaves
// exactly like ConstIterator.
type Iterator[T any] struct {
	ConstIterator[T]
}

var _ linear.WriteCursor[int, ConstIterator[int], Iterator[int]] = Iterator[int]{}

// Const returns the read-only iterator for the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return it.ConstIterator
}

// Set replaces the element at the iterator's position.
func (it Iterator[T]) Set(item T) error {
	if err := it.valid(); err != nil {
		return err
	}
	if it.index < 0 || it.index >= it.v.size {
		return fmt.Errorf("%w: cannot write to index %d of %d", linear.ErrOutOfRange,
			it.index, it.v.size)
	}
	it.v.storage[it.index] = item
	return nil
}

// Next returns an iterator at the following position.
func (it Iterator[T]) Next() (Iterator[T], error) {
	c, err := it.ConstIterator.Next()
	return Iterator[T]{c}, err
}

// Prev returns an iterator at the preceding position.
func (it Iterator[T]) Prev() (Iterator[T], error) {
	c, err := it.ConstIterator.Prev()
	return Iterator[T]{c}, err
}

// Add returns an iterator d positions towards the end.
func (it Iterator[T]) Add(d int) (Iterator[T], error) {
	c, err := it.ConstIterator.Add(d)
	return Iterator[T]{c}, err
}

// Sub returns an iterator d positions towards the beginning.
func (it Iterator[T]) Sub(d int) (Iterator[T], error) {
	c, err := it.ConstIterator.Sub(d)
	return Iterator[T]{c}, err
}

// Equal reports whether both iterators denote the same position of the same
// vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.ConstIterator.Equal(other.ConstIterator)
}
