package list

import (
	"fmt"
	"math"

	"github.com/npillmayer/linear"
)

// ConstIterator is a read-only position in a list.
//
// It references a node of a list's ring, the end position being the
// sentinel. The zero value is not bound to any list; all of its operations
// fail.
type ConstIterator[T any] struct {
	r *ring[T]
	n *node[T]
}

var _ linear.Cursor[int, ConstIterator[int]] = ConstIterator[int]{}

func (it ConstIterator[T]) valid() error {
	if it.r == nil || it.n == nil {
		return fmt.Errorf("%w: iterator not bound to a list", linear.ErrOutOfRange)
	}
	if it.n.next == nil {
		return fmt.Errorf("%w: element has been removed", linear.ErrStalePosition)
	}
	return nil
}

// Value returns the element at the iterator's position.
func (it ConstIterator[T]) Value() (T, error) {
	var zero T
	if err := it.valid(); err != nil {
		return zero, err
	}
	if it.n == &it.r.sentinel {
		return zero, fmt.Errorf("%w: cannot dereference end position", linear.ErrOutOfRange)
	}
	return it.n.value, nil
}

// Next returns an iterator at the following position.
func (it ConstIterator[T]) Next() (ConstIterator[T], error) {
	if err := it.valid(); err != nil {
		return it, err
	}
	if it.n == &it.r.sentinel {
		return it, fmt.Errorf("%w: cannot increment end position", linear.ErrOutOfRange)
	}
	return ConstIterator[T]{r: it.r, n: it.n.next}, nil
}

// Prev returns an iterator at the preceding position.
func (it ConstIterator[T]) Prev() (ConstIterator[T], error) {
	if err := it.valid(); err != nil {
		return it, err
	}
	if it.n == it.r.sentinel.next {
		return it, fmt.Errorf("%w: cannot decrement begin position", linear.ErrOutOfRange)
	}
	return ConstIterator[T]{r: it.r, n: it.n.prev}, nil
}

// Add returns an iterator d positions towards the end by following d next
// links. O(d).
func (it ConstIterator[T]) Add(d int) (ConstIterator[T], error) {
	if d < 0 {
		if d == math.MinInt {
			return it, it.overstep(d)
		}
		return it.Sub(-d)
	}
	cur := it
	for i := 0; i < d; i++ {
		next, err := cur.Next()
		if err != nil {
			return it, err
		}
		cur = next
	}
	return cur, nil
}

// Sub returns an iterator d positions towards the beginning by following d
// prev links. O(d).
func (it ConstIterator[T]) Sub(d int) (ConstIterator[T], error) {
	if d < 0 {
		if d == math.MinInt {
			return it, it.overstep(d)
		}
		return it.Add(-d)
	}
	cur := it
	for i := 0; i < d; i++ {
		prev, err := cur.Prev()
		if err != nil {
			return it, err
		}
		cur = prev
	}
	return cur, nil
}

// overstep reports a step count whose magnitude exceeds any list.
func (it ConstIterator[T]) overstep(d int) error {
	if err := it.valid(); err != nil {
		return err
	}
	return fmt.Errorf("%w: cannot step by %d", linear.ErrOutOfRange, d)
}

// Equal reports whether both iterators are bound to the same list and
// denote the same node.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.r == other.r && it.n == other.n
}

// IsEnd reports whether it denotes the sentinel. An unbound iterator is
// always at its end.
func (it ConstIterator[T]) IsEnd() bool {
	return it.r == nil || it.n == &it.r.sentinel
}

// Iterator is a mutable position in a list. Apart from Set it behaves
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
	if it.n == &it.r.sentinel {
		return fmt.Errorf("%w: cannot write to end position", linear.ErrOutOfRange)
	}
	it.n.value = item
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

// Equal reports whether both iterators denote the same node of the same list.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.ConstIterator.Equal(other.ConstIterator)
}
