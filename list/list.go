package list

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

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T] // nil for released nodes
}

// ring is the storage of a list. The sentinel lives inside the ring, so it
// moves with it.
type ring[T any] struct {
	sentinel node[T]
	size     int
}

func newRing[T any]() *ring[T] {
	r := &ring[T]{}
	r.sentinel.next = &r.sentinel
	r.sentinel.prev = &r.sentinel
	return r
}

// linkBefore allocates a node for item and splices it in right before at.
func (r *ring[T]) linkBefore(at *node[T], item T) {
	n := &node[T]{value: item, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	r.size++
}

// unlink removes n from the ring and releases it.
func (r *ring[T]) unlink(n *node[T]) T {
	assert(n != &r.sentinel, "list.unlink: cannot unlink sentinel")
	n.prev.next = n.next
	n.next.prev = n.prev
	r.size--
	return release(n)
}

// clear releases all nodes and links the sentinel to itself.
func (r *ring[T]) clear() {
	for n := r.sentinel.next; n != &r.sentinel; {
		next := n.next
		release(n)
		n = next
	}
	r.sentinel.next = &r.sentinel
	r.sentinel.prev = &r.sentinel
	r.size = 0
}

func release[T any](n *node[T]) T {
	item := n.value
	var zero T
	n.value = zero
	n.prev, n.next = nil, nil
	return item
}

// List is a sequence of elements stored in a ring of linked nodes.
//
// A list created by
//
//	List[T]{}
//
// is a valid object and behaves like the empty sequence; its sentinel is
// allocated on first use. A list must not be copied by value; use Clone or
// Move instead.
type List[T any] struct {
	r *ring[T]
}

var _ linear.Sequence[int, ConstIterator[int], Iterator[int]] = (*List[int])(nil)

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{r: newRing[T]()}
}

// From creates a list holding items in order.
func From[T any](items ...T) *List[T] {
	l := New[T]()
	for _, item := range items {
		l.Append(item)
	}
	return l
}

func (l *List[T]) lazyInit() *ring[T] {
	if l.r == nil {
		l.r = newRing[T]()
	}
	return l.r
}

// Clone returns a deep copy of l with a sentinel of its own. l is left
// untouched.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for item := range l.All() {
		c.Append(item)
	}
	return c
}

// CopyFrom replaces the contents of l with a deep copy of other.
// Iterators denoting former elements of l become stale.
func (l *List[T]) CopyFrom(other *List[T]) {
	if l == other {
		return
	}
	r := l.lazyInit()
	r.clear()
	for item := range other.All() {
		r.linkBefore(&r.sentinel, item)
	}
}

// Move transfers the ring of l, including its sentinel, to a new list in
// O(1). l receives a fresh empty ring and remains usable. Iterators of l
// follow the ring to the new list.
func (l *List[T]) Move() *List[T] {
	dst := &List[T]{r: l.lazyInit()}
	l.r = newRing[T]()
	tracer().Debugf("list: moved ring of %d nodes", dst.r.size)
	return dst
}

// MoveFrom releases the elements of l and takes over the ring of other in
// O(1). other receives a fresh empty ring and remains usable.
func (l *List[T]) MoveFrom(other *List[T]) {
	if l == other {
		return
	}
	if l.r != nil {
		l.r.clear()
	}
	l.r = other.lazyInit()
	other.r = newRing[T]()
	tracer().Debugf("list: moved ring of %d nodes", l.r.size)
}

// IsEmpty reports whether l has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.r == nil || l.r.size == 0
}

// Size returns the number of elements in l.
func (l *List[T]) Size() int {
	if l.r == nil {
		return 0
	}
	return l.r.size
}

// Clear removes all elements. The sentinel is kept.
func (l *List[T]) Clear() {
	l.lazyInit().clear()
}

// Values returns the elements of l in order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.Size())
	for item := range l.All() {
		values = append(values, item)
	}
	return values
}

// All returns an iterator over all elements, first to last.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		r := l.lazyInit()
		for n := r.sentinel.next; n != &r.sentinel; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over all elements, last to first.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		r := l.lazyInit()
		for n := r.sentinel.prev; n != &r.sentinel; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Append adds item after the last element. O(1).
func (l *List[T]) Append(item T) {
	r := l.lazyInit()
	r.linkBefore(&r.sentinel, item)
}

// Prepend adds item before the first element. O(1).
func (l *List[T]) Prepend(item T) {
	r := l.lazyInit()
	r.linkBefore(r.sentinel.next, item)
}

// Insert places item right before pos. Inserting at CBegin() prepends,
// inserting at CEnd() appends. O(1).
func (l *List[T]) Insert(pos ConstIterator[T], item T) error {
	if err := l.owns(pos); err != nil {
		return err
	}
	r := l.r
	switch pos.n {
	case r.sentinel.next:
		l.Prepend(item)
	case &r.sentinel:
		l.Append(item)
	default:
		r.linkBefore(pos.n, item)
	}
	return nil
}

// PopFirst removes and returns the first element. O(1).
func (l *List[T]) PopFirst() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: cannot pop first element", linear.ErrEmptyContainer)
	}
	return l.r.unlink(l.r.sentinel.next), nil
}

// PopLast removes and returns the last element. O(1).
func (l *List[T]) PopLast() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: cannot pop last element", linear.ErrEmptyContainer)
	}
	if l.r.size == 1 {
		return l.PopFirst()
	}
	return l.r.unlink(l.r.sentinel.prev), nil
}

// Erase removes the element at pos. pos must not be the end position.
func (l *List[T]) Erase(pos ConstIterator[T]) error {
	if err := l.owns(pos); err != nil {
		return err
	}
	r := l.r
	if r.size == 0 || pos.n == &r.sentinel {
		return fmt.Errorf("%w: cannot erase end position", linear.ErrOutOfRange)
	}
	var err error
	switch pos.n {
	case r.sentinel.next:
		_, err = l.PopFirst()
	case r.sentinel.prev:
		_, err = l.PopLast()
	default:
		r.unlink(pos.n)
	}
	return err
}

// EraseRange removes the elements in [first, last). Equal endpoints are a
// no-op. first has to precede last in list order, otherwise
// linear.ErrInvalidRange is returned and l is left untouched. O(k) for k
// removed elements.
func (l *List[T]) EraseRange(first, last ConstIterator[T]) error {
	if err := l.owns(first); err != nil {
		return err
	}
	if err := l.owns(last); err != nil {
		return err
	}
	if first.n == last.n {
		return nil
	}
	r := l.r
	k := 0
	for n := first.n; n != last.n; n = n.next {
		if n == &r.sentinel {
			tracer().Debugf("list: erase range refused, last does not follow first")
			return fmt.Errorf("%w: last position does not follow first", linear.ErrInvalidRange)
		}
		k++
	}
	before := first.n.prev
	before.next = last.n
	last.n.prev = before
	for n := first.n; n != last.n; {
		next := n.next
		release(n)
		n = next
	}
	r.size -= k
	return nil
}

// owns checks that pos is a live position of l, including its end.
func (l *List[T]) owns(pos ConstIterator[T]) error {
	if pos.r == nil || pos.r != l.lazyInit() {
		return linear.ErrForeignPosition
	}
	return pos.valid()
}

// Begin returns a mutable iterator at the first element.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{l.CBegin()}
}

// End returns a mutable iterator at the sentinel.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{l.CEnd()}
}

// CBegin returns a read-only iterator at the first element.
func (l *List[T]) CBegin() ConstIterator[T] {
	r := l.lazyInit()
	return ConstIterator[T]{r: r, n: r.sentinel.next}
}

// CEnd returns a read-only iterator at the sentinel.
func (l *List[T]) CEnd() ConstIterator[T] {
	r := l.lazyInit()
	return ConstIterator[T]{r: r, n: &r.sentinel}
}
