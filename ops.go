package linear

import (
	"fmt"
	"iter"
)

// Range returns an iterator over the values in [first, last).
//
// Iteration stops silently if a cursor operation fails, e.g. if last is not
// reachable from first. Use Distance to validate a range up front.
func Range[T any, C Cursor[T, C]](first, last C) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := first; !it.Equal(last); {
			v, err := it.Value()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
			if it, err = it.Next(); err != nil {
				return
			}
		}
	}
}

// Distance returns the number of Next steps needed to get from first to last.
//
// If last is not reachable from first, ErrInvalidRange is returned.
func Distance[T any, C Cursor[T, C]](first, last C) (int, error) {
	n := 0
	it := first
	for !it.Equal(last) {
		if it.IsEnd() {
			return 0, fmt.Errorf("%w: end reached after %d steps", ErrInvalidRange, n)
		}
		next, err := it.Next()
		if err != nil {
			return 0, err
		}
		it = next
		n++
	}
	return n, nil
}

// Collect copies the values in [first, last) into a new slice.
//
// The range is validated with Distance first. Any cursor error is returned
// together with the values collected so far.
func Collect[T any, C Cursor[T, C]](first, last C) ([]T, error) {
	n, err := Distance[T](first, last)
	if err != nil {
		return nil, err
	}
	values := make([]T, 0, n)
	for it := first; len(values) < n; {
		v, err := it.Value()
		if err != nil {
			return values, err
		}
		values = append(values, v)
		if it, err = it.Next(); err != nil {
			return values, err
		}
	}
	return values, nil
}
