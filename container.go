package linear

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

// AsContainer wraps a collection as a gods container, enabling the
// utilities of github.com/emirpasic/gods (e.g. containers.GetSortedValues)
// to operate on either sequence representation.
//
// The adapter is a view: it does not copy c, and Clear clears c.
func AsContainer[T any](c Collection[T]) containers.Container {
	return godsView[T]{c: c}
}

type godsView[T any] struct {
	c Collection[T]
}

var _ containers.Container = godsView[int]{}

func (v godsView[T]) Empty() bool {
	return v.c.IsEmpty()
}

func (v godsView[T]) Size() int {
	return v.c.Size()
}

func (v godsView[T]) Clear() {
	v.c.Clear()
}

func (v godsView[T]) Values() []interface{} {
	values := v.c.Values()
	out := make([]interface{}, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}

// String follows the gods convention of a type line followed by the values.
func (v godsView[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%T\n", v.c)
	values := v.c.Values()
	strs := make([]string, len(values))
	for i, value := range values {
		strs[i] = fmt.Sprint(value)
	}
	b.WriteString(strings.Join(strs, ", "))
	return b.String()
}
