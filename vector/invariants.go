package vector

import (
	"fmt"
	"reflect"
)

// Check validates structural vector invariants.
//
// It is meant to be used in tests.
func (v *Vector[T]) Check() error {
	if v == nil {
		return fmt.Errorf("vector: nil vector")
	}
	if v.size < 0 {
		return fmt.Errorf("vector: negative size %d", v.size)
	}
	if v.size > len(v.storage) {
		return fmt.Errorf("vector: size %d exceeds capacity %d", v.size, len(v.storage))
	}
	if len(v.storage) == 0 && v.storage != nil {
		return fmt.Errorf("vector: zero capacity with allocated storage")
	}
	for i := v.size; i < len(v.storage); i++ {
		if !reflect.ValueOf(&v.storage[i]).Elem().IsZero() {
			return fmt.Errorf("vector: free slot %d of %d is not cleared", i, len(v.storage))
		}
	}
	return nil
}
