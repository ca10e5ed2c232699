package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/linear"
)

func TestIteratorIndex(t *testing.T) {
	v := From(10, 20, 30)
	it, err := v.CBegin().Add(2)
	if err != nil {
		t.Fatal(err)
	}
	if it.Index() != 2 {
		t.Errorf("index = %d, want 2", it.Index())
	}
	if it.String() != "vector@2" {
		t.Errorf("String() = %q", it.String())
	}
	if v.CEnd().Index() != 3 {
		t.Errorf("end index = %d, want 3", v.CEnd().Index())
	}
}

func TestIteratorFailedStepKeepsPosition(t *testing.T) {
	v := From(1, 2, 3)
	it, _ := v.CBegin().Add(1)
	same, err := it.Add(5)
	if !errors.Is(err, linear.ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	if !same.Equal(it) {
		t.Errorf("failed Add moved the iterator to %d", same.Index())
	}
}

func TestIteratorExtremeSteps(t *testing.T) {
	v := From(1, 2, 3)
	it, _ := v.CBegin().Add(1)
	for _, d := range []int{math.MaxInt, math.MinInt, math.MaxInt - 1, math.MinInt + 1} {
		moved, err := it.Add(d)
		if !errors.Is(err, linear.ErrOutOfRange) {
			t.Errorf("Add(%d): expected out of range, got index %d, err %v", d, moved.Index(), err)
		}
		if moved.Index() != 1 {
			t.Errorf("Add(%d) moved the iterator to %d", d, moved.Index())
		}
		moved, err = it.Sub(d)
		if !errors.Is(err, linear.ErrOutOfRange) {
			t.Errorf("Sub(%d): expected out of range, got index %d, err %v", d, moved.Index(), err)
		}
		if moved.Index() != 1 {
			t.Errorf("Sub(%d) moved the iterator to %d", d, moved.Index())
		}
	}
}

func TestIteratorAfterShrink(t *testing.T) {
	v := From(1, 2, 3)
	end := v.CEnd()
	if _, err := v.PopLast(); err != nil {
		t.Fatal(err)
	}
	// index 3 is beyond the new end
	if _, err := end.Value(); !errors.Is(err, linear.ErrOutOfRange) {
		t.Errorf("expected out of range, got %v", err)
	}
	if _, err := end.Prev(); !errors.Is(err, linear.ErrOutOfRange) {
		t.Errorf("expected out of range for Prev beyond end, got %v", err)
	}
	if err := v.Erase(end); !errors.Is(err, linear.ErrOutOfRange) {
		t.Errorf("expected erase beyond end to fail, got %v", err)
	}
}

func TestMutableIteratorWrites(t *testing.T) {
	v := From(1, 2, 3)
	for it := v.Begin(); !it.IsEnd(); {
		x, _ := it.Value()
		if err := it.Set(x * 10); err != nil {
			t.Fatal(err)
		}
		var err error
		if it, err = it.Next(); err != nil {
			t.Fatal(err)
		}
	}
	sum := 0
	for x := range v.All() {
		sum += x
	}
	if sum != 60 {
		t.Errorf("sum = %d, want 60", sum)
	}
}
