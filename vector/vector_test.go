package vector

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/linear"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestZeroVectorIsUsable(t *testing.T) {
	var v Vector[string]
	if !v.IsEmpty() || v.Size() != 0 || v.Capacity() != 0 {
		t.Fatalf("zero vector not empty: size=%d cap=%d", v.Size(), v.Capacity())
	}
	v.Append("a")
	if v.Size() != 1 || v.Capacity() != BaseCapacity {
		t.Fatalf("after first append size=%d cap=%d, want 1/%d", v.Size(), v.Capacity(), BaseCapacity)
	}
	if err := v.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestGrowthPolicy(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := New[int]()
	want := 0
	for i := 0; i < 100; i++ {
		if v.Size() == v.Capacity() {
			if want == 0 {
				want = BaseCapacity
			} else {
				want *= 2
			}
		}
		v.Append(i)
		if v.Capacity() != want {
			t.Fatalf("after %d appends capacity=%d, want %d", i+1, v.Capacity(), want)
		}
	}
	if v.Capacity() != 128 {
		t.Errorf("expected capacity 128 for 100 elements, is %d", v.Capacity())
	}
	for i := 0; i < 100; i++ {
		if _, err := v.PopLast(); err != nil {
			t.Fatal(err)
		}
	}
	if v.Capacity() != 128 {
		t.Errorf("capacity must not shrink, is %d", v.Capacity())
	}
}

func TestFromSetsCapacityToLength(t *testing.T) {
	v := From(1, 2, 3)
	if v.Capacity() != 3 {
		t.Fatalf("capacity=%d, want 3", v.Capacity())
	}
	v.Append(4)
	if v.Capacity() != 6 {
		t.Fatalf("capacity after growth=%d, want 6", v.Capacity())
	}
	if From[int]().Capacity() != 0 {
		t.Fatalf("empty literal must not allocate")
	}
}

func TestReallocationInvalidatesIterators(t *testing.T) {
	v := From(1, 2)
	begin := v.CBegin()
	mut := v.Begin()
	v.Append(3) // grows 2 -> 4
	if _, err := begin.Value(); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected stale iterator after reallocation, got %v", err)
	}
	if _, err := begin.Next(); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected stale Next after reallocation, got %v", err)
	}
	if err := mut.Set(0); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected stale Set after reallocation, got %v", err)
	}
	if err := v.Insert(begin, 0); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected Insert to refuse stale position, got %v", err)
	}
	if err := v.Erase(begin); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected Erase to refuse stale position, got %v", err)
	}
	if got := v.Values(); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("vector changed by refused operations: %v", got)
	}
	// no reallocation: iterators stay usable
	it := v.CBegin()
	v.Append(4)
	if x, err := it.Value(); err != nil || x != 1 {
		t.Errorf("expected iterator to survive append without growth, got %d, %v", x, err)
	}
}

func TestInsertShiftsTail(t *testing.T) {
	v := From(1, 2, 3, 4)
	pos, _ := v.At(1)
	if err := v.Insert(pos, 9); err != nil {
		t.Fatal(err)
	}
	got := v.Values()
	want := []int{1, 9, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}
}

func TestVacatedSlotsAreCleared(t *testing.T) {
	s := "x"
	v := From(&s, &s, &s, &s)
	first, _ := v.At(1)
	last, _ := v.At(3)
	if err := v.EraseRange(first, last); err != nil {
		t.Fatal(err)
	}
	if _, err := v.PopLast(); err != nil {
		t.Fatal(err)
	}
	for i := v.Size(); i < v.Capacity(); i++ {
		if v.storage[i] != nil {
			t.Errorf("slot %d still references a value", i)
		}
	}
}

func TestCopyFromAndMoveFrom(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	src := From(1, 2, 3)
	dst := From(7)
	old := dst.CBegin()
	dst.CopyFrom(src)
	if _, err := old.Value(); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected old iterator of copy target to be stale, got %v", err)
	}
	src.Append(4)
	if dst.Size() != 3 || src.Size() != 4 {
		t.Fatalf("copy not independent: dst=%v src=%v", dst.Values(), src.Values())
	}
	dst.CopyFrom(dst)
	if dst.Size() != 3 {
		t.Fatalf("self-copy changed vector: %v", dst.Values())
	}
	moved := New[int]()
	moved.MoveFrom(src)
	if moved.Size() != 4 || !src.IsEmpty() || src.Capacity() != 0 {
		t.Fatalf("move: moved=%v src=%v cap=%d", moved.Values(), src.Values(), src.Capacity())
	}
	src.Append(5)
	if src.Size() != 1 || moved.Size() != 4 {
		t.Fatalf("moved-from vector not independent")
	}
	moved.MoveFrom(moved)
	if moved.Size() != 4 {
		t.Fatalf("self-move changed vector: %v", moved.Values())
	}
}

func TestAtBounds(t *testing.T) {
	v := From(1, 2)
	if _, err := v.At(3); !errors.Is(err, linear.ErrOutOfRange) {
		t.Errorf("expected out of range for At(3), got %v", err)
	}
	if _, err := v.At(-1); !errors.Is(err, linear.ErrOutOfRange) {
		t.Errorf("expected out of range for At(-1), got %v", err)
	}
	end, err := v.At(2)
	if err != nil || !end.Equal(v.CEnd()) {
		t.Errorf("At(Size()) should be end, err=%v", err)
	}
}

func TestVectorDot(t *testing.T) {
	v := From("a", `b"c`)
	v.Append("d")
	var b strings.Builder
	v.Dot(&b)
	out := b.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("not a DOT digraph")
	}
	if !strings.Contains(out, `b\"c`) {
		t.Errorf("expected escaped value in output")
	}
	if !strings.Contains(out, "free ×1") {
		t.Errorf("expected one free slot (size 3, cap 4)")
	}
}

func TestCheckDetectsUnclearedSlot(t *testing.T) {
	v := From(1, 2, 3)
	v.Append(4)
	if err := v.Check(); err != nil {
		t.Fatalf("fresh vector reported broken: %v", err)
	}
	v.storage[v.Capacity()-1] = 99
	if err := v.Check(); err == nil {
		t.Errorf("expected Check to report stale value in free slot")
	}
	var nilvec *Vector[int]
	err := nilvec.Check()
	if err == nil || errors.Is(err, linear.ErrOutOfRange) {
		t.Errorf("nil vector: got %v, want a plain invariant error", err)
	}
}
