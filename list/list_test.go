package list

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/linear"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmptyListSentinelPointsToItself(t *testing.T) {
	l := New[int]()
	s := &l.r.sentinel
	if s.next != s || s.prev != s {
		t.Fatalf("sentinel of empty list not linked to itself")
	}
	l.Append(1)
	if _, err := l.PopLast(); err != nil {
		t.Fatal(err)
	}
	if s.next != s || s.prev != s {
		t.Fatalf("sentinel not restored after removing last element")
	}
}

func TestZeroListIsUsable(t *testing.T) {
	var l List[string]
	if !l.IsEmpty() || l.Size() != 0 {
		t.Fatalf("zero list not empty")
	}
	if !l.CBegin().Equal(l.CEnd()) {
		t.Fatalf("begin != end for zero list")
	}
	l.Prepend("b")
	l.Prepend("a")
	if err := l.Check(); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(l.Values(), ""); got != "ab" {
		t.Errorf("values = %q, want \"ab\"", got)
	}
}

func TestIteratorsSurviveUnrelatedMutations(t *testing.T) {
	l := From(1, 2, 3)
	second, _ := l.CBegin().Next()
	l.Prepend(0)
	l.Append(4)
	if err := l.Erase(l.CBegin()); err != nil {
		t.Fatal(err)
	}
	if v, err := second.Value(); err != nil || v != 2 {
		t.Fatalf("expected iterator to still denote 2, got %d, %v", v, err)
	}
	if err := l.Insert(second, 9); err != nil {
		t.Fatal(err)
	}
	want := []int{1, 9, 2, 3, 4}
	got := l.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}
}

func TestErasedPositionIsStale(t *testing.T) {
	l := From(1, 2, 3)
	mid, _ := l.CBegin().Next()
	if err := l.Erase(mid); err != nil {
		t.Fatal(err)
	}
	if _, err := mid.Value(); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected stale position, got %v", err)
	}
	if _, err := mid.Next(); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected stale Next, got %v", err)
	}
	if err := l.Erase(mid); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected second erase to fail, got %v", err)
	}
	if err := l.Insert(mid, 0); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected insert at stale position to fail, got %v", err)
	}
	first := l.CBegin()
	l.Clear()
	if _, err := first.Value(); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected stale position after Clear, got %v", err)
	}
	if err := l.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestEraseRangeReleasesNodes(t *testing.T) {
	l := From(1, 2, 3, 4, 5)
	first, _ := l.CBegin().Next()
	inner, _ := first.Next()
	last, _ := inner.Next()
	if err := l.EraseRange(first, last); err != nil {
		t.Fatal(err)
	}
	for _, it := range []ConstIterator[int]{first, inner} {
		if _, err := it.Value(); !errors.Is(err, linear.ErrStalePosition) {
			t.Errorf("expected removed node to be released, got %v", err)
		}
	}
	if v, err := last.Value(); err != nil || v != 4 {
		t.Errorf("last endpoint must survive, got %d, %v", v, err)
	}
	if err := l.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestMoveTransfersSentinel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	src := From(1, 2, 3)
	sentinel := &src.r.sentinel
	second, _ := src.CBegin().Next()
	dst := src.Move()
	if &dst.r.sentinel != sentinel {
		t.Fatalf("move did not transfer the sentinel")
	}
	if &src.r.sentinel == sentinel {
		t.Fatalf("moved-from list still holds the old sentinel")
	}
	// iterators follow the ring
	if err := dst.Erase(second); err != nil {
		t.Fatalf("iterator did not follow the moved ring: %v", err)
	}
	if err := src.Erase(second); !errors.Is(err, linear.ErrForeignPosition) {
		t.Errorf("expected foreign position for moved-from list, got %v", err)
	}
	src.Append(7)
	if src.Size() != 1 || dst.Size() != 2 {
		t.Fatalf("src=%v dst=%v", src.Values(), dst.Values())
	}
}

func TestCopyFromAndMoveFrom(t *testing.T) {
	a := From(1, 2, 3)
	b := From(9)
	old := b.CBegin()
	b.CopyFrom(a)
	if _, err := old.Value(); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected former element of copy target to be stale, got %v", err)
	}
	a.Append(4)
	if b.Size() != 3 || a.Size() != 4 {
		t.Fatalf("copy not independent: a=%v b=%v", a.Values(), b.Values())
	}
	b.CopyFrom(b)
	if b.Size() != 3 {
		t.Fatalf("self-copy changed list: %v", b.Values())
	}
	c := From(5, 6)
	cOld := c.CBegin()
	c.MoveFrom(a)
	if c.Size() != 4 || !a.IsEmpty() {
		t.Fatalf("move: c=%v a=%v", c.Values(), a.Values())
	}
	if _, err := cOld.Value(); !errors.Is(err, linear.ErrStalePosition) {
		t.Errorf("expected released elements of move target to be stale, got %v", err)
	}
	a.Append(8)
	if a.Size() != 1 || c.Size() != 4 {
		t.Fatalf("moved-from list not independent")
	}
	c.MoveFrom(c)
	if c.Size() != 4 {
		t.Fatalf("self-move changed list: %v", c.Values())
	}
	if err := c.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestCheckDetectsBrokenRing(t *testing.T) {
	l := From(1, 2, 3)
	l.r.sentinel.next.next.prev = &l.r.sentinel
	if err := l.Check(); err == nil {
		t.Errorf("expected broken back link to be detected")
	}
	l = From(1, 2, 3)
	l.r.size = 2
	if err := l.Check(); err == nil {
		t.Errorf("expected size mismatch to be detected")
	}
}

func TestListDot(t *testing.T) {
	l := From("a", "b")
	var b strings.Builder
	l.Dot(&b)
	out := b.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, "digraph {") {
		t.Errorf("not a DOT digraph")
	}
	// sentinel + 2 nodes, each with a next and a prev edge
	if n := strings.Count(out, "->"); n != 6 {
		t.Errorf("expected 6 edges, found %d", n)
	}
}
