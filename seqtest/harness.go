package seqtest

import (
	"math"
	"testing"

	"github.com/npillmayer/linear"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// Impl describes a sequence implementation under test.
type Impl[C linear.Cursor[int, C], W linear.WriteCursor[int, C, W], S linear.Sequence[int, C, W]] struct {
	// New creates a sequence holding items in order.
	New func(items ...int) S
	// Clone returns a deep copy.
	Clone func(s S) S
	// Move transfers the contents of s to a new sequence, leaving s empty.
	Move func(s S) S
}

// Run executes the conformance suite against impl.
func Run[C linear.Cursor[int, C], W linear.WriteCursor[int, C, W], S linear.Sequence[int, C, W]](t *testing.T, impl Impl[C, W, S]) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	h := harness[C, W, S]{impl: impl}
	t.Run("Empty", h.empty)
	t.Run("AppendPopFirstIsFIFO", h.appendFIFO)
	t.Run("PrependPopFirstIsLIFO", h.prependLIFO)
	t.Run("SizeAccounting", h.sizeAccounting)
	t.Run("InsertMiddle", h.insertMiddle)
	t.Run("InsertAtBeginRoundTrip", h.insertRoundTrip)
	t.Run("Erase", h.erase)
	t.Run("EraseEnd", h.eraseEnd)
	t.Run("EraseRange", h.eraseRange)
	t.Run("EraseRangeEqualEndpoints", h.eraseRangeNoop)
	t.Run("EraseRangeWhole", h.eraseRangeWhole)
	t.Run("EraseRangeOutOfOrder", h.eraseRangeOutOfOrder)
	t.Run("PopLastSingleElement", h.popLastSingle)
	t.Run("DereferenceEnd", h.dereferenceEnd)
	t.Run("IteratorBoundaries", h.boundaries)
	t.Run("IteratorArithmetic", h.arithmetic)
	t.Run("IteratorExtremeSteps", h.extremeSteps)
	t.Run("BidirectionalTraversal", h.traversal)
	t.Run("WriteThrough", h.writeThrough)
	t.Run("ForeignPositions", h.foreign)
	t.Run("CopyIsIndependent", h.copyIndependence)
	t.Run("MoveLeavesSourceUsable", h.move)
	t.Run("ClearAndReuse", h.clear)
	t.Run("RangeHelpers", h.rangeHelpers)
}

type harness[C linear.Cursor[int, C], W linear.WriteCursor[int, C, W], S linear.Sequence[int, C, W]] struct {
	impl Impl[C, W, S]
}

// at returns a read-only position i steps from the beginning of s.
func (h harness[C, W, S]) at(t *testing.T, s S, i int) C {
	t.Helper()
	pos, err := s.CBegin().Add(i)
	require.NoError(t, err, "cannot advance begin by %d", i)
	return pos
}

func requireContents[C linear.Cursor[int, C], W linear.WriteCursor[int, C, W], S linear.Sequence[int, C, W]](t *testing.T, s S, want ...int) {
	t.Helper()
	require.NoError(t, s.Check())
	require.Equal(t, len(want), s.Size())
	require.Equal(t, len(want) == 0, s.IsEmpty())
	if len(want) == 0 {
		require.Empty(t, s.Values())
		require.True(t, s.CBegin().Equal(s.CEnd()), "begin != end for empty sequence")
		return
	}
	require.Equal(t, want, s.Values())
}

func (h harness[C, W, S]) empty(t *testing.T) {
	s := h.impl.New()
	requireContents[C, W](t, s)
	_, err := s.PopFirst()
	require.ErrorIs(t, err, linear.ErrEmptyContainer)
	_, err = s.PopLast()
	require.ErrorIs(t, err, linear.ErrEmptyContainer)
	require.True(t, s.Begin().Equal(s.End()))
	require.True(t, s.CBegin().IsEnd())
	requireContents[C, W](t, s)
}

func (h harness[C, W, S]) appendFIFO(t *testing.T) {
	s := h.impl.New()
	const n = 100
	for i := 0; i < n; i++ {
		s.Append(i)
	}
	require.NoError(t, s.Check())
	for i := 0; i < n; i++ {
		v, err := s.PopFirst()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	requireContents[C, W](t, s)
}

func (h harness[C, W, S]) prependLIFO(t *testing.T) {
	s := h.impl.New()
	const n = 100
	for i := 0; i < n; i++ {
		s.Prepend(i)
	}
	require.NoError(t, s.Check())
	for i := n - 1; i >= 0; i-- {
		v, err := s.PopFirst()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	requireContents[C, W](t, s)
}

func (h harness[C, W, S]) sizeAccounting(t *testing.T) {
	s := h.impl.New()
	k, m := 0, 0
	for i := 0; i < 60; i++ {
		var err error
		switch i % 3 {
		case 0:
			err = s.Insert(s.CBegin(), i)
		case 1:
			err = s.Insert(s.CEnd(), i)
		default:
			err = s.Insert(h.at(t, s, s.Size()/2), i)
		}
		require.NoError(t, err)
		k++
		if i%4 == 3 {
			require.NoError(t, s.Erase(h.at(t, s, s.Size()/3)))
			m++
		}
		require.Equal(t, k-m, s.Size())
	}
	require.NoError(t, s.Check())
}

func (h harness[C, W, S]) insertMiddle(t *testing.T) {
	s := h.impl.New(1, 2, 4)
	require.NoError(t, s.Insert(h.at(t, s, 2), 3))
	requireContents[C, W](t, s, 1, 2, 3, 4)
	require.NoError(t, s.Insert(h.at(t, s, 1), 0))
	requireContents[C, W](t, s, 1, 0, 2, 3, 4)
	require.NoError(t, s.Insert(s.CEnd(), 5))
	requireContents[C, W](t, s, 1, 0, 2, 3, 4, 5)
}

func (h harness[C, W, S]) insertRoundTrip(t *testing.T) {
	s := h.impl.New()
	require.NoError(t, s.Insert(s.Begin().Const(), 42))
	v, err := s.PopFirst()
	require.NoError(t, err)
	require.Equal(t, 42, v)
	requireContents[C, W](t, s)
}

func (h harness[C, W, S]) erase(t *testing.T) {
	s := h.impl.New(1, 2, 3, 4, 5)
	require.NoError(t, s.Erase(h.at(t, s, 2)))
	requireContents[C, W](t, s, 1, 2, 4, 5)
	require.NoError(t, s.Erase(s.CBegin()))
	requireContents[C, W](t, s, 2, 4, 5)
	last, err := s.CEnd().Prev()
	require.NoError(t, err)
	require.NoError(t, s.Erase(last))
	requireContents[C, W](t, s, 2, 4)
	require.NoError(t, s.Erase(s.CBegin()))
	require.NoError(t, s.Erase(s.CBegin()))
	requireContents[C, W](t, s)
}

func (h harness[C, W, S]) eraseEnd(t *testing.T) {
	s := h.impl.New()
	require.ErrorIs(t, s.Erase(s.CEnd()), linear.ErrOutOfRange)
	s.Append(1)
	require.ErrorIs(t, s.Erase(s.CEnd()), linear.ErrOutOfRange)
	requireContents[C, W](t, s, 1)
}

func (h harness[C, W, S]) eraseRange(t *testing.T) {
	s := h.impl.New(1, 2, 3, 4, 5)
	first, err := s.Begin().Add(1)
	require.NoError(t, err)
	last, err := s.Begin().Add(3)
	require.NoError(t, err)
	require.NoError(t, s.EraseRange(first.Const(), last.Const()))
	requireContents[C, W](t, s, 1, 4, 5)
	require.NoError(t, s.EraseRange(h.at(t, s, 1), s.CEnd()))
	requireContents[C, W](t, s, 1)
}

func (h harness[C, W, S]) eraseRangeNoop(t *testing.T) {
	s := h.impl.New(1, 2, 3)
	for i := 0; i <= 3; i++ {
		pos := h.at(t, s, i)
		require.NoError(t, s.EraseRange(pos, pos))
		requireContents[C, W](t, s, 1, 2, 3)
	}
	e := h.impl.New()
	require.NoError(t, e.EraseRange(e.CBegin(), e.CEnd()))
	requireContents[C, W](t, e)
}

func (h harness[C, W, S]) eraseRangeWhole(t *testing.T) {
	s := h.impl.New(1, 2, 3, 4)
	require.NoError(t, s.EraseRange(s.CBegin(), s.CEnd()))
	requireContents[C, W](t, s)
	s.Append(5)
	requireContents[C, W](t, s, 5)
}

func (h harness[C, W, S]) eraseRangeOutOfOrder(t *testing.T) {
	s := h.impl.New(1, 2, 3, 4, 5)
	err := s.EraseRange(h.at(t, s, 3), h.at(t, s, 1))
	require.ErrorIs(t, err, linear.ErrInvalidRange)
	requireContents[C, W](t, s, 1, 2, 3, 4, 5)
	err = s.EraseRange(s.CEnd(), s.CBegin())
	require.ErrorIs(t, err, linear.ErrInvalidRange)
	requireContents[C, W](t, s, 1, 2, 3, 4, 5)
}

func (h harness[C, W, S]) popLastSingle(t *testing.T) {
	s := h.impl.New(10)
	v, err := s.PopLast()
	require.NoError(t, err)
	require.Equal(t, 10, v)
	requireContents[C, W](t, s)
	s = h.impl.New(1, 2, 3)
	for want := 3; want >= 1; want-- {
		v, err := s.PopLast()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	requireContents[C, W](t, s)
}

func (h harness[C, W, S]) dereferenceEnd(t *testing.T) {
	for _, s := range []S{h.impl.New(), h.impl.New(1, 2)} {
		_, err := s.CEnd().Value()
		require.ErrorIs(t, err, linear.ErrOutOfRange)
		_, err = s.End().Value()
		require.ErrorIs(t, err, linear.ErrOutOfRange)
	}
}

func (h harness[C, W, S]) boundaries(t *testing.T) {
	s := h.impl.New(1, 2, 3)
	_, err := s.CEnd().Next()
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	_, err = s.CBegin().Prev()
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	_, err = s.End().Next()
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	_, err = s.Begin().Prev()
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	_, err = s.CBegin().Add(4)
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	_, err = s.CEnd().Sub(4)
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	e := h.impl.New()
	_, err = e.CBegin().Next()
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	_, err = e.CEnd().Prev()
	require.ErrorIs(t, err, linear.ErrOutOfRange)
}

// extremeSteps steps by counts far outside any container, starting from
// begin, the middle and end of a small and an empty sequence.
func (h harness[C, W, S]) extremeSteps(t *testing.T) {
	steps := []int{math.MaxInt, math.MinInt, math.MaxInt - 1, math.MinInt + 1}
	for _, s := range []S{h.impl.New(1, 2, 3), h.impl.New()} {
		starts := []C{s.CBegin(), s.CEnd()}
		if s.Size() > 1 {
			starts = append(starts, h.at(t, s, 1))
		}
		for _, start := range starts {
			for _, d := range steps {
				moved, err := start.Add(d)
				require.ErrorIs(t, err, linear.ErrOutOfRange, "Add(%d)", d)
				require.True(t, moved.Equal(start), "failed Add(%d) moved the cursor", d)
				moved, err = start.Sub(d)
				require.ErrorIs(t, err, linear.ErrOutOfRange, "Sub(%d)", d)
				require.True(t, moved.Equal(start), "failed Sub(%d) moved the cursor", d)
			}
		}
		for _, d := range steps {
			w := s.Begin()
			moved, err := w.Add(d)
			require.ErrorIs(t, err, linear.ErrOutOfRange, "mutable Add(%d)", d)
			require.True(t, moved.Equal(w), "failed mutable Add(%d) moved the cursor", d)
			moved, err = w.Sub(d)
			require.ErrorIs(t, err, linear.ErrOutOfRange, "mutable Sub(%d)", d)
			require.True(t, moved.Equal(w), "failed mutable Sub(%d) moved the cursor", d)
		}
		require.NoError(t, s.Check())
	}
}

func (h harness[C, W, S]) arithmetic(t *testing.T) {
	s := h.impl.New(1, 2, 3, 4, 5)
	end, err := s.CBegin().Add(5)
	require.NoError(t, err)
	require.True(t, end.Equal(s.CEnd()))
	require.True(t, end.IsEnd())
	begin, err := s.CEnd().Sub(5)
	require.NoError(t, err)
	require.True(t, begin.Equal(s.CBegin()))
	third, err := s.CBegin().Add(2)
	require.NoError(t, err)
	v, err := third.Value()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	back, err := third.Add(-2)
	require.NoError(t, err)
	require.True(t, back.Equal(s.CBegin()))
	forth, err := third.Sub(-1)
	require.NoError(t, err)
	v, err = forth.Value()
	require.NoError(t, err)
	require.Equal(t, 4, v)
	same, err := third.Add(0)
	require.NoError(t, err)
	require.True(t, same.Equal(third))
	stepped := s.CBegin()
	for i := 0; i < 2; i++ {
		stepped, err = stepped.Next()
		require.NoError(t, err)
	}
	require.True(t, stepped.Equal(third), "Add(2) differs from two Next steps")
}

func (h harness[C, W, S]) traversal(t *testing.T) {
	want := []int{3, 1, 4, 1, 5, 9, 2, 6}
	s := h.impl.New(want...)
	var forward []int
	for it := s.CBegin(); !it.Equal(s.CEnd()); {
		v, err := it.Value()
		require.NoError(t, err)
		forward = append(forward, v)
		it, err = it.Next()
		require.NoError(t, err)
	}
	require.Equal(t, want, forward)
	var backward []int
	for it := s.CEnd(); !it.Equal(s.CBegin()); {
		var err error
		it, err = it.Prev()
		require.NoError(t, err)
		v, err := it.Value()
		require.NoError(t, err)
		backward = append(backward, v)
	}
	require.Len(t, backward, len(want))
	for i := range want {
		require.Equal(t, want[len(want)-1-i], backward[i])
	}
	var all, rev []int
	for v := range s.All() {
		all = append(all, v)
	}
	for v := range s.Backward() {
		rev = append(rev, v)
	}
	require.Equal(t, forward, all)
	require.Equal(t, backward, rev)
}

func (h harness[C, W, S]) writeThrough(t *testing.T) {
	s := h.impl.New(1, 2, 3)
	it, err := s.Begin().Add(1)
	require.NoError(t, err)
	require.NoError(t, it.Set(20))
	requireContents[C, W](t, s, 1, 20, 3)
	v, err := it.Const().Value()
	require.NoError(t, err)
	require.Equal(t, 20, v)
	require.True(t, s.Begin().Const().Equal(s.CBegin()))
	require.True(t, s.End().Const().Equal(s.CEnd()))
	require.ErrorIs(t, s.End().Set(0), linear.ErrOutOfRange)
	requireContents[C, W](t, s, 1, 20, 3)
}

func (h harness[C, W, S]) foreign(t *testing.T) {
	a := h.impl.New(1, 2, 3)
	b := h.impl.New(1, 2, 3)
	require.False(t, a.CBegin().Equal(b.CBegin()))
	require.False(t, a.CEnd().Equal(b.CEnd()))
	require.False(t, a.Begin().Equal(b.Begin()))
	require.ErrorIs(t, a.Insert(b.CBegin(), 0), linear.ErrForeignPosition)
	require.ErrorIs(t, a.Erase(b.CBegin()), linear.ErrForeignPosition)
	require.ErrorIs(t, a.EraseRange(b.CBegin(), b.CEnd()), linear.ErrForeignPosition)
	require.ErrorIs(t, a.EraseRange(a.CBegin(), b.CEnd()), linear.ErrForeignPosition)
	requireContents[C, W](t, a, 1, 2, 3)
	requireContents[C, W](t, b, 1, 2, 3)
	var zero C
	require.False(t, zero.Equal(a.CBegin()))
	require.True(t, zero.IsEnd())
	_, err := zero.Value()
	require.ErrorIs(t, err, linear.ErrOutOfRange)
}

func (h harness[C, W, S]) copyIndependence(t *testing.T) {
	s := h.impl.New(1, 2, 3)
	c := h.impl.Clone(s)
	requireContents[C, W](t, c, 1, 2, 3)
	require.False(t, c.CBegin().Equal(s.CBegin()))
	require.NoError(t, c.Begin().Set(100))
	c.Append(4)
	_, err := c.PopFirst()
	require.NoError(t, err)
	c.Prepend(0)
	requireContents[C, W](t, c, 0, 2, 3, 4)
	requireContents[C, W](t, s, 1, 2, 3)
	s.Append(9)
	requireContents[C, W](t, c, 0, 2, 3, 4)
	e := h.impl.Clone(h.impl.New())
	requireContents[C, W](t, e)
}

func (h harness[C, W, S]) move(t *testing.T) {
	s := h.impl.New(1, 2, 3)
	moved := h.impl.Move(s)
	requireContents[C, W](t, moved, 1, 2, 3)
	requireContents[C, W](t, s)
	s.Append(7)
	requireContents[C, W](t, s, 7)
	requireContents[C, W](t, moved, 1, 2, 3)
	moved.Append(4)
	requireContents[C, W](t, s, 7)
}

func (h harness[C, W, S]) clear(t *testing.T) {
	s := h.impl.New(1, 2, 3)
	s.Clear()
	requireContents[C, W](t, s)
	s.Append(4)
	s.Prepend(3)
	requireContents[C, W](t, s, 3, 4)
}

func (h harness[C, W, S]) rangeHelpers(t *testing.T) {
	s := h.impl.New(1, 2, 3, 4, 5)
	n, err := linear.Distance[int](s.CBegin(), s.CEnd())
	require.NoError(t, err)
	require.Equal(t, 5, n)
	_, err = linear.Distance[int](h.at(t, s, 3), h.at(t, s, 1))
	require.ErrorIs(t, err, linear.ErrInvalidRange)
	values, err := linear.Collect[int](h.at(t, s, 1), h.at(t, s, 4))
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, values)
	sum := 0
	for v := range linear.Range[int](s.CBegin(), s.CEnd()) {
		sum += v
	}
	require.Equal(t, 15, sum)
}
