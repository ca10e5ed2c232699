package seqtest

import (
	"math/rand"
	"testing"

	"github.com/gammazero/deque"
	"github.com/npillmayer/linear"
	"github.com/stretchr/testify/require"
)

// RunModel applies steps pseudo-random operations, derived from seed, to a
// sequence created by impl and to a reference deque. After every step the
// sequence has to match the reference and pass its invariant check.
func RunModel[C linear.Cursor[int, C], W linear.WriteCursor[int, C, W], S linear.Sequence[int, C, W]](t *testing.T, impl Impl[C, W, S], seed int64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	s := impl.New()
	var model deque.Deque[int]

	for i := 0; i < steps; i++ {
		n := model.Len()
		switch r.Intn(8) {
		case 0:
			s.Append(i)
			model.PushBack(i)
		case 1:
			s.Prepend(i)
			model.PushFront(i)
		case 2:
			at := r.Intn(n + 1)
			pos, err := s.CBegin().Add(at)
			require.NoError(t, err)
			require.NoError(t, s.Insert(pos, i))
			model.Insert(at, i)
		case 3:
			if n == 0 {
				require.ErrorIs(t, s.Erase(s.CBegin()), linear.ErrOutOfRange)
				continue
			}
			at := r.Intn(n)
			pos, err := s.CBegin().Add(at)
			require.NoError(t, err)
			require.NoError(t, s.Erase(pos))
			model.Remove(at)
		case 4:
			from := r.Intn(n + 1)
			to := from + r.Intn(n-from+1)
			first, err := s.CBegin().Add(from)
			require.NoError(t, err)
			last, err := s.CBegin().Add(to)
			require.NoError(t, err)
			require.NoError(t, s.EraseRange(first, last))
			for k := from; k < to; k++ {
				model.Remove(from)
			}
		case 5:
			v, err := s.PopFirst()
			if n == 0 {
				require.ErrorIs(t, err, linear.ErrEmptyContainer)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, model.PopFront(), v)
		case 6:
			v, err := s.PopLast()
			if n == 0 {
				require.ErrorIs(t, err, linear.ErrEmptyContainer)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, model.PopBack(), v)
		case 7:
			if n == 0 {
				continue
			}
			at := r.Intn(n)
			pos, err := s.Begin().Add(at)
			require.NoError(t, err)
			require.NoError(t, pos.Set(-i))
			model.Set(at, -i)
		}
		require.NoError(t, s.Check(), "step %d", i)
		require.Equal(t, model.Len(), s.Size(), "step %d", i)
		want := make([]int, model.Len())
		for k := range want {
			want[k] = model.At(k)
		}
		require.Equal(t, want, s.Values(), "step %d", i)
	}
}
