package list

import (
	"testing"

	"github.com/npillmayer/linear/seqtest"
)

func impl() seqtest.Impl[ConstIterator[int], Iterator[int], *List[int]] {
	return seqtest.Impl[ConstIterator[int], Iterator[int], *List[int]]{
		New:   From[int],
		Clone: (*List[int]).Clone,
		Move:  (*List[int]).Move,
	}
}

func TestConformance(t *testing.T) {
	seqtest.Run(t, impl())
}

func TestRandomizedAgainstModel(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		seqtest.RunModel(t, impl(), seed, 400)
	}
}
