package vector

import (
	"testing"

	"github.com/npillmayer/linear/seqtest"
)

func impl() seqtest.Impl[ConstIterator[int], Iterator[int], *Vector[int]] {
	return seqtest.Impl[ConstIterator[int], Iterator[int], *Vector[int]]{
		New:   From[int],
		Clone: (*Vector[int]).Clone,
		Move:  (*Vector[int]).Move,
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
