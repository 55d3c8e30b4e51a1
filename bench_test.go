package circledrawer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const benchSize = 10000

func benchItems() []uint64 {
	items := make([]uint64, 0, benchSize)
	for i := 0; i < benchSize; i++ {
		items = append(items, rand.Uint64())
	}
	return items
}

// go test -bench=. -cpuprofile profile.out
// go tool pprof -http="localhost:8000" pprofbin ./profile.out

func BenchmarkRoundTrip(b *testing.B) {
	requireT := require.New(b)
	items := benchItems()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		values, err := ListToArray(ArrayToList(items))
		requireT.NoError(err)
		requireT.Len(values, benchSize)
	}
}

func BenchmarkTransferHead(b *testing.B) {
	requireT := require.New(b)
	items := benchItems()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		source := ArrayToList(items)
		destination := ArrayToList([]uint64{})
		b.StartTimer()

		for !source.Empty() {
			var err error
			source, destination, err = TransferHead(source, destination)
			requireT.NoError(err)
		}
	}
}
