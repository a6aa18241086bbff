package flat

import (
	"fmt"
	"iter"
	"math"
	"sync"

	"github.com/wippyai/polyline/codec"
)

const (
	// Pool limits to prevent memory bloat
	poolMaxPairs  = 8192
	poolInitPairs = 32
)

var dataPool = sync.Pool{
	New: func() any {
		data := make([]float64, 0, 2*poolInitPairs)
		return &data
	},
}

// Buffer is an owned view over interleaved lon,lat float64 pairs.
type Buffer struct {
	data []float64
}

// Wrap adopts an interleaved lon,lat slice as a Buffer without copying.
// The slice must hold an even number of values.
func Wrap(pairs []float64) (*Buffer, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("flat: interleaved pair slice has odd length %d", len(pairs))
	}
	return &Buffer{data: pairs}, nil
}

// Len returns the number of coordinate pairs.
func (b *Buffer) Len() int {
	return len(b.data) / 2
}

// Data returns the raw interleaved lon,lat view. Valid until Release.
func (b *Buffer) Data() []float64 {
	return b.data
}

// At returns the pair at index i.
func (b *Buffer) At(i int) (lon, lat float64) {
	return b.data[2*i], b.data[2*i+1]
}

// Release returns the buffer's storage to the pool. Callers own buffers
// returned by Decode and must release each exactly once; releasing again
// is a no-op. The buffer must not be used after Release.
func (b *Buffer) Release() {
	if b.data == nil {
		return
	}
	data := b.data[:0]
	b.data = nil
	if cap(data) > 2*poolMaxPairs {
		return // reject oversized
	}
	dataPool.Put(&data)
}

// Encode encodes the buffer's pairs as a polyline at the given precision,
// streaming directly off the interleaved storage.
func Encode(b *Buffer, precision uint) (string, error) {
	seq := iter.Seq[codec.Coord[float64]](func(yield func(codec.Coord[float64]) bool) {
		for i := 0; i+1 < len(b.data); i += 2 {
			if !yield(codec.Coord[float64]{Lon: b.data[i], Lat: b.data[i+1]}) {
				return
			}
		}
	})
	return codec.EncodeCoordinates(seq, precision)
}

// Decode decodes a polyline into an owned Buffer. On any decode failure
// the result is the single sentinel (NaN, NaN) pair; inspect it with
// IsSentinel. The caller must Release the returned buffer.
func Decode(encoded string, precision uint) *Buffer {
	coords, err := codec.DecodePolyline[float64](encoded, precision)
	if err != nil {
		b := newPooled(1)
		b.data[0] = math.NaN()
		b.data[1] = math.NaN()
		return b
	}

	b := newPooled(len(coords))
	for i, c := range coords {
		b.data[2*i] = c.Lon
		b.data[2*i+1] = c.Lat
	}
	return b
}

// IsSentinel reports whether the buffer is the single (NaN, NaN) pair
// Decode substitutes for a failure.
func IsSentinel(b *Buffer) bool {
	if b.Len() != 1 {
		return false
	}
	lon, lat := b.At(0)
	return math.IsNaN(lon) && math.IsNaN(lat)
}

func newPooled(pairs int) *Buffer {
	dp := dataPool.Get().(*[]float64)
	data := *dp
	if cap(data) < 2*pairs {
		data = make([]float64, 2*pairs)
	} else {
		data = data[:2*pairs]
	}
	return &Buffer{data: data}
}
