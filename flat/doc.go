// Package flat provides the raw-memory boundary view of the codec: a
// contiguous buffer of interleaved lon,lat float64 pairs with an explicit
// release contract, for callers that marshal coordinates across foreign
// boundaries rather than working with typed slices.
//
// Buffers returned by Decode are owned by the caller, who must call
// Release exactly once when done; the backing storage is recycled through
// a pool. The package never retains a buffer after a call returns.
//
// Decode degrades instead of failing: a malformed polyline yields a
// single sentinel (NaN, NaN) pair, because raw-memory boundaries have no
// native error channel. This is a boundary-only behavior — use the codec
// package when a typed error is wanted.
package flat
