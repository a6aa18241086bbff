// Package polyline encodes and decodes Google Encoded Polylines.
//
// Polyline is a lossy compression algorithm for storing an ordered series
// of (longitude, latitude) coordinates as a single printable-ASCII string,
// used by Google Maps (precision 5) and routing engines such as OSRM and
// Valhalla (precision 6).
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct
// responsibilities:
//
//	polyline/        Root package with float64 convenience API
//	├── codec/       The codec: scaling, zigzag, varint, drive loops
//	├── errors/      Structured error types with failure positions
//	├── geom/        paulmach/orb LineString integration
//	└── flat/        Owned interleaved buffers for boundary callers
//
// # Quick Start
//
//	encoded, err := polyline.Encode([]polyline.Coord{
//	    {Lon: -120.2, Lat: 38.5},
//	    {Lon: -120.95, Lat: 40.7},
//	}, polyline.PrecisionGoogle)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	coords, err := polyline.Decode(encoded, polyline.PrecisionGoogle)
//
// The codec package exposes the same operations parametric over float32
// and float64, and an iter.Seq form for streaming input.
//
// # Fidelity
//
// Round-trips reproduce each coordinate to within half of the precision
// step (0.5e-5 at precision 5), not bit-exactly. The same precision must
// be used for both directions of a given string.
//
// # Errors
//
// All failures are values from the errors package, tagged with the
// coordinate index (encode) or byte index (decode) of the offending
// input. Malformed strings never panic or loop: a shift guard bounds
// varint accumulation on corrupt input.
package polyline
