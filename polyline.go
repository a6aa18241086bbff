package polyline

import (
	"github.com/wippyai/polyline/codec"
)

// Coord is a (longitude, latitude) pair at float64 precision.
type Coord = codec.Coord[float64]

// Conventional precisions.
const (
	PrecisionGoogle = codec.PrecisionGoogle
	PrecisionOSRM   = codec.PrecisionOSRM
)

// Encode encodes coordinates as a polyline string at the given precision.
func Encode(coords []Coord, precision uint) (string, error) {
	return codec.Encode(coords, precision)
}

// Decode decodes a polyline string encoded at the given precision.
func Decode(encoded string, precision uint) ([]Coord, error) {
	return codec.DecodePolyline[float64](encoded, precision)
}
