package geom

import (
	"iter"

	"github.com/paulmach/orb"

	"github.com/wippyai/polyline/codec"
)

// EncodeLineString encodes an orb.LineString as a polyline at the given
// precision. The line string is streamed point by point without building
// an intermediate coordinate slice.
func EncodeLineString(ls orb.LineString, precision uint) (string, error) {
	seq := iter.Seq[codec.Coord[float64]](func(yield func(codec.Coord[float64]) bool) {
		for _, p := range ls {
			if !yield(codec.Coord[float64]{Lon: p.Lon(), Lat: p.Lat()}) {
				return
			}
		}
	})
	return codec.EncodeCoordinates(seq, precision)
}

// DecodeLineString decodes a polyline encoded at the given precision into
// an orb.LineString.
func DecodeLineString(encoded string, precision uint) (orb.LineString, error) {
	coords, err := codec.DecodePolyline[float64](encoded, precision)
	if err != nil {
		return nil, err
	}

	ls := make(orb.LineString, len(coords))
	for i, c := range coords {
		ls[i] = orb.Point{c.Lon, c.Lat}
	}
	return ls, nil
}
