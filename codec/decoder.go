package codec

import (
	"github.com/wippyai/polyline/errors"
)

// DecodePolyline decodes a polyline string back into coordinates at the
// given precision, in the order the string encodes them.
//
// The string must have been encoded at the same precision or values
// silently drift. Every reconstructed component is bounds-checked; range
// errors carry the byte index where the offending value's varint began.
// A latitude with no paired longitude fails as truncated at the latitude
// varint's start. The first error aborts the call with no partial output.
func DecodePolyline[T Float](polyline string, precision uint) ([]Coord[T], error) {
	factor := factorFor(precision)

	var coords []Coord[T]
	var scaledLat, scaledLon int64

	i := 0
	for i < len(polyline) {
		latStart := i
		latDelta, next, err := readVarint(polyline, i)
		if err != nil {
			return nil, err
		}
		scaledLat += zigzagDecode(latDelta)
		lat := float64(scaledLat) / factor
		if !validLatitude(lat) {
			return nil, errors.LatitudeRange(errors.PhaseDecode, T(lat), latStart)
		}
		i = next

		if i >= len(polyline) {
			return nil, errors.Truncated(latStart)
		}

		lonStart := i
		lonDelta, next, err := readVarint(polyline, i)
		if err != nil {
			return nil, err
		}
		scaledLon += zigzagDecode(lonDelta)
		lon := float64(scaledLon) / factor
		if !validLongitude(lon) {
			return nil, errors.LongitudeRange(errors.PhaseDecode, T(lon), lonStart)
		}
		i = next

		coords = append(coords, Coord[T]{Lon: T(lon), Lat: T(lat)})
	}

	return coords, nil
}
