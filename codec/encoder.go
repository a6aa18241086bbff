package codec

import (
	"iter"
	"slices"

	"github.com/wippyai/polyline/errors"
)

// EncodeCoordinates encodes a finite, single-pass sequence of coordinates
// as a polyline string at the given precision. An empty sequence encodes
// to the empty string.
//
// Each coordinate is validated before scaling; the first out-of-range
// coordinate aborts the whole call with its sequence index and no partial
// string is returned. Per the polyline format the latitude delta is
// emitted before the longitude delta.
func EncodeCoordinates[T Float](coords iter.Seq[Coord[T]], precision uint) (string, error) {
	factor := factorFor(precision)

	out := getBuf()
	defer putBuf(out)

	buf := *out
	var prevLat, prevLon int64

	i := 0
	for c := range coords {
		if !validLatitude(float64(c.Lat)) {
			return "", errors.LatitudeRange(errors.PhaseEncode, c.Lat, i)
		}
		if !validLongitude(float64(c.Lon)) {
			return "", errors.LongitudeRange(errors.PhaseEncode, c.Lon, i)
		}

		scaledLat, err := scale(c.Lat, factor, errors.PhaseEncode)
		if err != nil {
			return "", err
		}
		scaledLon, err := scale(c.Lon, factor, errors.PhaseEncode)
		if err != nil {
			return "", err
		}

		// Latitude delta first, then longitude.
		if buf, err = appendVarint(buf, zigzagEncode(scaledLat-prevLat)); err != nil {
			return "", err
		}
		if buf, err = appendVarint(buf, zigzagEncode(scaledLon-prevLon)); err != nil {
			return "", err
		}

		prevLat, prevLon = scaledLat, scaledLon
		i++
	}

	*out = buf
	return string(buf), nil
}

// Encode is the slice form of EncodeCoordinates.
func Encode[T Float](coords []Coord[T], precision uint) (string, error) {
	return EncodeCoordinates(slices.Values(coords), precision)
}
