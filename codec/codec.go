package codec

// Float constrains coordinate components to the floating types the codec
// is parametric over. The internal accumulator is always int64; the float
// type only affects the final division and the precision ceiling.
type Float interface {
	~float32 | ~float64
}

// Coord is a single (longitude, latitude) pair. Value type: the codec
// never retains coordinates beyond one call.
type Coord[T Float] struct {
	Lon T
	Lat T
}

// Conventional precisions.
const (
	PrecisionGoogle = 5 // Google Maps polyline format
	PrecisionOSRM   = 6 // OSRM/Valhalla routing engines
)

// Coordinate bounds enforced on encode input and decode output.
const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// validLatitude reports whether f is a finite latitude in range.
// Written so NaN fails.
func validLatitude(f float64) bool {
	return f >= minLatitude && f <= maxLatitude
}

func validLongitude(f float64) bool {
	return f >= minLongitude && f <= maxLongitude
}
