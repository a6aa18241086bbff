package codec

import (
	"math"

	"github.com/wippyai/polyline/errors"
)

// scale converts a coordinate component to fixed point: value * 10^p,
// rounded half away from zero, as int64. Arithmetic is float64 even for
// float32 inputs so both instantiations agree on the scaled integer.
func scale[T Float](v T, factor float64, phase errors.Phase) (int64, error) {
	scaled := math.Round(float64(v) * factor)
	// math.MaxInt64 rounds up to 2^63 as a float64, so the upper bound
	// must be exclusive. NaN fails both comparisons.
	if !(scaled >= math.MinInt64 && scaled < math.MaxInt64) {
		return 0, errors.NumericCast(phase, v)
	}
	return int64(scaled), nil
}

// factorFor returns the scale factor 10^precision. Precisions beyond the
// float64 exponent range produce +Inf, which the scaler then rejects as
// a numeric cast failure.
func factorFor(precision uint) float64 {
	return math.Pow10(int(precision))
}

// zigzagEncode maps a signed delta to an unsigned value so that small
// magnitudes of either sign stay small: shift left one, complement if the
// pre-shift delta was negative.
func zigzagEncode(delta int64) uint64 {
	v := delta << 1
	if delta < 0 {
		v = ^v
	}
	return uint64(v)
}

// zigzagDecode inverts zigzagEncode.
func zigzagDecode(v uint64) int64 {
	if v&1 != 0 {
		return int64(^(v >> 1))
	}
	return int64(v >> 1)
}
