// Package codec implements the Google Encoded Polyline algorithm.
//
// Polyline is a lossy, precision-bounded compression of an ordered
// sequence of (longitude, latitude) coordinates into a printable ASCII
// string, documented at:
// https://developers.google.com/maps/documentation/utilities/polylinealgorithm
//
// # Pipeline
//
// Each coordinate passes through a fixed transform chain:
//
//	encode: validate → fixed-point scale → delta vs previous → zigzag → varint
//	decode: varint → un-zigzag → accumulate → rescale → validate
//
// Deltas are encoded latitude first, then longitude, even though the
// coordinate type is expressed (lon, lat). Encoder and decoder must agree
// on this order or every subsequent value desynchronizes.
//
// # Precision
//
// The scale factor is 10^precision, fixed per call. The same precision
// must be used for both directions of a given string. Round-trips
// reproduce each component to within 0.5e-precision of the original;
// they are not bit-exact. PrecisionGoogle (5) and PrecisionOSRM (6) cover
// the conventional formats.
//
// # Rounding
//
// Scaling rounds half away from zero, in float64, for both float32 and
// float64 coordinates. Validation happens before scaling on encode and
// after rescaling on decode, so repeated encode/decode at one precision
// is idempotent.
//
// # Error Handling
//
// Errors use the structured types from the errors package and are
// terminal for the call: no partial string or sequence is ever returned.
// Every error carries a position — the coordinate index on encode, the
// byte index on decode:
//
//	[encode] latitude_range at index 2: value 430.252 - latitude outside [-90, 90]
//	[decode] invalid_byte at index 12: byte 0x20 below polyline alphabet
//
// Malformed input is a modeled condition, never a panic: a shift guard
// bounds varint accumulation so adversarial strings terminate with an
// overflow error instead of reading past the 64-bit accumulator.
//
// # Thread Safety
//
// Every function is a pure transformation of its inputs with no shared
// state. Concurrent callers need no coordination.
package codec
