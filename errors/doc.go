// Package errors provides structured error types for the polyline library.
//
// Errors are categorized by Phase (which direction of the codec raised them)
// and Kind (error category). The Error type carries the position of the
// failure — a coordinate index during encoding, a byte index during
// decoding — plus the offending value where one exists.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidByte).
//		Index(12).
//		Detail("byte 0x%02x below polyline alphabet", b).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.LatitudeRange(errors.PhaseEncode, 430.252, 2)
//	err := errors.InvalidByte(12, b)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
