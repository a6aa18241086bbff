package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which direction of the codec raised the error
type Phase string

const (
	PhaseEncode Phase = "encode" // coordinates to polyline
	PhaseDecode Phase = "decode" // polyline to coordinates
)

// Kind categorizes the error
type Kind string

const (
	KindLatitudeRange  Kind = "latitude_range"  // latitude outside [-90, 90]
	KindLongitudeRange Kind = "longitude_range" // longitude outside [-180, 180]
	KindInvalidByte    Kind = "invalid_byte"    // byte below the polyline alphabet (< 63)
	KindOverflow       Kind = "overflow"        // varint would overflow the 64-bit accumulator
	KindTruncated      Kind = "truncated"       // latitude with no paired longitude
	KindNumericCast    Kind = "numeric_cast"    // scaled value not representable
	KindEncodeChar     Kind = "encode_char"     // packed group outside printable ASCII
)

// Error is the structured error type used throughout the library.
//
// Index is a coordinate index when Phase is PhaseEncode and a byte index
// into the polyline string when Phase is PhaseDecode. For range errors
// raised while decoding, Index points at the first byte of the varint
// that produced the offending value.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Index  int
	hasIdx bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.hasIdx {
		fmt.Fprintf(&b, " at index %d", e.Index)
	}

	if e.Value != nil {
		fmt.Fprintf(&b, ": value %v", e.Value)
	}

	if e.Detail != "" {
		if e.Value != nil {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Position returns the failure index and whether one was recorded.
func (e *Error) Position() (int, bool) {
	return e.Index, e.hasIdx
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Index sets the failure position
func (b *Builder) Index(idx int) *Builder {
	b.err.Index = idx
	b.err.hasIdx = true
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// LatitudeRange creates an out-of-range latitude error. On encode idx is
// the coordinate's position in the input sequence; on decode it is the
// byte index where the latitude's varint began.
func LatitudeRange(phase Phase, value any, idx int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLatitudeRange,
		Value:  value,
		Index:  idx,
		hasIdx: true,
		Detail: "latitude outside [-90, 90]",
	}
}

// LongitudeRange creates an out-of-range longitude error, indexed the
// same way as LatitudeRange.
func LongitudeRange(phase Phase, value any, idx int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLongitudeRange,
		Value:  value,
		Index:  idx,
		hasIdx: true,
		Detail: "longitude outside [-180, 180]",
	}
}

// InvalidByte creates a decode error for a byte below the polyline alphabet
func InvalidByte(idx int, b byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidByte,
		Index:  idx,
		hasIdx: true,
		Detail: fmt.Sprintf("byte 0x%02x below polyline alphabet", b),
	}
}

// Overflow creates a decode error for a varint that would shift past the
// 64-bit accumulator before terminating
func Overflow(idx int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOverflow,
		Index:  idx,
		hasIdx: true,
		Detail: "varint exceeds 64-bit accumulator",
	}
}

// Truncated creates a decode error for a latitude with no paired longitude.
// idx is the byte index where the dangling latitude's varint began.
func Truncated(idx int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Index:  idx,
		hasIdx: true,
		Detail: "no longitude to pair with latitude",
	}
}

// NumericCast creates an error for a value the fixed-point scaler cannot
// represent as a signed 64-bit integer
func NumericCast(phase Phase, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNumericCast,
		Value:  value,
		Detail: "scaled value not representable as int64",
	}
}

// EncodeChar creates an error for a packed group that falls outside
// printable ASCII. Defensive: unreachable for 5-bit groups.
func EncodeChar(value any) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindEncodeChar,
		Value:  value,
		Detail: "packed group outside printable ASCII",
	}
}
