package codec

import (
	stderrors "errors"
	"math"
	"strings"
	"testing"

	"github.com/wippyai/polyline/errors"
)

func decodeErr(t *testing.T, polyline string, precision uint) *errors.Error {
	t.Helper()
	_, err := DecodePolyline[float64](polyline, precision)
	if err == nil {
		t.Fatalf("DecodePolyline(%q) unexpectedly succeeded", polyline)
	}
	var perr *errors.Error
	if !stderrors.As(err, &perr) {
		t.Fatalf("error type %T, want *errors.Error", err)
	}
	return perr
}

func TestDecode_Truncated(t *testing.T) {
	// "_ibE_seK_seK" carries two latitudes but only one longitude; the
	// dangling latitude's varint begins at byte 8.
	perr := decodeErr(t, "_ibE_seK_seK", 5)
	if perr.Kind != errors.KindTruncated {
		t.Errorf("Kind = %q, want %q", perr.Kind, errors.KindTruncated)
	}
	if perr.Index != 8 {
		t.Errorf("Index = %d, want 8", perr.Index)
	}

	// The untruncated form still decodes.
	if _, err := DecodePolyline[float64]("_ibE_seK_seK_seK", 5); err != nil {
		t.Fatalf("full polyline failed: %v", err)
	}
}

func TestDecode_ByteBelowAlphabet(t *testing.T) {
	// Byte 0x20 at index 4, inside the second coordinate's latitude.
	perr := decodeErr(t, "_ibE _seK", 5)
	if perr.Kind != errors.KindInvalidByte {
		t.Errorf("Kind = %q, want %q", perr.Kind, errors.KindInvalidByte)
	}
	if perr.Index != 4 {
		t.Errorf("Index = %d, want 4", perr.Index)
	}
}

func TestDecode_ShiftGuard(t *testing.T) {
	// Every byte keeps the continuation bit set; the 13th group would
	// shift past the 64-bit accumulator.
	perr := decodeErr(t, strings.Repeat("}", 20), 5)
	if perr.Kind != errors.KindOverflow {
		t.Errorf("Kind = %q, want %q", perr.Kind, errors.KindOverflow)
	}
	if perr.Index != 12 {
		t.Errorf("Index = %d, want 12", perr.Index)
	}
}

func TestDecode_GarbageAccumulatesOverflow(t *testing.T) {
	// All bytes are within the alphabet with continuation bits set, so
	// the shift guard is what terminates the read.
	perr := decodeErr(t, "invalid_polyline_that_should_be_handled_gracefully", 5)
	if perr.Kind != errors.KindOverflow {
		t.Errorf("Kind = %q, want %q", perr.Kind, errors.KindOverflow)
	}
	if perr.Index != 12 {
		t.Errorf("Index = %d, want 12", perr.Index)
	}
}

func TestDecode_GarbageOutOfRange(t *testing.T) {
	// Decodes as one huge latitude delta; fails the bounds check with the
	// index of the varint's first byte.
	perr := decodeErr(t, "ugh_ugh", 5)
	if perr.Kind != errors.KindLatitudeRange {
		t.Errorf("Kind = %q, want %q", perr.Kind, errors.KindLatitudeRange)
	}
	if perr.Index != 0 {
		t.Errorf("Index = %d, want 0", perr.Index)
	}
	v, ok := perr.Value.(float64)
	if !ok {
		t.Fatalf("Value type %T, want float64", perr.Value)
	}
	if math.Abs(v-49775.95019) > 1e-5 {
		t.Errorf("Value = %v, want 49775.95019", v)
	}
}

func TestDecode_CorruptMiddle(t *testing.T) {
	// Multi-byte garbage injected mid-string desynchronizes the deltas;
	// the resulting latitude is out of range at the varint start index.
	perr := decodeErr(t, "_p~iF~ps|U_u\U0001F5D1lLnnqC_mqNvxq`@", 5)
	if perr.Kind != errors.KindLatitudeRange {
		t.Errorf("Kind = %q, want %q", perr.Kind, errors.KindLatitudeRange)
	}
	if perr.Index != 10 {
		t.Errorf("Index = %d, want 10", perr.Index)
	}
	v, ok := perr.Value.(float64)
	if !ok {
		t.Fatalf("Value type %T, want float64", perr.Value)
	}
	if math.Abs(v-2306360.53104) > 1e-5 {
		t.Errorf("Value = %v, want 2306360.53104", v)
	}
}

func TestDecode_CorruptMiddle_Float32(t *testing.T) {
	_, err := DecodePolyline[float32]("_p~iF~ps|U_u\U0001F5D1lLnnqC_mqNvxq`@", 5)
	var perr *errors.Error
	if !stderrors.As(err, &perr) {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	if perr.Kind != errors.KindLatitudeRange || perr.Index != 10 {
		t.Errorf("got kind %q index %d, want %q index 10", perr.Kind, perr.Index, errors.KindLatitudeRange)
	}
	if _, ok := perr.Value.(float32); !ok {
		t.Errorf("Value type %T, want float32", perr.Value)
	}
}

// Varint-level behavior, independent of the driver loops.
func TestReadVarint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		start    int
		value    uint64
		next     int
		wantKind errors.Kind
	}{
		{name: "single group", input: "E", start: 0, value: 6, next: 1},
		{name: "multi group", input: "_ibE", start: 0, value: 200000, next: 4},
		{name: "offset start", input: "?_ibE", start: 1, value: 200000, next: 5},
		{name: "zero", input: "?", start: 0, value: 0, next: 1},
		{name: "low byte", input: "_ib\x1f", start: 0, wantKind: errors.KindInvalidByte},
		{name: "overflow", input: strings.Repeat("~", 14), start: 0, wantKind: errors.KindOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, next, err := readVarint(tt.input, tt.start)
			if tt.wantKind != "" {
				var perr *errors.Error
				if !stderrors.As(err, &perr) {
					t.Fatalf("expected *errors.Error, got %v", err)
				}
				if perr.Kind != tt.wantKind {
					t.Errorf("Kind = %q, want %q", perr.Kind, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("readVarint failed: %v", err)
			}
			if value != tt.value || next != tt.next {
				t.Errorf("readVarint = (%d, %d), want (%d, %d)", value, next, tt.value, tt.next)
			}
		})
	}
}

// A dangling continuation bit at end of input terminates with the value
// accumulated so far; the driver's pairing check reports the truncation.
func TestReadVarint_DanglingContinuation(t *testing.T) {
	value, next, err := readVarint("_", 0)
	if err != nil {
		t.Fatalf("readVarint failed: %v", err)
	}
	if value != 0 {
		t.Errorf("value = %d, want 0", value)
	}
	if next != 1 {
		t.Errorf("next = %d, want 1", next)
	}
}
