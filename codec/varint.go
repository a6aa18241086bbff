package codec

import (
	"github.com/wippyai/polyline/errors"
)

// Polyline alphabet: each byte carries a 5-bit payload plus an optional
// continuation bit, offset by 63 into printable ASCII (bytes 63..126).
const (
	charOffset   = 63
	payloadMask  = 0x1f
	continuation = 0x20

	// maxShift is the largest group shift that still fits the 64-bit
	// accumulator. Anything past it is corrupt or adversarial input.
	maxShift = 64 - 5

	// maxChar bounds the emitted alphabet. The check in appendVarint is
	// defensive: 5-bit groups cannot produce anything above it.
	maxChar = charOffset + continuation + payloadMask
)

// appendVarint packs v into dst as 5-bit groups, least significant first,
// continuation bit set on every group but the last.
func appendVarint(dst []byte, v uint64) ([]byte, error) {
	for v >= continuation {
		b := byte(charOffset + (continuation | (v & payloadMask)))
		if b > maxChar {
			return dst, errors.EncodeChar(v)
		}
		dst = append(dst, b)
		v >>= 5
	}
	return append(dst, byte(charOffset+v)), nil
}

// readVarint unpacks one varint from s starting at start, returning the
// accumulated value and the index of the first unread byte.
//
// A byte below the alphabet fails at that byte's absolute index. A group
// shift past maxShift fails at the current index before the shift is
// performed, bounding reads on corrupt input. Running out of bytes with
// the continuation bit still set terminates with the value accumulated
// so far; the caller's pairing check surfaces truncation.
func readVarint(s string, start int) (uint64, int, error) {
	var result uint64
	shift := uint(0)

	i := start
	for ; i < len(s); i++ {
		b := s[i]
		if b < charOffset || shift > maxShift {
			if b < charOffset {
				return 0, i, errors.InvalidByte(i, b)
			}
			return 0, i, errors.Overflow(i)
		}
		b -= charOffset
		result |= uint64(b&payloadMask) << shift
		shift += 5
		if b < continuation {
			i++
			break
		}
	}

	return result, i, nil
}
