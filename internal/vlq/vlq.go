// Package vlq implements decoding of [Variable-length quantity] values as used
// in MIDI or BER. A VLQ is essentially a base-128 representation of an unsigned
// integer with the addition of the eighth bit to mark continuation of bytes.
// VLQ is identical to [LEB128] except in endianness.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
// [LEB128]: https://en.wikipedia.org/wiki/LEB128
package vlq

import (
	"errors"
	"io"
	"math/bits"
	"unsafe"
)

var (
	errNotMinimal = errors.New("vlq is not minimally encoded")
	errOverflow   = errors.New("vlq too large for target type")
)

// Read parses a single unsigned VLQ from the beginning of data. It returns the
// parsed value and the number of bytes it occupies. The maximum allowed value
// is limited by the size of T.
//
// The VLQ must be minimally encoded, i.e. it must not start with a 0x80 byte.
// If data is empty, Read returns io.EOF. If data ends in the middle of a VLQ,
// Read returns io.ErrUnexpectedEOF.
func Read[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](data []byte) (ret T, n int, err error) {
	if len(data) == 0 {
		return 0, 0, io.EOF
	}
	b := data[0]
	if b == 0x80 {
		return 0, 1, errNotMinimal
	}

	ret = T(b & 0x7f)
	numBits := bits.Len8(b & 0x7f)

	for n = 1; b&0x80 != 0; n++ {
		if n == len(data) {
			return 0, n, io.ErrUnexpectedEOF
		}
		b = data[n]
		ret <<= 7
		ret |= T(b & 0x7f)

		if numBits == 0 {
			numBits = bits.Len8(b & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > int(unsafe.Sizeof(ret)*8) {
			return 0, n + 1, errOverflow
		}
	}
	return ret, n, nil
}
