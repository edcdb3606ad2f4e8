// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package berview

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"codello.dev/berview/internal/vlq"
)

//region [UNIVERSAL 3] BIT STRING

// BitString implements the ASN.1 BIT STRING type. A bit string is padded up to
// the nearest byte in memory and the number of valid bits is recorded. Padding
// bits are always zero bits.
//
// See also section 22 of Rec. ITU-T X.680.
type BitString struct {
	Bytes     []byte // bits packed into bytes.
	BitLength int    // length in bits.
}

// IsValid reports whether there are enough bytes in s for the indicated
// BitLength.
func (s BitString) IsValid() bool {
	return len(s.Bytes) >= (s.BitLength+8-1)/8
}

// Len returns the number of bits in s.
func (s BitString) Len() int {
	return s.BitLength
}

// At returns the bit at the given index. If the index is out of range At panics.
func (s BitString) At(i int) int {
	if i < 0 || i >= s.BitLength {
		panic("index out of range")
	}
	x := i / 8
	y := 7 - uint(i%8)
	return int(s.Bytes[x]>>y) & 1
}

// RightAlign returns a slice where the padding bits are at the beginning. The
// slice may share memory with the BitString.
func (s BitString) RightAlign() []byte {
	shift := uint(8 - (s.BitLength % 8))
	if shift == 8 || len(s.Bytes) == 0 {
		return s.Bytes
	}

	a := make([]byte, len(s.Bytes))
	a[0] = s.Bytes[0] >> shift
	for i := 1; i < len(s.Bytes); i++ {
		a[i] = s.Bytes[i-1] << (8 - shift)
		a[i] |= s.Bytes[i] >> shift
	}

	return a
}

// String formats s into a readable binary representation. Bits are grouped
// into bytes. The last group may have fewer than 8 characters.
func (s BitString) String() string {
	var sb strings.Builder
	sb.Grow(s.BitLength + s.BitLength/8)
	for i := 0; i < s.BitLength; i++ {
		if i > 0 && i%8 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('0' + byte(s.At(i)))
	}
	return sb.String()
}

//endregion

//region [UNIVERSAL 6] OBJECT IDENTIFIER

// An ObjectIdentifier represents an ASN.1 OBJECT IDENTIFIER. The semantics of
// an object identifier are specified in [Rec. ITU-T X.660].
//
// See also section 32 of Rec. ITU-T X.680.
//
// [Rec. ITU-T X.660]: https://www.itu.int/rec/T-REC-X.660
type ObjectIdentifier []uint64

// ParseObjectIdentifier parses the contents octets of an encoded OBJECT
// IDENTIFIER value into its numerical arcs. The encoding of object identifiers
// is defined in Rec. ITU-T X.690, Section 8.19.
func ParseObjectIdentifier(data []byte) (ObjectIdentifier, error) {
	if len(data) == 0 {
		return nil, errors.New("invalid object identifier: empty encoding")
	}

	// The first two arcs are packed into a single VLQ. The first arc is
	// limited to the values 0, 1, and 2. The second arc is limited to 39 if
	// the first arc is 0 or 1.
	v, n, err := vlq.Read[uint64](data)
	if err != nil {
		return nil, fmt.Errorf("invalid object identifier: %w", err)
	}
	oid := make(ObjectIdentifier, 2, len(data)+1)
	if v < 80 {
		oid[0] = v / 40
		oid[1] = v % 40
	} else {
		oid[0] = 2
		oid[1] = v - 80
	}

	for n < len(data) {
		v, m, err := vlq.Read[uint64](data[n:])
		if err != nil {
			return nil, fmt.Errorf("invalid object identifier: %w", err)
		}
		n += m
		oid = append(oid, v)
	}
	return oid, nil
}

// Equal reports whether oid and other represent the same identifier.
func (oid ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return slices.Equal(oid, other)
}

// MarshalText implements [encoding.TextMarshaler]. The identifier is encoded
// in its dot-separated notation.
func (oid ObjectIdentifier) MarshalText() ([]byte, error) {
	return []byte(oid.String()), nil
}

// String returns the dot-separated notation of oid.
func (oid ObjectIdentifier) String() string {
	var s strings.Builder
	s.Grow(32)

	buf := make([]byte, 0, 19)
	for i, v := range oid {
		if i > 0 {
			s.WriteByte('.')
		}
		s.Write(strconv.AppendUint(buf, v, 10))
	}

	return s.String()
}

//endregion
