// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"

	"codello.dev/berview"
)

// decodePrimitive decodes a data value using the primitive encoding. The
// interpretation of the content octets is chosen strictly by the tag number,
// the class does not participate in dispatch. start is the offset of the data
// value's header within the input, used for error locations.
func decodePrimitive(h header, c *cursor, start int) (Value, error) {
	b, err := c.take(h.length)
	if err != nil {
		return Value{}, err
	}

	v := Value{Class: h.class, Tag: h.tag}
	switch h.tag {
	case berview.TagBoolean:
		if len(b) != 1 {
			return Value{}, &DecodeError{Offset: start, Msg: "invalid length for BOOLEAN", Err: ErrInvalidLength}
		}
		v.Kind = KindBoolean
		v.Bool = b[0] != 0

	case berview.TagInteger, berview.TagEnumerated:
		if len(b) == 0 {
			return Value{}, &DecodeError{Offset: start, Msg: "empty " + h.tag.String(), Err: ErrInvalidLength}
		}
		if len(b) > 4 {
			// too large for the numeric fast path, keep the raw encoding
			v.Kind = KindBigInt
			v.Bytes = bytes.Clone(b)
			break
		}
		v.Kind = KindInteger
		v.Int = decodeInt32(b)

	case berview.TagBitString:
		if len(b) == 0 {
			return Value{}, &DecodeError{Offset: start, Msg: "zero length BIT STRING", Err: ErrInvalidBitString}
		}
		padding := int(b[0])
		if padding > 7 || len(b) == 1 && padding > 0 {
			return Value{}, &DecodeError{Offset: start, Msg: "invalid padding bits in BIT STRING", Err: ErrInvalidBitString}
		}
		v.Kind = KindBitString
		v.Bytes = bytes.Clone(b[1:])
		v.BitLength = (len(b)-1)*8 - padding

	case berview.TagOctetString:
		v.Kind = KindOctetString
		v.Bytes = bytes.Clone(b)

	case berview.TagNull:
		if len(b) != 0 {
			return Value{}, &DecodeError{Offset: start, Msg: "invalid length for NULL", Err: ErrInvalidLength}
		}
		v.Kind = KindNull

	case berview.TagOID:
		// arc decoding is deferred, see Value.OID
		v.Kind = KindOID
		v.Bytes = bytes.Clone(b)

	case berview.TagUTF8String, berview.TagNumericString, berview.TagPrintableString:
		if !validString(h.tag, b) {
			return Value{}, &DecodeError{Offset: start, Msg: "invalid characters in " + h.tag.String(), Err: ErrInvalidString}
		}
		v.Kind = KindString
		v.Str = string(b)

	case berview.TagUTCTime:
		t, err := parseUTCTime(string(b))
		if err != nil {
			return Value{}, &DecodeError{Offset: start, Msg: "malformed UTCTime", Err: ErrInvalidTime}
		}
		v.Kind = KindTime
		v.Time = t

	case berview.TagGeneralizedTime:
		t, err := parseGeneralizedTime(string(b))
		if err != nil {
			return Value{}, &DecodeError{Offset: start, Msg: "malformed GeneralizedTime", Err: ErrInvalidTime}
		}
		v.Kind = KindTime
		v.Time = t

	default:
		v.Kind = KindGeneric
		v.Bytes = bytes.Clone(b)
	}
	return v, nil
}

// decodeInt32 interprets b as a big-endian two's-complement number,
// sign-extending to 32 bits. b must be 1 to 4 bytes long.
func decodeInt32(b []byte) int32 {
	var u uint32
	for _, o := range b {
		u = u<<8 | uint32(o)
	}
	i := int32(u)
	i <<= 32 - 8*len(b)
	i >>= 32 - 8*len(b)
	return i
}
