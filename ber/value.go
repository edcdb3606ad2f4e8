// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"fmt"
	"math/big"
	"time"

	"codello.dev/berview"
)

// Kind identifies the interpretation the decoder chose for a [Value]. The
// interpretation depends only on the tag number of the data value, see the
// package documentation for the mapping. Exactly one interpretation exists per
// Kind, so the set of supported tags is auditable in one place.
//
//go:generate stringer -type=Kind -trimprefix=Kind
type Kind uint8

const (
	// KindNull is an ASN.1 NULL value. It carries no payload.
	KindNull Kind = iota
	// KindBoolean carries its payload in [Value.Bool].
	KindBoolean
	// KindInteger is an INTEGER or ENUMERATED of at most 4 content octets. It
	// carries its payload in [Value.Int].
	KindInteger
	// KindBigInt is an INTEGER or ENUMERATED of more than 4 content octets.
	// It carries its raw content octets in [Value.Bytes], see [Value.BigInt].
	KindBigInt
	// KindBitString carries its bits in [Value.Bytes] and the number of valid
	// bits in [Value.BitLength], see [Value.BitString].
	KindBitString
	// KindOctetString carries its payload in [Value.Bytes].
	KindOctetString
	// KindOID is an OBJECT IDENTIFIER. It carries its raw content octets in
	// [Value.Bytes], see [Value.OID].
	KindOID
	// KindString is a UTF8String, NumericString or PrintableString. It
	// carries its payload in [Value.Str].
	KindString
	// KindTime is a UTCTime or GeneralizedTime. It carries its payload in
	// [Value.Time].
	KindTime
	// KindSequence is a constructed SEQUENCE. Its elements are in
	// [Value.Children], in encoding order.
	KindSequence
	// KindSet is a constructed SET. Its elements are in [Value.Children], in
	// encoding order, including any duplicates.
	KindSet
	// KindGeneric is any data value without a more specific interpretation.
	// Constructed values carry their elements in [Value.Children], primitive
	// values carry their raw content octets in [Value.Bytes].
	KindGeneric
)

// Value is a single node in the tree produced by [Parse]. Which payload field
// is populated is determined by Kind; all other payload fields retain their
// zero values. A Value is never modified after decoding.
type Value struct {
	Class       berview.Class // the class part of the tag
	Tag         berview.Tag   // the number part of the tag
	Constructed bool          // whether the data value used the constructed encoding
	Kind        Kind

	Bool      bool      // payload of KindBoolean
	Int       int32     // payload of KindInteger
	Bytes     []byte    // payload of the raw byte carrying kinds
	BitLength int       // number of valid bits for KindBitString
	Str       string    // payload of KindString
	Time      time.Time // payload of KindTime
	Children  []Value   // elements of constructed values
}

var bigOne = big.NewInt(1)

// BigInt returns the numeric payload of v as an arbitrary precision integer.
// For [KindBigInt] the raw content octets are interpreted as a big-endian
// two's-complement number as defined in Rec. ITU-T X.690, Section 8.3. BigInt
// panics if v is not of kind [KindInteger] or [KindBigInt].
func (v Value) BigInt() *big.Int {
	switch v.Kind {
	case KindInteger:
		return big.NewInt(int64(v.Int))
	case KindBigInt:
		i := new(big.Int)
		if len(v.Bytes) > 0 && v.Bytes[0]&0x80 == 0x80 {
			// negative number in two's complement
			bs := bytes.Clone(v.Bytes)
			for j := range bs {
				bs[j] = ^bs[j]
			}
			i.SetBytes(bs)
			i.Add(i, bigOne)
			i.Neg(i)
		} else {
			i.SetBytes(v.Bytes)
		}
		return i
	}
	panic("ber: BigInt of non-integer Value")
}

// BitString returns the payload of v as a [berview.BitString]. The returned
// value shares memory with v. BitString panics if v is not of kind
// [KindBitString].
func (v Value) BitString() berview.BitString {
	if v.Kind != KindBitString {
		panic("ber: BitString of non-BIT STRING Value")
	}
	return berview.BitString{Bytes: v.Bytes, BitLength: v.BitLength}
}

// OID parses the raw content octets of v into their numerical arcs. OID panics
// if v is not of kind [KindOID].
func (v Value) OID() (berview.ObjectIdentifier, error) {
	if v.Kind != KindOID {
		panic("ber: OID of non-OBJECT IDENTIFIER Value")
	}
	return berview.ParseObjectIdentifier(v.Bytes)
}

// String returns a string representation of v for debugging purposes. Byte
// contents are only included if they are short enough. Use the dump package
// for a full rendering of a value tree.
func (v Value) String() string {
	ident := berview.Ident(v.Class, v.Tag)
	switch {
	case v.Constructed:
		return fmt.Sprintf("Value{%s %s, %d elements}", ident, v.Kind, len(v.Children))
	case v.Kind == KindNull:
		return fmt.Sprintf("Value{%s Null}", ident)
	case v.Kind == KindBoolean:
		return fmt.Sprintf("Value{%s Boolean %t}", ident, v.Bool)
	case v.Kind == KindInteger:
		return fmt.Sprintf("Value{%s Integer %d}", ident, v.Int)
	case v.Kind == KindString:
		return fmt.Sprintf("Value{%s String %q}", ident, v.Str)
	case v.Kind == KindTime:
		return fmt.Sprintf("Value{%s Time %s}", ident, v.Time.Format(time.RFC3339))
	case v.Kind == KindBitString:
		return fmt.Sprintf("Value{%s BitString %d bits}", ident, v.BitLength)
	case len(v.Bytes) > 24:
		return fmt.Sprintf("Value{%s %s {%d bytes}}", ident, v.Kind, len(v.Bytes))
	default:
		return fmt.Sprintf("Value{%s %s {% X}}", ident, v.Kind, v.Bytes)
	}
}
