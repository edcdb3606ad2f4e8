// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements a schemaless decoder for data encoded using the ASN.1
// Basic Encoding Rules (BER). The Basic Encoding Rules are defined in [Rec.
// ITU-T X.690]. See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// Instead of decoding into Go structs the way [encoding/asn1] does, the
// [Parse] function turns a buffer of encoded bytes into a tree of [Value]
// nodes describing exactly what was encoded. No schema is required, which
// makes the decoder suitable for inspecting encodings whose ASN.1 module is
// unknown or untrusted.
//
// The decoder understands the subset of BER produced by DER encoders such as
// those used for X.509 certificates. The following limitations apply:
//
//   - Only the single-byte tag format is supported, i.e. tag numbers are
//     limited to the range 0 through 30.
//   - Lengths must use the definite form. The indefinite form and length
//     encodings of more than 4 octets are rejected.
//   - An INTEGER or ENUMERATED value of more than 4 content octets is not
//     decoded numerically. The value records its raw content octets instead,
//     see [Value.BigInt].
//   - UTCTime and GeneralizedTime must use their seconds-precision UTC form,
//     i.e. "YYMMDDHHMMSSZ" and "YYYYMMDDHHMMSSZ" respectively.
//
// Decoding is strict: input that violates one of the rules above, or that is
// truncated, nested too deeply or otherwise malformed, produces a
// [*DecodeError] wrapping one of the sentinel errors of this package. A
// successfully decoded tree shares no memory with the input buffer and is
// never modified afterwards.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package ber

// requireKeyedLiterals can be embedded in a struct to require keyed literals.
type requireKeyedLiterals struct{}

// nonComparable can be embedded in a struct to prevent comparability.
type nonComparable [0]func()

// ContentLength decodes the header of the outermost data value in data and
// returns the declared length of its contents in bytes. Only the header is
// examined, the contents are not decoded. Bytes following the outermost data
// value are ignored.
func ContentLength(data []byte) (int, error) {
	c := newCursor(data)
	h, err := decodeHeader(&c)
	if err != nil {
		return 0, err
	}
	return h.length, nil
}

// Content decodes the header of the outermost data value in data and returns
// its contents octets. Only the header is examined, the contents are not
// decoded. Bytes following the outermost data value are ignored.
//
// The returned slice shares memory with data.
func Content(data []byte) ([]byte, error) {
	c := newCursor(data)
	h, err := decodeHeader(&c)
	if err != nil {
		return nil, err
	}
	return c.data[c.off : c.off+h.length], nil
}
