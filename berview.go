// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package berview provides a schemaless view into ASN.1 encoded data
// structures. The ASN.1 notation and its universal types are defined in [Rec.
// ITU-T X.680], the Basic Encoding Rules (BER) in [Rec. ITU-T X.690].
//
// This package defines the vocabulary shared by its subpackages: tag classes,
// universal tag numbers and Go representations for ASN.1 values that have no
// direct Go counterpart. Decoding raw BER bytes into a generic value tree is
// implemented in package [codello.dev/berview/ber]. Consumers of the tree live
// in [codello.dev/berview/cert] and [codello.dev/berview/dump].
//
// In contrast to [encoding/asn1] and similar packages, berview does not decode
// into Go structs. Decoding is schemaless: the decoder accepts any well-formed
// data value and produces a tree describing exactly what was encoded. This
// makes the package suitable for inspecting data whose ASN.1 module is unknown
// or untrusted, e.g. X.509 certificates from arbitrary sources.
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package berview

import "strconv"

// Class holds the class part of an ASN.1 tag. The class acts as a namespace for
// the tag number. A Class value is an unsigned 2-bit integer. Class values
// whose value exceeds 2 bits are invalid.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// Tag is the number part of an ASN.1 tag, identifying a data value within the
// namespace of its class. The decoders in this module only support the
// single-byte tag format, limiting Tag to values below 31.
type Tag uint8

// IsValid reports whether t can be represented in the single-byte tag format.
func (t Tag) IsValid() bool {
	return t <= 30
}

// TagReserved is a reserved tag number in the [ClassUniversal] namespace to be
// used by encoding rules. This assignment is defined in Rec. ITU-T X.680,
// Section 8, Table 1.
const TagReserved Tag = 0

// These are the ASN.1 tag numbers defined in the [ClassUniversal] namespace
// that fit the single-byte tag format. These assignments are defined in Rec.
// ITU-T X.680, Section 8, Table 1.
const (
	TagBoolean          Tag = 1
	TagInteger          Tag = 2
	TagBitString        Tag = 3
	TagOctetString      Tag = 4
	TagNull             Tag = 5
	TagOID              Tag = 6
	TagObjectDescriptor Tag = 7
	TagExternal         Tag = 8
	TagReal             Tag = 9
	TagEnumerated       Tag = 10
	TagEmbeddedPDV      Tag = 11
	TagUTF8String       Tag = 12
	TagRelativeOID      Tag = 13
	TagTime             Tag = 14
	TagSequence         Tag = 16
	TagSet              Tag = 17
	TagNumericString    Tag = 18
	TagPrintableString  Tag = 19
	TagTeletexString    Tag = 20
	TagT61String            = TagTeletexString
	TagVideotexString   Tag = 21
	TagIA5String        Tag = 22
	TagUTCTime          Tag = 23
	TagGeneralizedTime  Tag = 24
	TagGraphicString    Tag = 25
	TagVisibleString    Tag = 26
	TagISO646String         = TagVisibleString
	TagGeneralString    Tag = 27
	TagUniversalString  Tag = 28
	TagCharacterString  Tag = 29
	TagBMPString        Tag = 30
)

// tagNames contains the X.680 notation for tag numbers assigned in the
// [ClassUniversal] namespace. Unassigned numbers have an empty name.
var tagNames = [...]string{
	TagBoolean:          "BOOLEAN",
	TagInteger:          "INTEGER",
	TagBitString:        "BIT STRING",
	TagOctetString:      "OCTET STRING",
	TagNull:             "NULL",
	TagOID:              "OBJECT IDENTIFIER",
	TagObjectDescriptor: "ObjectDescriptor",
	TagExternal:         "EXTERNAL",
	TagReal:             "REAL",
	TagEnumerated:       "ENUMERATED",
	TagEmbeddedPDV:      "EMBEDDED PDV",
	TagUTF8String:       "UTF8String",
	TagRelativeOID:      "RELATIVE-OID",
	TagTime:             "TIME",
	TagSequence:         "SEQUENCE",
	TagSet:              "SET",
	TagNumericString:    "NumericString",
	TagPrintableString:  "PrintableString",
	TagTeletexString:    "TeletexString",
	TagVideotexString:   "VideotexString",
	TagIA5String:        "IA5String",
	TagUTCTime:          "UTCTime",
	TagGeneralizedTime:  "GeneralizedTime",
	TagGraphicString:    "GraphicString",
	TagVisibleString:    "VisibleString",
	TagGeneralString:    "GeneralString",
	TagUniversalString:  "UniversalString",
	TagCharacterString:  "CHARACTER STRING",
	TagBMPString:        "BMPString",
}

// String returns the X.680 notation for t within the [ClassUniversal]
// namespace, e.g. "OCTET STRING" for [TagOctetString]. For tag numbers without
// a universal assignment the decimal number itself is returned.
func (t Tag) String() string {
	if int(t) < len(tagNames) && tagNames[t] != "" {
		return tagNames[t]
	}
	return strconv.FormatUint(uint64(t), 10)
}

// Ident returns a string representation of the class and number pair in a
// format similar to the one used in ASN.1 notation. The tag number is enclosed
// by square brackets and prefixed with the class used. To avoid ambiguity the
// UNIVERSAL word is used for universal tags, although this is not valid ASN.1
// syntax.
func Ident(c Class, t Tag) string {
	switch c {
	case ClassContextSpecific:
		return "[" + strconv.FormatUint(uint64(t), 10) + "]"
	case ClassApplication:
		return "[APPLICATION " + strconv.FormatUint(uint64(t), 10) + "]"
	case ClassPrivate:
		return "[PRIVATE " + strconv.FormatUint(uint64(t), 10) + "]"
	default:
		return "[UNIVERSAL " + strconv.FormatUint(uint64(t), 10) + "]"
	}
}
