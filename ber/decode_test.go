// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codello.dev/berview"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		want    Value
		wantErr error
	}{
		"Null":         {data: []byte{0x05, 0x00}, want: Value{Tag: berview.TagNull, Kind: KindNull}},
		"BooleanTrue":  {data: []byte{0x01, 0x01, 0xFF}, want: Value{Tag: berview.TagBoolean, Kind: KindBoolean, Bool: true}},
		"BooleanFalse": {data: []byte{0x01, 0x01, 0x00}, want: Value{Tag: berview.TagBoolean, Kind: KindBoolean, Bool: false}},
		// BER allows any non-zero octet for TRUE
		"BooleanLax": {data: []byte{0x01, 0x01, 0x01}, want: Value{Tag: berview.TagBoolean, Kind: KindBoolean, Bool: true}},

		"IntegerZero":     {data: []byte{0x02, 0x01, 0x00}, want: Value{Tag: berview.TagInteger, Kind: KindInteger, Int: 0}},
		"IntegerSmall":    {data: []byte{0x02, 0x01, 0x48}, want: Value{Tag: berview.TagInteger, Kind: KindInteger, Int: 72}},
		"IntegerNegative": {data: []byte{0x02, 0x01, 0x80}, want: Value{Tag: berview.TagInteger, Kind: KindInteger, Int: -128}},
		"IntegerPadded":   {data: []byte{0x02, 0x02, 0x00, 0x80}, want: Value{Tag: berview.TagInteger, Kind: KindInteger, Int: 128}},
		"IntegerFull":     {data: []byte{0x02, 0x04, 0x07, 0x5B, 0xCD, 0x15}, want: Value{Tag: berview.TagInteger, Kind: KindInteger, Int: 123456789}},
		"IntegerFullNeg":  {data: []byte{0x02, 0x04, 0xF8, 0xA4, 0x32, 0xEB}, want: Value{Tag: berview.TagInteger, Kind: KindInteger, Int: -123456789}},
		"IntegerBig": {
			data: []byte{0x02, 0x05, 0x01, 0x00, 0x00, 0x00, 0x00},
			want: Value{Tag: berview.TagInteger, Kind: KindBigInt, Bytes: []byte{0x01, 0x00, 0x00, 0x00, 0x00}},
		},
		"Enumerated": {data: []byte{0x0A, 0x01, 0x02}, want: Value{Tag: berview.TagEnumerated, Kind: KindInteger, Int: 2}},

		"BitString": {
			data: []byte{0x03, 0x04, 0x06, 0x6E, 0x5D, 0xC0},
			want: Value{Tag: berview.TagBitString, Kind: KindBitString, Bytes: []byte{0x6E, 0x5D, 0xC0}, BitLength: 18},
		},
		"BitStringEmpty": {
			data: []byte{0x03, 0x01, 0x00},
			want: Value{Tag: berview.TagBitString, Kind: KindBitString, Bytes: []byte{}, BitLength: 0},
		},
		"OctetString": {
			data: []byte{0x04, 0x05, 'h', 'e', 'l', 'l', 'o'},
			want: Value{Tag: berview.TagOctetString, Kind: KindOctetString, Bytes: []byte("hello")},
		},
		"OctetStringEmpty": {
			data: []byte{0x04, 0x00},
			want: Value{Tag: berview.TagOctetString, Kind: KindOctetString, Bytes: []byte{}},
		},
		"OID": {
			data: []byte{0x06, 0x03, 0x55, 0x04, 0x03},
			want: Value{Tag: berview.TagOID, Kind: KindOID, Bytes: []byte{0x55, 0x04, 0x03}},
		},

		"UTF8String":      {data: []byte{0x0C, 0x05, 'h', 'e', 'l', 'l', 'o'}, want: Value{Tag: berview.TagUTF8String, Kind: KindString, Str: "hello"}},
		"UTF8StringEmpty": {data: []byte{0x0C, 0x00}, want: Value{Tag: berview.TagUTF8String, Kind: KindString, Str: ""}},
		"PrintableString": {data: []byte{0x13, 0x02, 'D', 'E'}, want: Value{Tag: berview.TagPrintableString, Kind: KindString, Str: "DE"}},
		"NumericString":   {data: []byte{0x12, 0x03, '4', '2', ' '}, want: Value{Tag: berview.TagNumericString, Kind: KindString, Str: "42 "}},

		"UTCTime": {
			data: append([]byte{0x17, 0x0D}, "260821220607Z"...),
			want: Value{Tag: berview.TagUTCTime, Kind: KindTime, Time: time.Date(2026, 8, 21, 22, 6, 7, 0, time.UTC)},
		},
		"GeneralizedTime": {
			data: append([]byte{0x18, 0x0F}, "20580902220607Z"...),
			want: Value{Tag: berview.TagGeneralizedTime, Kind: KindTime, Time: time.Date(2058, 9, 2, 22, 6, 7, 0, time.UTC)},
		},

		"Sequence": {
			data: []byte{0x30, 0x06, 0x02, 0x01, 0x48, 0x01, 0x01, 0xFF},
			want: Value{Tag: berview.TagSequence, Constructed: true, Kind: KindSequence, Children: []Value{
				{Tag: berview.TagInteger, Kind: KindInteger, Int: 72},
				{Tag: berview.TagBoolean, Kind: KindBoolean, Bool: true},
			}},
		},
		"SequenceEmpty": {
			data: []byte{0x30, 0x00},
			want: Value{Tag: berview.TagSequence, Constructed: true, Kind: KindSequence},
		},
		// set elements keep their encoding order
		"Set": {
			data: []byte{0x31, 0x06, 0x02, 0x01, 0x02, 0x02, 0x01, 0x01},
			want: Value{Tag: berview.TagSet, Constructed: true, Kind: KindSet, Children: []Value{
				{Tag: berview.TagInteger, Kind: KindInteger, Int: 2},
				{Tag: berview.TagInteger, Kind: KindInteger, Int: 1},
			}},
		},
		"SetDuplicates": {
			data: []byte{0x31, 0x06, 0x01, 0x01, 0xFF, 0x01, 0x01, 0xFF},
			want: Value{Tag: berview.TagSet, Constructed: true, Kind: KindSet, Children: []Value{
				{Tag: berview.TagBoolean, Kind: KindBoolean, Bool: true},
				{Tag: berview.TagBoolean, Kind: KindBoolean, Bool: true},
			}},
		},

		// interpretation depends on the tag number alone, not the class
		"ApplicationBoolean": {
			data: []byte{0x41, 0x01, 0xFF},
			want: Value{Class: berview.ClassApplication, Tag: berview.TagBoolean, Kind: KindBoolean, Bool: true},
		},
		"PrivateInteger": {
			data: []byte{0xC2, 0x01, 0x2A},
			want: Value{Class: berview.ClassPrivate, Tag: berview.TagInteger, Kind: KindInteger, Int: 42},
		},
		"ContextPrimitive": {
			data: []byte{0x80, 0x01, 0xFF},
			want: Value{Class: berview.ClassContextSpecific, Tag: 0, Kind: KindGeneric, Bytes: []byte{0xFF}},
		},
		"ContextConstructed": {
			data: []byte{0xA0, 0x03, 0x02, 0x01, 0x05},
			want: Value{Class: berview.ClassContextSpecific, Tag: 0, Constructed: true, Kind: KindGeneric, Children: []Value{
				{Tag: berview.TagInteger, Kind: KindInteger, Int: 5},
			}},
		},
		"GenericPrimitive": {
			data: []byte{0x1E, 0x02, 0x00, 0x2A},
			want: Value{Tag: berview.TagBMPString, Kind: KindGeneric, Bytes: []byte{0x00, 0x2A}},
		},
		"GenericConstructed": {
			data: []byte{0x2C, 0x02, 0x05, 0x00},
			want: Value{Tag: berview.TagUTF8String, Constructed: true, Kind: KindGeneric, Children: []Value{
				{Tag: berview.TagNull, Kind: KindNull},
			}},
		},

		"Empty":             {data: nil, wantErr: ErrUnexpectedEOF},
		"TruncatedHeader":   {data: []byte{0x30}, wantErr: ErrUnexpectedEOF},
		"TruncatedContents": {data: []byte{0x04, 0x05, 'h', 'e'}, wantErr: ErrUnexpectedEOF},
		"TruncatedNested":   {data: []byte{0x30, 0x04, 0x04, 0x05, 'h', 'e'}, wantErr: ErrUnexpectedEOF},
		"MultiByteTag":      {data: []byte{0x1F, 0x84, 0x2D, 0x00}, wantErr: ErrLongTag},
		"Indefinite":        {data: []byte{0x30, 0x80, 0x05, 0x00, 0x00, 0x00}, wantErr: ErrIndefiniteLength},
		"LengthTooWide":     {data: []byte{0x04, 0x85, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, wantErr: ErrInvalidLength},
		"TrailingBytes":     {data: []byte{0x05, 0x00, 0x05, 0x00}, wantErr: ErrInvalidLength},

		"BooleanEmpty":   {data: []byte{0x01, 0x00}, wantErr: ErrInvalidLength},
		"BooleanTooLong": {data: []byte{0x01, 0x02, 0x00, 0xFF}, wantErr: ErrInvalidLength},
		"IntegerEmpty":   {data: []byte{0x02, 0x00}, wantErr: ErrInvalidLength},
		"NullNotEmpty":   {data: []byte{0x05, 0x01, 0x00}, wantErr: ErrInvalidLength},

		"BitStringNoPadCount": {data: []byte{0x03, 0x00}, wantErr: ErrInvalidBitString},
		"BitStringPad8":       {data: []byte{0x03, 0x02, 0x08, 0x00}, wantErr: ErrInvalidBitString},
		"BitStringPadOnly":    {data: []byte{0x03, 0x01, 0x04}, wantErr: ErrInvalidBitString},

		"UTF8StringInvalid":      {data: []byte{0x0C, 0x02, 0xFF, 0xFE}, wantErr: ErrInvalidString},
		"PrintableStringInvalid": {data: []byte{0x13, 0x03, 'f', '_', 'b'}, wantErr: ErrInvalidString},
		"NumericStringInvalid":   {data: []byte{0x12, 0x01, 'A'}, wantErr: ErrInvalidString},

		"UTCTimeInvalid":         {data: append([]byte{0x17, 0x0D}, "261321220607Z"...), wantErr: ErrInvalidTime},
		"UTCTimeTruncated":       {data: append([]byte{0x17, 0x0C}, "26082122060Z"...), wantErr: ErrInvalidTime},
		"GeneralizedTimeInvalid": {data: append([]byte{0x18, 0x0D}, "260821220607Z"...), wantErr: ErrInvalidTime},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tt.data)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var dErr *DecodeError
				require.ErrorAs(t, err, &dErr)
				assert.Equal(t, Value{}, got, "a failed Parse should return the zero Value")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_errorLocation(t *testing.T) {
	tests := map[string]struct {
		data       []byte
		wantOffset int
		wantString string
	}{
		"TruncatedContents": {
			data:       []byte{0x04, 0x05, 'h', 'e'},
			wantOffset: 2,
			wantString: "ber: offset 2: unexpected EOF",
		},
		"TrailingBytes": {
			data:       []byte{0x05, 0x00, 0x05, 0x00},
			wantOffset: 2,
			wantString: "ber: offset 2: extra data after data value encoding",
		},
		"NestedBoolean": {
			data:       []byte{0x30, 0x07, 0x02, 0x01, 0x48, 0x01, 0x02, 0x00, 0xFF},
			wantOffset: 5,
			wantString: "ber: offset 5: invalid length for BOOLEAN",
		},
		"MultiByteTag": {
			data:       []byte{0x1F, 0x84, 0x2D, 0x00},
			wantOffset: 0,
			wantString: "ber: offset 0: unsupported multi-byte tag",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tt.data)
			var dErr *DecodeError
			require.ErrorAs(t, err, &dErr)
			assert.Equal(t, tt.wantOffset, dErr.Offset)
			assert.Equal(t, tt.wantString, dErr.Error())
		})
	}
}

// nested builds a chain of depth data values, depth-1 constructed values
// around a single NULL.
func nested(depth int) []byte {
	b := []byte{0x05, 0x00}
	for i := 1; i < depth; i++ {
		b = append([]byte{0xA0, byte(len(b))}, b...)
	}
	return b
}

func TestParse_maxDepth(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		_, err := Parse(nested(DefaultMaxDepth))
		assert.NoError(t, err)
		_, err = Parse(nested(DefaultMaxDepth + 1))
		assert.ErrorIs(t, err, ErrTooDeep)
	})
	t.Run("Custom", func(t *testing.T) {
		p := Parser{MaxDepth: 4}
		_, err := p.Parse(nested(4))
		assert.NoError(t, err)
		_, err = p.Parse(nested(5))
		assert.ErrorIs(t, err, ErrTooDeep)
	})
	t.Run("Fallback", func(t *testing.T) {
		p := Parser{MaxDepth: -3}
		_, err := p.Parse(nested(DefaultMaxDepth))
		assert.NoError(t, err)
	})
}

func TestParse_noAliasing(t *testing.T) {
	data := []byte{0x04, 0x03, 0x01, 0x02, 0x03}
	v, err := Parse(data)
	require.NoError(t, err)
	data[2] = 0xAA
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, v.Bytes, "the tree should not share memory with the input")
}

func ExampleParse() {
	v, err := Parse([]byte{0x30, 0x06, 0x02, 0x01, 0x48, 0x01, 0x01, 0xFF})
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	for _, el := range v.Children {
		fmt.Println(el)
	}
	// Output:
	// Value{[UNIVERSAL 16] Sequence, 2 elements}
	// Value{[UNIVERSAL 2] Integer 72}
	// Value{[UNIVERSAL 1] Boolean true}
}
