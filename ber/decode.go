// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"codello.dev/berview"
)

// DefaultMaxDepth is the nesting limit used by [Parse] and by the zero
// [Parser].
const DefaultMaxDepth = 32

// A Parser decodes BER data into [Value] trees. The zero value is ready to
// use. A Parser is stateless, so a single Parser can be shared by concurrent
// decodes.
type Parser struct {
	// MaxDepth limits how deeply data values may nest. Decoding a value
	// nested more deeply fails with [ErrTooDeep]. Values below 1 mean
	// [DefaultMaxDepth].
	MaxDepth int
}

// Parse decodes the single data value encoded in data using the zero
// [Parser]. See [Parser.Parse] for details.
func Parse(data []byte) (Value, error) {
	return Parser{}.Parse(data)
}

// Parse decodes the single data value encoded in data into a [Value] tree.
// data must contain exactly one data value encoding, trailing bytes are
// rejected. The returned tree shares no memory with data.
//
// On failure the returned error is a [*DecodeError] and the Value is the zero
// Value, never a partial tree.
func (p Parser) Parse(data []byte) (Value, error) {
	maxDepth := p.MaxDepth
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	c := newCursor(data)
	v, err := decodeValue(&c, maxDepth)
	if err != nil {
		return Value{}, err
	}
	if c.remaining() > 0 {
		return Value{}, &DecodeError{Offset: c.off, Msg: "extra data after data value encoding", Err: ErrInvalidLength}
	}
	return v, nil
}

// decodeValue decodes the data value beginning at the cursor position. depth
// is the remaining nesting allowance, it decreases by one for every level of
// constructed contents.
func decodeValue(c *cursor, depth int) (Value, error) {
	if depth == 0 {
		return Value{}, &DecodeError{Offset: c.off, Err: ErrTooDeep}
	}
	start := c.off
	h, err := decodeHeader(c)
	if err != nil {
		return Value{}, err
	}
	content, err := c.child(h.length)
	if err != nil {
		return Value{}, err
	}
	if h.constructed {
		return decodeConstructed(h, &content, depth)
	}
	return decodePrimitive(h, &content, start)
}

// decodeConstructed assembles the elements of a constructed data value. The
// cursor is scoped to exactly the declared contents of the value, so elements
// cannot consume more bytes than declared and assembly continues until the
// declared length is exhausted.
func decodeConstructed(h header, c *cursor, depth int) (Value, error) {
	v := Value{Class: h.class, Tag: h.tag, Constructed: true}
	switch h.tag {
	case berview.TagSequence:
		v.Kind = KindSequence
	case berview.TagSet:
		// elements keep their encoding order, duplicates are kept
		v.Kind = KindSet
	default:
		v.Kind = KindGeneric
	}
	for c.remaining() > 0 {
		child, err := decodeValue(c, depth-1)
		if err != nil {
			return Value{}, err
		}
		v.Children = append(v.Children, child)
	}
	return v, nil
}
