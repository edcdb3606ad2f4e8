// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"codello.dev/berview"
)

// header holds the identifier and length octets of a data value in decoded
// form.
type header struct {
	class       berview.Class
	tag         berview.Tag
	constructed bool
	length      int // length of the contents in bytes
}

// decodeHeader decodes the identifier and length octets of the data value
// beginning at the cursor position and advances c past them. decodeHeader
// guarantees that the declared length fits within the remaining region of c.
func decodeHeader(c *cursor) (header, error) {
	start := c.off
	b, err := c.take(2) // the identifier octet and at least one length octet
	if err != nil {
		return header{}, err
	}

	h := header{
		class:       berview.Class(b[0] >> 6),
		tag:         berview.Tag(b[0] & 0x1f),
		constructed: b[0]&0x20 == 0x20,
	}
	if !h.tag.IsValid() {
		return header{}, &DecodeError{Offset: start, Err: ErrLongTag}
	}

	var length int64
	switch l := b[1]; {
	case l&0x80 == 0:
		// short form
		length = int64(l)
	case l == 0x80:
		return header{}, &DecodeError{Offset: start, Err: ErrIndefiniteLength}
	default:
		// long form, up to 4 big-endian length octets
		n := int(l & 0x7f)
		if n > 4 {
			return header{}, &DecodeError{Offset: start, Msg: "length encoded in more than 4 octets", Err: ErrInvalidLength}
		}
		lb, err := c.take(n)
		if err != nil {
			return header{}, err
		}
		for _, o := range lb {
			length = length<<8 | int64(o)
		}
	}
	if length > int64(c.remaining()) {
		return header{}, &DecodeError{Offset: c.off, Err: ErrUnexpectedEOF}
	}
	h.length = int(length)
	return h, nil
}
