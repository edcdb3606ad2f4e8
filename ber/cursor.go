// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

// A cursor is a bounds-checked read head over a region of the input buffer.
// All reads performed during decoding go through [cursor.take], so a cursor
// can never read outside the region it was created for. The data slice always
// spans the entire input so that offsets reported in errors are absolute.
type cursor struct {
	data []byte // the entire input buffer
	off  int    // current read position
	end  int    // position after the last readable byte
}

func newCursor(data []byte) cursor {
	return cursor{data: data, end: len(data)}
}

// remaining returns the number of unread bytes in the region of c.
func (c *cursor) remaining() int {
	return c.end - c.off
}

// take consumes the next n bytes and returns them as a view into the input
// buffer. If fewer than n bytes remain, take fails with [ErrUnexpectedEOF]
// without advancing.
func (c *cursor) take(n int) ([]byte, error) {
	if c.end-c.off < n {
		return nil, &DecodeError{Offset: c.off, Err: ErrUnexpectedEOF}
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

// child carves out a new cursor scoped to exactly the next n bytes and
// advances c past them. The child cannot read beyond its n bytes. If fewer
// than n bytes remain in c, child fails with [ErrUnexpectedEOF] without
// advancing.
func (c *cursor) child(n int) (cursor, error) {
	if c.end-c.off < n {
		return cursor{}, &DecodeError{Offset: c.off, Err: ErrUnexpectedEOF}
	}
	sub := cursor{data: c.data, off: c.off, end: c.off + n}
	c.off += n
	return sub, nil
}
