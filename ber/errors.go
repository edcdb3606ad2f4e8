// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"io"
	"strconv"
)

// These are the conditions under which decoding can fail. Every error returned
// by [Parse], [ContentLength] or [Content] is a [*DecodeError] wrapping one of
// these sentinel values, so they can be tested for using [errors.Is].
var (
	// ErrUnexpectedEOF indicates that the input ended in the middle of a data
	// value, either because the buffer is truncated or because a declared
	// length exceeds its enclosing scope. It is an alias for
	// [io.ErrUnexpectedEOF].
	ErrUnexpectedEOF = io.ErrUnexpectedEOF

	// ErrLongTag indicates a tag encoded in the multi-byte tag format, which
	// this decoder does not support.
	ErrLongTag = errors.New("unsupported multi-byte tag")

	// ErrIndefiniteLength indicates a data value using the indefinite length
	// form, which this decoder does not support.
	ErrIndefiniteLength = errors.New("unsupported indefinite length")

	// ErrInvalidLength indicates a length that is impossible or not allowed
	// for the type being decoded.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidBitString indicates a malformed BIT STRING encoding.
	ErrInvalidBitString = errors.New("invalid BIT STRING encoding")

	// ErrInvalidString indicates a string containing bytes that are not valid
	// in the character set of its tag.
	ErrInvalidString = errors.New("invalid characters in string")

	// ErrInvalidTime indicates a UTCTime or GeneralizedTime value that does
	// not match the required time format.
	ErrInvalidTime = errors.New("invalid time encoding")

	// ErrTooDeep indicates that constructed values were nested more deeply
	// than the configured [Parser.MaxDepth].
	ErrTooDeep = errors.New("maximum nesting depth exceeded")
)

// A DecodeError describes malformed input encountered during decoding. The
// error value contains the location of the error within the input.
type DecodeError struct {
	requireKeyedLiterals
	nonComparable

	// Err is the reason decoding failed, one of the sentinel errors of this
	// package. It is returned by Unwrap, so the chain is visible to errors.Is.
	Err error

	// Offset is the location of the error, counted in bytes from the
	// beginning of the input. The location is usually the start of the data
	// value containing the malformed bytes.
	Offset int

	// Msg optionally carries detail beyond the sentinel in Err.
	Msg string
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Error() string {
	b := make([]byte, 0, 48)
	b = append(b, "ber: offset "...)
	b = strconv.AppendInt(b, int64(e.Offset), 10)
	b = append(b, ": "...)
	if e.Msg != "" {
		b = append(b, e.Msg...)
	} else if e.Err != nil {
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}
