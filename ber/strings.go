// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"unicode/utf8"

	"codello.dev/berview"
)

// validString reports whether b is valid in the character set implied by tag.
// Tags without a restricted character set are always valid.
func validString(tag berview.Tag, b []byte) bool {
	switch tag {
	case berview.TagUTF8String:
		return utf8.Valid(b)
	case berview.TagNumericString:
		for i := 0; i < len(b); i++ {
			if !isNumeric(b[i]) {
				return false
			}
		}
	case berview.TagPrintableString:
		for i := 0; i < len(b); i++ {
			if !isPrintable(b[i]) {
				return false
			}
		}
	}
	return true
}

// isNumeric reports whether b can appear in an ASN.1 NumericString.
func isNumeric(b byte) bool {
	return '0' <= b && b <= '9' || b == ' '
}

// isPrintable reports whether b is in the ASN.1 PrintableString set.
func isPrintable(b byte) bool {
	return 'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9' ||
		'\'' <= b && b <= ')' ||
		'+' <= b && b <= '/' ||
		b == ' ' ||
		b == ':' ||
		b == '=' ||
		b == '?' ||
		// This is technically not allowed in a PrintableString.
		// However, x509 certificates with wildcard strings don't
		// always use the correct string type so we permit it.
		b == '*' ||
		// This is not technically allowed either. However, not
		// only is it relatively common, but there are also a
		// handful of CA certificates that contain it. At least
		// one of which will not expire until 2027.
		b == '&'
}
