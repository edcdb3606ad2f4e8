// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import "time"

// The time formats understood by the decoder, as layouts for [time.Parse].
// Both formats are fixed to seconds precision in UTC. Being constants they are
// safe for concurrent decodes.
const (
	layoutUTCTime         = "060102150405Z"   // YYMMDDHHMMSSZ
	layoutGeneralizedTime = "20060102150405Z" // YYYYMMDDHHMMSSZ
)

// parseUTCTime parses s as the seconds-precision UTC form of the ASN.1 UTCTime
// type. Two-digit years are interpreted in the range 1950 through 2049, as
// required by RFC 5280, Section 4.1.2.5.1.
func parseUTCTime(s string) (time.Time, error) {
	t, err := time.Parse(layoutUTCTime, s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Year() >= 2050 {
		t = t.AddDate(-100, 0, 0)
	}
	return t, nil
}

// parseGeneralizedTime parses s as the seconds-precision UTC form of the ASN.1
// GeneralizedTime type.
func parseGeneralizedTime(s string) (time.Time, error) {
	return time.Parse(layoutGeneralizedTime, s)
}
