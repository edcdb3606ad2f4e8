// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cert extracts summary information from X.509 certificates using the
// schemaless decoder in package ber. The certificate shape is validated only
// as far as the summary fields reach and no cryptographic verification is
// performed. For full X.509 handling use [crypto/x509]; this package exists
// to inspect certificates that crypto/x509 rejects.
package cert

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"

	"codello.dev/berview"
	"codello.dev/berview/ber"
)

// Summary holds the fields extracted from an X.509 certificate.
type Summary struct {
	Version            int // 1, 2 or 3
	SerialNumber       *big.Int
	SignatureAlgorithm berview.ObjectIdentifier
	Issuer             Name
	Subject            Name
	NotBefore          time.Time
	NotAfter           time.Time
	PublicKeyAlgorithm berview.ObjectIdentifier
}

// Name is a distinguished name, a sequence of attribute type and value pairs
// in encoding order.
type Name []Attribute

// Attribute is a single attribute of a distinguished name.
type Attribute struct {
	Type  berview.ObjectIdentifier
	Value string
}

var oidCommonName = berview.ObjectIdentifier{2, 5, 4, 3}

// CommonName returns the value of the first commonName attribute of n, or ""
// if n has none.
func (n Name) CommonName() string {
	for _, attr := range n {
		if attr.Type.Equal(oidCommonName) {
			return attr.Value
		}
	}
	return ""
}

// attrShort contains the RFC 4514 short names of common attribute types.
var attrShort = map[string]string{
	"2.5.4.3":                    "CN",
	"2.5.4.5":                    "SERIALNUMBER",
	"2.5.4.6":                    "C",
	"2.5.4.7":                    "L",
	"2.5.4.8":                    "ST",
	"2.5.4.9":                    "STREET",
	"2.5.4.10":                   "O",
	"2.5.4.11":                   "OU",
	"1.2.840.113549.1.9.1":       "E",
	"0.9.2342.19200300.100.1.25": "DC",
}

// String renders n in a format similar to the one used by OpenSSL, e.g.
// "C=DE, O=Example, CN=example.com". Attribute types without a short name are
// identified by their dotted OID.
func (n Name) String() string {
	var sb strings.Builder
	for i, attr := range n {
		if i > 0 {
			sb.WriteString(", ")
		}
		key := attrShort[attr.Type.String()]
		if key == "" {
			key = attr.Type.String()
		}
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(attr.Value)
	}
	return sb.String()
}

// Parse decodes der as an X.509 certificate and extracts its summary fields.
func Parse(der []byte) (*Summary, error) {
	root, err := ber.Parse(der)
	if err != nil {
		return nil, fmt.Errorf("parsing certificate: %w", err)
	}
	if root.Kind != ber.KindSequence || len(root.Children) != 3 {
		return nil, errors.New("not an X.509 certificate")
	}
	tbs := root.Children[0]
	if tbs.Kind != ber.KindSequence {
		return nil, fmt.Errorf("tbsCertificate: expected SEQUENCE, found %v", tbs.Kind)
	}

	sum := &Summary{Version: 1}
	fields := tbs.Children
	if len(fields) > 0 && fields[0].Class == berview.ClassContextSpecific && fields[0].Tag == 0 && fields[0].Constructed {
		version := fields[0]
		if len(version.Children) != 1 || version.Children[0].Kind != ber.KindInteger {
			return nil, errors.New("tbsCertificate: malformed version")
		}
		sum.Version = int(version.Children[0].Int) + 1
		fields = fields[1:]
	}
	if len(fields) < 6 {
		return nil, errors.New("tbsCertificate: too few fields")
	}

	serial := fields[0]
	if serial.Kind != ber.KindInteger && serial.Kind != ber.KindBigInt {
		return nil, fmt.Errorf("serialNumber: expected INTEGER, found %v", serial.Kind)
	}
	sum.SerialNumber = serial.BigInt()

	if sum.SignatureAlgorithm, err = algorithmOID(fields[1]); err != nil {
		return nil, fmt.Errorf("signature: %w", err)
	}
	if sum.Issuer, err = parseName(fields[2]); err != nil {
		return nil, fmt.Errorf("issuer: %w", err)
	}
	if sum.NotBefore, sum.NotAfter, err = parseValidity(fields[3]); err != nil {
		return nil, fmt.Errorf("validity: %w", err)
	}
	if sum.Subject, err = parseName(fields[4]); err != nil {
		return nil, fmt.Errorf("subject: %w", err)
	}
	spki := fields[5]
	if spki.Kind != ber.KindSequence || len(spki.Children) < 2 {
		return nil, errors.New("subjectPublicKeyInfo: expected SEQUENCE")
	}
	if sum.PublicKeyAlgorithm, err = algorithmOID(spki.Children[0]); err != nil {
		return nil, fmt.Errorf("subjectPublicKeyInfo: %w", err)
	}
	return sum, nil
}

// algorithmOID extracts the algorithm from an AlgorithmIdentifier structure.
// Algorithm parameters are ignored.
func algorithmOID(v ber.Value) (berview.ObjectIdentifier, error) {
	if v.Kind != ber.KindSequence || len(v.Children) == 0 || v.Children[0].Kind != ber.KindOID {
		return nil, errors.New("expected AlgorithmIdentifier")
	}
	oid, err := v.Children[0].OID()
	if err != nil {
		return nil, fmt.Errorf("algorithm: %w", err)
	}
	return oid, nil
}

// parseName flattens an RDNSequence into its attributes. Multi-valued RDNs
// contribute their attributes in encoding order.
func parseName(v ber.Value) (Name, error) {
	if v.Kind != ber.KindSequence {
		return nil, fmt.Errorf("expected RDNSequence, found %v", v.Kind)
	}
	name := make(Name, 0, len(v.Children))
	for _, rdn := range v.Children {
		if rdn.Kind != ber.KindSet {
			return nil, fmt.Errorf("expected SET, found %v", rdn.Kind)
		}
		for _, atv := range rdn.Children {
			if atv.Kind != ber.KindSequence || len(atv.Children) != 2 || atv.Children[0].Kind != ber.KindOID {
				return nil, errors.New("malformed AttributeTypeAndValue")
			}
			typ, err := atv.Children[0].OID()
			if err != nil {
				return nil, fmt.Errorf("attribute type: %w", err)
			}
			name = append(name, Attribute{Type: typ, Value: attributeString(atv.Children[1])})
		}
	}
	return name, nil
}

func parseValidity(v ber.Value) (notBefore, notAfter time.Time, err error) {
	if v.Kind != ber.KindSequence || len(v.Children) != 2 ||
		v.Children[0].Kind != ber.KindTime || v.Children[1].Kind != ber.KindTime {
		return time.Time{}, time.Time{}, errors.New("expected a SEQUENCE of two times")
	}
	return v.Children[0].Time, v.Children[1].Time, nil
}

// attributeString renders an attribute value. String kinds are used directly.
// String types the decoder does not interpret, e.g. IA5String or T61String,
// are used as-is if their bytes are valid UTF-8. Anything else is rendered in
// hex, prefixed with # in the manner of RFC 4514.
func attributeString(v ber.Value) string {
	switch {
	case v.Kind == ber.KindString:
		return v.Str
	case v.Kind == ber.KindGeneric && !v.Constructed && utf8.Valid(v.Bytes):
		return string(v.Bytes)
	default:
		return fmt.Sprintf("#%X", v.Bytes)
	}
}
