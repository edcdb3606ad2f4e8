// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dump renders decoded value trees for humans and machines. [Text]
// writes an indented rendering similar to the output of openssl asn1parse.
// [JSON] and [CBOR] marshal a [Node] tree, a stable representation intended
// for consumption by other tools.
package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"

	"codello.dev/berview"
	"codello.dev/berview/ber"
	"codello.dev/berview/internal/oids"
)

// Node is the exportable form of a single decoded data value. Exactly the
// payload fields applicable to the value's kind are set, all other payload
// fields are omitted from the output.
type Node struct {
	Class string `json:"class"`
	Tag   uint8  `json:"tag"`
	Type  string `json:"type,omitempty"` // the universal tag name, if the class is universal
	Kind  string `json:"kind"`

	Bool     *bool      `json:"bool,omitempty"`
	Integer  string     `json:"integer,omitempty"` // decimal, any size
	Bits     int        `json:"bits,omitempty"`
	Bytes    []byte     `json:"bytes,omitempty"`
	Str      string     `json:"string,omitempty"`
	Time     *time.Time `json:"time,omitempty"`
	OID      string     `json:"oid,omitempty"`
	Name     string     `json:"name,omitempty"` // well-known name of the OID, if any
	Children []Node     `json:"children,omitempty"`
}

// FromValue converts a decoded value tree into its exportable form.
func FromValue(v ber.Value) Node {
	n := Node{
		Class: v.Class.String(),
		Tag:   uint8(v.Tag),
		Kind:  v.Kind.String(),
	}
	if v.Class == berview.ClassUniversal {
		n.Type = v.Tag.String()
	}
	switch v.Kind {
	case ber.KindBoolean:
		n.Bool = &v.Bool
	case ber.KindInteger, ber.KindBigInt:
		n.Integer = v.BigInt().String()
	case ber.KindBitString:
		n.Bits = v.BitLength
		n.Bytes = v.Bytes
	case ber.KindOctetString, ber.KindGeneric:
		n.Bytes = v.Bytes
	case ber.KindOID:
		if oid, err := v.OID(); err == nil {
			n.OID = oid.String()
			n.Name = oids.Name(n.OID)
		} else {
			n.Bytes = v.Bytes
		}
	case ber.KindString:
		n.Str = v.Str
	case ber.KindTime:
		t := v.Time
		n.Time = &t
	}
	for _, c := range v.Children {
		n.Children = append(n.Children, FromValue(c))
	}
	return n
}

// JSON renders the tree rooted at v as indented JSON.
func JSON(v ber.Value) ([]byte, error) {
	return json.MarshalIndent(FromValue(v), "", "  ")
}

// cborMode encodes times as RFC 3339 strings so that the CBOR and JSON forms
// of a tree carry the same values.
var cborMode = func() cbor.EncMode {
	mode, err := cbor.EncOptions{Time: cbor.TimeRFC3339}.EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// CBOR renders the tree rooted at v as CBOR.
func CBOR(v ber.Value) ([]byte, error) {
	return cborMode.Marshal(FromValue(v))
}

// Text writes an indented rendering of the tree rooted at v to w. Every data
// value occupies one line: its tag, its payload in a readable form and for
// binary payloads a hex preview. Elements of constructed values are indented
// below their parent.
func Text(w io.Writer, v ber.Value) error {
	p := printer{w: w}
	p.node(v, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) node(v ber.Value, depth int) {
	p.printf("%s%s", strings.Repeat("  ", depth), label(v))
	switch v.Kind {
	case ber.KindBoolean:
		p.printf(" %t", v.Bool)
	case ber.KindInteger, ber.KindBigInt:
		p.printf(" %s", v.BigInt())
	case ber.KindBitString:
		p.printf(" (%d bits)", v.BitLength)
		if len(v.Bytes) > 0 {
			p.printf(" %s", hexPreview(v.Bytes))
		}
	case ber.KindOID:
		if oid, err := v.OID(); err == nil {
			p.printf(" %s", oid)
			if name := oids.Name(oid.String()); name != "" {
				p.printf(" (%s)", name)
			}
		} else {
			p.printf(" (invalid encoding) %s", hexPreview(v.Bytes))
		}
	case ber.KindString:
		p.printf(" %q", v.Str)
	case ber.KindTime:
		p.printf(" %s", v.Time.Format(time.RFC3339))
	case ber.KindOctetString, ber.KindGeneric:
		if !v.Constructed {
			p.printf(" (%d bytes)", len(v.Bytes))
			if len(v.Bytes) > 0 {
				p.printf(" %s", hexPreview(v.Bytes))
			}
		}
	}
	p.printf("\n")
	for _, c := range v.Children {
		p.node(c, depth+1)
	}
}

// label returns the tag of v in X.680 notation. For universal tags the name
// of the type is used, e.g. "SEQUENCE" instead of "[UNIVERSAL 16]".
func label(v ber.Value) string {
	if v.Class == berview.ClassUniversal {
		return v.Tag.String()
	}
	return berview.Ident(v.Class, v.Tag)
}

// previewLen is the number of bytes shown in hex previews.
const previewLen = 16

func hexPreview(b []byte) string {
	if len(b) > previewLen {
		return fmt.Sprintf("%X...", b[:previewLen])
	}
	return fmt.Sprintf("%X", b)
}
