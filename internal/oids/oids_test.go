package oids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := map[string]struct {
		oid  string
		want string
	}{
		"Attribute": {"2.5.4.3", "commonName"},
		"Extension": {"2.5.29.19", "basicConstraints"},
		"Signature": {"1.2.840.10045.4.3.2", "ecdsa-with-SHA256"},
		"Curve":     {"1.3.36.3.3.2.8.1.1.7", "brainpoolP256r1"},
		"Unknown":   {"1.2.3.4.5", ""},
		"Empty":     {"", ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.oid))
		})
	}
}
