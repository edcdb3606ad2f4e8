// Package oids maps well-known object identifiers to their names. The table
// covers the identifiers commonly found in X.509 certificates: distinguished
// name attributes, certificate extensions and algorithm identifiers.
package oids

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed names.yaml
var namesYAML []byte

var names = sync.OnceValue(func() map[string]string {
	m := make(map[string]string, 64)
	if err := yaml.Unmarshal(namesYAML, &m); err != nil {
		panic("oids: invalid names.yaml: " + err.Error())
	}
	return m
})

// Name returns the well-known name of the object identifier given in dotted
// notation. Identifiers not in the table yield the empty string.
func Name(oid string) string {
	return names()[oid]
}
