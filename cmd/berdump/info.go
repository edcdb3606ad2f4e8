// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"codello.dev/berview"
	"codello.dev/berview/cert"
	"codello.dev/berview/internal/oids"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show summary information about an X.509 certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			sum, err := cert.Parse(data)
			if err != nil {
				return err
			}

			if outputFlag == "json" {
				return printJSON(sum)
			}
			return printKeyValue(func(w io.Writer) {
				fmt.Fprintf(w, "Subject\t%s\n", sum.Subject)
				fmt.Fprintf(w, "Subject CN\t%s\n", sum.Subject.CommonName())
				fmt.Fprintf(w, "Issuer\t%s\n", sum.Issuer)
				fmt.Fprintf(w, "Serial\t%s\n", sum.SerialNumber)
				fmt.Fprintf(w, "Version\t%d\n", sum.Version)
				fmt.Fprintf(w, "Not Before\t%s\n", sum.NotBefore.Format("2006-01-02 15:04:05"))
				fmt.Fprintf(w, "Not After\t%s\n", sum.NotAfter.Format("2006-01-02 15:04:05"))
				fmt.Fprintf(w, "Signature Algorithm\t%s\n", algorithmString(sum.SignatureAlgorithm))
				fmt.Fprintf(w, "Key Algorithm\t%s\n", algorithmString(sum.PublicKeyAlgorithm))
			})
		},
	}
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text", "output format: text, json")
	return cmd
}

// algorithmString renders an algorithm OID with its well-known name, if any.
func algorithmString(oid berview.ObjectIdentifier) string {
	dotted := oid.String()
	if name := oids.Name(dotted); name != "" {
		return fmt.Sprintf("%s (%s)", name, dotted)
	}
	return dotted
}
