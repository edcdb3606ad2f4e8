// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"codello.dev/berview/ber"
	"codello.dev/berview/dump"
)

var maxDepthFlag int

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Show the structure of a BER encoded file",
		Long:  "Dump decodes the given file, or standard input if file is \"-\",\nand renders the decoded structure. PEM input is detected and\ndecoded automatically.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			v, err := ber.Parser{MaxDepth: maxDepthFlag}.Parse(data)
			if err != nil {
				return err
			}

			switch outputFlag {
			case "text":
				return dump.Text(os.Stdout, v)
			case "json":
				return printJSON(dump.FromValue(v))
			case "cbor":
				out, err := dump.CBOR(v)
				if err != nil {
					return err
				}
				if isTerminal() {
					slog.Warn("writing binary CBOR to a terminal")
				}
				_, err = os.Stdout.Write(out)
				return err
			default:
				return fmt.Errorf("unknown output format: %s", outputFlag)
			}
		},
	}
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text", "output format: text, json, cbor")
	cmd.Flags().IntVar(&maxDepthFlag, "max-depth", 0, "maximum nesting depth, 0 uses the default")
	return cmd
}
