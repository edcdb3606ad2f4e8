// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Berdump inspects BER and DER encoded files without a schema.
package main

import (
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	console "github.com/phsym/console-slog"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	verboseFlag bool
	outputFlag  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "berdump",
		Short: "Inspect BER and DER encoded files",
		Long:  "berdump decodes BER/DER encoded files, e.g. X.509 certificates,\nwithout a schema and shows their structure.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verboseFlag {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
				Level:      level,
				TimeFormat: time.TimeOnly,
			})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(Version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput reads the encoded input from path, or from standard input if path
// is "-". PEM input is decoded to the DER bytes of its first block.
func readInput(path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if block, _ := pem.Decode(data); block != nil {
		slog.Debug("decoded PEM input", "type", block.Type, "bytes", len(block.Bytes))
		return block.Bytes, nil
	}
	return data, nil
}
