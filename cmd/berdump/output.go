// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
)

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	s := string(data) + "\n"
	if isTerminal() {
		return quick.Highlight(os.Stdout, s, "json", "terminal256", "monokai")
	}
	fmt.Print(s)
	return nil
}

// printKeyValue renders key-value pairs with bold labels when on a terminal.
func printKeyValue(fn func(w io.Writer)) error {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fn(w)
	w.Flush()

	output := buf.String()
	if isTerminal() {
		output = colorizeLabels(output)
	}
	_, err := fmt.Print(output)
	return err
}

func colorizeLabels(s string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	var out strings.Builder
	for _, line := range lines {
		if label, rest, ok := splitAtGap(line); ok {
			out.WriteString(ansiBold)
			out.WriteString(label)
			out.WriteString(ansiReset)
			out.WriteString(rest)
		} else {
			out.WriteString(line)
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// splitAtGap finds the first occurrence of 2+ consecutive spaces in a line,
// splitting it into the label part and the rest (including the gap).
func splitAtGap(line string) (label, rest string, ok bool) {
	for i := 0; i < len(line)-1; i++ {
		if line[i] == ' ' && line[i+1] == ' ' {
			return line[:i], line[i:], true
		}
	}
	return "", "", false
}
