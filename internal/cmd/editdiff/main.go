// Copyright 2026 The editscript Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// editdiff diffs two files line by line and prints the edit script. It is a
// development tool, not a supported interface.
//
// Usage:
//
//	editdiff [-strategy name] [-debug] old new
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"zev.io/editscript"
)

func main() {
	strategy := flag.String("strategy", editscript.StrategyCommonSES, "strategy to use")
	debug := flag.Bool("debug", false, "enable diagnostic tracing")
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: editdiff [-strategy name] [-debug] old new")
		os.Exit(2)
	}

	old, err := readLines(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "editdiff:", err)
		os.Exit(2)
	}
	new, err := readLines(flag.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, "editdiff:", err)
		os.Exit(2)
	}

	ops, err := editscript.New().Diff(old, new, *debug, editscript.Strategy(*strategy))
	if err != nil {
		fmt.Fprintln(os.Stderr, "editdiff:", err)
		os.Exit(2)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	changed := false
	for _, op := range ops {
		switch op.Op {
		case editscript.Equal:
			fmt.Fprintf(w, " %s\n", op.Text)
		case editscript.Remove:
			fmt.Fprintf(w, "-%s\n", op.Text)
			changed = true
		case editscript.Add:
			fmt.Fprintf(w, "+%s\n", op.Text)
			changed = true
		}
	}
	if changed {
		w.Flush()
		os.Exit(1)
	}
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
