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

// Package textdiff is a line-oriented front end for the engine: it splits
// two texts into lines, diffs them, and renders the resulting edit script.
package textdiff

import (
	"strings"

	"zev.io/editscript"
)

const (
	prefixEqual  = " "
	prefixRemove = "-"
	prefixAdd    = "+"
)

// Script compares the lines of x and y and renders the edit script with a
// one-character prefix per line: space for equal, "-" for removed, "+" for
// added.
//
// All engine options are supported; see [zev.io/editscript].
func Script(x, y string, opts ...editscript.Option) (string, error) {
	ops, err := editscript.New().Diff(splitLines(x), splitLines(y), false, opts...)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, op := range ops {
		switch op.Op {
		case editscript.Equal:
			b.WriteString(prefixEqual)
		case editscript.Remove:
			b.WriteString(prefixRemove)
		case editscript.Add:
			b.WriteString(prefixAdd)
		}
		b.WriteString(op.Text)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// splitLines splits text on newlines, dropping the empty element a trailing
// newline would otherwise produce.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
