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

// Package token maps string sequences to dense integer symbol sequences.
//
// The diff machinery compares symbols by integer equality only; the table
// produced here is used exclusively to translate results back to strings.
package token

// Table is an ordered mapping from symbol ID to the original string. IDs are
// assigned in order of first occurrence across both inputs, so identical
// strings share an ID regardless of which input they appear in.
type Table struct {
	strs []string
}

// Lookup returns the string for a symbol ID.
func (t *Table) Lookup(sym int) string {
	return t.strs[sym]
}

// Len returns the number of distinct symbols.
func (t *Table) Len() int {
	return len(t.strs)
}

// Tokenize walks both inputs once and returns their symbol sequences plus the
// shared ID table. The numeric order of IDs is arbitrary; only equality is
// meaningful.
func Tokenize(x, y []string) (xs, ys []int, table *Table) {
	ids := make(map[string]int, len(x))
	table = &Table{strs: make([]string, 0, len(x))}
	intern := func(s string) int {
		id, ok := ids[s]
		if !ok {
			id = len(table.strs)
			ids[s] = id
			table.strs = append(table.strs, s)
		}
		return id
	}
	xs = make([]int, len(x))
	for i, s := range x {
		xs[i] = intern(s)
	}
	ys = make([]int, len(y))
	for i, s := range y {
		ys[i] = intern(s)
	}
	return xs, ys, table
}
