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

// Package apply replays an edit script against an old symbol sequence.
//
// This package is only for testing: it is the verification half of the
// round-trip invariant (applying a script to the old sequence must yield the
// new sequence).
package apply

import (
	"fmt"

	"zev.io/editscript/internal/edits"
)

// Symbols applies script to x and returns the resulting sequence. It reports
// an error when the script is not well formed with respect to x: an Equal or
// Remove edit whose symbol does not match the next unconsumed old symbol, or
// a script that does not consume x exactly.
func Symbols(script edits.Script, x []int) ([]int, error) {
	out := make([]int, 0, len(x))
	s := 0
	for i, e := range script {
		switch e.Kind {
		case edits.Equal:
			if s >= len(x) || x[s] != e.Sym {
				return nil, fmt.Errorf("edit %d: equal %d does not match old position %d", i, e.Sym, s)
			}
			out = append(out, e.Sym)
			s++
		case edits.Remove:
			if s >= len(x) || x[s] != e.Sym {
				return nil, fmt.Errorf("edit %d: remove %d does not match old position %d", i, e.Sym, s)
			}
			s++
		case edits.Add:
			out = append(out, e.Sym)
		default:
			return nil, fmt.Errorf("edit %d: unknown kind %v", i, e.Kind)
		}
	}
	if s != len(x) {
		return nil, fmt.Errorf("script consumed %d of %d old symbols", s, len(x))
	}
	return out, nil
}
