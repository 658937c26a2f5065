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

// Package edits contains the internal edit-script representation that the
// algorithm packages produce and that is then translated to the user facing
// API. Edits carry symbol IDs, never strings.
package edits

import "fmt"

// Kind tags a single edit operation.
//
// The constant order must match the exported editscript.Op order; the facade
// converts between the two with a plain cast.
type Kind uint8

const (
	Equal  Kind = iota // symbol present in both sequences
	Add                // symbol inserted from the new sequence
	Remove             // symbol deleted from the old sequence
)

func (k Kind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Add:
		return "add"
	case Remove:
		return "remove"
	default:
		return fmt.Sprint(uint8(k))
	}
}

// Edit is a single tagged symbol.
type Edit struct {
	Kind Kind
	Sym  int
}

// Script is an ordered edit program. Equal and Remove consume one symbol
// from the old sequence; Equal and Add emit one symbol to the new sequence.
type Script []Edit

// EqualRun appends x[start:end] as Equal edits.
func EqualRun(s Script, x []int, start, end int) Script {
	for i := start; i < end; i++ {
		s = append(s, Edit{Equal, x[i]})
	}
	return s
}

// AddRun appends y[start:end] as Add edits.
func AddRun(s Script, y []int, start, end int) Script {
	for i := start; i < end; i++ {
		s = append(s, Edit{Add, y[i]})
	}
	return s
}

// RemoveRun appends x[start:end] as Remove edits.
func RemoveRun(s Script, x []int, start, end int) Script {
	for i := start; i < end; i++ {
		s = append(s, Edit{Remove, x[i]})
	}
	return s
}
