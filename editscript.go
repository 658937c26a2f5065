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

package editscript

// Op describes an edit operation.
//
//go:generate stringer -type=Op
type Op int

const (
	Equal  Op = iota // The symbol is present in both sequences.
	Add              // The symbol is inserted from the new sequence.
	Remove           // The symbol is deleted from the old sequence.
)

// Operation is a single step of an edit script as returned to callers,
// carrying the original string of the symbol it consumes or emits.
type Operation struct {
	Op   Op
	Text string
}

// Edit is a single symbol-level step of an edit script as produced by
// strategies. Sym references the engine's ID table; use [Handle.Lookup] to
// recover the string.
type Edit struct {
	Op  Op
	Sym int
}

// Span is a half-open [Start, End) window into a symbol sequence.
type Span struct {
	Start, End int
}

// Len returns the number of symbols in the span.
func (s Span) Len() int { return s.End - s.Start }

// Anchor is a verified common run old[OldPos:OldPos+Length] ==
// new[NewPos:NewPos+Length] used to partition a diff into independent
// sub-problems.
type Anchor struct {
	OldPos, NewPos int
	Length         int

	// Drift is |NewPos - OldPos|; it separates positional anchors (content
	// that stayed put) from floating anchors (content that moved).
	Drift      int
	DriftRatio float64

	// Confidence in [0, 1], computed from drift and length.
	Confidence float64
}

// Snake describes a maximal matching diagonal run inside a diff region, in
// region-relative coordinates: old[X:U] == new[Y:V] with U-X == V-Y.
type Snake struct {
	X, Y, U, V int
}

// Len returns the number of matching symbols covered by the snake.
func (s Snake) Len() int { return s.U - s.X }
