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

// Package rhash implements a polynomial rolling hash over integer symbol
// windows.
//
// The hash of a window s[0:w] is
//
//	h = Σ s[i] · P^(w-1-i)  (mod M)
//
// with P = 31 and M = 10^9+9. Sliding the window by one symbol is O(1).
// Hash equality does not imply window equality; callers must re-verify
// symbol-by-symbol before trusting a match.
package rhash

const (
	// Base is the polynomial base P.
	Base = 31
	// Mod is the hash modulus M. Intermediate products stay below Mod²,
	// which fits in an int64.
	Mod = 1_000_000_009
)

// Sum computes the hash of an entire slice.
func Sum(s []int) int64 {
	var h int64
	for _, v := range s {
		h = (h*Base + int64(v)%Mod) % Mod
	}
	return h
}

// Roller maintains the hash of a fixed-size window over a sequence and
// slides it one symbol at a time.
type Roller struct {
	seq  []int
	w    int
	pos  int   // window start
	h    int64 // hash of seq[pos : pos+w]
	lead int64 // Base^(w-1) mod Mod, weight of the leading symbol
}

// NewRoller positions a window of size w at the start of seq. It reports
// false if the sequence is shorter than the window or w is not positive.
func NewRoller(seq []int, w int) (*Roller, bool) {
	if w <= 0 || len(seq) < w {
		return nil, false
	}
	lead := int64(1)
	for i := 1; i < w; i++ {
		lead = lead * Base % Mod
	}
	return &Roller{
		seq:  seq,
		w:    w,
		h:    Sum(seq[:w]),
		lead: lead,
	}, true
}

// Hash returns the hash of the current window.
func (r *Roller) Hash() int64 {
	return r.h
}

// Pos returns the start position of the current window.
func (r *Roller) Pos() int {
	return r.pos
}

// Slide advances the window by one symbol. It reports false when the window
// would run past the end of the sequence; the window is left unchanged in
// that case.
func (r *Roller) Slide() bool {
	if r.pos+r.w >= len(r.seq) {
		return false
	}
	out := int64(r.seq[r.pos]) % Mod
	in := int64(r.seq[r.pos+r.w]) % Mod
	r.h = ((r.h-out*r.lead%Mod+Mod)%Mod*Base + in) % Mod
	r.pos++
	return true
}
