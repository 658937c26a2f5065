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

// Package corridor implements a linear-time greedy diff walker.
//
// The walker moves two cursors through a region and decides locally whether
// to emit an equal, add or remove edit. It is restricted to a band of
// diagonals (the corridor) around the starting diagonal; drifting outside
// the band forces a corrective edit. The output is a valid edit script for
// the region but carries no optimality guarantee. It is the fallback for
// regions where the precise algorithm would be too expensive.
package corridor

import "zev.io/editscript/internal/edits"

// Params are the walker's tuning knobs, taken from the resolved engine
// configuration.
type Params struct {
	// Lookahead is the maximum forward scan for a companion symbol.
	Lookahead int
	// Width is the maximum deviation from the starting diagonal.
	Width int
}

const (
	// rarityScanLimit caps the occurrence count when classifying a symbol's
	// rarity in the remaining region.
	rarityScanLimit = 4
	// rarityMaxCount is the occurrence count at or below which a symbol
	// counts as rare.
	rarityMaxCount = 3

	// A region whose sides are this lopsided is not worth walking at all.
	pathologicalRatio   = 100
	pathologicalMinSize = 500
)

// Walk emits an edit script transforming x[smin:smax] into y[tmin:tmax].
//
// Walk always terminates within N+M+100 iterations. When it detects that it
// is stuck or over budget, it flushes the remainders as pure removes
// followed by pure adds.
func Walk(x, y []int, smin, smax, tmin, tmax int, p Params) edits.Script {
	N, M := smax-smin, tmax-tmin
	if N <= 0 && M <= 0 {
		return nil
	}

	var out edits.Script

	// Lopsided regions degenerate into corridor corrections anyway, skip
	// the walk and flush directly.
	if lo := min(N, M); lo > 0 && max(N, M)/lo > pathologicalRatio && N+M > pathologicalMinSize {
		out = edits.RemoveRun(out, x, smin, smax)
		out = edits.AddRun(out, y, tmin, tmax)
		return out
	}

	maxIterations := N + M + 100
	stallLimit := max(50, maxIterations/10)
	width := min(p.Width, max(10, (N+M)/100))
	lookahead := min(p.Lookahead, max(5, (N+M)/200))

	d0 := tmin - smin
	s, t := smin, tmin
	lastProgress := 0
	for iter := 0; ; iter++ {
		if s >= smax && t >= tmax {
			return out
		}
		if iter >= maxIterations || iter-lastProgress > stallLimit {
			// Stuck or over budget: flush the rest and terminate cleanly.
			out = edits.RemoveRun(out, x, s, smax)
			out = edits.AddRun(out, y, t, tmax)
			return out
		}
		// Every branch below advances a cursor.
		lastProgress = iter

		if s >= smax {
			out = append(out, edits.Edit{Kind: edits.Add, Sym: y[t]})
			t++
			continue
		}
		if t >= tmax {
			out = append(out, edits.Edit{Kind: edits.Remove, Sym: x[s]})
			s++
			continue
		}
		if x[s] == y[t] {
			out = append(out, edits.Edit{Kind: edits.Equal, Sym: x[s]})
			s++
			t++
			continue
		}

		// Pull back into the corridor before anything else.
		diag := t - s
		if diag-d0 > width {
			out = append(out, edits.Edit{Kind: edits.Remove, Sym: x[s]})
			s++
			continue
		}
		if d0-diag > width {
			out = append(out, edits.Edit{Kind: edits.Add, Sym: y[t]})
			t++
			continue
		}

		// Look for each side's current symbol in the other side's near
		// future. Finding x[s] ahead in y means the tokens before it in y
		// are insertions; symmetrically for y[t] in x.
		distInY := scanAhead(y, t, min(tmax, t+1+lookahead), x[s])
		distInX := scanAhead(x, s, min(smax, s+1+lookahead), y[t])
		switch {
		case distInY > 0 && distInX == 0:
			out = append(out, edits.Edit{Kind: edits.Add, Sym: y[t]})
			t++
			continue
		case distInX > 0 && distInY == 0:
			out = append(out, edits.Edit{Kind: edits.Remove, Sym: x[s]})
			s++
			continue
		case distInY > 0 && distInX > 0:
			if distInY < distInX {
				out = append(out, edits.Edit{Kind: edits.Add, Sym: y[t]})
				t++
			} else {
				out = append(out, edits.Edit{Kind: edits.Remove, Sym: x[s]})
				s++
			}
			continue
		}

		// Neither symbol shows up nearby. Keep the rarer one: rare symbols
		// are more likely to be meaningful alignment points later.
		oldRare := countCapped(x, s, smax, x[s]) <= rarityMaxCount
		newRare := countCapped(y, t, tmax, y[t]) <= rarityMaxCount
		switch {
		case oldRare && !newRare:
			out = append(out, edits.Edit{Kind: edits.Add, Sym: y[t]})
			t++
		case newRare && !oldRare:
			out = append(out, edits.Edit{Kind: edits.Remove, Sym: x[s]})
			s++
		default:
			// Last resort: consume from the longer remainder.
			if smax-s >= tmax-t {
				out = append(out, edits.Edit{Kind: edits.Remove, Sym: x[s]})
				s++
			} else {
				out = append(out, edits.Edit{Kind: edits.Add, Sym: y[t]})
				t++
			}
		}
	}
}

// scanAhead returns the distance (≥ 1) from pos to the first occurrence of
// sym in seq[pos+1:end), or 0 if absent.
func scanAhead(seq []int, pos, end int, sym int) int {
	for i := pos + 1; i < end; i++ {
		if seq[i] == sym {
			return i - pos
		}
	}
	return 0
}

// countCapped counts occurrences of sym in seq[pos:end), stopping at
// rarityScanLimit.
func countCapped(seq []int, pos, end int, sym int) int {
	n := 0
	for i := pos; i < end && n < rarityScanLimit; i++ {
		if seq[i] == sym {
			n++
		}
	}
	return n
}
