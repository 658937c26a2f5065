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

package myers

import (
	"zev.io/editscript/internal/corridor"
	"zev.io/editscript/internal/edits"
)

// Params configures the recursive driver.
type Params struct {
	// QuickDiffThreshold is the combined region size below which the region
	// is solved directly by the trace-based search.
	QuickDiffThreshold int
	// Corridor parameterizes the heuristic fallback.
	Corridor corridor.Params
}

// Recursive produces an edit script for the region by divide and conquer
// around middle snakes.
//
// Small regions are delegated to [Precise]; regions where no usable middle
// snake is found fall back to the corridor heuristic. Every returned snake
// is re-verified symbol by symbol before recursing: a mismatch (which would
// indicate a bug in the search) is recovered by re-running the precise
// search on the region rather than emitting a corrupt script.
//
// The region must be valid; callers validate before descending here.
func Recursive(x, y []int, smin, smax, tmin, tmax int, p Params, sc *Scratch) edits.Script {
	return recurse(nil, x, y, smin, smax, tmin, tmax, p, sc)
}

func recurse(out edits.Script, x, y []int, smin, smax, tmin, tmax int, p Params, sc *Scratch) edits.Script {
	N, M := smax-smin, tmax-tmin
	switch {
	case N == 0 && M == 0:
		return out
	case N == 0:
		return edits.AddRun(out, y, tmin, tmax)
	case M == 0:
		return edits.RemoveRun(out, x, smin, smax)
	}

	if N+M < p.QuickDiffThreshold {
		return append(out, Precise(x, y, smin, smax, tmin, tmax)...)
	}

	snake, ok := Middle(x, y, smin, smax, tmin, tmax, sc)
	if !ok || snake.Len() <= 0 {
		// No snake to divide on; the region is change-dominated. Hand the
		// whole region to the heuristic.
		return append(out, corridor.Walk(x, y, smin, smax, tmin, tmax, p.Corridor)...)
	}

	if !validSnake(x, y, smin, smax, tmin, tmax, snake) {
		return append(out, Precise(x, y, smin, smax, tmin, tmax)...)
	}

	out = recurse(out, x, y, smin, smin+snake.X, tmin, tmin+snake.Y, p, sc)
	out = edits.EqualRun(out, x, smin+snake.X, smin+snake.U)
	return recurse(out, x, y, smin+snake.U, smax, tmin+snake.V, tmax, p, sc)
}

// validSnake re-checks a snake's geometry and symbols.
func validSnake(x, y []int, smin, smax, tmin, tmax int, sn Snake) bool {
	if sn.U-sn.X != sn.V-sn.Y || sn.X < 0 || sn.Y < 0 || smin+sn.U > smax || tmin+sn.V > tmax {
		return false
	}
	for i := 0; i < sn.Len(); i++ {
		if x[smin+sn.X+i] != y[tmin+sn.Y+i] {
			return false
		}
	}
	return true
}
