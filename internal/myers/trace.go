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
	"slices"

	"zev.io/editscript/internal/edits"
)

// Precise runs the classic forward O(ND) search over the region and
// reconstructs a shortest edit script by backtracking through a snapshot of
// the v-array per d. Memory is O((N+M)²) in the worst case, so callers must
// keep regions small; the driver gates it behind the quick-diff threshold.
//
// The region must be valid; callers validate before descending here.
func Precise(x, y []int, smin, smax, tmin, tmax int) edits.Script {
	// Region-relative coordinates throughout: (0,0) to (N,M).
	N, M := smax-smin, tmax-tmin
	if N == 0 && M == 0 {
		return nil
	}

	limit := N + M
	v0 := limit // offset translating k in [-limit, limit] to a buffer index
	v := make([]int, 2*limit+1)
	trace := make([][]int, 0, limit+1)

	D, done := 0, false
search:
	for d := 0; d <= limit; d++ {
		// Snapshot the (d-1)-state; the backtracking step for round d needs
		// the neighbor endpoints the round-d decision was based on.
		trace = append(trace, slices.Clone(v))
		for k := -d; k <= d; k += 2 {
			// A vertical step (add) extends diagonal k+1, a horizontal step
			// (remove) extends k-1. Ties prefer the horizontal step,
			// prioritizing removes over adds.
			var s int
			if k == -d || (k != d && v[v0+k-1] < v[v0+k+1]) {
				s = v[v0+k+1]
			} else {
				s = v[v0+k-1] + 1
			}
			t := s - k
			for s < N && t < M && x[smin+s] == y[tmin+t] {
				s++
				t++
			}
			v[v0+k] = s
			if s >= N && t >= M {
				D, done = d, true
				break search
			}
		}
	}
	if !done {
		// Unreachable: a (N+M)-path always exists.
		panic("editscript/internal/myers: no d-path found")
	}

	// Backtrack from (N,M) through the snapshots, collecting edits in
	// reverse.
	rev := make(edits.Script, 0, limit)
	s, t := N, M
	for d := D; d > 0; d-- {
		vd := trace[d]
		k := s - t
		var pk int
		if k == -d || (k != d && vd[v0+k-1] < vd[v0+k+1]) {
			pk = k + 1
		} else {
			pk = k - 1
		}
		ps := vd[v0+pk]
		pt := ps - pk

		// Diagonal run back to the edit that started it.
		for s > ps && t > pt {
			rev = append(rev, edits.Edit{Kind: edits.Equal, Sym: x[smin+s-1]})
			s--
			t--
		}
		if pk == k+1 {
			rev = append(rev, edits.Edit{Kind: edits.Add, Sym: y[tmin+t-1]})
			t--
		} else {
			rev = append(rev, edits.Edit{Kind: edits.Remove, Sym: x[smin+s-1]})
			s--
		}
	}
	// Leading diagonal run of the 0-path.
	for s > 0 && t > 0 {
		rev = append(rev, edits.Edit{Kind: edits.Equal, Sym: x[smin+s-1]})
		s--
		t--
	}

	slices.Reverse(rev)
	return rev
}
