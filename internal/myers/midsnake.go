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

import "math"

// Snake is a maximal matching diagonal run inside a region, in
// region-relative coordinates: x[smin+X : smin+U] == y[tmin+Y : tmin+V]
// with U-X == V-Y.
type Snake struct {
	X, Y, U, V int
}

// Len returns the number of matching symbols covered by the snake.
func (s Snake) Len() int { return s.U - s.X }

// Scratch holds the two v-arrays for the bidirectional search. The buffers
// are grown on demand and retained across calls, so a single Scratch
// amortizes allocations over a whole recursive diff. A Scratch must not be
// shared between concurrent diffs.
type Scratch struct {
	vf, vb []int
}

// ensure grows both buffers to at least n entries.
func (sc *Scratch) ensure(n int) {
	if cap(sc.vf) < n {
		sc.vf = make([]int, n)
		sc.vb = make([]int, n)
	}
	sc.vf = sc.vf[:cap(sc.vf)]
	sc.vb = sc.vb[:cap(sc.vb)]
}

// Middle finds a middle snake for the region (smin..smax, tmin..tmax) using
// a bidirectional furthest-reaching search with two scratch buffers.
//
// It reports false for empty or invalid regions and in the (theoretically
// impossible) case that the frontiers never overlap; callers fall back to a
// heuristic in that case. A returned snake may have length zero when the
// optimal path has no diagonal run at its middle.
func Middle(x, y []int, smin, smax, tmin, tmax int, sc *Scratch) (Snake, bool) {
	if smin < 0 || tmin < 0 || smin > smax || tmin > tmax || smax > len(x) || tmax > len(y) {
		return Snake{}, false
	}
	N, M := smax-smin, tmax-tmin
	if N == 0 || M == 0 {
		return Snake{}, false
	}

	// Bounds for k. Since t = s - k, k ranges over [smin-tmax, smax-tmin].
	kmin, kmax := smin-tmax, smax-tmin

	// All diagonals are numbered with consistent absolute k's by centering
	// the forward and backward searches around different midpoints; overlap
	// checks then need no k conversion.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	sc.ensure(2*(N+M) + 3)
	vf, vb := sc.vf, sc.vb
	// Offset translating k into a buffer index, leaving one border slot on
	// each side.
	v0 := (N + M) + 1 - kmin

	// The optimal path length is odd or even as N-M is odd or even; this
	// decides which pass checks for overlap.
	odd := (N-M)%2 != 0

	vf[v0+fmid] = smin
	vb[v0+bmid] = smax
	for d := 1; d <= N+M; d++ {
		// Forward pass. Tighten the k range to the grid and seed the border
		// slots so the loop body needs no boundary special cases.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0

			// Extend the better of the neighboring (d-1)-paths: a vertical
			// step from k+1 or a horizontal step from k-1. Ties prefer the
			// horizontal step, prioritizing removes over adds.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			s0, t0 := s, t
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return Snake{s0 - smin, t0 - tmin, s - smin, t - tmin}, true
			}
		}

		// Backward pass, mirrored.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s0, t0 := s, t
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return Snake{s - smin, t - tmin, s0 - smin, t0 - tmin}, true
			}
		}
	}
	return Snake{}, false
}
