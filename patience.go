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

import "sort"

// patienceDiff aligns the two windows on symbols that occur exactly once on
// both sides, in the style of patience diff: the longest increasing
// subsequence of those unique pairs forms a chain of length-1 anchors, and
// the strategy recurses between them. Regions without unique pairs fall
// back to the local structural processing of preserveStructure.
func patienceDiff(h *Handle, x, y []int, sx, sy Span, cfg *Config, debug bool) ([]Edit, error) {
	return patienceRegion(h, x, y, sx, sy, cfg), nil
}

func patienceRegion(h *Handle, x, y []int, sx, sy Span, cfg *Config) []Edit {
	switch {
	case sx.Len() == 0 && sy.Len() == 0:
		return nil
	case sx.Len() == 0:
		return h.AddRun(y, sy)
	case sy.Len() == 0:
		return h.RemoveRun(x, sx)
	}

	anchors := longestUniqueChain(uniquePairs(x, y, sx, sy))
	if len(anchors) == 0 {
		return localStructure(h, x, y, sx, sy, cfg)
	}

	var out []Edit
	oldPos, newPos := sx.Start, sy.Start
	for _, p := range anchors {
		out = append(out, patienceRegion(h, x, y, Span{oldPos, p.old}, Span{newPos, p.new}, cfg)...)
		out = append(out, Edit{Op: Equal, Sym: x[p.old]})
		oldPos, newPos = p.old+1, p.new+1
	}
	return append(out, patienceRegion(h, x, y, Span{oldPos, sx.End}, Span{newPos, sy.End}, cfg)...)
}

// uniquePair is a symbol occurring exactly once in each window, identified
// by its two positions.
type uniquePair struct {
	old, new int
}

// uniquePairs returns the pairs of positions of symbols that occur exactly
// once in both windows, ordered by old position.
func uniquePairs(x, y []int, sx, sy Span) []uniquePair {
	type occurrence struct {
		oldCount, newCount int
		oldPos, newPos     int
	}
	occ := make(map[int]*occurrence, sx.Len())
	for i := sx.Start; i < sx.End; i++ {
		o := occ[x[i]]
		if o == nil {
			o = &occurrence{}
			occ[x[i]] = o
		}
		o.oldCount++
		o.oldPos = i
	}
	for i := sy.Start; i < sy.End; i++ {
		o := occ[y[i]]
		if o == nil {
			continue
		}
		o.newCount++
		o.newPos = i
	}

	var pairs []uniquePair
	for i := sx.Start; i < sx.End; i++ {
		if o := occ[x[i]]; o.oldCount == 1 && o.newCount == 1 {
			pairs = append(pairs, uniquePair{old: o.oldPos, new: o.newPos})
		}
	}
	return pairs
}

// longestUniqueChain computes the longest subsequence of pairs that is
// strictly increasing in new position, by patience sorting with predecessor
// pointers. The input must be sorted by old position.
func longestUniqueChain(pairs []uniquePair) []uniquePair {
	if len(pairs) == 0 {
		return nil
	}
	// tails[k] is the index of the pair with the smallest new position that
	// ends an increasing subsequence of length k+1.
	var tails []int
	prev := make([]int, len(pairs))
	for i, p := range pairs {
		k := sort.Search(len(tails), func(k int) bool {
			return pairs[tails[k]].new >= p.new
		})
		if k > 0 {
			prev[i] = tails[k-1]
		} else {
			prev[i] = -1
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}

	out := make([]uniquePair, len(tails))
	i := len(tails) - 1
	for j := tails[len(tails)-1]; j >= 0; j = prev[j] {
		out[i] = pairs[j]
		i--
	}
	return out
}
