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

import (
	"cmp"
	"slices"
)

// selectChain picks the non-overlapping, monotone subset of anchors with
// the greatest total covered length.
//
// Anchors are sorted by old position; best[i] is the greatest total length
// of any valid chain ending at anchor i, where anchor i may extend anchor j
// iff it starts at or after j's end in both coordinates. The chain is
// reconstructed through predecessor pointers and re-validated; a chain that
// fails validation is discarded entirely — no anchors beats a corrupt
// chain.
func selectChain(anchors []Anchor) []Anchor {
	if len(anchors) == 0 {
		return nil
	}

	as := slices.Clone(anchors)
	slices.SortStableFunc(as, func(a, b Anchor) int {
		return cmp.Compare(a.OldPos, b.OldPos)
	})

	best := make([]int, len(as))
	prev := make([]int, len(as))
	top := 0
	for i := range as {
		best[i] = as[i].Length
		prev[i] = -1
		for j := 0; j < i; j++ {
			if as[i].OldPos >= as[j].OldPos+as[j].Length &&
				as[i].NewPos >= as[j].NewPos+as[j].Length &&
				best[j]+as[i].Length > best[i] {
				best[i] = best[j] + as[i].Length
				prev[i] = j
			}
		}
		if best[i] > best[top] {
			top = i
		}
	}

	var chain []Anchor
	for i := top; i >= 0; i = prev[i] {
		chain = append(chain, as[i])
	}
	slices.Reverse(chain)

	// Every consecutive pair must leave non-negative gaps in both
	// coordinates.
	for i := 1; i < len(chain); i++ {
		p, q := chain[i-1], chain[i]
		if q.OldPos < p.OldPos+p.Length || q.NewPos < p.NewPos+p.Length {
			return nil
		}
	}
	return chain
}
