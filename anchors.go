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

import "zev.io/editscript/internal/rhash"

// huntScanOffsets bounds how many jump-step-sized strides beyond the
// previous fragment the hunt scans for a companion chunk.
const huntScanOffsets = 3

// anchorIndex maps chunk hashes to the ascending new-window positions the
// chunk starts at. Hash collisions are tolerated; every use re-verifies
// symbols before trusting a match.
type anchorIndex map[int64][]int

// findAnchors locates verified common runs of at least cfg.MinMatchLength
// symbols between the two windows.
//
// The search hashes every chunk position of the new window once, then scans
// the old window with stride cfg.JumpStep. Each hash hit is grown by
// hunting for consecutive companion chunks; a sufficiently confident hunt
// is verified symbol by symbol and scored by drift and length. Accepted
// anchors consume their new-side span, so later candidates cannot overlap
// them.
//
// Invalid parameter combinations yield an empty list rather than an error.
func findAnchors(x, y []int, sx, sy Span, cfg *Config) []Anchor {
	w := cfg.HuntChunkSize
	if w <= 0 || cfg.MinMatchLength < w {
		return nil
	}
	if sx.Len() < w || sy.Len() < w {
		return nil
	}

	// Index phase: hash every chunk position of the new window.
	index := make(anchorIndex, sy.Len())
	roller, ok := rhash.NewRoller(y[sy.Start:sy.End], w)
	if !ok {
		return nil
	}
	for {
		h := roller.Hash()
		index[h] = append(index[h], sy.Start+roller.Pos())
		if !roller.Slide() {
			break
		}
	}

	// used marks new-sequence positions consumed by accepted anchors.
	used := make([]bool, len(y))
	step := max(1, cfg.JumpStep)

	var anchors []Anchor
	for s := sx.Start; s+w <= sx.End; {
		h := rhash.Sum(x[s : s+w])
		advanced := false
		for _, cand := range index[h] {
			if used[cand] {
				continue
			}
			a, ok := growAnchor(x, y, s, cand, sx, sy, cfg, index, used)
			if !ok {
				continue
			}
			anchors = append(anchors, a)
			for i := a.NewPos; i < a.NewPos+a.Length; i++ {
				used[i] = true
			}
			// Continue scanning just past the accepted old-side span.
			s = a.OldPos + a.Length
			advanced = true
			break
		}
		if !advanced {
			s += step
		}
	}

	return filterAnchors(anchors, cfg)
}

// growAnchor attempts to turn a single chunk hash hit at (s, cand) into a
// full anchor.
//
// Hunt: extend the match forward chunk by chunk, pairing each old-side
// chunk hash with a new-side chunk that lies strictly beyond the previous
// fragment, until the confirmed length reaches cfg.MinMatchLength or no
// companion is found. The hunt confidence is measured against the expected
// minimum match length, so an anchor can still be accepted with fewer
// confirmed chunks when the later extension covers the gap.
//
// Verify and extend: from the first fragment's coordinates, extend symbol
// by symbol while both sides match and the new side is unconsumed. This is
// also what resolves hash collisions.
func growAnchor(x, y []int, s, cand int, sx, sy Span, cfg *Config, index anchorIndex, used []bool) (Anchor, bool) {
	w := cfg.HuntChunkSize

	confirmed := 1 // chunks confirmed by hash; the lookup hit is the first
	oldNext := s + w
	newEnd := cand + w
	for confirmed*w < cfg.MinMatchLength && oldNext+w <= sx.End {
		h := rhash.Sum(x[oldNext : oldNext+w])
		limit := newEnd + huntScanOffsets*max(1, cfg.JumpStep)
		next := -1
		for _, p := range index[h] {
			if p >= newEnd && p < limit && !used[p] {
				next = p
				break
			}
		}
		if next < 0 {
			break
		}
		confirmed++
		oldNext += w
		newEnd = next + w
	}

	huntConfidence := float64(confirmed*w) / float64(cfg.MinMatchLength)
	if huntConfidence < cfg.MinAnchorConfidence {
		return Anchor{}, false
	}

	length := 0
	for s+length < sx.End && cand+length < sy.End &&
		x[s+length] == y[cand+length] && !used[cand+length] {
		length++
	}
	if length < cfg.MinMatchLength {
		return Anchor{}, false
	}

	drift := cand - s
	if drift < 0 {
		drift = -drift
	}
	maxExpectedDrift := max(100.0, 0.1*float64(min(sx.Len(), sy.Len())))
	driftConf := max(0, 1-float64(drift)/maxExpectedDrift)
	lengthConf := min(1, float64(length)/float64(2*cfg.MinMatchLength))

	return Anchor{
		OldPos:     s,
		NewPos:     cand,
		Length:     length,
		Drift:      drift,
		DriftRatio: float64(drift) / float64(length),
		Confidence: 0.3*driftConf + 0.7*lengthConf,
	}, true
}

// filterAnchors applies the anchor-mode filter and then the confidence
// filter, in that order.
func filterAnchors(anchors []Anchor, cfg *Config) []Anchor {
	out := anchors[:0]
	for _, a := range anchors {
		switch cfg.AnchorSearchMode {
		case AnchorModePositional:
			if a.Drift > cfg.PositionalAnchorMaxDrift {
				continue
			}
		case AnchorModeFloating:
			if a.Drift <= cfg.PositionalAnchorMaxDrift {
				continue
			}
		}
		if a.Confidence >= cfg.MinAnchorConfidence {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
