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

// preserveStructure is a hybrid four-level strategy that favors positional
// alignment over script minimality:
//
//   - L1 partitions large windows by long floating anchors.
//   - L2 walks the window positionally, aligning on nearby local matches.
//   - L3 resolves the micro-gaps between local matches with a
//     micro-configured anchor search.
//   - L4 hands everything else to the corridor heuristic.
func preserveStructure(h *Handle, x, y []int, sx, sy Span, cfg *Config, debug bool) ([]Edit, error) {
	if cfg.UseAnchors && sx.Len()+sy.Len() >= cfg.QuickDiffThreshold {
		l1 := *cfg
		l1.MinMatchLength *= 2
		l1.AnchorSearchMode = AnchorModeFloating
		l1.QuickDiffThreshold *= 2
		l1.HugeDiffThreshold *= 2

		chain := h.SelectChain(h.FindAnchors(x, y, sx, sy, &l1))
		if len(chain) > 0 {
			h.Log.Debug("editscript: preserveStructure chain", "anchors", len(chain))
			var out []Edit
			oldPos, newPos := sx.Start, sy.Start
			for _, a := range chain {
				out = append(out, localStructure(h, x, y, Span{oldPos, a.OldPos}, Span{newPos, a.NewPos}, cfg)...)
				out = append(out, equalRun(x, a.OldPos, a.OldPos+a.Length)...)
				oldPos, newPos = a.OldPos+a.Length, a.NewPos+a.Length
			}
			out = append(out, localStructure(h, x, y, Span{oldPos, sx.End}, Span{newPos, sy.End}, cfg)...)
			return out, nil
		}
	}
	return localStructure(h, x, y, sx, sy, cfg), nil
}

// localStructure is the L2 positional scan: it walks both windows in
// lockstep, emits direct matches, bridges to the next local anchor through
// the L3 micro-gap handler, and flushes whatever remains after the last
// match as plain remove/add tails.
func localStructure(h *Handle, x, y []int, sx, sy Span, cfg *Config) []Edit {
	var out []Edit
	s, t := sx.Start, sy.Start
	for s < sx.End && t < sy.End {
		if x[s] == y[t] {
			out = append(out, Edit{Op: Equal, Sym: x[s]})
			s++
			t++
			continue
		}
		ao, an, ok := localAnchor(x, y, s, t, sx, sy, cfg.LocalLookahead)
		if !ok {
			break
		}
		out = append(out, h.LocalGap(x, y, Span{s, ao}, Span{t, an}, cfg)...)
		out = append(out, Edit{Op: Equal, Sym: x[ao]})
		s, t = ao+1, an+1
	}
	out = append(out, h.RemoveRun(x, Span{s, sx.End})...)
	out = append(out, h.AddRun(y, Span{t, sy.End})...)
	return out
}

// localAnchor searches for the nearest matching position reachable from
// (s, t): first along the main diagonal for offsets in [1, lookahead], then
// in a small off-diagonal neighborhood of growing radius.
func localAnchor(x, y []int, s, t int, sx, sy Span, lookahead int) (int, int, bool) {
	for off := 1; off <= lookahead; off++ {
		if s+off >= sx.End || t+off >= sy.End {
			break
		}
		if x[s+off] == y[t+off] {
			return s + off, t + off, true
		}
	}
	maxRadius := min(lookahead/2, 10)
	for r := 1; r <= maxRadius; r++ {
		for delta := -r; delta <= r; delta++ {
			ao, an := s+r, t+r+delta
			if ao >= sx.End || an < t || an >= sy.End {
				continue
			}
			if x[ao] == y[an] {
				return ao, an, true
			}
		}
	}
	return 0, 0, false
}

// localGap is the L3 micro-gap handler behind [Handle.LocalGap].
func localGap(h *Handle, x, y []int, sx, sy Span, cfg *Config) []Edit {
	switch {
	case sx.Len() == 0 && sy.Len() == 0:
		return nil
	case sx.Len() == 0:
		return h.AddRun(y, sy)
	case sy.Len() == 0:
		return h.RemoveRun(x, sx)
	}

	// Disjoint sides cannot produce an Equal; skip straight to the walker.
	// The walker handles lopsided gaps poorly, but for disjoint content
	// throughput beats quality.
	if !shareSymbol(x, y, sx, sy) {
		return h.Corridor(x, y, sx, sy, cfg)
	}

	if sx.Len()+sy.Len() >= cfg.QuickDiffThreshold/2 {
		micro := *cfg
		micro.MinMatchLength = 2
		micro.HuntChunkSize = 2
		micro.JumpStep = 2
		micro.MinAnchorConfidence = min(cfg.MinAnchorConfidence, 0.5)

		chain := h.SelectChain(h.FindAnchors(x, y, sx, sy, &micro))
		if len(chain) > 0 {
			var out []Edit
			oldPos, newPos := sx.Start, sy.Start
			for _, a := range chain {
				out = append(out, localGap(h, x, y, Span{oldPos, a.OldPos}, Span{newPos, a.NewPos}, cfg)...)
				out = append(out, equalRun(x, a.OldPos, a.OldPos+a.Length)...)
				oldPos, newPos = a.OldPos+a.Length, a.NewPos+a.Length
			}
			return append(out, localGap(h, x, y, Span{oldPos, sx.End}, Span{newPos, sy.End}, cfg)...)
		}
	}

	return h.Corridor(x, y, sx, sy, cfg)
}

// shareSymbol reports whether the two windows have at least one symbol in
// common.
func shareSymbol(x, y []int, sx, sy Span) bool {
	seen := make(map[int]struct{}, sx.Len())
	for i := sx.Start; i < sx.End; i++ {
		seen[x[i]] = struct{}{}
	}
	for i := sy.Start; i < sy.End; i++ {
		if _, ok := seen[y[i]]; ok {
			return true
		}
	}
	return false
}
