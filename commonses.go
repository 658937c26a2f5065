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

// commonSES is the default strategy: a shortest edit script on bounded
// gaps. Large windows are partitioned by an anchor chain; the gaps between
// anchors are dispatched by size to the precise search, the recursive Myers
// driver or the corridor heuristic.
func commonSES(h *Handle, x, y []int, sx, sy Span, cfg *Config, debug bool) ([]Edit, error) {
	if sx.Len()+sy.Len() < cfg.QuickDiffThreshold || !cfg.UseAnchors {
		return h.Myers(x, y, sx, sy, cfg)
	}

	chain := h.SelectChain(h.FindAnchors(x, y, sx, sy, cfg))
	if len(chain) == 0 {
		return h.Myers(x, y, sx, sy, cfg)
	}
	h.Log.Debug("editscript: commonSES chain", "anchors", len(chain))

	var out []Edit
	oldPos, newPos := sx.Start, sy.Start
	for _, a := range chain {
		gap, err := dispatchGap(h, x, y, Span{oldPos, a.OldPos}, Span{newPos, a.NewPos}, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, gap...)
		out = append(out, equalRun(x, a.OldPos, a.OldPos+a.Length)...)
		oldPos, newPos = a.OldPos+a.Length, a.NewPos+a.Length
	}
	gap, err := dispatchGap(h, x, y, Span{oldPos, sx.End}, Span{newPos, sy.End}, cfg)
	if err != nil {
		return nil, err
	}
	return append(out, gap...), nil
}

// dispatchGap diffs the region between two anchors (or between the window
// boundary and an anchor) with an algorithm chosen by the gap's size.
func dispatchGap(h *Handle, x, y []int, sx, sy Span, cfg *Config) ([]Edit, error) {
	n, m := sx.Len(), sy.Len()
	switch {
	case n+m == 0:
		return nil, nil
	case pathologicalRatio(n, m):
		// Extremely lopsided gaps degenerate in every algorithm; emit the
		// replacement directly.
		return append(h.RemoveRun(x, sx), h.AddRun(y, sy)...), nil
	case n+m > cfg.HugeDiffThreshold:
		return h.Corridor(x, y, sx, sy, cfg), nil
	default:
		return h.Myers(x, y, sx, sy, cfg)
	}
}

// pathologicalRatio reports whether a gap's sides are so lopsided that
// diffing it is not worth the cost.
func pathologicalRatio(n, m int) bool {
	lo := min(n, m)
	return lo > 0 && max(n, m)/lo > 100 && n+m > 500
}
