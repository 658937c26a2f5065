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
	"log/slog"

	"zev.io/editscript/internal/corridor"
	"zev.io/editscript/internal/edits"
	"zev.io/editscript/internal/myers"
	"zev.io/editscript/internal/token"
)

// StrategyFunc is the strategy plugin contract. A strategy receives the
// engine's toolbox handle, the two symbol sequences with the window to diff,
// the fully resolved configuration and the debug flag, and returns an edit
// script for exactly that window.
type StrategyFunc func(h *Handle, x, y []int, sx, sy Span, cfg *Config, debug bool) ([]Edit, error)

// Handle exposes the engine's toolbox to strategies. Handles are created
// per [Engine.Diff] call and are only valid for the duration of that call.
type Handle struct {
	table   *token.Table
	scratch *myers.Scratch

	// Log receives diagnostic tracing when the diff was started with the
	// debug flag; otherwise it discards everything.
	Log *slog.Logger
}

// Lookup returns the original string for a symbol ID.
func (h *Handle) Lookup(sym int) string {
	return h.table.Lookup(sym)
}

// FindAnchors locates long verified common runs between the two windows,
// guided by rolling-hash matches. The returned anchors are filtered by the
// configuration's anchor mode and confidence bound but not yet chained; use
// [Handle.SelectChain] to pick a usable subset.
func (h *Handle) FindAnchors(x, y []int, sx, sy Span, cfg *Config) []Anchor {
	anchors := findAnchors(x, y, sx, sy, cfg)
	h.Log.Debug("editscript: anchor search",
		"old", sx.Len(), "new", sy.Len(), "anchors", len(anchors))
	return anchors
}

// SelectChain picks a non-overlapping, monotone subset of anchors
// maximizing total covered length. It returns nil when no valid chain
// exists.
func (h *Handle) SelectChain(anchors []Anchor) []Anchor {
	return selectChain(anchors)
}

// MiddleSnake finds a middle snake for the given windows using the engine's
// reusable scratch buffers. It reports false when the windows are empty,
// invalid, or no snake was found.
func (h *Handle) MiddleSnake(x, y []int, sx, sy Span) (Snake, bool) {
	sn, ok := myers.Middle(x, y, sx.Start, sx.End, sy.Start, sy.End, h.scratch)
	if !ok {
		return Snake{}, false
	}
	return Snake{X: sn.X, Y: sn.Y, U: sn.U, V: sn.V}, ok
}

// Myers produces an edit script for the windows by divide and conquer
// around middle snakes, delegating small regions to the precise search and
// snake-less regions to the corridor heuristic.
func (h *Handle) Myers(x, y []int, sx, sy Span, cfg *Config) ([]Edit, error) {
	if err := checkSpans("Myers", x, y, sx, sy); err != nil {
		return nil, err
	}
	p := myers.Params{
		QuickDiffThreshold: cfg.QuickDiffThreshold,
		Corridor:           corridorParams(cfg),
	}
	return fromScript(myers.Recursive(x, y, sx.Start, sx.End, sy.Start, sy.End, p, h.scratch)), nil
}

// PreciseMyers produces a shortest edit script for the windows using the
// trace-based O(ND) search. Its memory cost grows with the number of
// differences times the combined window size; callers are expected to keep
// windows below the quick-diff threshold.
func (h *Handle) PreciseMyers(x, y []int, sx, sy Span) ([]Edit, error) {
	if err := checkSpans("PreciseMyers", x, y, sx, sy); err != nil {
		return nil, err
	}
	return fromScript(myers.Precise(x, y, sx.Start, sx.End, sy.Start, sy.End)), nil
}

// Corridor produces an edit script for the windows using the linear-time
// bounded-corridor heuristic. The script is valid but not necessarily
// minimal. Invalid windows yield an empty script.
func (h *Handle) Corridor(x, y []int, sx, sy Span, cfg *Config) []Edit {
	if checkSpans("Corridor", x, y, sx, sy) != nil {
		return nil
	}
	return fromScript(corridor.Walk(x, y, sx.Start, sx.End, sy.Start, sy.End, corridorParams(cfg)))
}

// NextLocalAnchor searches for the next nearby matching position starting
// from (oldPos, newPos): first along the main diagonal up to lookahead
// positions, then in a small off-diagonal neighborhood. It reports false
// when no match is found.
func (h *Handle) NextLocalAnchor(x, y []int, oldPos, newPos int, sx, sy Span, lookahead int) (int, int, bool) {
	return localAnchor(x, y, oldPos, newPos, sx, sy, lookahead)
}

// LocalGap processes a micro-gap between two local anchors: a set test
// short-circuits gaps with no common symbols to the corridor heuristic,
// larger gaps get a micro-configured anchor search, and everything else
// falls through to the corridor heuristic.
func (h *Handle) LocalGap(x, y []int, sx, sy Span, cfg *Config) []Edit {
	if checkSpans("LocalGap", x, y, sx, sy) != nil {
		return nil
	}
	return localGap(h, x, y, sx, sy, cfg)
}

// AddRun returns y[sy.Start:sy.End] as a pure Add run.
func (h *Handle) AddRun(y []int, sy Span) []Edit {
	if sy.Len() <= 0 {
		return nil
	}
	out := make([]Edit, 0, sy.Len())
	for i := sy.Start; i < sy.End; i++ {
		out = append(out, Edit{Op: Add, Sym: y[i]})
	}
	return out
}

// RemoveRun returns x[sx.Start:sx.End] as a pure Remove run.
func (h *Handle) RemoveRun(x []int, sx Span) []Edit {
	if sx.Len() <= 0 {
		return nil
	}
	out := make([]Edit, 0, sx.Len())
	for i := sx.Start; i < sx.End; i++ {
		out = append(out, Edit{Op: Remove, Sym: x[i]})
	}
	return out
}

func corridorParams(cfg *Config) corridor.Params {
	return corridor.Params{
		Lookahead: cfg.Lookahead,
		Width:     cfg.CorridorWidth,
	}
}

// checkSpans validates both windows against their sequences.
func checkSpans(what string, x, y []int, sx, sy Span) error {
	if sx.Start < 0 || sx.Start > sx.End || sx.End > len(x) ||
		sy.Start < 0 || sy.Start > sy.End || sy.End > len(y) {
		return &RangeError{
			What:    what,
			OldSpan: sx,
			NewSpan: sy,
			OldLen:  len(x),
			NewLen:  len(y),
		}
	}
	return nil
}

// fromScript converts the internal script representation to the exported
// one. The Kind and Op constant orders match by construction.
func fromScript(s edits.Script) []Edit {
	if len(s) == 0 {
		return nil
	}
	out := make([]Edit, len(s))
	for i, e := range s {
		out[i] = Edit{Op: Op(e.Kind), Sym: e.Sym}
	}
	return out
}
