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
	"fmt"
	"io"
	"log/slog"

	"zev.io/editscript/internal/myers"
	"zev.io/editscript/internal/token"
)

// Names of the built-in strategies.
const (
	StrategyCommonSES         = "commonSES"
	StrategyPatience          = "patienceDiff"
	StrategyPreserveStructure = "preserveStructure"
)

// Engine computes edit scripts. The zero value is not usable; construct
// engines with [New].
//
// An Engine holds no state across [Engine.Diff] calls except reusable
// scratch buffers for the middle-snake search; because of those buffers a
// single Engine must not be used from multiple goroutines at once. Distinct
// engines are fully independent.
type Engine struct {
	strategies map[string]StrategyFunc
	scratch    myers.Scratch
}

// New returns an engine with the built-in strategies registered.
func New() *Engine {
	e := &Engine{strategies: make(map[string]StrategyFunc)}
	e.Register(StrategyCommonSES, commonSES)
	e.Register(StrategyPatience, patienceDiff)
	e.Register(StrategyPreserveStructure, preserveStructure)
	return e
}

// Register adds a strategy under the given name, replacing any previous
// registration.
func (e *Engine) Register(name string, fn StrategyFunc) {
	e.strategies[name] = fn
}

// Diff compares old and new and returns the edit script that transforms one
// into the other.
//
// The inputs are tokenized into integer symbols, the common prefix and
// suffix are trimmed (unless [SkipTrimming] is set), and the interior window
// is handed to the strategy selected by [Strategy]. The debug flag enables
// diagnostic tracing through [log/slog] and has no effect on the result.
//
// Diff returns [ErrUnknownStrategy] if the configured strategy is not
// registered and a [*RangeError] if a strategy passes an invalid window to
// [Handle.Myers] or [Handle.PreciseMyers] and returns that error;
// [Handle.Corridor] and [Handle.LocalGap] return an empty script for invalid
// windows instead. It never returns a partial script alongside an error.
func (e *Engine) Diff(old, new []string, debug bool, opts ...Option) ([]Operation, error) {
	cfg := resolve(opts)

	strategy, ok := e.strategies[cfg.Strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if debug {
		log = slog.Default()
	}

	x, y, table := token.Tokenize(old, new)
	sx, sy := Span{0, len(x)}, Span{0, len(y)}

	var prefix, suffix []Edit
	if !cfg.SkipTrimming {
		prefix, suffix, sx, sy = trim(x, y)
	}
	log.Debug("editscript: window trimmed",
		"strategy", cfg.Strategy, "old", len(x), "new", len(y),
		"prefix", len(prefix), "suffix", len(suffix))

	h := &Handle{table: table, scratch: &e.scratch, Log: log}
	body, err := strategy(h, x, y, sx, sy, &cfg, debug)
	if err != nil {
		return nil, err
	}

	out := make([]Operation, 0, len(prefix)+len(body)+len(suffix))
	for _, part := range [][]Edit{prefix, body, suffix} {
		for _, ed := range part {
			out = append(out, Operation{Op: ed.Op, Text: table.Lookup(ed.Sym)})
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// trim strips the longest common prefix and suffix and returns them as
// Equal runs together with the remaining interior windows.
func trim(x, y []int) (prefix, suffix []Edit, sx, sy Span) {
	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	prefix = equalRun(x, 0, smin)
	suffix = equalRun(x, smax, len(x))
	return prefix, suffix, Span{smin, smax}, Span{tmin, tmax}
}

// equalRun returns x[start:end] as Equal edits.
func equalRun(x []int, start, end int) []Edit {
	if start >= end {
		return nil
	}
	out := make([]Edit, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, Edit{Op: Equal, Sym: x[i]})
	}
	return out
}
