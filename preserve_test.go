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
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLocalAnchor(t *testing.T) {
	tests := []struct {
		name      string
		x, y      []int
		s, t      int
		lookahead int
		wantOld   int
		wantNew   int
		wantOK    bool
	}{
		{
			name:      "diagonal-hit",
			x:         []int{1, 2, 3},
			y:         []int{9, 2, 3},
			s:         0,
			t:         0,
			lookahead: 5,
			wantOld:   1,
			wantNew:   1,
			wantOK:    true,
		},
		{
			name:      "off-diagonal-hit",
			x:         []int{1, 5, 9, 9},
			y:         []int{2, 3, 5, 4},
			s:         0,
			t:         0,
			lookahead: 5,
			wantOld:   1,
			wantNew:   2,
			wantOK:    true,
		},
		{
			name:      "no-hit",
			x:         []int{1, 2},
			y:         []int{3, 4},
			s:         0,
			t:         0,
			lookahead: 5,
		},
		{
			name:      "lookahead-bound",
			x:         []int{1, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 2},
			y:         []int{3, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 2},
			s:         0,
			t:         0,
			lookahead: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := Span{0, len(tt.x)}, Span{0, len(tt.y)}
			gotOld, gotNew, ok := localAnchor(tt.x, tt.y, tt.s, tt.t, sx, sy, tt.lookahead)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (gotOld != tt.wantOld || gotNew != tt.wantNew) {
				t.Errorf("anchor at (%d, %d), want (%d, %d)", gotOld, gotNew, tt.wantOld, tt.wantNew)
			}
		})
	}
}

func TestLocalGapDisjoint(t *testing.T) {
	h := testHandle()
	cfg := defaults()
	x := []int{1, 2, 3}
	y := []int{4, 5}
	got := h.LocalGap(x, y, Span{0, 3}, Span{0, 2}, &cfg)
	for _, e := range got {
		if e.Op == Equal {
			t.Fatalf("disjoint gap produced %+v", e)
		}
	}
	checkEdits(t, got, x, Span{0, 3}, y, Span{0, 2})
}

func TestLocalGapSharedRun(t *testing.T) {
	h := testHandle()
	cfg := defaults()
	// Both sides large enough for the micro anchor search, sharing a run.
	var x, y []int
	for i := range 20 {
		x = append(x, 100+i)
	}
	for i := range 10 {
		x = append(x, i)
	}
	for i := range 15 {
		y = append(y, 200+i)
	}
	for i := range 10 {
		y = append(y, i)
	}
	got := h.LocalGap(x, y, Span{0, len(x)}, Span{0, len(y)}, &cfg)
	equals := 0
	for _, e := range got {
		if e.Op == Equal {
			equals++
		}
	}
	if equals == 0 {
		t.Error("no equal operations for a shared run")
	}
	checkEdits(t, got, x, Span{0, len(x)}, y, Span{0, len(y)})
}

func TestPreserveStructureAnchoredBlock(t *testing.T) {
	// A long shared block that moved by 30 positions: L1 keeps it as a
	// floating anchor. The anchor starts at the first sampled old position
	// inside the block, so all but the block's first 20 lines are emitted as
	// equal operations.
	var old, new []string
	for i := range 100 {
		old = append(old, fmt.Sprintf("old noise %d", i))
	}
	for i := range 150 {
		old = append(old, fmt.Sprintf("shared %d", i))
	}
	for i := range 50 {
		old = append(old, fmt.Sprintf("old tail %d", i))
	}
	for i := range 70 {
		new = append(new, fmt.Sprintf("new noise %d", i))
	}
	for i := range 150 {
		new = append(new, fmt.Sprintf("shared %d", i))
	}
	for i := range 80 {
		new = append(new, fmt.Sprintf("new tail %d", i))
	}

	got, err := New().Diff(old, new, false, Strategy(StrategyPreserveStructure))
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	equals := 0
	for _, op := range got {
		if op.Op == Equal {
			equals++
		}
	}
	if equals < 100 {
		t.Errorf("only %d equal operations for a 150-line shared block", equals)
	}
	applied := applyOps(t, got, old)
	if diff := cmp.Diff(new, applied); diff != "" {
		t.Errorf("applied script mismatch (-want +got):\n%s", diff)
	}
}

func TestPreserveStructurePositionalScan(t *testing.T) {
	// Small scattered edits: the L2 scan should keep everything else
	// aligned as equals.
	var old, new []string
	for i := range 40 {
		l := fmt.Sprintf("line %d", i)
		old = append(old, l)
		if i%7 == 3 {
			new = append(new, l+" changed")
		} else {
			new = append(new, l)
		}
	}

	got, err := New().Diff(old, new, false, Strategy(StrategyPreserveStructure))
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	equals := 0
	for _, op := range got {
		if op.Op == Equal {
			equals++
		}
	}
	if want := 40 - 6; equals != want {
		t.Errorf("got %d equal operations, want %d", equals, want)
	}
	applied := applyOps(t, got, old)
	if diff := cmp.Diff(new, applied); diff != "" {
		t.Errorf("applied script mismatch (-want +got):\n%s", diff)
	}
}

// testHandle builds a Handle the way Engine.Diff does, for exercising
// toolbox methods directly.
func testHandle() *Handle {
	e := New()
	return &Handle{scratch: &e.scratch, Log: slog.New(slog.DiscardHandler)}
}

// checkEdits replays symbol-level edits against the old window and verifies
// the new window is reproduced.
func checkEdits(t *testing.T, script []Edit, x []int, sx Span, y []int, sy Span) {
	t.Helper()
	var out []int
	i := sx.Start
	for n, e := range script {
		switch e.Op {
		case Equal, Remove:
			if i >= sx.End || x[i] != e.Sym {
				t.Fatalf("edit %d (%v %d) does not match old position %d", n, e.Op, e.Sym, i)
			}
			if e.Op == Equal {
				out = append(out, e.Sym)
			}
			i++
		case Add:
			out = append(out, e.Sym)
		}
	}
	if i != sx.End {
		t.Fatalf("script consumed %d old symbols, want %d", i-sx.Start, sx.Len())
	}
	want := append([]int{}, y[sy.Start:sy.End]...)
	if diff := cmp.Diff(want, append([]int{}, out...)); diff != "" {
		t.Errorf("applied window mismatch (-want +got):\n%s", diff)
	}
}
