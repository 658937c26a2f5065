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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestHandleToolbox drives the toolbox the way a user-registered strategy
// would.
func TestHandleToolbox(t *testing.T) {
	old := []string{"p", "a", "b", "c", "d", "e", "q"}
	new := []string{"p", "a", "x", "c", "d", "y", "q"}

	e := New()
	e.Register("probe", func(h *Handle, x, y []int, sx, sy Span, cfg *Config, debug bool) ([]Edit, error) {
		// The trimmed window excludes the shared "p a" prefix and "q"
		// suffix, so it starts at "b".
		if got := h.Lookup(x[sx.Start]); got != "b" {
			t.Errorf("Lookup(first old symbol) = %q, want %q", got, "b")
		}

		if sn, ok := h.MiddleSnake(x, y, sx, sy); ok {
			for i := range sn.Len() {
				if x[sx.Start+sn.X+i] != y[sy.Start+sn.Y+i] {
					t.Errorf("middle snake %+v symbols diverge at %d", sn, i)
				}
			}
		} else {
			t.Error("no middle snake for overlapping windows")
		}

		// From the first mismatch ("b" vs "x"), the next local anchor is
		// the shared "c" one step down the diagonal.
		if ao, an, ok := h.NextLocalAnchor(x, y, sx.Start, sy.Start, sx, sy, cfg.LocalLookahead); !ok {
			t.Error("NextLocalAnchor found nothing")
		} else if x[ao] != y[an] {
			t.Errorf("NextLocalAnchor returned mismatched (%d, %d)", ao, an)
		}

		return h.PreciseMyers(x, y, sx, sy)
	})

	got, err := e.Diff(old, new, false, Strategy("probe"))
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	applied := applyOps(t, got, old)
	if diff := cmp.Diff(new, applied); diff != "" {
		t.Errorf("applied script mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleRuns(t *testing.T) {
	h := testHandle()
	x := []int{1, 2, 3}

	got := h.RemoveRun(x, Span{1, 3})
	want := []Edit{{Remove, 2}, {Remove, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RemoveRun mismatch (-want +got):\n%s", diff)
	}

	got = h.AddRun(x, Span{0, 1})
	want = []Edit{{Add, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AddRun mismatch (-want +got):\n%s", diff)
	}

	if got := h.AddRun(x, Span{2, 2}); got != nil {
		t.Errorf("AddRun on empty span = %v, want nil", got)
	}
}
