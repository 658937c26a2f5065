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

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"zev.io/editscript/internal/apply"
	"zev.io/editscript/internal/corridor"
	"zev.io/editscript/internal/edits"
)

func testParams() Params {
	return Params{
		QuickDiffThreshold: 64,
		Corridor:           corridor.Params{Lookahead: 10, Width: 10},
	}
}

func randSeq(rng *rand.Rand, n, alphabet int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = rng.IntN(alphabet)
	}
	return s
}

// editCost counts the non-equal operations of a script.
func editCost(s edits.Script) int {
	n := 0
	for _, e := range s {
		if e.Kind != edits.Equal {
			n++
		}
	}
	return n
}

// lcsLen is a reference quadratic LCS used to check minimality.
func lcsLen(x, y []int) int {
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for i := 1; i <= len(x); i++ {
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}

func TestPreciseMinimal(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for range 200 {
		x := randSeq(rng, rng.IntN(30), 5)
		y := randSeq(rng, rng.IntN(30), 5)

		script := Precise(x, y, 0, len(x), 0, len(y))
		got, err := apply.Symbols(script, x)
		if err != nil {
			t.Fatalf("x=%v y=%v: apply: %v", x, y, err)
		}
		if diff := cmp.Diff(y, got); diff != "" {
			t.Fatalf("x=%v y=%v: round trip mismatch (-want +got):\n%s", x, y, diff)
		}

		want := len(x) + len(y) - 2*lcsLen(x, y)
		if cost := editCost(script); cost != want {
			t.Fatalf("x=%v y=%v: edit cost %d, want minimal %d", x, y, cost, want)
		}
	}
}

func TestPreciseKnown(t *testing.T) {
	// The example from Myers' paper: ABCABBA -> CBABAC needs 5 edits.
	x := []int{0, 1, 2, 0, 1, 1, 0}
	y := []int{2, 1, 0, 1, 0, 2}
	script := Precise(x, y, 0, len(x), 0, len(y))
	if cost := editCost(script); cost != 5 {
		t.Errorf("edit cost = %d, want 5", cost)
	}
	if _, err := apply.Symbols(script, x); err != nil {
		t.Errorf("apply: %v", err)
	}
}

func TestMiddleSnakeProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	var sc Scratch
	for range 200 {
		x := randSeq(rng, 1+rng.IntN(80), 6)
		y := randSeq(rng, 1+rng.IntN(80), 6)

		sn, ok := Middle(x, y, 0, len(x), 0, len(y), &sc)
		if !ok {
			t.Fatalf("x=%v y=%v: no snake found", x, y)
		}
		if sn.U-sn.X != sn.V-sn.Y {
			t.Fatalf("x=%v y=%v: snake %+v is not diagonal", x, y, sn)
		}
		if sn.X < 0 || sn.Y < 0 || sn.U > len(x) || sn.V > len(y) {
			t.Fatalf("x=%v y=%v: snake %+v out of bounds", x, y, sn)
		}
		for i := range sn.Len() {
			if x[sn.X+i] != y[sn.Y+i] {
				t.Fatalf("x=%v y=%v: snake %+v symbols diverge at %d", x, y, sn, i)
			}
		}
	}
}

func TestMiddleSnakeOffsetWindows(t *testing.T) {
	// Windows that start at very different positions exercise the diagonal
	// offset handling.
	x := make([]int, 600)
	y := make([]int, 120)
	for i := range x {
		x[i] = i % 7
	}
	copy(y, []int{9, 9, 9})
	copy(y[3:], x[500:590])

	var sc Scratch
	sn, ok := Middle(x, y, 480, 600, 0, 120, &sc)
	if !ok {
		t.Fatal("no snake found")
	}
	for i := range sn.Len() {
		if x[480+sn.X+i] != y[sn.Y+i] {
			t.Fatalf("snake %+v symbols diverge at %d", sn, i)
		}
	}
}

func TestMiddleSnakeInvalidRange(t *testing.T) {
	var sc Scratch
	if _, ok := Middle([]int{1}, []int{1}, 1, 0, 0, 1, &sc); ok {
		t.Error("Middle accepted an inverted range")
	}
	if _, ok := Middle([]int{1}, []int{1}, 0, 2, 0, 1, &sc); ok {
		t.Error("Middle accepted an out-of-bounds range")
	}
	if _, ok := Middle([]int{1}, []int{1}, 0, 0, 0, 1, &sc); ok {
		t.Error("Middle accepted an empty side")
	}
}

func TestRecursiveRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 19))
	var sc Scratch
	p := testParams()
	for range 100 {
		x := randSeq(rng, rng.IntN(400), 12)
		y := append([]int(nil), x...)
		// Mutate y to get related but different sequences.
		for range 1 + rng.IntN(40) {
			if len(y) == 0 {
				y = append(y, rng.IntN(12))
				continue
			}
			switch i := rng.IntN(len(y)); rng.IntN(3) {
			case 0:
				y[i] = rng.IntN(12)
			case 1:
				y = append(y[:i], y[i+1:]...)
			case 2:
				y = append(y[:i], append([]int{rng.IntN(12)}, y[i:]...)...)
			}
		}

		script := Recursive(x, y, 0, len(x), 0, len(y), p, &sc)
		got, err := apply.Symbols(script, x)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if diff := cmp.Diff(y, got); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestRecursiveEmptySides(t *testing.T) {
	var sc Scratch
	p := testParams()

	if got := Recursive(nil, nil, 0, 0, 0, 0, p, &sc); len(got) != 0 {
		t.Errorf("empty inputs produced %v", got)
	}

	y := []int{1, 2, 3}
	script := Recursive(nil, y, 0, 0, 0, 3, p, &sc)
	want := edits.Script{{Kind: edits.Add, Sym: 1}, {Kind: edits.Add, Sym: 2}, {Kind: edits.Add, Sym: 3}}
	if diff := cmp.Diff(want, script); diff != "" {
		t.Errorf("add run mismatch (-want +got):\n%s", diff)
	}

	x := []int{4, 5}
	script = Recursive(x, nil, 0, 2, 0, 0, p, &sc)
	want = edits.Script{{Kind: edits.Remove, Sym: 4}, {Kind: edits.Remove, Sym: 5}}
	if diff := cmp.Diff(want, script); diff != "" {
		t.Errorf("remove run mismatch (-want +got):\n%s", diff)
	}
}
