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

package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		x, y  []string
		wantX []int
		wantY []int
		wantN int
	}{
		{
			name:  "empty",
			wantN: 0,
		},
		{
			name:  "shared-ids",
			x:     []string{"a", "b", "a"},
			y:     []string{"b", "c", "a"},
			wantX: []int{0, 1, 0},
			wantY: []int{1, 2, 0},
			wantN: 3,
		},
		{
			name:  "y-only",
			x:     nil,
			y:     []string{"x", "x", "y"},
			wantX: []int{},
			wantY: []int{0, 0, 1},
			wantN: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, ys, table := Tokenize(tt.x, tt.y)
			if diff := cmp.Diff(tt.wantX, xs); tt.wantX != nil && diff != "" {
				t.Errorf("x symbols mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantY, ys); tt.wantY != nil && diff != "" {
				t.Errorf("y symbols mismatch (-want +got):\n%s", diff)
			}
			if table.Len() != tt.wantN {
				t.Errorf("table.Len() = %d, want %d", table.Len(), tt.wantN)
			}
			for i, s := range tt.x {
				if got := table.Lookup(xs[i]); got != s {
					t.Errorf("Lookup(x[%d]) = %q, want %q", i, got, s)
				}
			}
			for i, s := range tt.y {
				if got := table.Lookup(ys[i]); got != s {
					t.Errorf("Lookup(y[%d]) = %q, want %q", i, got, s)
				}
			}
		})
	}
}

func TestTokenizeStableAcrossInputs(t *testing.T) {
	xs, ys, _ := Tokenize([]string{"same"}, []string{"same"})
	if xs[0] != ys[0] {
		t.Errorf("identical strings got distinct IDs: %d vs %d", xs[0], ys[0])
	}
}
