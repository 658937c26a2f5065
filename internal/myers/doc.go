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

// Package myers contains the Myers machinery of the engine: the
// linear-memory middle-snake search, the classic O(ND) search with a
// backtracking trace, and the divide-and-conquer driver that combines them.
//
// # Background
//
// Myers models diffing as a search on the edit grid of the two inputs: a
// step right deletes a symbol from x, a step down inserts a symbol from y,
// and a free diagonal step is available wherever the symbols match. A
// shortest edit script corresponds to a path from the top-left corner to the
// bottom-right corner with the fewest non-diagonal steps.
//
// We use s and t for the horizontal and vertical coordinates and k = s - t
// for diagonals. A D-path is a path with exactly D non-diagonal edges; the
// greedy algorithm tracks, per diagonal k, the furthest-reaching endpoint of
// any D-path (the v-array), because a furthest-reaching D-path extends a
// furthest-reaching (D-1)-path on a neighboring diagonal by one edit plus a
// maximal run of diagonal steps.
//
// Two variants are implemented here:
//
//   - Precise keeps a snapshot of the v-array for every D and reconstructs
//     the full script by backtracking through the snapshots. Memory grows
//     with D·(N+M), so the driver only uses it for small regions.
//
//   - Middle runs the search forwards and backwards at once with two
//     v-arrays and stops as soon as the frontiers overlap. The overlap pins
//     down a run of diagonal steps in the middle of an optimal path (the
//     middle snake) using memory linear in the region size. Recursing on
//     the two halves around the snake yields the script without ever
//     materializing the full search state.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations.
// Algorithmica 1, 251-266 (1986). https://doi.org/10.1007/BF01840446
//
// Ukkonen, E. Algorithms for approximate string matching. Information and
// Control 64, 100-118 (1985). https://doi.org/10.1016/S0019-9958(85)80046-2
package myers
