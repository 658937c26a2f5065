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

// Package editscript computes edit scripts between two sequences of opaque
// symbols: ordered programs of Equal, Add and Remove operations whose
// application to the old sequence yields the new one.
//
// An [Engine] tokenizes its string inputs into integers, trims the common
// prefix and suffix, and hands the remaining window to a named strategy.
// Strategies compose a shared toolbox — rolling-hash anchor search, a
// linear-memory middle-snake Myers search, a trace-based precise Myers, and
// a bounded-corridor heuristic — into different high-level behaviors:
//
//   - commonSES produces a shortest edit script on bounded gaps, using
//     anchors to break large problems into independent sub-problems.
//   - patienceDiff aligns on symbols that are unique to both sides, in the
//     style of patience diff.
//   - preserveStructure favors positional alignment, keeping large-scale
//     structure stable at the cost of script minimality.
//
// Additional strategies can be registered with [Engine.Register]; they
// receive the engine's toolbox through a [Handle].
//
// The engine compares symbols only by equality and never interprets their
// contents; splitting text into lines, words or other units is the
// caller's concern. For a ready-made line-oriented front end see
// [zev.io/editscript/textdiff].
package editscript
