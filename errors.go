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
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned by [Engine.Diff] when the configured
// strategy name is not registered.
var ErrUnknownStrategy = errors.New("editscript: unknown strategy")

// RangeError reports a window that violates 0 ≤ Start ≤ End ≤ sequence
// length. It indicates a programming error in a strategy; the engine never
// produces one for valid inputs.
type RangeError struct {
	What           string // the toolbox operation that rejected the window
	OldSpan        Span
	NewSpan        Span
	OldLen, NewLen int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("editscript: %s: invalid range old[%d:%d) (len %d), new[%d:%d) (len %d)",
		e.What, e.OldSpan.Start, e.OldSpan.End, e.OldLen, e.NewSpan.Start, e.NewSpan.End, e.NewLen)
}
