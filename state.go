// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual

// State identifies the settlement state of a future value.
//
// A future value starts pending and transitions exactly once, to fulfilled
// or to rejected. The transition is monotonic: it is never reversed and
// never re-triggered, and the settled payload is memoized.
type State uint8

const (
	// StatePending means no outcome yet.
	StatePending State = iota
	// StateFulfilled means settled successfully with a value.
	StateFulfilled
	// StateRejected means settled with a failure reason.
	StateRejected
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case StateFulfilled:
		return "fulfilled"
	case StateRejected:
		return "rejected"
	default:
		return "pending"
	}
}
