// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package turn

// State identifies the settlement state of a cell.
type State uint8

const (
	// Pending means the cell has not settled yet.
	Pending State = iota
	// Fulfilled means the cell settled successfully with a value.
	Fulfilled
	// Rejected means the cell settled with a failure reason.
	Rejected
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "pending"
	}
}
