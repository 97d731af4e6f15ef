// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual

// Capability protocols for future values.
//
// Generic code is polymorphic over these interfaces, not over a concrete
// type: any value providing them participates in chaining, combination and
// the algebraic operations. The engine binding in binding.go is the one
// implementation shipped with this package.

// Observer is the state-inspection capability of a future value.
// Inspection is repeatable and non-destructive.
type Observer interface {
	// State reports the current settlement state.
	State() State
	// Done returns a channel that is closed once the future value settles.
	Done() <-chan struct{}
}

// Future is the full capability surface of a future value: state inspection
// plus chaining and outcome access for payloads of type T.
type Future[T any] interface {
	Observer

	// Subscribe registers fn to be invoked with the settled outcome on a
	// later turn. Registration never runs fn on the calling stack frame,
	// and callbacks registered in order are invoked in that order once
	// settlement occurs — including callbacks registered after settlement,
	// which still fire exactly once with the memoized outcome.
	Subscribe(fn func(v T, err error))

	// Try returns the settled outcome without blocking.
	// settled is false while the future value is pending.
	Try() (v T, err error, settled bool)
}

// IsFuture reports whether x provides the future-value capability surface.
func IsFuture(x any) bool {
	_, ok := x.(Observer)
	return ok
}

// IsFulfilled reports whether p settled successfully.
func IsFulfilled(p Observer) bool { return p.State() == StateFulfilled }

// IsRejected reports whether p settled with a failure.
func IsRejected(p Observer) bool { return p.State() == StateRejected }

// IsPending reports whether p has not settled yet.
func IsPending(p Observer) bool { return p.State() == StatePending }

// IsDone reports whether p settled either way.
func IsDone(p Observer) bool { return p.State() != StatePending }

// Value returns the fulfillment value of p.
// Calling Value on a future value that is not fulfilled is a contract
// violation and panics; check state or chain instead.
func Value[T any](p Future[T]) T {
	v, err, settled := p.Try()
	if !settled || err != nil {
		panic("eventual: Value on a future value that is not fulfilled")
	}
	return v
}

// Reason returns the rejection reason of p.
// Calling Reason on a future value that is not rejected is a contract
// violation and panics; check state or chain instead.
func Reason[T any](p Future[T]) error {
	_, err, settled := p.Try()
	if !settled || err == nil {
		panic("eventual: Reason on a future value that is not rejected")
	}
	return err
}
