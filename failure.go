// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual

import (
	"strconv"

	"github.com/pkg/errors"
)

// Failure taxonomy.
//
// Rejection reasons are classified by kind, not by concrete type, so that
// typed-catch dispatch works uniformly regardless of which engine produced
// the failure. Unclassified reasons are KindGeneric.

// Kind classifies a rejection reason.
type Kind uint8

const (
	// KindGeneric is any rejection payload without further classification.
	KindGeneric Kind = iota
	// KindTimeout marks failures produced by the Timeout combinator or an
	// engine-native deadline.
	KindTimeout
	// KindCancellation marks failures produced when a future value is
	// explicitly abandoned.
	KindCancellation
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindCancellation:
		return "cancellation"
	default:
		return "generic"
	}
}

// ErrTimedOut is the cause carried by failures the Timeout combinator
// produces.
var ErrTimedOut = errors.New("eventual: future value timed out")

// Failure tags a rejection reason with an abstract kind.
// It wraps the cause, so errors.Is and errors.As keep seeing it.
type Failure struct {
	kind  Kind
	cause error
}

// NewFailure wraps cause with the given kind.
func NewFailure(kind Kind, cause error) *Failure {
	if cause == nil {
		cause = errors.New("eventual: failure with nil cause")
	}
	return &Failure{kind: kind, cause: cause}
}

// Kind returns the failure's classification.
func (f *Failure) Kind() Kind { return f.kind }

// Error implements error.
func (f *Failure) Error() string { return f.kind.String() + ": " + f.cause.Error() }

// Unwrap returns the wrapped cause.
func (f *Failure) Unwrap() error { return f.cause }

// KindOf reports the failure kind of a rejection reason, walking the wrap
// chain. Reasons carrying no classification are KindGeneric.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.kind
	}
	return KindGeneric
}

// AggregateError is the rejection reason produced when a combinator fails
// as a whole: Any when every input rejected, Quorum when too many did.
// Reasons holds the individual rejection reasons — input order for Any,
// arrival order for Quorum.
type AggregateError struct {
	Reasons []error
}

// Error implements error.
func (e *AggregateError) Error() string {
	return "eventual: " + strconv.Itoa(len(e.Reasons)) + " future value(s) rejected"
}
