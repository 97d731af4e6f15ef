// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual

import (
	"context"

	"github.com/pkg/errors"

	"code.hybscloud.com/eventual/turn"
)

// Engine binding.
//
// cell adapts the turn engine's settlement cell onto the capability
// protocols with zero behavioral drift: it only translates vocabulary.
// This file is the single place engine-specific knowledge is permitted;
// everything above it works in terms of Future[T] and abstract failure
// kinds.

// cell wraps an engine cell for payloads of type T.
// Payloads stored through the typed constructors are always T (or nil for
// nil interface values), so the recovery assertion cannot drift.
type cell[T any] struct {
	c *turn.Cell
}

// deferred creates a fresh bound cell together with its resolve and reject
// halves. Every constructor and combinator in this package produces future
// values through it.
func deferred[T any]() (Future[T], func(T), func(error)) {
	c := turn.NewCell()
	resolve := func(v T) { c.Resolve(v) }
	reject := func(err error) { c.Reject(err) }
	return cell[T]{c: c}, resolve, reject
}

func (b cell[T]) State() State {
	switch b.c.State() {
	case turn.Fulfilled:
		return StateFulfilled
	case turn.Rejected:
		return StateRejected
	default:
		return StatePending
	}
}

func (b cell[T]) Done() <-chan struct{} {
	return b.c.Done()
}

func (b cell[T]) Subscribe(fn func(v T, err error)) {
	b.c.OnSettled(func(v any, err error) {
		if err != nil {
			var zero T
			fn(zero, Classify(err))
			return
		}
		t, _ := v.(T)
		fn(t, nil)
	})
}

func (b cell[T]) Try() (T, error, bool) {
	var t T
	v, err, settled := b.c.Result()
	if !settled {
		return t, nil, false
	}
	if err != nil {
		return t, Classify(err), true
	}
	t, _ = v.(T)
	return t, nil, true
}

// Classify translates engine-native and context terminal errors into
// abstract failure kinds. Already classified and generic reasons pass
// through untouched, so classification is idempotent.
func Classify(err error) error {
	var f *Failure
	if errors.As(err, &f) {
		return err
	}
	switch {
	case errors.Is(err, turn.ErrDeadline), errors.Is(err, context.DeadlineExceeded):
		return NewFailure(KindTimeout, err)
	case errors.Is(err, turn.ErrAbandoned), errors.Is(err, context.Canceled):
		return NewFailure(KindCancellation, err)
	}
	return err
}
