// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Parallel combinators.
//
// All reports values in input order regardless of completion order; Any and
// Quorum report in completion order. Across unrelated future values no
// other ordering is guaranteed. Inputs that lose a race keep running — only
// their outcomes are discarded.

// All fulfills with every fulfillment value in input order once all inputs
// fulfill, and rejects with the reason of the first input to reject.
func All[T any](ps []Future[T]) Future[[]T] {
	q, resolve, reject := deferred[[]T]()
	out := make([]T, len(ps))
	g, ctx := errgroup.WithContext(context.Background())
	for i, p := range ps {
		g.Go(func() error {
			v, err := Await(ctx, p)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	go func() {
		// Wait returns the first rejection; the group context unparks
		// the remaining waiters so rejection is not delayed by them.
		if err := g.Wait(); err != nil {
			reject(err)
			return
		}
		resolve(out)
	}()
	return q
}

// Any fulfills with the value of whichever input fulfills first, and
// rejects with an AggregateError only once every input rejected.
// An empty input rejects immediately.
func Any[T any](ps []Future[T]) Future[T] {
	q, resolve, reject := deferred[T]()
	if len(ps) == 0 {
		reject(&AggregateError{})
		return q
	}
	var (
		mu      sync.Mutex
		reasons = make([]error, len(ps))
		left    = len(ps)
	)
	for i, p := range ps {
		p.Subscribe(func(v T, err error) {
			if err == nil {
				resolve(v)
				return
			}
			mu.Lock()
			reasons[i] = err
			left--
			last := left == 0
			mu.Unlock()
			if last {
				reject(&AggregateError{Reasons: reasons})
			}
		})
	}
	return q
}

// Quorum fulfills with the first n fulfillment values in arrival order.
// It rejects with an AggregateError once len(ps)-n+1 inputs rejected,
// the point where n fulfillments become unreachable. n <= 0 fulfills with
// an empty sequence; n > len(ps) is unreachable from the start and rejects
// immediately with an empty AggregateError.
func Quorum[T any](n int, ps []Future[T]) Future[[]T] {
	q, resolve, reject := deferred[[]T]()
	if n <= 0 {
		resolve([]T{})
		return q
	}
	if n > len(ps) {
		reject(&AggregateError{})
		return q
	}
	var (
		mu    sync.Mutex
		won   = make([]T, 0, n)
		lost  []error
		spare = len(ps) - n
	)
	for _, p := range ps {
		p.Subscribe(func(v T, err error) {
			mu.Lock()
			if err != nil {
				lost = append(lost, err)
				var sunk []error
				if len(lost) == spare+1 {
					sunk = slices.Clone(lost)
				}
				mu.Unlock()
				if sunk != nil {
					reject(&AggregateError{Reasons: sunk})
				}
				return
			}
			won = append(won, v)
			var vals []T
			if len(won) == n {
				vals = slices.Clone(won)
			}
			mu.Unlock()
			if vals != nil {
				resolve(vals)
			}
		})
	}
	return q
}

// Pair is a tuple of two settled values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Join2 pairs two future values, fulfilling once both fulfill and rejecting
// with the first rejection. Both inputs run concurrently.
func Join2[A, B any](pa Future[A], pb Future[B]) Future[Pair[A, B]] {
	q, resolve, reject := deferred[Pair[A, B]]()
	var (
		mu   sync.Mutex
		pair Pair[A, B]
		left = 2
	)
	pa.Subscribe(func(v A, err error) {
		if err != nil {
			reject(err)
			return
		}
		mu.Lock()
		pair.First = v
		left--
		fire := left == 0
		val := pair
		mu.Unlock()
		if fire {
			resolve(val)
		}
	})
	pb.Subscribe(func(v B, err error) {
		if err != nil {
			reject(err)
			return
		}
		mu.Lock()
		pair.Second = v
		left--
		fire := left == 0
		val := pair
		mu.Unlock()
		if fire {
			resolve(val)
		}
	})
	return q
}

// SpreadThen is Then with the eventual sequence fulfillment destructured
// into variadic arguments to fn instead of passed as one slice.
func SpreadThen[T, R any](p Future[[]T], fn func(...T) (R, error)) Future[R] {
	return Then(p, func(vs []T) (R, error) {
		return fn(vs...)
	})
}
