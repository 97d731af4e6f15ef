// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual

import "context"

// Await blocks until p settles or ctx is done, whichever happens first.
// It returns the settled outcome, or ctx's error when the context wins.
// Await is the bridge out of the non-blocking chaining world; inside
// chains, compose with Then and Bind instead.
func Await[T any](ctx context.Context, p Future[T]) (T, error) {
	select {
	case <-p.Done():
	case <-ctx.Done():
		// A settlement racing the context wins: the outcome exists, so
		// report it rather than the context error.
		select {
		case <-p.Done():
		default:
			var zero T
			return zero, ctx.Err()
		}
	}
	v, err, _ := p.Try()
	return v, err
}
