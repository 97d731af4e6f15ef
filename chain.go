// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual

// Chaining.
//
// Every operation returns a new future value and never runs its callback on
// the calling stack frame. Rejections propagate automatically: a fulfillment
// handler is skipped on rejection and the reason passes through unchanged
// until a matching Catch or CatchKind handles it. A handler that itself
// fails produces a new rejection with the new failure as reason.

// Then registers fn on p's fulfillment value and returns a future value for
// fn's outcome.
func Then[A, B any](p Future[A], fn func(A) (B, error)) Future[B] {
	q, resolve, reject := deferred[B]()
	p.Subscribe(func(v A, err error) {
		if err != nil {
			reject(err)
			return
		}
		b, err := fn(v)
		if err != nil {
			reject(err)
			return
		}
		resolve(b)
	})
	return q
}

// Bind sequences fn's asynchronous outcome after p (monadic bind).
// The returned future value adopts the outcome of the future value fn
// returns.
func Bind[A, B any](p Future[A], fn func(A) Future[B]) Future[B] {
	q, resolve, reject := deferred[B]()
	p.Subscribe(func(v A, err error) {
		if err != nil {
			reject(err)
			return
		}
		fn(v).Subscribe(func(b B, err error) {
			if err != nil {
				reject(err)
				return
			}
			resolve(b)
		})
	})
	return q
}

// Catch registers fn on p's rejection reason, whatever its kind.
// Fulfillments pass through unchanged.
func Catch[T any](p Future[T], fn func(error) (T, error)) Future[T] {
	q, resolve, reject := deferred[T]()
	p.Subscribe(func(v T, err error) {
		if err == nil {
			resolve(v)
			return
		}
		v, err = fn(err)
		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	})
	return q
}

// CatchKind is Catch filtered by failure kind: rejections of any other kind
// pass through unchanged to the next handler.
func CatchKind[T any](p Future[T], kind Kind, fn func(error) (T, error)) Future[T] {
	return Catch(p, func(err error) (T, error) {
		if KindOf(err) != kind {
			var zero T
			return zero, err
		}
		return fn(err)
	})
}

// Finally registers fn to run once p settles either way. fn observes
// neither value nor reason, and the original outcome passes through
// unchanged.
func Finally[T any](p Future[T], fn func()) Future[T] {
	q, resolve, reject := deferred[T]()
	p.Subscribe(func(v T, err error) {
		fn()
		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	})
	return q
}
