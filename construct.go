// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual

// Construction.
//
// Three explicit constructors cover the three ways a future value comes to
// exist: an immediate value, an immediate failure, or a computation driven
// by resolve/reject callbacks. Of layers optional convenience dispatch on
// top of them; it is sugar, not part of the core construction path.

// Resolved returns a future value immediately fulfilled with v.
func Resolved[T any](v T) Future[T] {
	p, resolve, _ := deferred[T]()
	resolve(v)
	return p
}

// Rejected returns a future value immediately rejected with reason.
func Rejected[T any](reason error) Future[T] {
	p, _, reject := deferred[T]()
	reject(reason)
	return p
}

// Suspend wraps a computation into a future value driven by the
// computation's resolve and reject callbacks. compute runs on the calling
// goroutine; the first callback to fire settles the future value and later
// calls are ignored.
func Suspend[T any](compute func(resolve func(T), reject func(error))) Future[T] {
	p, resolve, reject := deferred[T]()
	compute(resolve, reject)
	return p
}

// New creates a pending future value together with its resolve and reject
// functions, for producers that settle from elsewhere. The first call wins;
// later calls are ignored.
func New[T any]() (p Future[T], resolve func(T), reject func(error)) {
	return deferred[T]()
}

// Computation is the type-erased computation shape Of dispatches on.
type Computation = func(resolve func(any), reject func(error))

// Of is a convenience constructor dispatching on the dynamic shape of x:
// a Computation is wrapped via Suspend, an error produces a rejected
// future value, and anything else a fulfilled one.
func Of(x any) Future[any] {
	switch v := x.(type) {
	case Computation:
		return Suspend(v)
	case error:
		return Rejected[any](v)
	default:
		return Resolved(x)
	}
}

// FromCallback converts a callback-final function into a future-returning
// one. The completion callback convention is single-argument and
// success-only: whatever value the callback receives becomes the
// fulfillment value.
func FromCallback[T any](f func(done func(T))) func() Future[T] {
	return func() Future[T] {
		return Suspend(func(resolve func(T), _ func(error)) {
			f(resolve)
		})
	}
}

// FromCallback1 is FromCallback for a function with one leading parameter.
func FromCallback1[A, T any](f func(A, func(T))) func(A) Future[T] {
	return func(a A) Future[T] {
		return Suspend(func(resolve func(T), _ func(error)) {
			f(a, resolve)
		})
	}
}

// FromCallback2 is FromCallback for a function with two leading parameters.
func FromCallback2[A, B, T any](f func(A, B, func(T))) func(A, B) Future[T] {
	return func(a A, b B) Future[T] {
		return Suspend(func(resolve func(T), _ func(error)) {
			f(a, b, resolve)
		})
	}
}
