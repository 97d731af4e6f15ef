// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual

import "github.com/pkg/errors"

// Monad operations for future values.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Apply are derived operations expressed purely in terms of the
// capability protocols and combinators — Map is Then without the error
// path, Apply combines Join2 with Map so both sides run concurrently.
//
// The typed operations satisfy the usual laws up to settlement outcome:
//
//   - left identity:  Bind(Pure(v), f) settles identically to f(v)
//   - right identity: Bind(m, Pure) settles identically to m
//   - associativity:  Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))

// Map applies a pure function to p's fulfillment value (functor map).
func Map[A, B any](p Future[A], fn func(A) B) Future[B] {
	return Then(p, func(v A) (B, error) {
		return fn(v), nil
	})
}

// Pure lifts a value into a fulfilled future value.
// Pure is Resolved under its algebraic name, for symmetry with Map, Apply
// and Bind.
func Pure[T any](v T) Future[T] {
	return Resolved(v)
}

// Apply applies a future function to a future argument (applicative apply).
// Both run concurrently and the result combines once both settle; either
// rejection wins.
func Apply[A, B any](pf Future[func(A) B], pa Future[A]) Future[B] {
	return Map(Join2(pf, pa), func(p Pair[func(A) B, A]) B {
		return p.First(p.Second)
	})
}

// Monadic is the type-erased operation set generic algebraic code composes
// containers through, so future values sit alongside other conforming
// containers in heterogeneous algorithms.
//
// The instance a continuation should resolve nested generic operations
// under is passed to the continuation explicitly — the m parameter of
// Bind's fn — never read from ambient state. A continuation runs on a later
// turn than its caller, so anything ambient would be gone by then anyway.
type Monadic interface {
	// Pure lifts a value into the container.
	Pure(v any) any
	// Return is the monadic unit; identical to Pure.
	Return(v any) any
	// Map applies fn inside the container (functor map).
	Map(mv any, fn func(any) any) any
	// Apply applies a contained function to a contained argument.
	Apply(mf, mv any) any
	// Bind sequences fn after mv. fn receives the instance to resolve
	// nested generic operations under, along with the contained value.
	Bind(mv any, fn func(m Monadic, v any) any) any
}

// Instance is the future-value instance of Monadic. Its erased container
// values are Future[any]; handing it any other container is a contract
// violation and panics.
type Instance struct{}

var _ Monadic = Instance{}

// Pure implements Monadic.
func (Instance) Pure(v any) any { return Resolved(v) }

// Return implements Monadic.
func (in Instance) Return(v any) any { return in.Pure(v) }

// Map implements Monadic.
func (Instance) Map(mv any, fn func(any) any) any {
	return Map(asFuture(mv), fn)
}

// Apply implements Monadic. A function future not fulfilled with a
// func(any) any rejects the result rather than applying.
func (Instance) Apply(mf, mv any) any {
	pf := Then(asFuture(mf), func(f any) (func(any) any, error) {
		fn, ok := f.(func(any) any)
		if !ok {
			return nil, errors.New("eventual: applied future value is not fulfilled with func(any) any")
		}
		return fn, nil
	})
	return Apply(pf, asFuture(mv))
}

// Bind implements Monadic. The receiving instance is handed to fn as the
// context its continuation resolves under. A continuation returning
// anything but a future value rejects the result: it runs on a later turn,
// where a panic would be unrecoverable by the caller.
func (in Instance) Bind(mv any, fn func(m Monadic, v any) any) any {
	return Bind(asFuture(mv), func(v any) Future[any] {
		p, ok := fn(in, v).(Future[any])
		if !ok {
			return Rejected[any](errors.New("eventual: continuation did not return a future value"))
		}
		return p
	})
}

// asFuture recovers the typed future value behind an erased container
// value.
func asFuture(x any) Future[any] {
	p, ok := x.(Future[any])
	if !ok {
		panic("eventual: value passed to Instance is not a future value")
	}
	return p
}
