// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eventual is a composition layer over an asynchronous-value
// primitive.
//
// A future value is a single-assignment cell with three mutually exclusive
// states: Pending, Fulfilled with a value, or Rejected with a reason.
// Settlement is monotonic and memoized — it happens exactly once and every
// callback observes the same payload, no matter when it was registered.
// eventual gives that primitive a uniform capability surface (state
// inspection, chaining, cancellation-aware timeout) independent of the
// concrete engine, plus algebraic operators conforming to the Functor,
// Applicative and Monad laws.
//
// # Capability Protocols
//
// Generic code is polymorphic over interfaces, not over one concrete type:
//
//   - [Observer]: repeatable, non-destructive state inspection
//   - [Future]: Observer plus Subscribe/Try — the full chaining surface
//
// Registering a callback on an already-settled future value still schedules
// it for a later turn: chaining never runs a callback on the calling stack
// frame, and callbacks registered in order fire in that order.
//
// # Engine Binding
//
// The [code.hybscloud.com/eventual/turn] subpackage is the settlement
// engine. binding.go adapts its cells onto the protocols and is the single
// place engine vocabulary is spoken; it also classifies engine-native
// deadline and abandonment errors into the abstract failure kinds via
// [Classify].
//
// # Construction
//
//   - [Resolved]: immediately fulfilled future value
//   - [Rejected]: immediately rejected future value
//   - [Suspend]: future value driven by a resolve/reject computation
//   - [New]: pending future value plus its resolve and reject halves
//   - [Of]: optional convenience dispatch over the three constructors
//   - [FromCallback], [FromCallback1], [FromCallback2]: callback-final
//     function conversion
//
// Predicates [IsFuture], [IsFulfilled], [IsRejected], [IsPending] and
// [IsDone] inspect without consuming. [Value] and [Reason] fail loudly on
// a future value in the wrong state.
//
// # Chaining
//
//   - [Then]: transform a fulfillment value, error-aware
//   - [Bind]: sequence an asynchronous continuation (monadic bind)
//   - [Catch]: handle any rejection
//   - [CatchKind]: handle rejections of one failure kind, pass others on
//   - [Finally]: observe settlement, pass the outcome through
//
// Rejections propagate automatically: fulfillment handlers are skipped and
// the reason travels unchanged until a matching handler. A handler that
// itself fails produces a new rejection with the new failure as reason.
//
// # Failure Kinds
//
// Reasons are classified by [Kind], not concrete type: KindGeneric,
// KindTimeout, KindCancellation. [KindOf] walks the wrap chain; wrapping
// with [NewFailure] keeps errors.Is and errors.As working.
//
// # Combinators
//
//   - [All]: every value in input order, or the first rejection
//   - [Any]: first fulfillment, or an [AggregateError] once all reject
//   - [Quorum]: first n fulfillments in arrival order
//   - [Join2]: concurrent pairing
//   - [SpreadThen]: destructure a sequence fulfillment into variadic args
//   - [Timeout], [TimeoutOr]: detach after a deadline, failing or falling
//     back; the original keeps running and its late outcome is discarded
//   - [Delay], [Sleep]: time-based fulfillment
//
// # Monad Instance
//
// Typed operations [Map], [Pure], [Apply] and [Bind] satisfy the laws up to
// settlement outcome. For heterogeneous generic code, [Instance] implements
// the type-erased [Monadic] operation set; the instance a continuation
// resolves nested operations under is passed to it explicitly, never read
// from ambient state.
//
// # Blocking Boundary
//
// No chaining operation blocks. [Await] is the explicit, context-aware
// bridge for code that must leave the callback world (tests, goroutine
// pools); inside chains, compose instead.
//
// # Example
//
//	p := eventual.Then(
//		eventual.All([]eventual.Future[int]{
//			eventual.Resolved(1),
//			eventual.Delay(10*time.Millisecond, 2),
//		}),
//		func(vs []int) (int, error) { return vs[0] + vs[1], nil },
//	)
//	v, err := eventual.Await(context.Background(), p)
//	// v == 3, err == nil
package eventual
