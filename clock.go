// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual

import "time"

// Time-based combinators. Timing is delegated to the runtime timer; this
// package schedules nothing of its own.

// Delay returns a future value that fulfills with v once d elapses,
// independent of any other future value.
func Delay[T any](d time.Duration, v T) Future[T] {
	p, resolve, _ := deferred[T]()
	time.AfterFunc(d, func() { resolve(v) })
	return p
}

// Sleep is Delay without a payload.
func Sleep(d time.Duration) Future[struct{}] {
	return Delay(d, struct{}{})
}

// Timeout adopts p's outcome if it settles within d; otherwise the returned
// future value rejects with a KindTimeout failure. Timing out does not stop
// p: it only detaches from it, and the late outcome is discarded.
func Timeout[T any](p Future[T], d time.Duration) Future[T] {
	q, resolve, reject := deferred[T]()
	t := time.AfterFunc(d, func() {
		reject(NewFailure(KindTimeout, ErrTimedOut))
	})
	p.Subscribe(func(v T, err error) {
		t.Stop()
		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	})
	return q
}

// TimeoutOr is Timeout with a fallback: expiry fulfills with fallback
// instead of rejecting.
func TimeoutOr[T any](p Future[T], d time.Duration, fallback T) Future[T] {
	q, resolve, reject := deferred[T]()
	t := time.AfterFunc(d, func() { resolve(fallback) })
	p.Subscribe(func(v T, err error) {
		t.Stop()
		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	})
	return q
}
