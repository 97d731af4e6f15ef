// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eventual"
)

// await extracts an outcome with a test-wide safety deadline.
func await[T any](t *testing.T, p eventual.Future[T]) (T, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return eventual.Await(ctx, p)
}

func TestResolved(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p := eventual.Resolved(42)
	require.True(eventual.IsFulfilled(p))
	require.True(eventual.IsDone(p))
	require.False(eventual.IsPending(p))
	require.Equal(42, eventual.Value(p))
	// State inspection is repeatable and non-destructive.
	require.Equal(42, eventual.Value(p))

	v, err := await(t, p)
	require.NoError(err)
	require.Equal(42, v)
}

func TestRejected(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	boom := errors.New("boom")
	p := eventual.Rejected[int](boom)
	require.True(eventual.IsRejected(p))
	require.ErrorIs(eventual.Reason(p), boom)

	_, err := await(t, p)
	require.ErrorIs(err, boom)
}

func TestAccessorContractViolations(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.Panics(func() { eventual.Value(eventual.Rejected[int](errors.New("boom"))) })
	require.Panics(func() { eventual.Reason(eventual.Resolved(1)) })

	pending, _, _ := eventual.New[int]()
	require.Panics(func() { eventual.Value(pending) })
	require.Panics(func() { eventual.Reason(pending) })
}

func TestSuspend(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p := eventual.Suspend(func(resolve func(string), _ func(error)) {
		go func() {
			time.Sleep(50 * time.Millisecond)
			resolve("later")
		}()
	})
	require.True(eventual.IsPending(p))

	v, err := await(t, p)
	require.NoError(err)
	require.Equal("later", v)
}

func TestNewFirstSettlementWins(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p, resolve, reject := eventual.New[int]()
	require.True(eventual.IsPending(p))
	resolve(7)
	reject(errors.New("too late"))
	resolve(8)

	v, err := await(t, p)
	require.NoError(err)
	require.Equal(7, v)
}

func TestSubscribeAfterSettlementFiresOnceWithMemoizedValue(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p := eventual.Resolved("memo")
	got := make(chan string, 2)
	p.Subscribe(func(v string, _ error) { got <- v })

	select {
	case v := <-got:
		require.Equal("memo", v)
	case <-time.After(time.Second):
		require.FailNow("late subscriber did not fire")
	}
	select {
	case <-got:
		require.FailNow("subscriber fired twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestIsFuture(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.True(eventual.IsFuture(eventual.Resolved(1)))
	require.True(eventual.IsFuture(eventual.Rejected[string](errors.New("boom"))))
	require.False(eventual.IsFuture(42))
	require.False(eventual.IsFuture(nil))
}

func TestOfDispatch(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	v, err := await(t, eventual.Of(42))
	require.NoError(err)
	require.Equal(42, v)

	boom := errors.New("boom")
	_, err = await(t, eventual.Of(boom))
	require.ErrorIs(err, boom)

	comp := eventual.Computation(func(resolve func(any), _ func(error)) {
		resolve("computed")
	})
	v, err = await(t, eventual.Of(comp))
	require.NoError(err)
	require.Equal("computed", v)
}

func TestFromCallback(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	read := eventual.FromCallback(func(done func(int)) {
		go done(1)
	})
	v, err := await(t, read())
	require.NoError(err)
	require.Equal(1, v)

	double := eventual.FromCallback1(func(x int, done func(int)) {
		go done(x * 2)
	})
	v, err = await(t, double(21))
	require.NoError(err)
	require.Equal(42, v)

	concat := eventual.FromCallback2(func(a, b string, done func(string)) {
		go done(a + b)
	})
	s, err := await(t, concat("fu", "ture"))
	require.NoError(err)
	require.Equal("future", s)
}

func TestAwaitContext(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	pending, _, _ := eventual.New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eventual.Await(ctx, pending)
	require.ErrorIs(err, context.Canceled)

	// A settled outcome wins over an already-done context.
	v, err := eventual.Await(ctx, eventual.Resolved(9))
	require.NoError(err)
	require.Equal(9, v)
}
