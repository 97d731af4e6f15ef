// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventual_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eventual"
)

func TestThen(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p := eventual.Then(eventual.Resolved(6), func(v int) (int, error) {
		return v * 7, nil
	})
	v, err := await(t, p)
	require.NoError(err)
	require.Equal(42, v)
}

func TestThenSkippedOnRejection(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	boom := errors.New("boom")
	p := eventual.Then(eventual.Rejected[int](boom), func(int) (int, error) {
		return 0, errors.New("fulfillment handler ran on a rejection")
	})
	_, err := await(t, p)
	require.ErrorIs(err, boom)
}

func TestThenHandlerFailure(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	handlerErr := errors.New("handler failed")
	p := eventual.Then(eventual.Resolved(1), func(int) (int, error) {
		return 0, handlerErr
	})
	_, err := await(t, p)
	require.ErrorIs(err, handlerErr)
}

func TestBindAsynchronousOutcome(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p := eventual.Bind(eventual.Resolved(2), func(v int) eventual.Future[string] {
		return eventual.Delay(10*time.Millisecond, "twice two")
	})
	v, err := await(t, p)
	require.NoError(err)
	require.Equal("twice two", v)
}

func TestBindInnerRejection(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	boom := errors.New("inner boom")
	p := eventual.Bind(eventual.Resolved(1), func(int) eventual.Future[int] {
		return eventual.Rejected[int](boom)
	})
	_, err := await(t, p)
	require.ErrorIs(err, boom)
}

func TestCatchRecovers(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p := eventual.Catch(eventual.Rejected[int](errors.New("boom")), func(error) (int, error) {
		return -1, nil
	})
	v, err := await(t, p)
	require.NoError(err)
	require.Equal(-1, v)
}

func TestCatchSkippedOnFulfillment(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p := eventual.Catch(eventual.Resolved(11), func(error) (int, error) {
		return 0, errors.New("rejection handler ran on a fulfillment")
	})
	v, err := await(t, p)
	require.NoError(err)
	require.Equal(11, v)
}

func TestCatchRethrow(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	second := errors.New("second")
	p := eventual.Catch(eventual.Rejected[int](errors.New("first")), func(error) (int, error) {
		return 0, second
	})
	_, err := await(t, p)
	require.ErrorIs(err, second)
}

func TestCatchKindMatches(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	timedOut := eventual.Rejected[string](eventual.NewFailure(eventual.KindTimeout, errors.New("deadline")))
	p := eventual.CatchKind(timedOut, eventual.KindTimeout, func(error) (string, error) {
		return "recovered", nil
	})
	v, err := await(t, p)
	require.NoError(err)
	require.Equal("recovered", v)
}

func TestCatchKindPassesNonMatchingThrough(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	boom := errors.New("generic boom")
	p := eventual.CatchKind(eventual.Rejected[int](boom), eventual.KindTimeout, func(error) (int, error) {
		return 0, errors.New("timeout handler intercepted a generic rejection")
	})
	// The reason reaches the next handler unchanged.
	seen := make(chan error, 1)
	q := eventual.Catch(p, func(err error) (int, error) {
		seen <- err
		return 1, nil
	})
	v, err := await(t, q)
	require.NoError(err)
	require.Equal(1, v)
	require.ErrorIs(<-seen, boom)
}

func TestFinally(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	ran := make(chan struct{}, 1)
	p := eventual.Finally(eventual.Resolved(5), func() { ran <- struct{}{} })
	v, err := await(t, p)
	require.NoError(err)
	require.Equal(5, v)
	<-ran

	boom := errors.New("boom")
	q := eventual.Finally(eventual.Rejected[int](boom), func() { ran <- struct{}{} })
	_, err = await(t, q)
	require.ErrorIs(err, boom)
	<-ran
}

func TestSubscriberOrderPreserved(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p, resolve, _ := eventual.New[int]()
	order := make(chan int, 3)
	for i := range 3 {
		p.Subscribe(func(int, error) { order <- i })
	}
	resolve(1)

	for want := range 3 {
		select {
		case got := <-order:
			require.Equal(want, got)
		case <-time.After(time.Second):
			require.FailNow("subscriber did not fire")
		}
	}
}
