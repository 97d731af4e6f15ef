// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package turn

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// Engine-native terminal errors. Bindings classify these into abstract
// failure kinds; nothing above the binding layer should mention them.
var (
	// ErrDeadline is the reason a cell carries when an engine-side
	// deadline elapsed before settlement.
	ErrDeadline = errors.New("turn: deadline elapsed")

	// ErrAbandoned is the reason a cell carries after Abandon.
	ErrAbandoned = errors.New("turn: cell abandoned")
)

// Cell is a single-assignment settlement cell.
//
// A cell starts Pending and settles exactly once, to Fulfilled with a value
// or to Rejected with a reason. Settlement is monotonic: the first Resolve,
// Reject or Abandon wins and every later attempt is a no-op. Once settled,
// the outcome is memoized — every callback observes the same payload, no
// matter when it was registered.
//
// Callbacks never run on the registering stack frame. Each cell owns a FIFO
// turn queue: callbacks registered in order are invoked in that order on a
// drain goroutine, including callbacks registered after settlement.
type Cell struct {
	mu      sync.Mutex
	state   State
	value   any
	reason  error
	done    chan struct{}
	waiters []func(v any, err error)
	queue   []func()
	running bool
	report  *report
}

// NewCell returns a pending cell.
func NewCell() *Cell {
	c := &Cell{
		done:   make(chan struct{}),
		report: &report{},
	}
	// The report outlives the cell so that a rejection nobody ever
	// subscribed to can still surface after collection.
	runtime.AddCleanup(c, reportUnhandled, c.report)
	return c
}

// Resolve settles the cell as Fulfilled with v.
// Reports whether this call performed the settlement.
func (c *Cell) Resolve(v any) bool {
	return c.settle(Fulfilled, v, nil)
}

// Reject settles the cell as Rejected with err.
// Reports whether this call performed the settlement.
func (c *Cell) Reject(err error) bool {
	if err == nil {
		err = errors.New("turn: rejected with nil reason")
	}
	return c.settle(Rejected, nil, err)
}

// Abandon rejects the cell with ErrAbandoned.
// Reports whether this call performed the settlement.
func (c *Cell) Abandon() bool {
	return c.settle(Rejected, nil, ErrAbandoned)
}

func (c *Cell) settle(s State, v any, err error) bool {
	c.mu.Lock()
	if c.state != Pending {
		c.mu.Unlock()
		return false
	}
	c.state, c.value, c.reason = s, v, err
	if s == Rejected {
		c.report.reason = err
		c.report.rejected.Store(true)
	}
	for _, fn := range c.waiters {
		c.enqueue(boundTurn(fn, v, err))
	}
	c.waiters = nil
	close(c.done)
	c.mu.Unlock()
	return true
}

// OnSettled registers fn to be invoked with the outcome on a later turn.
// If the cell is already settled, fn is scheduled rather than called inline.
func (c *Cell) OnSettled(fn func(v any, err error)) {
	c.report.handled.Store(true)
	c.mu.Lock()
	if c.state == Pending {
		c.waiters = append(c.waiters, fn)
		c.mu.Unlock()
		return
	}
	c.enqueue(boundTurn(fn, c.value, c.reason))
	c.mu.Unlock()
}

// State reports the current settlement state.
func (c *Cell) State() State {
	c.mu.Lock()
	s := c.state
	c.mu.Unlock()
	return s
}

// Result returns the memoized outcome.
// settled is false while the cell is pending; value and reason are then zero.
// Reading a settled outcome counts as handling it, the same as OnSettled.
func (c *Cell) Result() (value any, reason error, settled bool) {
	c.mu.Lock()
	value, reason, settled = c.value, c.reason, c.state != Pending
	c.mu.Unlock()
	if settled {
		c.report.handled.Store(true)
	}
	return value, reason, settled
}

// Done returns a channel that is closed once the cell settles.
func (c *Cell) Done() <-chan struct{} {
	return c.done
}

// boundTurn binds a settlement callback to an outcome as a queued turn.
// Named function instead of an inline closure so that enqueue call sites
// stay readable under the lock.
func boundTurn(fn func(any, error), v any, err error) func() {
	return func() { fn(v, err) }
}

// enqueue appends a turn and wakes the drain goroutine if idle.
// Callers must hold mu.
func (c *Cell) enqueue(turn func()) {
	c.queue = append(c.queue, turn)
	if !c.running {
		c.running = true
		go c.drain()
	}
}

// drain runs queued turns one at a time in FIFO order and parks once the
// queue is empty. A later enqueue starts a fresh drain.
func (c *Cell) drain() {
	for {
		c.mu.Lock()
		if len(c.queue) == 0 {
			c.running = false
			c.mu.Unlock()
			return
		}
		turn := c.queue[0]
		c.queue = c.queue[1:]
		c.mu.Unlock()
		turn()
	}
}
