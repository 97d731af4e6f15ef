// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package turn

import (
	"log/slog"
	"sync/atomic"
)

// Unhandled rejection surface.
//
// A cell that was rejected and collected without the outcome ever being
// observed, by an OnSettled callback or a settled Result read, is reported
// through a process-level hook rather than dropped. The default hook logs
// a warning via log/slog.

// report carries the state the cleanup needs after the cell is collected.
// It must not reference the cell, or the cleanup would never run.
type report struct {
	rejected atomic.Bool
	handled  atomic.Bool
	reason   error
}

func reportUnhandled(r *report) {
	if r.rejected.Load() && !r.handled.Load() {
		(*unhandledHook.Load())(r.reason)
	}
}

var unhandledHook atomic.Pointer[func(error)]

func init() {
	fn := func(reason error) {
		slog.Warn("turn: unhandled rejection", "reason", reason)
	}
	unhandledHook.Store(&fn)
}

// OnUnhandled replaces the process-level unhandled rejection hook.
// The hook runs on the runtime's cleanup goroutine and must not block.
func OnUnhandled(fn func(reason error)) {
	unhandledHook.Store(&fn)
}
