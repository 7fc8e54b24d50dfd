// Copyright 2025 Kudzu ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package callback provides training lifecycle hooks.
//
// Embed Base and override only the hooks you need:
//
//	type stopWatch struct {
//	    callback.Base
//	    start time.Time
//	}
//
//	func (s *stopWatch) FitStart() bool { s.start = time.Now(); return true }
package callback

import (
	"io"

	"github.com/kudzunn/kudzu/internal/callback"
)

// Callback receives lifecycle events from a learner.
type Callback = callback.Callback

// Learner is the view of a learner that callbacks can inspect.
type Learner = callback.Learner

// Base implements every hook as a no-op that reports success.
type Base = callback.Base

// Events

// Event identifies one lifecycle stage.
type Event = callback.Event

// Lifecycle events.
type (
	FitStart   = callback.FitStart
	FitEnd     = callback.FitEnd
	EpochStart = callback.EpochStart
	BatchStart = callback.BatchStart
	AfterLoss  = callback.AfterLoss
	BatchEnd   = callback.BatchEnd
	EpochEnd   = callback.EpochEnd
)

// Dispatch invokes the hook of cb matching ev.
func Dispatch(cb Callback, ev Event) bool {
	return callback.Dispatch(cb, ev)
}

// DispatchAll invokes ev on every callback in order and reports whether
// all of them succeeded.
func DispatchAll(cbs []Callback, ev Event) bool {
	return callback.DispatchAll(cbs, ev)
}

// Built-in callbacks

// AccCallback prints per-epoch progress and records loss and parameter
// histories.
type AccCallback = callback.AccCallback

// NewAccCallback creates a progress recorder writing to out (nil = stdout).
//
// Example:
//
//	acc := callback.NewAccCallback(l, os.Stdout)
//	l.SetCallbacks(acc)
func NewAccCallback(l Learner, out io.Writer) *AccCallback {
	return callback.NewAccCallback(l, out)
}

// CheckpointCallback saves the learner's function when fitting ends.
type CheckpointCallback = callback.CheckpointCallback

// NewCheckpointCallback creates a SafeTensors checkpoint writer.
func NewCheckpointCallback(l Learner, path string, meta map[string]string) *CheckpointCallback {
	return callback.NewCheckpointCallback(l, path, meta)
}
