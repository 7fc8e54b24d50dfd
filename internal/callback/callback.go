// Package callback implements observers of the training loop.
//
// A callback is code run at a fixed point in the lifecycle of a training
// run:
//
//	fit_start → {epoch_start → [batch_start → after_loss → batch_end]* → epoch_end}* → fit_end
//
// Every hook returns true on proper completion. Embed Base to get a
// successful default for every hook you do not override.
package callback

import (
	"github.com/kudzunn/kudzu/internal/nn"
	"github.com/kudzunn/kudzu/internal/optim"
)

// Callback is the set of lifecycle hooks.
type Callback interface {
	FitStart() bool
	FitEnd() bool
	EpochStart(epoch int) bool
	BatchStart(batch int) bool
	AfterLoss(loss float64) bool
	BatchEnd() bool
	EpochEnd() bool
}

// Learner is the read-only view of the training loop a callback may use.
type Learner interface {
	Function() nn.Function
	Optimizer() optim.Optimizer
}

// Base implements every hook as a successful no-op.
type Base struct{}

// FitStart implements Callback.
func (Base) FitStart() bool { return true }

// FitEnd implements Callback.
func (Base) FitEnd() bool { return true }

// EpochStart implements Callback.
func (Base) EpochStart(int) bool { return true }

// BatchStart implements Callback.
func (Base) BatchStart(int) bool { return true }

// AfterLoss implements Callback.
func (Base) AfterLoss(float64) bool { return true }

// BatchEnd implements Callback.
func (Base) BatchEnd() bool { return true }

// EpochEnd implements Callback.
func (Base) EpochEnd() bool { return true }
