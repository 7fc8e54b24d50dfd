// Package learner runs the training loop.
//
// A Learner owns a function, a loss and an optimizer, and fires callback
// events around every stage of training:
//
//	fit_start
//	for each epoch:
//	    epoch_start
//	    for each batch:
//	        batch_start → forward → loss → after_loss → backward → step → batch_end
//	    epoch_end
//	fit_end
//
// Example:
//
//	f := nn.NewZeroBiasAffine(nn.AffineConfig{Rand: rng})
//	l := learner.New(f, nn.NewMSELoss(), optim.NewGD(optim.GDConfig{LR: 0.1}), learner.Config{Epochs: 20})
//	acc := callback.NewAccCallback(l, os.Stdout)
//	l.SetCallbacks(acc)
//	finalLoss, err := l.TrainLoop(d)
package learner

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/kudzunn/kudzu/internal/callback"
	"github.com/kudzunn/kudzu/internal/data"
	"github.com/kudzunn/kudzu/internal/nn"
	"github.com/kudzunn/kudzu/internal/optim"
)

// ErrCallbackFailed is returned in strict mode when a callback hook
// reports failure.
var ErrCallbackFailed = errors.New("callback failed")

// Config holds the training loop settings.
type Config struct {
	Epochs int // Number of epochs; fixed for the lifetime of the learner

	// StrictCallbacks aborts training with ErrCallbackFailed when any hook
	// returns false. By default hook results are ignored by the loop.
	StrictCallbacks bool
}

// Learner encapsulates a training run.
type Learner struct {
	fn   nn.Function
	loss nn.Loss
	opt  optim.Optimizer
	cfg  Config
	cbs  []callback.Callback
}

// New creates a learner. It exclusively drives fn, loss and opt during
// training.
func New(fn nn.Function, loss nn.Loss, opt optim.Optimizer, config Config) *Learner {
	if config.Epochs < 0 {
		config.Epochs = 0
	}
	return &Learner{
		fn:   fn,
		loss: loss,
		opt:  opt,
		cfg:  config,
	}
}

// Function returns the function being trained.
func (l *Learner) Function() nn.Function {
	return l.fn
}

// Loss returns the loss being minimized.
func (l *Learner) Loss() nn.Loss {
	return l.loss
}

// Optimizer returns the optimizer.
func (l *Learner) Optimizer() optim.Optimizer {
	return l.opt
}

// Epochs returns the configured number of epochs.
func (l *Learner) Epochs() int {
	return l.cfg.Epochs
}

// SetCallbacks appends callbacks. Callbacks are invoked in the order they
// were added; the learner keeps the values it is given, not copies.
func (l *Learner) SetCallbacks(cbs ...callback.Callback) {
	l.cbs = append(l.cbs, cbs...)
}

// Callbacks returns the registered callbacks in invocation order.
func (l *Learner) Callbacks() []callback.Callback {
	return append([]callback.Callback(nil), l.cbs...)
}

// Dispatch fires ev on every callback in registration order and reports
// whether all of them succeeded. Every callback runs even after a failure.
func (l *Learner) Dispatch(ev callback.Event) bool {
	return callback.DispatchAll(l.cbs, ev)
}

// TrainLoop trains over the whole dataset as a single batch per epoch.
//
// Each epoch shuffles the data (when enabled), runs the forward pass,
// computes the loss, backpropagates through the loss and then the
// function, and steps the optimizer. Returns the loss of the final epoch,
// or 0 if there are no epochs.
func (l *Learner) TrainLoop(d *data.Data) (float64, error) {
	if err := l.fire(callback.FitStart{}); err != nil {
		return 0, err
	}

	var loss float64
	for epoch := range l.cfg.Epochs {
		if err := l.fire(callback.EpochStart{Epoch: epoch}); err != nil {
			return loss, err
		}

		inputs, targets := d.Shuffled()

		if err := l.fire(callback.BatchStart{Batch: 0}); err != nil {
			return loss, err
		}
		var err error
		if loss, err = l.step(inputs, targets); err != nil {
			return loss, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if err := l.fire(callback.BatchEnd{}); err != nil {
			return loss, err
		}

		if err := l.fire(callback.EpochEnd{}); err != nil {
			return loss, err
		}
	}

	if err := l.fire(callback.FitEnd{}); err != nil {
		return loss, err
	}
	return loss, nil
}

// TrainBatches trains with one optimizer step per loader batch.
//
// Returns the mean batch loss of the final epoch, or 0 if there are no
// epochs or no batches.
func (l *Learner) TrainBatches(loader *data.DataLoader) (float64, error) {
	if err := l.fire(callback.FitStart{}); err != nil {
		return 0, err
	}

	var epochLoss float64
	losses := make([]float64, 0, loader.NumBatches())
	for epoch := range l.cfg.Epochs {
		if err := l.fire(callback.EpochStart{Epoch: epoch}); err != nil {
			return epochLoss, err
		}

		losses = losses[:0]
		for batch := range loader.All() {
			if err := l.fire(callback.BatchStart{Batch: batch.Index}); err != nil {
				return epochLoss, err
			}
			loss, err := l.step(batch.X, batch.Y)
			if err != nil {
				return epochLoss, fmt.Errorf("epoch %d batch %d: %w", epoch, batch.Index, err)
			}
			losses = append(losses, loss)
			if err := l.fire(callback.BatchEnd{}); err != nil {
				return epochLoss, err
			}
		}

		epochLoss = 0
		if len(losses) > 0 {
			epochLoss = stat.Mean(losses, nil)
		}

		if err := l.fire(callback.EpochEnd{}); err != nil {
			return epochLoss, err
		}
	}

	if err := l.fire(callback.FitEnd{}); err != nil {
		return epochLoss, err
	}
	return epochLoss, nil
}

// step runs forward, loss, after_loss, backward and the optimizer update
// on one batch and returns its loss.
func (l *Learner) step(inputs, targets []float64) (float64, error) {
	predicted, err := l.fn.Forward(inputs)
	if err != nil {
		return 0, fmt.Errorf("forward: %w", err)
	}

	loss, err := l.loss.Forward(predicted, targets)
	if err != nil {
		return 0, fmt.Errorf("loss: %w", err)
	}
	if err := l.fire(callback.AfterLoss{Loss: loss}); err != nil {
		return loss, err
	}

	grad, err := l.loss.Backward(predicted, targets)
	if err != nil {
		return loss, fmt.Errorf("loss backward: %w", err)
	}
	if _, err := l.fn.Backward(grad); err != nil {
		return loss, fmt.Errorf("backward: %w", err)
	}

	if err := l.opt.Step(l.fn); err != nil {
		return loss, fmt.Errorf("optimizer step: %w", err)
	}
	return loss, nil
}

// fire dispatches ev and, in strict mode, turns a failed dispatch into an
// error.
func (l *Learner) fire(ev callback.Event) error {
	if ok := l.Dispatch(ev); !ok && l.cfg.StrictCallbacks {
		return fmt.Errorf("%w: %s", ErrCallbackFailed, ev)
	}
	return nil
}
