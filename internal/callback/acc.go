package callback

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/stat"
)

// AccCallback accumulates the loss history of a training run together
// with the value and gradient history of every parameter, and prints a
// progress report at the end of each epoch.
//
// Report format, one block per epoch:
//
//	Epoch 3:
//	Loss 0.0123
//	w, 2.95, -0.41
//	---
type AccCallback struct {
	Base

	learner Learner
	out     io.Writer

	epoch   int
	loss    float64
	batches int

	losses      []float64
	batchLosses []float64
	paramHist   map[string][]float64
	gradHist    map[string][]float64
}

// NewAccCallback creates an accumulator reading parameters from l.
//
// Reports go to out; a nil out writes to stdout.
func NewAccCallback(l Learner, out io.Writer) *AccCallback {
	if out == nil {
		out = os.Stdout
	}
	return &AccCallback{
		learner:   l,
		out:       out,
		paramHist: make(map[string][]float64),
		gradHist:  make(map[string][]float64),
	}
}

// EpochStart records the epoch and resets the batch counter.
func (a *AccCallback) EpochStart(epoch int) bool {
	a.epoch = epoch
	a.batches = 0
	return true
}

// AfterLoss records the loss of the current batch.
func (a *AccCallback) AfterLoss(loss float64) bool {
	a.loss = loss
	return true
}

// BatchEnd appends the current loss to the batch history.
func (a *AccCallback) BatchEnd() bool {
	a.batchLosses = append(a.batchLosses, a.loss)
	a.batches++
	return true
}

// EpochEnd averages the batch losses of this epoch, records parameter
// values and gradients, and prints the report.
func (a *AccCallback) EpochEnd() bool {
	avg := a.loss
	if a.batches > 0 {
		window := a.batchLosses[len(a.batchLosses)-a.batches:]
		avg = stat.Mean(window, nil)
	}
	a.losses = append(a.losses, avg)

	if _, err := fmt.Fprintf(a.out, "Epoch %d:\nLoss %v\n", a.epoch, avg); err != nil {
		return false
	}
	// Note this report does not scale to many parameters.
	for _, pg := range a.learner.Function().ParamsAndGrads() {
		if _, err := fmt.Fprintf(a.out, "%s, %v, %v\n---\n", pg.Name, pg.Value, pg.Grad); err != nil {
			return false
		}
		a.paramHist[pg.Name] = append(a.paramHist[pg.Name], pg.Value)
		a.gradHist[pg.Name] = append(a.gradHist[pg.Name], pg.Grad)
	}
	return true
}

// Losses returns the average loss of every completed epoch.
func (a *AccCallback) Losses() []float64 {
	return append([]float64(nil), a.losses...)
}

// BatchLosses returns the loss of every completed batch.
func (a *AccCallback) BatchLosses() []float64 {
	return append([]float64(nil), a.batchLosses...)
}

// ParamHistory returns the end-of-epoch values of the named parameter.
func (a *AccCallback) ParamHistory(name string) []float64 {
	return append([]float64(nil), a.paramHist[name]...)
}

// GradHistory returns the end-of-epoch gradients of the named parameter.
func (a *AccCallback) GradHistory(name string) []float64 {
	return append([]float64(nil), a.gradHist[name]...)
}
