package callback

import "fmt"

// Event is a lifecycle point of the training loop together with its
// arguments. The set of events is closed.
type Event interface {
	fmt.Stringer
	event()
}

// FitStart fires once before the first epoch.
type FitStart struct{}

// FitEnd fires once after the last epoch.
type FitEnd struct{}

// EpochStart fires at the start of each epoch.
type EpochStart struct {
	Epoch int
}

// BatchStart fires before the forward pass of each batch.
type BatchStart struct {
	Batch int
}

// AfterLoss fires once the loss of a batch is known.
type AfterLoss struct {
	Loss float64
}

// BatchEnd fires after the optimizer step of each batch.
type BatchEnd struct{}

// EpochEnd fires at the end of each epoch.
type EpochEnd struct{}

func (FitStart) event()   {}
func (FitEnd) event()     {}
func (EpochStart) event() {}
func (BatchStart) event() {}
func (AfterLoss) event()  {}
func (BatchEnd) event()   {}
func (EpochEnd) event()   {}

func (FitStart) String() string     { return "fit_start" }
func (FitEnd) String() string       { return "fit_end" }
func (e EpochStart) String() string { return fmt.Sprintf("epoch_start(%d)", e.Epoch) }
func (e BatchStart) String() string { return fmt.Sprintf("batch_start(%d)", e.Batch) }
func (e AfterLoss) String() string  { return fmt.Sprintf("after_loss(%v)", e.Loss) }
func (BatchEnd) String() string     { return "batch_end" }
func (EpochEnd) String() string     { return "epoch_end" }

// Dispatch invokes the hook of cb matching ev and returns its result.
func Dispatch(cb Callback, ev Event) bool {
	switch e := ev.(type) {
	case FitStart:
		return cb.FitStart()
	case FitEnd:
		return cb.FitEnd()
	case EpochStart:
		return cb.EpochStart(e.Epoch)
	case BatchStart:
		return cb.BatchStart(e.Batch)
	case AfterLoss:
		return cb.AfterLoss(e.Loss)
	case BatchEnd:
		return cb.BatchEnd()
	case EpochEnd:
		return cb.EpochEnd()
	default:
		panic(fmt.Sprintf("callback: unknown event %T", ev))
	}
}

// DispatchAll invokes ev on every callback in order and returns true only
// if all of them succeeded. Every callback runs even after one fails.
func DispatchAll(cbs []Callback, ev Event) bool {
	ok := true
	for _, cb := range cbs {
		ok = Dispatch(cb, ev) && ok
	}
	return ok
}
