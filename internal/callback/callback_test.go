package callback_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudzunn/kudzu/internal/callback"
	"github.com/kudzunn/kudzu/internal/nn"
	"github.com/kudzunn/kudzu/internal/optim"
	"github.com/kudzunn/kudzu/internal/serialization"
)

type fakeLearner struct {
	fn  nn.Function
	opt optim.Optimizer
}

func (l fakeLearner) Function() nn.Function      { return l.fn }
func (l fakeLearner) Optimizer() optim.Optimizer { return l.opt }

// recorder logs every hook it receives into a shared journal.
type recorder struct {
	callback.Base
	name    string
	journal *[]string
	fail    string
}

func (r *recorder) note(hook string) bool {
	*r.journal = append(*r.journal, r.name+"."+hook)
	return hook != r.fail
}

func (r *recorder) FitStart() bool           { return r.note("fit_start") }
func (r *recorder) EpochStart(e int) bool    { return r.note(fmt.Sprintf("epoch_start(%d)", e)) }
func (r *recorder) AfterLoss(l float64) bool { return r.note(fmt.Sprintf("after_loss(%v)", l)) }
func (r *recorder) EpochEnd() bool           { return r.note("epoch_end") }
func (r *recorder) BatchStart(b int) bool    { return r.note(fmt.Sprintf("batch_start(%d)", b)) }
func (r *recorder) BatchEnd() bool           { return r.note("batch_end") }
func (r *recorder) FitEnd() bool             { return r.note("fit_end") }

// TestBase tests that every default hook succeeds.
func TestBase(t *testing.T) {
	var cb callback.Callback = callback.Base{}

	events := []callback.Event{
		callback.FitStart{}, callback.EpochStart{Epoch: 1}, callback.BatchStart{Batch: 2},
		callback.AfterLoss{Loss: 0.5}, callback.BatchEnd{}, callback.EpochEnd{}, callback.FitEnd{},
	}
	for _, ev := range events {
		assert.True(t, callback.Dispatch(cb, ev), ev.String())
	}
}

// TestDispatch_Arguments tests that typed event arguments reach the hook.
func TestDispatch_Arguments(t *testing.T) {
	var journal []string
	r := &recorder{name: "r", journal: &journal}

	callback.Dispatch(r, callback.EpochStart{Epoch: 4})
	callback.Dispatch(r, callback.BatchStart{Batch: 2})
	callback.Dispatch(r, callback.AfterLoss{Loss: 0.25})

	assert.Equal(t, []string{"r.epoch_start(4)", "r.batch_start(2)", "r.after_loss(0.25)"}, journal)
}

// TestDispatchAll_Order tests registration-order invocation, once per callback.
func TestDispatchAll_Order(t *testing.T) {
	var journal []string
	cbs := []callback.Callback{
		&recorder{name: "a", journal: &journal},
		&recorder{name: "b", journal: &journal},
		&recorder{name: "c", journal: &journal},
	}

	assert.True(t, callback.DispatchAll(cbs, callback.FitStart{}))
	assert.Equal(t, []string{"a.fit_start", "b.fit_start", "c.fit_start"}, journal)
}

// TestDispatchAll_EvaluatesEveryCallback tests that a failure does not
// short-circuit the remaining callbacks.
func TestDispatchAll_EvaluatesEveryCallback(t *testing.T) {
	var journal []string
	cbs := []callback.Callback{
		&recorder{name: "a", journal: &journal, fail: "epoch_end"},
		&recorder{name: "b", journal: &journal},
	}

	assert.False(t, callback.DispatchAll(cbs, callback.EpochEnd{}))
	assert.Equal(t, []string{"a.epoch_end", "b.epoch_end"}, journal)
}

// TestDispatchAll_Empty tests that no callbacks is success.
func TestDispatchAll_Empty(t *testing.T) {
	assert.True(t, callback.DispatchAll(nil, callback.FitEnd{}))
}

// TestEventStrings tests the event names.
func TestEventStrings(t *testing.T) {
	assert.Equal(t, "fit_start", callback.FitStart{}.String())
	assert.Equal(t, "epoch_start(3)", callback.EpochStart{Epoch: 3}.String())
	assert.Equal(t, "after_loss(0.5)", callback.AfterLoss{Loss: 0.5}.String())
	assert.Equal(t, "fit_end", callback.FitEnd{}.String())
}

func runEpoch(cb callback.Callback, epoch int, losses ...float64) {
	callback.Dispatch(cb, callback.EpochStart{Epoch: epoch})
	for i, l := range losses {
		callback.Dispatch(cb, callback.BatchStart{Batch: i})
		callback.Dispatch(cb, callback.AfterLoss{Loss: l})
		callback.Dispatch(cb, callback.BatchEnd{})
	}
	callback.Dispatch(cb, callback.EpochEnd{})
}

// TestAccCallback_Report tests the progress text and the histories.
func TestAccCallback_Report(t *testing.T) {
	f := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(1.5), WGrad: -2})
	var out bytes.Buffer
	acc := callback.NewAccCallback(fakeLearner{fn: f}, &out)

	runEpoch(acc, 0, 0.25)

	assert.Equal(t, "Epoch 0:\nLoss 0.25\nw, 1.5, -2\n---\n", out.String())
	assert.Equal(t, []float64{0.25}, acc.Losses())
	assert.Equal(t, []float64{1.5}, acc.ParamHistory("w"))
	assert.Equal(t, []float64{-2}, acc.GradHistory("w"))
	assert.Empty(t, acc.ParamHistory("b"))
}

// TestAccCallback_EpochAverage tests that the epoch loss averages exactly
// the batches of that epoch.
func TestAccCallback_EpochAverage(t *testing.T) {
	f := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(1)})
	acc := callback.NewAccCallback(fakeLearner{fn: f}, &bytes.Buffer{})

	runEpoch(acc, 0, 10, 20)
	runEpoch(acc, 1, 1, 2, 3)
	runEpoch(acc, 2, 4)

	assert.Equal(t, []float64{15, 2, 4}, acc.Losses())
	assert.Equal(t, []float64{10, 20, 1, 2, 3, 4}, acc.BatchLosses())
}

// TestAccCallback_NoBatchEvents tests epochs without batch hooks, where
// the latest loss is reported as is.
func TestAccCallback_NoBatchEvents(t *testing.T) {
	f := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(1)})
	acc := callback.NewAccCallback(fakeLearner{fn: f}, &bytes.Buffer{})

	callback.Dispatch(acc, callback.EpochStart{Epoch: 0})
	callback.Dispatch(acc, callback.AfterLoss{Loss: 0.75})
	callback.Dispatch(acc, callback.EpochEnd{})

	assert.Equal(t, []float64{0.75}, acc.Losses())
	assert.Empty(t, acc.BatchLosses())
}

// TestAccCallback_Histories tests per-parameter logs across epochs.
func TestAccCallback_Histories(t *testing.T) {
	f := nn.NewAffine(nn.AffineConfig{WInit: nn.Float(1), BInit: nn.Float(0)})
	acc := callback.NewAccCallback(fakeLearner{fn: f}, &bytes.Buffer{})

	for epoch := range 3 {
		params := f.Parameters()
		params[0].SetValue(float64(epoch))
		params[1].SetGrad(float64(-epoch))
		runEpoch(acc, epoch, 1)
	}

	assert.Equal(t, []float64{0, 1, 2}, acc.ParamHistory("w"))
	assert.Equal(t, []float64{0, -1, -2}, acc.GradHistory("b"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

// TestAccCallback_WriteFailure tests that an unwritable report fails the hook.
func TestAccCallback_WriteFailure(t *testing.T) {
	f := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(1)})
	acc := callback.NewAccCallback(fakeLearner{fn: f}, failingWriter{})

	callback.Dispatch(acc, callback.EpochStart{Epoch: 0})
	assert.False(t, callback.Dispatch(acc, callback.EpochEnd{}))
}

// TestCheckpointCallback tests that fit_end writes a loadable checkpoint.
func TestCheckpointCallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.safetensors")
	f := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(2.75)})
	cp := callback.NewCheckpointCallback(fakeLearner{fn: f, opt: optim.NewGD(optim.GDConfig{LR: 0.1})}, path,
		map[string]string{"run": "test"})

	runEpoch(cp, 0, 0.5)
	runEpoch(cp, 1, 0.125)
	require.True(t, callback.Dispatch(cp, callback.FitEnd{}))
	require.NoError(t, cp.Err())
	assert.Equal(t, path, cp.Path())

	g := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(0)})
	meta, err := serialization.LoadFunction(path, g)
	require.NoError(t, err)
	assert.Equal(t, 2.75, g.ParamsAndGrads()[0].Value)
	assert.Equal(t, "2", meta["epochs"])
	assert.Equal(t, "0.125", meta["loss"])
	assert.Equal(t, "GD(lr=0.1)", meta["optimizer"])
	assert.Equal(t, "0.1", meta["lr"])
	assert.Equal(t, "test", meta["run"])
}

// TestCheckpointCallback_EpochMeanLoss tests that the recorded loss is the
// mean batch loss of the last epoch.
func TestCheckpointCallback_EpochMeanLoss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.safetensors")
	f := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(1)})
	cp := callback.NewCheckpointCallback(fakeLearner{fn: f}, path, nil)

	runEpoch(cp, 0, 10, 20)
	runEpoch(cp, 1, 1, 2, 6)
	require.True(t, callback.Dispatch(cp, callback.FitEnd{}))

	meta, err := serialization.LoadFunction(path, nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(0)}))
	require.NoError(t, err)
	assert.Equal(t, "3", meta["loss"])
	assert.Equal(t, "2", meta["epochs"])
}

// TestCheckpointCallback_Failure tests that an unwritable path fails fit_end.
func TestCheckpointCallback_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "w.safetensors")
	f := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(1)})
	cp := callback.NewCheckpointCallback(fakeLearner{fn: f}, path, nil)

	assert.False(t, callback.Dispatch(cp, callback.FitEnd{}))
	require.ErrorIs(t, cp.Err(), os.ErrNotExist)
}
