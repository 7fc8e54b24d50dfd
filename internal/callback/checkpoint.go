package callback

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/kudzunn/kudzu/internal/serialization"
)

// CheckpointCallback saves the learner's function to a SafeTensors file
// when fitting ends.
//
// The file metadata records the number of completed epochs, the mean
// batch loss of the last epoch, the optimizer and its learning rate.
type CheckpointCallback struct {
	Base

	learner Learner
	path    string
	meta    map[string]string

	epochs  int
	latest  float64
	batches []float64
	loss    float64
	err     error
}

// NewCheckpointCallback creates a checkpoint writer for path.
//
// Entries of meta are copied into the file metadata.
func NewCheckpointCallback(l Learner, path string, meta map[string]string) *CheckpointCallback {
	return &CheckpointCallback{learner: l, path: path, meta: meta}
}

// EpochStart counts epochs and clears the batch losses.
func (c *CheckpointCallback) EpochStart(epoch int) bool {
	c.epochs = epoch + 1
	c.batches = c.batches[:0]
	return true
}

// AfterLoss records the latest loss.
func (c *CheckpointCallback) AfterLoss(loss float64) bool {
	c.latest = loss
	return true
}

// BatchEnd keeps the loss of the finished batch.
func (c *CheckpointCallback) BatchEnd() bool {
	c.batches = append(c.batches, c.latest)
	return true
}

// EpochEnd records the mean batch loss of the epoch, or the latest loss
// when no batch hooks fired.
func (c *CheckpointCallback) EpochEnd() bool {
	c.loss = c.latest
	if len(c.batches) > 0 {
		c.loss = stat.Mean(c.batches, nil)
	}
	return true
}

// FitEnd writes the checkpoint. It returns false if saving failed; the
// cause is available from Err.
func (c *CheckpointCallback) FitEnd() bool {
	meta := make(map[string]string, len(c.meta)+4)
	for k, v := range c.meta {
		meta[k] = v
	}
	meta["epochs"] = strconv.Itoa(c.epochs)
	meta["loss"] = strconv.FormatFloat(c.loss, 'g', -1, 64)
	if opt := c.learner.Optimizer(); opt != nil {
		meta["optimizer"] = fmt.Sprint(opt)
		meta["lr"] = strconv.FormatFloat(opt.GetLR(), 'g', -1, 64)
	}

	c.err = serialization.SaveFunction(c.path, c.learner.Function(), meta)
	return c.err == nil
}

// Err returns the error of the last save, if any.
func (c *CheckpointCallback) Err() error {
	return c.err
}

// Path returns the checkpoint path.
func (c *CheckpointCallback) Path() string {
	return c.path
}
