// Package main provides the Kudzu CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"

	"github.com/kudzunn/kudzu/internal/callback"
	"github.com/kudzunn/kudzu/internal/config"
	"github.com/kudzunn/kudzu/internal/data"
	"github.com/kudzunn/kudzu/internal/learner"
	"github.com/kudzunn/kudzu/internal/nn"
	"github.com/kudzunn/kudzu/internal/optim"
)

const version = "v0.1.0-dev"

const usage = `Kudzu ML Framework %s

Commands:
  train      Fit y = w*x by gradient descent
  version    Show version

Run "kudzu train -h" for training flags.
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("kudzu: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintf(stdout, usage, version)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "Kudzu ML Framework %s\n", version)
		return nil
	case "train":
		return train(args[1:], stdout)
	default:
		fmt.Fprintf(stdout, usage, version)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// trainFlags binds the train flags. Only flags given on the command line
// become overrides.
type trainFlags struct {
	fs         *flag.FlagSet
	configPath string
	quiet      bool

	epochs    int
	lr        float64
	seed      int64
	shuffle   bool
	samples   int
	slope     float64
	noise     float64
	batchSize int
	winit     float64
	data      string
	save      string
}

func newTrainFlags(output io.Writer) *trainFlags {
	f := &trainFlags{fs: flag.NewFlagSet("train", flag.ContinueOnError)}
	f.fs.SetOutput(output)

	def := config.Default()
	f.fs.StringVar(&f.configPath, "config", "", "YAML config file")
	f.fs.BoolVar(&f.quiet, "quiet", false, "Suppress per-epoch progress")
	f.fs.IntVar(&f.epochs, "epochs", def.Epochs, "Number of training epochs")
	f.fs.Float64Var(&f.lr, "lr", def.LR, "Learning rate for gradient descent")
	f.fs.Int64Var(&f.seed, "seed", def.Seed, "Random seed (negative = random)")
	f.fs.BoolVar(&f.shuffle, "shuffle", def.Shuffle, "Shuffle samples every epoch")
	f.fs.IntVar(&f.samples, "samples", def.Samples, "Synthetic sample count")
	f.fs.Float64Var(&f.slope, "slope", def.Slope, "Synthetic target slope")
	f.fs.Float64Var(&f.noise, "noise", def.Noise, "Synthetic target noise stddev")
	f.fs.IntVar(&f.batchSize, "batch-size", def.BatchSize, "Mini-batch size (0 = full batch)")
	f.fs.Float64Var(&f.winit, "winit", 0, "Initial weight (default random normal)")
	f.fs.StringVar(&f.data, "data", def.Data, "CSV file with x,y rows")
	f.fs.StringVar(&f.save, "save", def.Save, "Write a SafeTensors checkpoint after training")
	return f
}

func (f *trainFlags) overrides() config.Overrides {
	var o config.Overrides
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "epochs":
			o.Epochs = &f.epochs
		case "lr":
			o.LR = &f.lr
		case "seed":
			o.Seed = &f.seed
		case "shuffle":
			o.Shuffle = &f.shuffle
		case "samples":
			o.Samples = &f.samples
		case "slope":
			o.Slope = &f.slope
		case "noise":
			o.Noise = &f.noise
		case "batch-size":
			o.BatchSize = &f.batchSize
		case "winit":
			o.WInit = &f.winit
		case "data":
			o.Data = &f.data
		case "save":
			o.Save = &f.save
		}
	})
	return o
}

func train(args []string, stdout io.Writer) error {
	flags := newTrainFlags(stdout)
	if err := flags.fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return err
		}
	}
	cfg.ApplyOverrides(flags.overrides())
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.New().String()
	logger := log.New(stdout, "", log.LstdFlags)
	logger.Printf("run=%s epochs=%d lr=%v seed=%d batch_size=%d", runID, cfg.Epochs, cfg.LR, cfg.Seed, cfg.BatchSize)

	rng := data.NewRand(cfg.Seed)
	d, err := loadData(cfg, rng)
	if err != nil {
		return err
	}
	logger.Printf("run=%s samples=%d shuffle=%v", runID, d.Len(), d.Shuffle)

	fn := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: cfg.WInit, Rand: rng})
	opt := optim.NewGD(optim.GDConfig{LR: cfg.LR})
	l := learner.New(fn, nn.NewMSELoss(), opt, learner.Config{Epochs: cfg.Epochs})

	progress := stdout
	if flags.quiet {
		progress = io.Discard
	}
	l.SetCallbacks(callback.NewAccCallback(l, progress))

	var cp *callback.CheckpointCallback
	if cfg.Save != "" {
		cp = callback.NewCheckpointCallback(l, cfg.Save, map[string]string{"run": runID})
		l.SetCallbacks(cp)
	}

	var final float64
	if cfg.BatchSize > 0 {
		final, err = trainBatches(l, d, cfg, rng)
	} else {
		final, err = l.TrainLoop(d)
	}
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	if cp != nil {
		if err := cp.Err(); err != nil {
			return fmt.Errorf("save checkpoint: %w", err)
		}
		logger.Printf("run=%s checkpoint=%s", runID, cp.Path())
	}

	w := fn.ParamsAndGrads()[0].Value
	logger.Printf("run=%s final_loss=%v w=%v", runID, final, w)
	return nil
}

func loadData(cfg *config.Config, rng *rand.Rand) (*data.Data, error) {
	if cfg.Data != "" {
		return data.LoadCSV(cfg.Data, cfg.Shuffle, rng)
	}
	return data.Linear(data.LinearConfig{
		Samples: cfg.Samples,
		Slope:   cfg.Slope,
		Noise:   cfg.Noise,
		Shuffle: cfg.Shuffle,
	}, rng)
}

func trainBatches(l *learner.Learner, d *data.Data, cfg *config.Config, rng *rand.Rand) (float64, error) {
	s, err := data.NewSampler(d.Len(), data.SamplerConfig{
		BatchSize: cfg.BatchSize,
		Shuffle:   cfg.Shuffle,
		Rand:      rng,
	})
	if err != nil {
		return 0, err
	}
	loader, err := data.NewDataLoader(d, s)
	if err != nil {
		return 0, err
	}
	return l.TrainBatches(loader)
}
