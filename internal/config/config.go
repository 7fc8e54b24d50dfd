// Package config loads training run settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the knobs of a training run.
type Config struct {
	Epochs    int      `yaml:"epochs"`
	LR        float64  `yaml:"lr"`
	Seed      int64    `yaml:"seed"`
	Shuffle   bool     `yaml:"shuffle"`
	Samples   int      `yaml:"samples"`
	Slope     float64  `yaml:"slope"`
	Noise     float64  `yaml:"noise"`
	BatchSize int      `yaml:"batch_size"`
	WInit     *float64 `yaml:"winit"`
	Data      string   `yaml:"data"`
	Save      string   `yaml:"save"`
}

// Overrides captures CLI supplied values. Nil fields leave the config as is.
type Overrides struct {
	Epochs    *int
	LR        *float64
	Seed      *int64
	Shuffle   *bool
	Samples   *int
	Slope     *float64
	Noise     *float64
	BatchSize *int
	WInit     *float64
	Data      *string
	Save      *string
}

// Default returns the settings used when no file is given.
//
// The default seed is negative, meaning a random seed per run.
func Default() *Config {
	return &Config{
		Epochs:  20,
		LR:      0.01,
		Seed:    -1,
		Shuffle: true,
		Samples: 100,
		Slope:   3,
	}
}

// Load reads and validates a Config from a YAML file. Keys missing from
// the file keep their Default values.
func Load(path string) (*Config, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for config loading
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c with every non-nil override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Epochs != nil {
		c.Epochs = *o.Epochs
	}
	if o.LR != nil {
		c.LR = *o.LR
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.Shuffle != nil {
		c.Shuffle = *o.Shuffle
	}
	if o.Samples != nil {
		c.Samples = *o.Samples
	}
	if o.Slope != nil {
		c.Slope = *o.Slope
	}
	if o.Noise != nil {
		c.Noise = *o.Noise
	}
	if o.BatchSize != nil {
		c.BatchSize = *o.BatchSize
	}
	if o.WInit != nil {
		v := *o.WInit
		c.WInit = &v
	}
	if o.Data != nil {
		c.Data = *o.Data
	}
	if o.Save != nil {
		c.Save = *o.Save
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Epochs < 0 {
		return fmt.Errorf("epochs must be >= 0 (got %d)", c.Epochs)
	}
	if c.LR <= 0 {
		return fmt.Errorf("lr must be > 0 (got %v)", c.LR)
	}
	if c.Data == "" && c.Samples <= 0 {
		return fmt.Errorf("samples must be > 0 without a data file (got %d)", c.Samples)
	}
	if c.Noise < 0 {
		return fmt.Errorf("noise must be >= 0 (got %v)", c.Noise)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("batch_size must be >= 0 (got %d)", c.BatchSize)
	}
	return nil
}
