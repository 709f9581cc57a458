// Package config holds the knobs of a training run and loads them from YAML.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/densenn/internal/dataset"
	"github.com/born-ml/densenn/internal/nn"
)

// Dataset names understood by the driver.
const (
	DatasetXOR = dataset.NameXOR
	DatasetCSV = dataset.NameCSV
)

// Config captures the runtime knobs for a training run.
type Config struct {
	LayerSizes   []int   `yaml:"layer_sizes"`
	Epochs       int     `yaml:"epochs"`
	LearningRate float64 `yaml:"learning_rate"`
	LogEvery     int     `yaml:"log_every"`
	Seed         int64   `yaml:"seed"` // -1 = unseeded
	Rule         string  `yaml:"rule"`
	Dataset      string  `yaml:"dataset"`
	DataPath     string  `yaml:"data_path"`
	CSVHeader    bool    `yaml:"csv_header"`
}

// Default returns the classic XOR run: a [2,2,1] network trained for
// 10,000 epochs at learning rate 0.1, reporting every 1,000 epochs.
func Default() *Config {
	return &Config{
		LayerSizes:   []int{2, 2, 1},
		Epochs:       10_000,
		LearningRate: 0.1,
		LogEvery:     1000,
		Seed:         -1,
		Rule:         nn.ReferenceRule.String(),
		Dataset:      DatasetXOR,
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open config %q", path)
	}
	cfg, err := Parse(bytes.NewReader(contents))
	if err != nil {
		return nil, errors.WithMessagef(err, "config %q", path)
	}
	return cfg, nil
}

// Parse decodes YAML from r on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if len(c.LayerSizes) < 2 {
		return errors.Errorf("config: layer_sizes needs at least 2 entries, got %v", c.LayerSizes)
	}
	for i, size := range c.LayerSizes {
		if size <= 0 {
			return errors.Errorf("config: layer_sizes[%d] = %d, must be > 0", i, size)
		}
	}
	if c.Epochs <= 0 {
		return errors.Errorf("config: epochs must be > 0, got %d", c.Epochs)
	}
	if c.LearningRate <= 0 {
		return errors.Errorf("config: learning_rate must be > 0, got %g", c.LearningRate)
	}
	if c.LogEvery <= 0 {
		return errors.Errorf("config: log_every must be > 0, got %d", c.LogEvery)
	}
	if c.Seed < -1 {
		return errors.Errorf("config: seed must be >= 0, or -1 for unseeded, got %d", c.Seed)
	}
	if _, err := c.UpdateRule(); err != nil {
		return err
	}

	switch c.Dataset {
	case DatasetXOR:
		if c.InputSize() != 2 || c.OutputSize() != 1 {
			return errors.Errorf("config: xor needs 2 inputs and 1 output, layer_sizes is %v", c.LayerSizes)
		}
	case DatasetCSV:
		if c.DataPath == "" {
			return errors.New("config: dataset csv requires data_path")
		}
	default:
		return errors.Errorf("config: unknown dataset %q (want %q or %q)", c.Dataset, DatasetXOR, DatasetCSV)
	}
	return nil
}

// UpdateRule parses the configured rule name.
func (c *Config) UpdateRule() (nn.UpdateRule, error) {
	rule, err := nn.ParseUpdateRule(c.Rule)
	if err != nil {
		return 0, errors.WithMessage(err, "config")
	}
	return rule, nil
}

// InputSize is the width of the network input.
func (c *Config) InputSize() int {
	return c.LayerSizes[0]
}

// OutputSize is the width of the network output.
func (c *Config) OutputSize() int {
	return c.LayerSizes[len(c.LayerSizes)-1]
}

// Overrides captures CLI supplied values. Nil fields are left untouched.
type Overrides struct {
	LayerSizes   []int
	Epochs       *int
	LearningRate *float64
	LogEvery     *int
	Seed         *int64
	Rule         *string
	Dataset      *string
	DataPath     *string
	CSVHeader    *bool
}

// ApplyOverrides updates c with every override that is set.
func (c *Config) ApplyOverrides(o Overrides) {
	if len(o.LayerSizes) > 0 {
		c.LayerSizes = append([]int(nil), o.LayerSizes...)
	}
	if o.Epochs != nil {
		c.Epochs = *o.Epochs
	}
	if o.LearningRate != nil {
		c.LearningRate = *o.LearningRate
	}
	if o.LogEvery != nil {
		c.LogEvery = *o.LogEvery
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.Rule != nil {
		c.Rule = *o.Rule
	}
	if o.Dataset != nil {
		c.Dataset = *o.Dataset
	}
	if o.DataPath != nil {
		c.DataPath = *o.DataPath
	}
	if o.CSVHeader != nil {
		c.CSVHeader = *o.CSVHeader
	}
}
