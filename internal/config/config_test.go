package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/densenn/internal/nn"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{2, 2, 1}, cfg.LayerSizes)
	assert.Equal(t, 10_000, cfg.Epochs)
	assert.Equal(t, 0.1, cfg.LearningRate)
	assert.Equal(t, 1000, cfg.LogEvery)
	rule, err := cfg.UpdateRule()
	require.NoError(t, err)
	assert.Equal(t, nn.ReferenceRule, rule)
}

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
layer_sizes: [3, 5, 2]
epochs: 200
learning_rate: 0.5
seed: 7
rule: backprop
dataset: csv
data_path: train.csv
csv_header: true
`))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 2}, cfg.LayerSizes)
	assert.Equal(t, 200, cfg.Epochs)
	assert.Equal(t, 0.5, cfg.LearningRate)
	assert.Equal(t, 1000, cfg.LogEvery, "unset keys keep their default")
	assert.Equal(t, int64(7), cfg.Seed)
	rule, err := cfg.UpdateRule()
	require.NoError(t, err)
	assert.Equal(t, nn.BackpropRule, rule)
	assert.Equal(t, "train.csv", cfg.DataPath)
	assert.True(t, cfg.CSVHeader)
	assert.Equal(t, 3, cfg.InputSize())
	assert.Equal(t, 2, cfg.OutputSize())
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":      "epochz: 3\n",
		"too few layers":   "layer_sizes: [2]\n",
		"zero layer":       "layer_sizes: [2, 0, 1]\n",
		"zero epochs":      "epochs: 0\n",
		"negative lr":      "learning_rate: -0.1\n",
		"zero log_every":   "log_every: 0\n",
		"bad seed":         "seed: -5\n",
		"bad rule":         "rule: adam\n",
		"bad dataset":      "dataset: mnist\n",
		"xor wrong shape":  "layer_sizes: [3, 1]\n",
		"csv without path": "dataset: csv\n",
		"not yaml":         "layer_sizes: [1, 2\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("epochs: 42\nrule: backprop\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Epochs)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	epochs, lr, seed := 5, 0.3, int64(0)
	rule := "backprop"

	cfg.ApplyOverrides(Overrides{
		Epochs:       &epochs,
		LearningRate: &lr,
		Seed:         &seed,
		Rule:         &rule,
	})

	assert.Equal(t, 5, cfg.Epochs)
	assert.Equal(t, 0.3, cfg.LearningRate)
	assert.Equal(t, int64(0), cfg.Seed, "zero is a real seed")
	got, err := cfg.UpdateRule()
	require.NoError(t, err)
	assert.Equal(t, nn.BackpropRule, got)
	assert.Equal(t, []int{2, 2, 1}, cfg.LayerSizes, "unset override keeps value")
	assert.Equal(t, 1000, cfg.LogEvery)

	sizes := []int{2, 8, 1}
	cfg.ApplyOverrides(Overrides{LayerSizes: sizes})
	sizes[1] = 99
	assert.Equal(t, []int{2, 8, 1}, cfg.LayerSizes)
}

func TestUpdateRuleUnknown(t *testing.T) {
	cfg := Default()
	cfg.Rule = "adam"

	_, err := cfg.UpdateRule()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"adam"`)
	assert.Error(t, cfg.Validate())
}
