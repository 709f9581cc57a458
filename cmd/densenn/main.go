// Package main provides the densenn command: it trains a sigmoid
// feed-forward network on a small dataset and prints its predictions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/densenn/internal/config"
	"github.com/born-ml/densenn/internal/dataset"
	"github.com/born-ml/densenn/internal/train"
	"github.com/born-ml/densenn/matrix"
	"github.com/born-ml/densenn/nn"
)

const version = "v0.1.0-dev"

var (
	flagConfig    = flag.String("config", "", "YAML file with the run configuration. Flags override its values.")
	flagLayers    = flag.String("layers", "", "Comma separated layer sizes, input first, e.g. \"2,2,1\".")
	flagEpochs    = flag.Int("epochs", 0, "Number of passes over the dataset.")
	flagLR        = flag.Float64("lr", 0, "Learning rate.")
	flagLogEvery  = flag.Int("log_every", 0, "Log the epoch error every this many epochs.")
	flagSeed      = flag.Int64("seed", -1, "Seed for weight initialization, -1 for unseeded.")
	flagRule      = flag.String("rule", "", "Update rule: \"reference\" or \"backprop\".")
	flagDataset   = flag.String("dataset", "", "Dataset: \"xor\" or \"csv\".")
	flagData      = flag.String("data", "", "CSV file for -dataset=csv.")
	flagCSVHeader = flag.Bool("csv_header", false, "CSV file has a header row.")
	flagProgress  = flag.Bool("progress", true, "Display a progress bar while training.")
	flagWeights   = flag.Bool("weights", false, "Print the trained weights and biases.")
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("densenn %s\n", version)
		return
	}

	klog.InitFlags(nil)
	flag.Parse()

	cfg := config.Default()
	if *flagConfig != "" {
		cfg = must.M1(config.Load(*flagConfig))
	}
	cfg.ApplyOverrides(must.M1(overridesFromFlags()))
	must.M(cfg.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg)
	stop()
	if err != nil {
		klog.Errorf("%+v", err)
		klog.Flush()
		os.Exit(1)
	}
}

// overridesFromFlags returns overrides for the flags set on the command line.
func overridesFromFlags() (config.Overrides, error) {
	var o config.Overrides
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layers":
			o.LayerSizes, err = parseSizes(*flagLayers)
		case "epochs":
			o.Epochs = flagEpochs
		case "lr":
			o.LearningRate = flagLR
		case "log_every":
			o.LogEvery = flagLogEvery
		case "seed":
			o.Seed = flagSeed
		case "rule":
			o.Rule = flagRule
		case "dataset":
			o.Dataset = flagDataset
		case "data":
			o.DataPath = flagData
		case "csv_header":
			o.CSVHeader = flagCSVHeader
		}
	})
	return o, err
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "-layers=%q", s)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func loadExamples(cfg *config.Config) ([]dataset.Example, error) {
	examples, err := dataset.Load(cfg.Dataset, cfg.DataPath, cfg.InputSize(), cfg.CSVHeader)
	if err != nil {
		return nil, err
	}
	if err := dataset.Shapes(examples, cfg.InputSize(), cfg.OutputSize()); err != nil {
		return nil, errors.WithMessagef(err, "dataset %s", cfg.Dataset)
	}
	return examples, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	examples, err := loadExamples(cfg)
	if err != nil {
		return err
	}

	src := matrix.GlobalSource()
	if cfg.Seed >= 0 {
		src = matrix.NewSource(cfg.Seed)
	}
	rule, err := cfg.UpdateRule()
	if err != nil {
		return err
	}
	net, err := nn.NewNetwork(cfg.LayerSizes, src, nn.WithUpdateRule(rule))
	if err != nil {
		return err
	}
	printSummary(cfg, net, len(examples))

	loop := &train.Loop{
		Net:          net,
		Epochs:       cfg.Epochs,
		LearningRate: cfg.LearningRate,
		LogEvery:     cfg.LogEvery,
	}
	var bar *epochBar
	if *flagProgress {
		bar = newProgressBar(cfg.Epochs)
		loop.OnEpoch = bar.update
	}

	report, err := loop.Run(ctx, examples)
	if bar != nil {
		bar.finish()
	}
	if err != nil {
		return err
	}
	klog.Infof("Trained %d epochs, final error %v", report.Epochs, report.FinalError)

	preds, err := train.Evaluate(net, examples)
	if err != nil {
		return err
	}
	fmt.Println("\nTesting Trained Neural Network")
	fmt.Println(predictionTable(preds))

	if *flagWeights {
		printWeights(net)
	}
	return nil
}
