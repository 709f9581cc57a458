package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/densenn/internal/config"
	"github.com/born-ml/densenn/internal/train"
	"github.com/born-ml/densenn/matrix"
	"github.com/born-ml/densenn/nn"
)

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
)

func printSummary(cfg *config.Config, net *nn.Network, numExamples int) {
	fmt.Printf("Network: %v, %s parameters, rule=%s\n",
		net.Sizes(), humanize.Comma(int64(net.NumParameters())), net.Rule())
	fmt.Printf("Dataset: %s, %s examples\n", cfg.Dataset, humanize.Comma(int64(numExamples)))
	fmt.Printf("Training: %s epochs, learning rate %g\n\n", humanize.Comma(int64(cfg.Epochs)), cfg.LearningRate)
}

// epochBar reports training progress on stderr, one tick per epoch.
type epochBar struct {
	bar *progressbar.ProgressBar
}

func newProgressBar(epochs int) *epochBar {
	return &epochBar{bar: progressbar.NewOptions(epochs,
		progressbar.OptionSetDescription("Training"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("epochs"),
		progressbar.OptionSetTheme(progressbar.ThemeUnicode),
	)}
}

func (b *epochBar) update(_ int, totalError float64) {
	b.bar.Describe(fmt.Sprintf("Training [error=%.6f]", totalError))
	_ = b.bar.Add(1)
}

func (b *epochBar) finish() {
	_ = b.bar.Finish()
	fmt.Fprintln(os.Stderr)
}

func formatColumn(m *matrix.Dense) string {
	parts := make([]string, 0, m.Rows())
	for _, row := range m.Data() {
		for _, v := range row {
			parts = append(parts, fmt.Sprintf("%.4f", v))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// predictionTable renders Input, Output and Target columns, one row per example.
func predictionTable(preds []train.Prediction) string {
	table := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Input", "Output", "Target")
	for _, p := range preds {
		table.Row(formatColumn(p.Input), formatColumn(p.Output), formatColumn(p.Target))
	}
	return table.String()
}

func printWeights(net *nn.Network) {
	for i, l := range net.Layers() {
		fmt.Printf("\nLayer %d (%d -> %d)\n", i, l.InputSize(), l.OutputSize())
		if w := l.Weights().ToGonum(); w != nil {
			fmt.Printf("weights =\n%v\n", mat.Formatted(w, mat.Prefix("          "), mat.Squeeze()))
		}
		if b := l.Biases().ToGonum(); b != nil {
			fmt.Printf("biases  =\n%v\n", mat.Formatted(b, mat.Prefix("          "), mat.Squeeze()))
		}
	}
}
