// Package train drives a network over a dataset: the epoch loop, error
// accounting and reporting cadence that sit outside the network itself.
package train

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/densenn/internal/dataset"
	"github.com/born-ml/densenn/internal/matrix"
	"github.com/born-ml/densenn/internal/nn"
)

// EpochError is the summed squared error of one epoch.
type EpochError struct {
	Epoch int
	Error float64
}

// Report summarizes a finished run.
type Report struct {
	Epochs     int          // Epochs completed.
	History    []EpochError // Errors at each logged epoch, plus the last one.
	FinalError float64      // Summed squared error of the last epoch.
}

// Loop trains Net one example at a time.
//
// Each epoch visits every example in order: the example is predicted, its
// squared error (target - prediction) is added to the epoch total, then the
// network is trained on it.
type Loop struct {
	Net          *nn.Network
	Epochs       int
	LearningRate float64
	LogEvery     int // Log every LogEvery epochs; 0 disables logging.

	// OnEpoch, if set, is called after every epoch with the epoch's total error.
	OnEpoch func(epoch int, totalError float64)
}

// Run executes the loop. ctx is checked between epochs only.
func (l *Loop) Run(ctx context.Context, examples []dataset.Example) (*Report, error) {
	if l.Net == nil {
		return nil, errors.New("train: loop has no network")
	}
	if l.Epochs <= 0 {
		return nil, errors.Errorf("train: epochs must be > 0, got %d", l.Epochs)
	}
	if len(examples) == 0 {
		return nil, errors.New("train: no examples")
	}

	report := &Report{}
	for epoch := 0; epoch < l.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrapf(err, "train: stopped before epoch %d", epoch)
		}

		total, err := l.epoch(examples)
		if err != nil {
			return report, errors.WithMessagef(err, "train: epoch %d", epoch)
		}
		report.Epochs = epoch + 1
		report.FinalError = total

		logged := l.LogEvery > 0 && epoch%l.LogEvery == 0
		if logged {
			klog.Infof("Epoch %d: Error = %v", epoch, total)
		}
		if logged || epoch == l.Epochs-1 {
			report.History = append(report.History, EpochError{Epoch: epoch, Error: total})
		}
		if math.IsNaN(total) || math.IsInf(total, 0) {
			klog.Warningf("train: epoch %d error is %v", epoch, total)
		}
		if l.OnEpoch != nil {
			l.OnEpoch(epoch, total)
		}
	}
	return report, nil
}

func (l *Loop) epoch(examples []dataset.Example) (float64, error) {
	total := 0.0
	for i, ex := range examples {
		prediction, err := l.Net.Predict(ex.Input)
		if err != nil {
			return 0, errors.WithMessagef(err, "example %d", i)
		}
		diff, err := ex.Target.Sub(prediction)
		if err != nil {
			return 0, errors.WithMessagef(err, "example %d", i)
		}
		total += diff.SquareSum()

		if err := l.Net.Train(ex.Input, ex.Target, l.LearningRate); err != nil {
			return 0, errors.WithMessagef(err, "example %d", i)
		}
	}
	return total, nil
}

// Prediction pairs an example with the network's output for it.
type Prediction struct {
	Input  *matrix.Dense
	Target *matrix.Dense
	Output *matrix.Dense
}

// Evaluate predicts every example without training.
func Evaluate(net *nn.Network, examples []dataset.Example) ([]Prediction, error) {
	out := make([]Prediction, 0, len(examples))
	for i, ex := range examples {
		output, err := net.Predict(ex.Input)
		if err != nil {
			return nil, errors.WithMessagef(err, "evaluate example %d", i)
		}
		out = append(out, Prediction{Input: ex.Input, Target: ex.Target, Output: output})
	}
	return out, nil
}

// TotalError is the summed squared error of net over examples.
func TotalError(net *nn.Network, examples []dataset.Example) (float64, error) {
	preds, err := Evaluate(net, examples)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, p := range preds {
		diff, err := p.Target.Sub(p.Output)
		if err != nil {
			return 0, errors.WithMessage(err, "total error")
		}
		total += diff.SquareSum()
	}
	return total, nil
}
