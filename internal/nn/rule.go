package nn

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/densenn/internal/matrix"
)

// UpdateRule selects how Network.Train turns one example into new layer values.
type UpdateRule int

const (
	// ReferenceRule is the network's historical update rule, reproduced exactly:
	//
	//	gradient = error · lr · lr          (no activation derivative)
	//	W       += gradient · input_iᵀ
	//	b       += gradient
	//	error    = W(updated)ᵀ · error
	//
	// It is not textbook backpropagation. It is the default so that trained
	// weights stay comparable with earlier runs.
	ReferenceRule UpdateRule = iota

	// BackpropRule is conventional single-example backpropagation for
	// sigmoid layers under squared error:
	//
	//	delta    = error ⊙ output_i(1 - output_i)
	//	gradient = delta · lr
	//	error    = W(pre-update)ᵀ · delta
	//	W       += gradient · input_iᵀ
	//	b       += gradient
	BackpropRule
)

// String returns the rule name used in configs and flags.
func (r UpdateRule) String() string {
	switch r {
	case ReferenceRule:
		return "reference"
	case BackpropRule:
		return "backprop"
	default:
		return "unknown"
	}
}

// ParseUpdateRule parses "reference" or "backprop" (case-insensitive).
// The empty string selects ReferenceRule.
func ParseUpdateRule(s string) (UpdateRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reference":
		return ReferenceRule, nil
	case "backprop":
		return BackpropRule, nil
	default:
		return 0, errors.Errorf("nn: unknown update rule %q (want \"reference\" or \"backprop\")", s)
	}
}

// step computes the replacement weights and biases for one layer and the
// error to hand to the layer below it.
//
// input is the layer's input (outputs[i]) and output its activation
// (outputs[i+1]).
func (r UpdateRule) step(l *Layer, input, output, errSignal *matrix.Dense, lr float64) (weights, biases, below *matrix.Dense, err error) {
	switch r {
	case ReferenceRule:
		return referenceStep(l, input, errSignal, lr)
	case BackpropRule:
		return backpropStep(l, input, output, errSignal, lr)
	default:
		return nil, nil, nil, errors.Errorf("nn: unknown update rule %d", int(r))
	}
}

func referenceStep(l *Layer, input, errSignal *matrix.Dense, lr float64) (weights, biases, below *matrix.Dense, err error) {
	gradient := errSignal.Scale(lr).Scale(lr)

	delta, err := gradient.Dot(input.T())
	if err != nil {
		return nil, nil, nil, err
	}
	if weights, err = l.weights.Add(delta); err != nil {
		return nil, nil, nil, err
	}
	if biases, err = l.biases.Add(gradient); err != nil {
		return nil, nil, nil, err
	}
	// Propagates through the weights just updated above.
	if below, err = weights.T().Dot(errSignal); err != nil {
		return nil, nil, nil, err
	}
	return weights, biases, below, nil
}

func backpropStep(l *Layer, input, output, errSignal *matrix.Dense, lr float64) (weights, biases, below *matrix.Dense, err error) {
	local, err := errSignal.MulElem(output.SigmoidDerivative())
	if err != nil {
		return nil, nil, nil, err
	}
	gradient := local.Scale(lr)

	delta, err := gradient.Dot(input.T())
	if err != nil {
		return nil, nil, nil, err
	}
	if below, err = l.weights.T().Dot(local); err != nil {
		return nil, nil, nil, err
	}
	if weights, err = l.weights.Add(delta); err != nil {
		return nil, nil, nil, err
	}
	if biases, err = l.biases.Add(gradient); err != nil {
		return nil, nil, nil, err
	}
	return weights, biases, below, nil
}
