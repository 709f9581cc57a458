package matrix

import "math"

// Sigmoid applies the logistic function σ(x) = 1 / (1 + e^-x) elementwise.
// Every finite input maps into (0, 1).
func (d *Dense) Sigmoid() *Dense {
	return d.Apply(sigmoid)
}

// SigmoidDerivative applies x * (1 - x) elementwise.
//
// The formula is the sigmoid derivative only when d already holds sigmoid
// outputs. No check is made.
func (d *Dense) SigmoidDerivative() *Dense {
	return d.Apply(func(x float64) float64 {
		return x * (1.0 - x)
	})
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
