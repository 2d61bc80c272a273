package m

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sigmoid is the logistic function 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// DSigmoid is the sigmoid derivative expressed through the sigmoid's own
// output: y must already be Sigmoid(x), never the raw weighted sum.
func DSigmoid(y float64) float64 {
	return y * (1 - y)
}

// ApplySigmoid returns a new matrix holding Sigmoid of every element of m.
func ApplySigmoid(m mat.Matrix) *mat.Dense {
	return apply(func(_, _ int, v float64) float64 { return Sigmoid(v) }, m)
}

// ApplyDSigmoid returns a new matrix holding DSigmoid of every element of m.
// m must contain post-activation values.
func ApplyDSigmoid(m mat.Matrix) *mat.Dense {
	return apply(func(_, _ int, v float64) float64 { return DSigmoid(v) }, m)
}
