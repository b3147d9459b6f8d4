package nn

import "math"

// Sigmoid applies the logistic function σ(x) = 1 / (1 + exp(-x)).
//
// Sigmoid squashes values to the range (0, 1). It is the only activation
// used by the network.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SigmoidDerivative returns σ'(x) expressed through the activation a = σ(x).
func SigmoidDerivative(a float64) float64 {
	return a * (1 - a)
}
