package nn

import (
	"fmt"
	"math"
)

// logEpsilon keeps ln(a) finite when a sigmoid saturates to exactly 0 or 1.
const logEpsilon = 1e-15

// Cost computes the regularized cross-entropy of the graph over a data set.
//
//	J = -(1/m) Σ_i Σ_k [y_ik·ln(a_ik) + (1-y_ik)·ln(1-a_ik)] + λ/(2m) Σ w²
//
// The weight sum skips bias edges. The gradient of J with respect to each
// weight is exactly what Edge.ComputeGradient produces after one pass of
// Forward, Backward and Network.UpdateDeltas over the same rows.
//
// Cost runs forward passes, so it overwrites the activations of the graph.
//
// Parameters:
//   - x: Feature rows
//   - y: One-hot target rows, same length as x
//   - lambda: L2 regularization strength
func (g *Graph) Cost(x, y [][]float64, lambda float64) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("cost: %w", ErrNoInstances)
	}
	if len(x) != len(y) {
		return 0, fmt.Errorf("cost: %d feature rows, %d target rows: %w", len(x), len(y), ErrShapeMismatch)
	}

	var sum float64
	for i := range x {
		if err := g.Forward(x[i]); err != nil {
			return 0, err
		}
		acts, err := g.OutputActivations()
		if err != nil {
			return 0, err
		}
		if len(acts) != len(y[i]) {
			return 0, fmt.Errorf("cost: row %d has %d targets, want %d: %w", i, len(y[i]), len(acts), ErrShapeMismatch)
		}
		for k, a := range acts {
			a = math.Min(math.Max(a, logEpsilon), 1-logEpsilon)
			sum += y[i][k]*math.Log(a) + (1-y[i][k])*math.Log(1-a)
		}
	}

	var reg float64
	g.edges.Each(func(e *Edge) {
		if !e.IsBias() {
			reg += e.weight * e.weight
		}
	})

	m := float64(len(x))
	return -sum/m + lambda/(2*m)*reg, nil
}
