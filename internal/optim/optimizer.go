package optim

import "github.com/born-ml/bpnet/internal/nn"

// Optimizer is the base interface for weight update algorithms.
//
// An optimizer works on the edges of one nn.Graph. Within an iteration the
// trainer calls ZeroGrad once, accumulates deltas for every instance and then
// calls Step once.
//
// All optimizers must implement:
//   - Step: Turn accumulated deltas into gradients and update weights
//   - ZeroGrad: Clear accumulated deltas before the next iteration
//   - GetLR: Get current learning rate (for monitoring)
type Optimizer interface {
	// Step applies one batch update to every edge of the graph.
	//
	// instances is the number of training rows whose deltas were accumulated
	// since the last ZeroGrad.
	Step(g *nn.Graph, instances int) error

	// ZeroGrad clears the accumulated delta of every edge.
	ZeroGrad(g *nn.Graph)

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
