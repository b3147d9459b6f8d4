package optim

import (
	"fmt"

	"github.com/born-ml/bpnet/internal/nn"
)

// GradientDescent implements full-batch gradient descent with L2 regularization.
//
// Update rule, once per iteration:
//
//	gradient = (delta + λ·w) / m    (bias edges: delta / m)
//	w        = w - lr · gradient
//
// where delta is the sum of activation·error over the m training instances
// of the iteration.
//
// Example:
//
//	optimizer, err := optim.NewGradientDescent(optim.GradientDescentConfig{
//	    LR:     0.5,
//	    Lambda: 0.01,
//	})
//
//	for range iterations {
//	    optimizer.ZeroGrad(graph)
//	    for i := range x {
//	        graph.Forward(x[i])
//	        graph.Backward(y[i])
//	        graph.Network().UpdateDeltas(graph.Neurons(), graph.Edges())
//	    }
//	    optimizer.Step(graph, len(x))
//	}
type GradientDescent struct {
	lr     float64
	lambda float64
}

// GradientDescentConfig holds configuration for GradientDescent.
type GradientDescentConfig struct {
	LR     float64 // Learning rate (must be >= 0)
	Lambda float64 // L2 regularization strength (must be >= 0)
}

// NewGradientDescent creates a new GradientDescent optimizer.
//
// A zero learning rate is kept as is: such an optimizer computes gradients
// but never moves the weights.
func NewGradientDescent(config GradientDescentConfig) (*GradientDescent, error) {
	if config.LR < 0 {
		return nil, fmt.Errorf("learning rate %v must not be negative", config.LR)
	}
	if config.Lambda < 0 {
		return nil, fmt.Errorf("lambda %v must not be negative", config.Lambda)
	}
	return &GradientDescent{
		lr:     config.LR,
		lambda: config.Lambda,
	}, nil
}

// Step computes the gradient of every edge and applies one descent step.
func (gd *GradientDescent) Step(g *nn.Graph, instances int) error {
	net := g.Network()
	if err := net.UpdateGradients(g.Edges(), instances, gd.lambda); err != nil {
		return err
	}
	net.ApplyGradientSteps(g.Edges(), gd.lr)
	return nil
}

// ZeroGrad clears the accumulated deltas.
func (gd *GradientDescent) ZeroGrad(g *nn.Graph) {
	g.Network().ResetDeltas(g.Edges())
}

// GetLR returns the current learning rate.
func (gd *GradientDescent) GetLR() float64 {
	return gd.lr
}

// SetLR updates the learning rate.
func (gd *GradientDescent) SetLR(lr float64) {
	gd.lr = lr
}

// Lambda returns the regularization strength.
func (gd *GradientDescent) Lambda() float64 {
	return gd.lambda
}
