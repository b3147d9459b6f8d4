// Package train runs full-batch training and evaluation on a graph network
// and repeats it over random train/test splits.
package train

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/bpnet/internal/nn"
	"github.com/born-ml/bpnet/internal/optim"
)

// Trainer drives an optimizer over one graph.
//
// Example:
//
//	graph, _ := nn.Build([]int{2, 2, 1}, rng)
//	opt, _ := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.5})
//	trainer := train.NewTrainer(graph, opt, nil)
//
//	if err := trainer.Train(x, y, 2000); err != nil {
//	    return err
//	}
//	predicted, err := trainer.Evaluate(testX)
type Trainer struct {
	graph     *nn.Graph
	optimizer optim.Optimizer
	logger    *slog.Logger
}

// NewTrainer creates a trainer. A nil logger discards everything.
func NewTrainer(graph *nn.Graph, optimizer optim.Optimizer, logger *slog.Logger) *Trainer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Trainer{
		graph:     graph,
		optimizer: optimizer,
		logger:    logger,
	}
}

// Graph returns the network being trained.
func (t *Trainer) Graph() *nn.Graph {
	return t.graph
}

// TrainIteration runs one full-batch iteration over x (features) and y
// (one-hot targets): deltas are reset, every row is propagated forward and
// backward in order, and a single gradient step follows.
func (t *Trainer) TrainIteration(x, y [][]float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%d feature rows but %d targets: %w", len(x), len(y), nn.ErrShapeMismatch)
	}

	g := t.graph
	t.optimizer.ZeroGrad(g)
	for i := range x {
		if err := g.Forward(x[i]); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if err := g.Backward(y[i]); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if err := g.Network().UpdateDeltas(g.Neurons(), g.Edges()); err != nil {
			return err
		}
	}
	return t.optimizer.Step(g, len(x))
}

// Train runs the given number of iterations. The cost is logged at debug
// level about ten times per run.
func (t *Trainer) Train(x, y [][]float64, iterations int) error {
	debug := t.logger.Enabled(context.Background(), slog.LevelDebug)
	every := max(1, iterations/10)

	for it := 0; it < iterations; it++ {
		if err := t.TrainIteration(x, y); err != nil {
			return fmt.Errorf("iteration %d: %w", it+1, err)
		}
		if debug && ((it+1)%every == 0 || it+1 == iterations) {
			cost, err := t.Cost(x, y)
			if err != nil {
				return err
			}
			t.logger.Debug("training", "iteration", it+1, "cost", cost)
		}
	}
	return nil
}

// Cost returns the regularized cross-entropy of the current weights on x, y
// using the optimizer's lambda when it has one.
func (t *Trainer) Cost(x, y [][]float64) (float64, error) {
	var lambda float64
	if r, ok := t.optimizer.(interface{ Lambda() float64 }); ok {
		lambda = r.Lambda()
	}
	return t.graph.Cost(x, y, lambda)
}

// Predict returns the 1-indexed class with the highest output activation.
// Ties go to the lowest class.
func (t *Trainer) Predict(row []float64) (int, error) {
	if err := t.graph.Forward(row); err != nil {
		return 0, err
	}
	out, err := t.graph.OutputActivations()
	if err != nil {
		return 0, err
	}
	return floats.MaxIdx(out) + 1, nil
}

// Evaluate predicts a class for every row of x. Weights are not touched.
func (t *Trainer) Evaluate(x [][]float64) ([]int, error) {
	predicted := make([]int, len(x))
	for i, row := range x {
		class, err := t.Predict(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		predicted[i] = class
	}
	return predicted, nil
}

// Accuracy returns the fraction of positions where predicted and actual agree.
//
// Returns nn.ErrShapeMismatch if the slices differ in length; empty input gives 0.
func Accuracy(predicted, actual []int) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("%d predictions for %d labels: %w", len(predicted), len(actual), nn.ErrShapeMismatch)
	}
	if len(actual) == 0 {
		return 0, nil
	}
	correct := 0
	for i := range actual {
		if predicted[i] == actual[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(actual)), nil
}
