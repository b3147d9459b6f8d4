// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"log/slog"

	"github.com/born-ml/bpnet/internal/train"
	"github.com/born-ml/bpnet/nn"
	"github.com/born-ml/bpnet/optim"
)

// Trainer runs full-batch iterations and predictions on one graph.
type Trainer = train.Trainer

// NewTrainer creates a trainer. A nil logger discards everything.
//
// Example:
//
//	graph, _ := nn.Build([]int{2, 3, 2}, rng)
//	optimizer, _ := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 1})
//	trainer := train.NewTrainer(graph, optimizer, nil)
func NewTrainer(graph *nn.Graph, optimizer optim.Optimizer, logger *slog.Logger) *Trainer {
	return train.NewTrainer(graph, optimizer, logger)
}

// Accuracy returns the fraction of positions where predicted and actual agree.
// Slices of different length are an error matching nn.ErrShapeMismatch.
func Accuracy(predicted, actual []int) (float64, error) {
	return train.Accuracy(predicted, actual)
}
