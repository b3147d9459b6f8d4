// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/bpnet/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// Gradient Descent

// GradientDescent represents full-batch gradient descent with L2 regularization.
type GradientDescent = optim.GradientDescent

// GradientDescentConfig contains configuration for GradientDescent.
type GradientDescentConfig = optim.GradientDescentConfig

// NewGradientDescent creates a new GradientDescent optimizer.
//
// Example:
//
//	graph, _ := nn.Build([]int{2, 2, 2}, rng)
//	optimizer, err := optim.NewGradientDescent(optim.GradientDescentConfig{
//	    LR:     0.5,
//	    Lambda: 0.01,
//	})
func NewGradientDescent(config GradientDescentConfig) (*GradientDescent, error) {
	return optim.NewGradientDescent(config)
}
