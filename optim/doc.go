// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the optimizer for training graph networks.
//
// # Overview
//
// This package contains:
//   - GradientDescent: full-batch gradient descent with L2 regularization
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/bpnet/nn"
//	    "github.com/born-ml/bpnet/optim"
//	)
//
//	func main() {
//	    graph, _ := nn.Build([]int{2, 2, 2}, rng)
//
//	    optimizer, _ := optim.NewGradientDescent(optim.GradientDescentConfig{
//	        LR:     0.5,
//	        Lambda: 0,
//	    })
//
//	    for range iterations {
//	        // 1. Zero accumulated deltas
//	        optimizer.ZeroGrad(graph)
//
//	        // 2. Forward and backward pass per instance
//	        for i := range x {
//	            graph.Forward(x[i])
//	            graph.Backward(y[i])
//	            graph.Network().UpdateDeltas(graph.Neurons(), graph.Edges())
//	        }
//
//	        // 3. Update weights
//	        optimizer.Step(graph, len(x))
//	    }
//	}
//
// # Update Rule
//
//	gradient = (delta + λ·w) / m    (bias edges: delta / m)
//	w        = w - lr · gradient
package optim
