// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully connected sigmoid network stored as a graph.
//
// # Overview
//
// This package contains:
//   - Graph: layer sizes plus every neuron and edge, indexed by key and id
//   - Neuron, Edge, Layer, Network: the parts a Graph is built from
//   - Sigmoid activation and Xavier initialization
//   - Cost: regularized cross-entropy over a data set
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/bpnet/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewPCG(1, 2))
//
//	    // 2 inputs, 3 hidden neurons, 2 classes
//	    graph, err := nn.Build([]int{2, 3, 2}, rng)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Forward pass
//	    if err := graph.Forward([]float64{0.5, 1}); err != nil {
//	        log.Fatal(err)
//	    }
//	    out, _ := graph.OutputActivations()
//	}
//
// # Structure
//
// Every non-output layer has a bias neuron at index 0 whose activation is
// pinned to 1. Layer l+1 is fully connected to layer l, bias included:
//
//	neurons = Σ (n_l + 1) - 1
//	edges   = Σ (n_l + 1) · n_{l+1}
//
// Neurons are addressed by NeuronKey{Layer, Index} and edges by
// EdgeKey{StartLayer, StartIndex, EndIndex}. A missing key is an error
// matching ErrNotFound.
//
// # Training Step
//
//	graph.Network().ResetDeltas(graph.Edges())
//	for i := range x {
//	    graph.Forward(x[i])
//	    graph.Backward(y[i])
//	    graph.Network().UpdateDeltas(graph.Neurons(), graph.Edges())
//	}
//	graph.Network().UpdateGradients(graph.Edges(), len(x), lambda)
//	graph.Network().ApplyGradientSteps(graph.Edges(), lr)
//
// The optim package wraps the last two calls.
package nn
