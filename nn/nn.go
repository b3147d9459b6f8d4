// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/bpnet/internal/nn"
)

// Graph holds the layers, neurons and edges of one network.
type Graph = nn.Graph

// Rand is the random source used for weight initialization.
type Rand = nn.Rand

// Build creates a network with the given layer sizes, input first.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(seed, 0))
//	graph, err := nn.Build([]int{4, 5, 3}, rng)
func Build(sizes []int, rng Rand) (*Graph, error) {
	return nn.Build(sizes, rng)
}

// NeuronCount returns the number of neurons a network of the given sizes has.
func NeuronCount(sizes []int) int {
	return nn.NeuronCount(sizes)
}

// EdgeCount returns the number of edges a network of the given sizes has.
func EdgeCount(sizes []int) int {
	return nn.EdgeCount(sizes)
}

// Parts

// Neuron is a unit of the graph.
type Neuron = nn.Neuron

// NeuronKey addresses a neuron by layer and index.
type NeuronKey = nn.NeuronKey

// Edge is a weighted connection between consecutive layers.
type Edge = nn.Edge

// EdgeKey addresses an edge by its source neuron and target index.
type EdgeKey = nn.EdgeKey

// Layer lists the neurons of one layer.
type Layer = nn.Layer

// Network runs graph-wide delta, gradient and update passes.
type Network = nn.Network

// NeuronSet stores neurons with key and id indices.
type NeuronSet = nn.NeuronSet

// EdgeSet stores edges with key and id indices.
type EdgeSet = nn.EdgeSet

// Functions

// Sigmoid computes 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return nn.Sigmoid(x)
}

// XavierBound returns sqrt(6) / sqrt(fanIn + fanOut).
func XavierBound(fanIn, fanOut int) float64 {
	return nn.XavierBound(fanIn, fanOut)
}

// Errors

// LookupError reports a key or id missing from a collection.
type LookupError = nn.LookupError

var (
	ErrNotFound          = nn.ErrNotFound
	ErrInvalidLayerSizes = nn.ErrInvalidLayerSizes
	ErrShapeMismatch     = nn.ErrShapeMismatch
	ErrNoInstances       = nn.ErrNoInstances
)
