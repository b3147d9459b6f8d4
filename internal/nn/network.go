package nn

import "fmt"

// Network holds the graph-wide operations of backpropagation.
//
// It does not own the neurons or edges; every method operates on the
// collections passed in. The counts are kept for diagnostics.
type Network struct {
	numNeurons int
	numEdges   int
}

// NewNetwork creates a Network for a graph of the given size.
func NewNetwork(numNeurons, numEdges int) *Network {
	return &Network{numNeurons: numNeurons, numEdges: numEdges}
}

// NumNeurons returns the total neuron count.
func (n *Network) NumNeurons() int { return n.numNeurons }

// NumEdges returns the total edge count.
func (n *Network) NumEdges() int { return n.numEdges }

// ResetDeltas zeroes the delta of every edge. Called once per iteration,
// before any instance is processed.
func (n *Network) ResetDeltas(edges *EdgeSet) {
	edges.Each(func(e *Edge) { e.ResetDelta() })
}

// UpdateDeltas accumulates activation(source)·error(target) into every edge.
//
// Called once per training instance, after its forward and backward passes.
func (n *Network) UpdateDeltas(neurons *NeuronSet, edges *EdgeSet) error {
	for i := range edges.items {
		e := &edges.items[i]
		src, err := neurons.Lookup(e.key.Source())
		if err != nil {
			return fmt.Errorf("edge #%d: %w", e.id, err)
		}
		dst, err := neurons.Lookup(e.key.Target())
		if err != nil {
			return fmt.Errorf("edge #%d: %w", e.id, err)
		}
		e.AccumulateDelta(src.activation, dst.err)
	}
	return nil
}

// UpdateGradients computes the gradient of every edge from its delta.
//
// Parameters:
//   - edges: Edge collection of the network
//   - instances: Number of training instances accumulated this iteration
//   - lambda: L2 regularization strength (bias edges are exempt)
func (n *Network) UpdateGradients(edges *EdgeSet, instances int, lambda float64) error {
	if instances <= 0 {
		return fmt.Errorf("update gradients with %d instances: %w", instances, ErrNoInstances)
	}
	edges.Each(func(e *Edge) { e.ComputeGradient(instances, lambda) })
	return nil
}

// ApplyGradientSteps moves every weight one step against its gradient.
func (n *Network) ApplyGradientSteps(edges *EdgeSet, learningRate float64) {
	edges.Each(func(e *Edge) { e.ApplyGradientStep(learningRate) })
}
