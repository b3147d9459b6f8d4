// Package nn implements a fully connected sigmoid network as a graph of
// neurons and edges addressed by structural key and by id.
package nn

import "fmt"

// Graph is one trained model: the neuron and edge collections, the layers
// that group them and the Network operating on them.
//
// A Graph belongs to a single fold and a single goroutine. Build a new one
// for every fold; nothing is carried over.
type Graph struct {
	sizes   []int
	neurons *NeuronSet
	edges   *EdgeSet
	layers  []*Layer
	network *Network
}

// NeuronCount returns Σ(n_i + 1) - 1, the number of neurons Build creates for sizes.
func NeuronCount(sizes []int) int {
	total := 0
	for _, n := range sizes {
		total += n + 1
	}
	return total - 1
}

// EdgeCount returns Σ (n_i + 1)·n_{i+1}, the number of edges Build creates for sizes.
func EdgeCount(sizes []int) int {
	total := 0
	for i := 0; i+1 < len(sizes); i++ {
		total += (sizes[i] + 1) * sizes[i+1]
	}
	return total
}

// Build constructs a fully connected network.
//
// Layer i gets neurons with indices 0..sizes[i-1], index 0 being the bias
// unit; the output layer has no bias. Every non-bias neuron of layer l > 1
// receives one edge from each neuron of layer l-1, bias included, with a
// Xavier-initialized weight. Neuron and edge ids are assigned in creation
// order starting at 1.
//
// Parameters:
//   - sizes: Non-bias neuron count per layer; sizes[0] is the feature count and
//     the last entry the class count
//   - rng: Random source for weight initialization
//
// Returns ErrInvalidLayerSizes if there are fewer than two layers or a size is not positive.
func Build(sizes []int, rng Rand) (*Graph, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("need at least 2 layers, got %d: %w", len(sizes), ErrInvalidLayerSizes)
	}
	for i, n := range sizes {
		if n < 1 {
			return nil, fmt.Errorf("layer %d has %d neurons: %w", i+1, n, ErrInvalidLayerSizes)
		}
	}

	g := &Graph{
		sizes:   append([]int(nil), sizes...),
		neurons: newNeuronSet(NeuronCount(sizes)),
		edges:   newEdgeSet(EdgeCount(sizes)),
		layers:  make([]*Layer, len(sizes)),
	}
	last := len(sizes)

	nextID := 0
	for l := 1; l <= last; l++ {
		layer := NewLayer(l)
		for j := 0; j <= sizes[l-1]; j++ {
			if j == 0 && l == last {
				continue
			}
			nextID++
			n := NewNeuron(nextID, NeuronKey{Layer: l, Index: j})
			if err := g.neurons.add(n); err != nil {
				return nil, err
			}
			layer.add(&n)
		}
		g.layers[l-1] = layer
	}

	// Incoming edges, recorded on the target as they are created.
	nextID = 0
	for i := range g.neurons.items {
		dst := &g.neurons.items[i]
		if dst.key.Layer == 1 || dst.IsBias() {
			continue
		}
		for from := 0; from <= sizes[dst.key.Layer-2]; from++ {
			nextID++
			e := NewEdge(nextID, EdgeKey{StartLayer: dst.key.Layer - 1, StartIndex: from, EndIndex: dst.key.Index})
			e.InitializeWeight(g.sizes, rng)
			if err := g.edges.add(e); err != nil {
				return nil, err
			}
			dst.inputs = append(dst.inputs, e.id)
		}
	}

	// Outgoing edges, found by structural key since the source never saw the ids.
	for i := range g.neurons.items {
		src := &g.neurons.items[i]
		if src.key.Layer == last {
			continue
		}
		for to := 1; to <= sizes[src.key.Layer]; to++ {
			e, err := g.edges.Lookup(EdgeKey{StartLayer: src.key.Layer, StartIndex: src.key.Index, EndIndex: to})
			if err != nil {
				return nil, fmt.Errorf("wire outputs of neuron %s: %w", src.key, err)
			}
			src.outputs = append(src.outputs, e.id)
		}
	}

	g.network = NewNetwork(g.neurons.Len(), g.edges.Len())
	return g, nil
}

// Sizes returns the layer sizes the graph was built from.
func (g *Graph) Sizes() []int { return g.sizes }

// NumLayers returns L.
func (g *Graph) NumLayers() int { return len(g.layers) }

// NumClasses returns the width of the output layer.
func (g *Graph) NumClasses() int { return g.sizes[len(g.sizes)-1] }

// Neurons returns the neuron collection.
func (g *Graph) Neurons() *NeuronSet { return g.neurons }

// Edges returns the edge collection.
func (g *Graph) Edges() *EdgeSet { return g.edges }

// Layer returns layer l (1-indexed).
func (g *Graph) Layer(l int) *Layer { return g.layers[l-1] }

// Network returns the graph-wide operations bound to this graph's size.
func (g *Graph) Network() *Network { return g.network }

// Forward activates layers 1..L in ascending order for one feature row.
func (g *Graph) Forward(input []float64) error {
	for _, layer := range g.layers {
		if err := layer.Activate(g.neurons, g.edges, input); err != nil {
			return err
		}
	}
	return nil
}

// Backward propagates errors through layers L..2 in descending order for one
// one-hot target row. Forward must have run for the same instance first.
func (g *Graph) Backward(target []float64) error {
	total := len(g.layers)
	for l := total; l >= 2; l-- {
		if err := g.layers[l-1].PropagateError(g.neurons, g.edges, target, total); err != nil {
			return err
		}
	}
	return nil
}

// OutputActivations returns the activations of the output layer, in index order.
func (g *Graph) OutputActivations() ([]float64, error) {
	out := g.layers[len(g.layers)-1]
	acts := make([]float64, 0, len(out.neurons))
	for _, id := range out.neurons {
		n, err := g.neurons.ByID(id)
		if err != nil {
			return nil, err
		}
		acts = append(acts, n.activation)
	}
	return acts, nil
}
