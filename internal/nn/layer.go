package nn

import "fmt"

// Layer groups the neurons sharing a layer index (1 = input, L = output).
//
// A layer holds only membership; activations and errors live on the neurons.
type Layer struct {
	index   int
	neurons []int
	hasBias bool
}

// NewLayer creates an empty layer.
func NewLayer(index int) *Layer {
	return &Layer{index: index}
}

// Index returns the 1-indexed layer number.
func (l *Layer) Index() int { return l.index }

// Neurons returns the member neuron ids in index order.
func (l *Layer) Neurons() []int { return l.neurons }

// HasBias reports whether the layer has a bias unit. Only the output layer has none.
func (l *Layer) HasBias() bool { return l.hasBias }

func (l *Layer) add(n *Neuron) {
	if n.IsBias() {
		l.hasBias = true
	}
	l.neurons = append(l.neurons, n.id)
}

// Activate computes the activations of every member.
//
// Layer 1 injects the feature row: neuron index j takes input[j-1], and the
// bias unit is pinned to 1. Every other layer delegates to Neuron.Activate.
//
// Parameters:
//   - neurons: Neuron collection of the network
//   - edges: Edge collection of the network
//   - input: Feature row, only read for layer 1 (may be nil otherwise)
func (l *Layer) Activate(neurons *NeuronSet, edges *EdgeSet, input []float64) error {
	if l.index == 1 {
		if want := l.width(); len(input) != want {
			return fmt.Errorf("layer 1: got %d features, want %d: %w", len(input), want, ErrShapeMismatch)
		}
	}

	for _, id := range l.neurons {
		n, err := neurons.ByID(id)
		if err != nil {
			return err
		}
		if l.index == 1 && !n.IsBias() {
			n.activation = input[n.key.Index-1]
			continue
		}
		if err := n.Activate(neurons, edges); err != nil {
			return fmt.Errorf("layer %d: %w", l.index, err)
		}
	}
	return nil
}

// PropagateError computes the errors of every non-bias member.
//
// The final layer compares its activations with the target row (neuron index
// j against target[j-1]). Hidden layers delegate to Neuron.PropagateError.
// Layer 1 is never passed here by Graph.Backward: inputs are not adjusted.
//
// Parameters:
//   - neurons: Neuron collection of the network
//   - edges: Edge collection of the network
//   - target: One-hot label row, only read for the final layer
//   - totalLayers: Number of layers in the network
func (l *Layer) PropagateError(neurons *NeuronSet, edges *EdgeSet, target []float64, totalLayers int) error {
	last := l.index == totalLayers
	if last {
		if want := l.width(); len(target) != want {
			return fmt.Errorf("layer %d: got %d targets, want %d: %w", l.index, len(target), want, ErrShapeMismatch)
		}
	}

	for _, id := range l.neurons {
		n, err := neurons.ByID(id)
		if err != nil {
			return err
		}
		if n.IsBias() {
			continue
		}
		if last {
			n.SetOutputError(target[n.key.Index-1])
			continue
		}
		if err := n.PropagateError(neurons, edges); err != nil {
			return fmt.Errorf("layer %d: %w", l.index, err)
		}
	}
	return nil
}

// width is the number of non-bias members.
func (l *Layer) width() int {
	w := len(l.neurons)
	if l.hasBias {
		w--
	}
	return w
}
