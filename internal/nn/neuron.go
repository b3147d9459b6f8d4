package nn

import (
	"fmt"
	"strconv"
)

// NeuronKey is the structural identity of a neuron: its layer (1-indexed) and
// its index inside that layer (0 is the bias unit).
type NeuronKey struct {
	Layer int
	Index int
}

// String formats the key as (layer, index).
func (k NeuronKey) String() string {
	return fmt.Sprintf("(%d, %d)", k.Layer, k.Index)
}

// Neuron is one unit of a layer.
//
// Activation and error are per-instance state: every forward pass overwrites
// the activation and every backward pass overwrites the error. Edges are
// referenced by id, in the order they were created.
type Neuron struct {
	id         int
	key        NeuronKey
	activation float64
	err        float64
	inputs     []int
	outputs    []int
}

// NewNeuron creates a neuron with no edges.
func NewNeuron(id int, key NeuronKey) Neuron {
	return Neuron{id: id, key: key}
}

// ID returns the neuron id.
func (n *Neuron) ID() int { return n.id }

// Key returns the structural key.
func (n *Neuron) Key() NeuronKey { return n.key }

// Layer returns the 1-indexed layer number.
func (n *Neuron) Layer() int { return n.key.Layer }

// Index returns the index inside the layer.
func (n *Neuron) Index() int { return n.key.Index }

// IsBias reports whether the neuron is a bias unit.
func (n *Neuron) IsBias() bool { return n.key.Index == 0 }

// Activation returns the activation of the last forward pass.
func (n *Neuron) Activation() float64 { return n.activation }

// Error returns the error of the last backward pass.
func (n *Neuron) Error() float64 { return n.err }

// SetActivation overwrites the activation.
func (n *Neuron) SetActivation(a float64) { n.activation = a }

// SetError overwrites the error.
func (n *Neuron) SetError(e float64) { n.err = e }

// InputEdges returns the ids of incoming edges.
func (n *Neuron) InputEdges() []int { return n.inputs }

// OutputEdges returns the ids of outgoing edges.
func (n *Neuron) OutputEdges() []int { return n.outputs }

// Activate recomputes the activation from the incoming edges.
//
// A bias unit is pinned to 1. Any other neuron gets
//
//	σ(Σ w_e · a_source(e))
//
// over its incoming edges. Source activations must already belong to the
// current pass, which Graph.Forward guarantees by walking layers in
// ascending order.
func (n *Neuron) Activate(neurons *NeuronSet, edges *EdgeSet) error {
	if n.IsBias() {
		n.activation = 1
		return nil
	}

	var z float64
	for _, id := range n.inputs {
		e, err := edges.ByID(id)
		if err != nil {
			return err
		}
		src, err := neurons.Lookup(e.key.Source())
		if err != nil {
			return err
		}
		z += e.weight * src.activation
	}
	n.activation = Sigmoid(z)
	return nil
}

// SetOutputError applies the output-layer rule: error = activation - target.
func (n *Neuron) SetOutputError(target float64) {
	n.err = n.activation - target
}

// PropagateError recomputes the error of a hidden neuron from its outgoing edges:
//
//	a(1-a) · Σ w_e · error_target(e)
//
// Target errors must already belong to the current pass, which Graph.Backward
// guarantees by walking layers in descending order.
func (n *Neuron) PropagateError(neurons *NeuronSet, edges *EdgeSet) error {
	var sum float64
	for _, id := range n.outputs {
		e, err := edges.ByID(id)
		if err != nil {
			return err
		}
		dst, err := neurons.Lookup(e.key.Target())
		if err != nil {
			return err
		}
		sum += e.weight * dst.err
	}
	n.err = SigmoidDerivative(n.activation) * sum
	return nil
}

// NeuronSet is the flat neuron arena of one network plus its lookup indices.
type NeuronSet struct {
	items []Neuron
	byKey map[NeuronKey]int
	byID  map[int]int
}

func newNeuronSet(capacity int) *NeuronSet {
	return &NeuronSet{
		items: make([]Neuron, 0, capacity),
		byKey: make(map[NeuronKey]int, capacity),
		byID:  make(map[int]int, capacity),
	}
}

func (s *NeuronSet) add(n Neuron) error {
	if _, dup := s.byKey[n.key]; dup {
		return fmt.Errorf("duplicate neuron key %s", n.key)
	}
	if _, dup := s.byID[n.id]; dup {
		return fmt.Errorf("duplicate neuron id %d", n.id)
	}
	slot := len(s.items)
	s.items = append(s.items, n)
	s.byKey[n.key] = slot
	s.byID[n.id] = slot
	return nil
}

// Len returns the number of neurons.
func (s *NeuronSet) Len() int { return len(s.items) }

// At returns the neuron stored in slot i, in creation order.
func (s *NeuronSet) At(i int) *Neuron { return &s.items[i] }

// Lookup finds a neuron by structural key.
func (s *NeuronSet) Lookup(key NeuronKey) (*Neuron, error) {
	slot, ok := s.byKey[key]
	if !ok {
		return nil, &LookupError{Kind: "neuron", Key: key.String()}
	}
	return &s.items[slot], nil
}

// ByID finds a neuron by id.
func (s *NeuronSet) ByID(id int) (*Neuron, error) {
	slot, ok := s.byID[id]
	if !ok {
		return nil, &LookupError{Kind: "neuron", Key: "#" + strconv.Itoa(id)}
	}
	return &s.items[slot], nil
}
