package nn

import (
	"fmt"
	"strconv"
)

// EdgeKey is the structural identity of an edge.
//
// StartIndex is the neuron index inside StartLayer (0 is the bias unit) and
// EndIndex the neuron index inside StartLayer+1.
type EdgeKey struct {
	StartLayer int
	StartIndex int
	EndIndex   int
}

// String formats the key as (layer, start -> end).
func (k EdgeKey) String() string {
	return fmt.Sprintf("(%d, %d -> %d)", k.StartLayer, k.StartIndex, k.EndIndex)
}

// Source returns the key of the neuron the edge leaves.
func (k EdgeKey) Source() NeuronKey {
	return NeuronKey{Layer: k.StartLayer, Index: k.StartIndex}
}

// Target returns the key of the neuron the edge enters.
func (k EdgeKey) Target() NeuronKey {
	return NeuronKey{Layer: k.StartLayer + 1, Index: k.EndIndex}
}

// Edge is one weighted connection from a neuron in layer L to a neuron in layer L+1.
//
// Delta accumulates activation*error over all instances of one iteration and
// is consumed by ComputeGradient. Updates are full batch: the weight changes
// once per iteration, never per instance.
type Edge struct {
	id       int
	key      EdgeKey
	weight   float64
	delta    float64
	gradient float64
}

// NewEdge creates an edge with zero weight.
func NewEdge(id int, key EdgeKey) Edge {
	return Edge{id: id, key: key}
}

// ID returns the edge id.
func (e *Edge) ID() int { return e.id }

// Key returns the structural key.
func (e *Edge) Key() EdgeKey { return e.key }

// Weight returns the current weight.
func (e *Edge) Weight() float64 { return e.weight }

// Delta returns the accumulated delta.
func (e *Edge) Delta() float64 { return e.delta }

// Gradient returns the last computed gradient.
func (e *Edge) Gradient() float64 { return e.gradient }

// SetWeight overwrites the weight.
func (e *Edge) SetWeight(w float64) { e.weight = w }

// IsBias reports whether the edge leaves a bias unit.
func (e *Edge) IsBias() bool { return e.key.StartIndex == 0 }

// InitializeWeight samples the weight from U(-ε, ε) where ε is the Xavier bound
// of the edge's own start and end layers.
//
// Parameters:
//   - sizes: Neuron count per layer, bias excluded (sizes[0] is layer 1)
//   - rng: Random source
func (e *Edge) InitializeWeight(sizes []int, rng Rand) {
	e.weight = Xavier(rng, sizes[e.key.StartLayer-1], sizes[e.key.StartLayer])
}

// AccumulateDelta adds activation*error to the delta.
func (e *Edge) AccumulateDelta(activation, err float64) {
	e.delta += activation * err
}

// ResetDelta sets the delta to zero.
func (e *Edge) ResetDelta() {
	e.delta = 0
}

// ComputeGradient derives the gradient from the accumulated delta.
//
// Bias weights are not regularized:
//
//	bias:     gradient = delta / m
//	non-bias: gradient = (delta + λ·w) / m
func (e *Edge) ComputeGradient(instances int, lambda float64) {
	m := float64(instances)
	if e.IsBias() {
		e.gradient = e.delta / m
		return
	}
	e.gradient = (e.delta + lambda*e.weight) / m
}

// ApplyGradientStep performs w -= lr * gradient.
func (e *Edge) ApplyGradientStep(learningRate float64) {
	e.weight -= learningRate * e.gradient
}

// EdgeSet is the flat edge arena of one network plus its lookup indices.
type EdgeSet struct {
	items []Edge
	byKey map[EdgeKey]int
	byID  map[int]int
}

func newEdgeSet(capacity int) *EdgeSet {
	return &EdgeSet{
		items: make([]Edge, 0, capacity),
		byKey: make(map[EdgeKey]int, capacity),
		byID:  make(map[int]int, capacity),
	}
}

func (s *EdgeSet) add(e Edge) error {
	if _, dup := s.byKey[e.key]; dup {
		return fmt.Errorf("duplicate edge key %s", e.key)
	}
	if _, dup := s.byID[e.id]; dup {
		return fmt.Errorf("duplicate edge id %d", e.id)
	}
	slot := len(s.items)
	s.items = append(s.items, e)
	s.byKey[e.key] = slot
	s.byID[e.id] = slot
	return nil
}

// Len returns the number of edges.
func (s *EdgeSet) Len() int { return len(s.items) }

// At returns the edge stored in slot i, in creation order.
func (s *EdgeSet) At(i int) *Edge { return &s.items[i] }

// Lookup finds an edge by structural key.
func (s *EdgeSet) Lookup(key EdgeKey) (*Edge, error) {
	slot, ok := s.byKey[key]
	if !ok {
		return nil, &LookupError{Kind: "edge", Key: key.String()}
	}
	return &s.items[slot], nil
}

// ByID finds an edge by id.
func (s *EdgeSet) ByID(id int) (*Edge, error) {
	slot, ok := s.byID[id]
	if !ok {
		return nil, &LookupError{Kind: "edge", Key: "#" + strconv.Itoa(id)}
	}
	return &s.items[slot], nil
}

// Each calls f for every edge in creation order.
func (s *EdgeSet) Each(f func(e *Edge)) {
	for i := range s.items {
		f(&s.items[i])
	}
}
