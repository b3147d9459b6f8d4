package optim_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/bpnet/internal/nn"
	"github.com/born-ml/bpnet/internal/optim"
)

// Helper to check float equality with tolerance.
func floatEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// newChain builds a 1-1 network with bias weight b and input weight w.
func newChain(t *testing.T, b, w float64) (*nn.Graph, *nn.Edge, *nn.Edge) {
	t.Helper()
	g, err := nn.Build([]int{1, 1}, rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	bias, err := g.Edges().Lookup(nn.EdgeKey{StartLayer: 1, StartIndex: 0, EndIndex: 1})
	if err != nil {
		t.Fatalf("Lookup bias: %v", err)
	}
	weight, err := g.Edges().Lookup(nn.EdgeKey{StartLayer: 1, StartIndex: 1, EndIndex: 1})
	if err != nil {
		t.Fatalf("Lookup weight: %v", err)
	}
	bias.SetWeight(b)
	weight.SetWeight(w)
	return g, bias, weight
}

// accumulate runs forward, backward and delta accumulation for one instance.
func accumulate(t *testing.T, g *nn.Graph, x, y float64) {
	t.Helper()
	if err := g.Forward([]float64{x}); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if err := g.Backward([]float64{y}); err != nil {
		t.Fatalf("Backward: %v", err)
	}
	if err := g.Network().UpdateDeltas(g.Neurons(), g.Edges()); err != nil {
		t.Fatalf("UpdateDeltas: %v", err)
	}
}

// TestGradientDescent_SimpleUpdate tests one batch step without regularization.
func TestGradientDescent_SimpleUpdate(t *testing.T) {
	g, bias, weight := newChain(t, 0, 0)

	optimizer, err := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.1})
	if err != nil {
		t.Fatalf("NewGradientDescent: %v", err)
	}

	optimizer.ZeroGrad(g)
	accumulate(t, g, 2, 1)
	if err := optimizer.Step(g, 1); err != nil {
		t.Fatalf("Step: %v", err)
	}

	// Activation is σ(0) = 0.5, error = 0.5 - 1 = -0.5.
	// bias:   grad = 1 * -0.5 = -0.5, w = 0 - 0.1 * -0.5 = 0.05
	// weight: grad = 2 * -0.5 = -1.0, w = 0 - 0.1 * -1.0 = 0.1
	if !floatEqual(bias.Weight(), 0.05, 1e-12) {
		t.Errorf("bias weight: got %f, want 0.05", bias.Weight())
	}
	if !floatEqual(weight.Weight(), 0.1, 1e-12) {
		t.Errorf("weight: got %f, want 0.1", weight.Weight())
	}
}

// TestGradientDescent_Regularization tests that lambda shrinks only non-bias weights.
func TestGradientDescent_Regularization(t *testing.T) {
	g, bias, weight := newChain(t, 1, 1)

	optimizer, err := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 1, Lambda: 2})
	if err != nil {
		t.Fatalf("NewGradientDescent: %v", err)
	}

	// Input 0 keeps the data term of the weight gradient at zero.
	optimizer.ZeroGrad(g)
	accumulate(t, g, 0, 1)
	accumulate(t, g, 0, 1)
	if err := optimizer.Step(g, 2); err != nil {
		t.Fatalf("Step: %v", err)
	}

	// weight: grad = (0 + 2*1) / 2 = 1, w = 1 - 1 = 0
	if !floatEqual(weight.Weight(), 0, 1e-12) {
		t.Errorf("weight: got %f, want 0", weight.Weight())
	}

	// bias: grad = 2 * (σ(1) - 1) / 2, no lambda term
	a := nn.Sigmoid(1)
	want := 1 - (a - 1)
	if !floatEqual(bias.Weight(), want, 1e-12) {
		t.Errorf("bias weight: got %f, want %f", bias.Weight(), want)
	}
}

// TestGradientDescent_ZeroGrad tests ZeroGrad clears deltas.
func TestGradientDescent_ZeroGrad(t *testing.T) {
	g, _, _ := newChain(t, 0.3, -0.2)

	optimizer, err := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.1})
	if err != nil {
		t.Fatalf("NewGradientDescent: %v", err)
	}

	accumulate(t, g, 1, 0)
	optimizer.ZeroGrad(g)

	g.Edges().Each(func(e *nn.Edge) {
		if e.Delta() != 0 {
			t.Errorf("edge %s: delta %f after ZeroGrad", e.Key(), e.Delta())
		}
	})
}

// TestGradientDescent_ZeroLR tests that a zero learning rate never moves weights.
func TestGradientDescent_ZeroLR(t *testing.T) {
	g, bias, weight := newChain(t, 0.3, -0.2)

	optimizer, err := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0, Lambda: 1})
	if err != nil {
		t.Fatalf("NewGradientDescent: %v", err)
	}

	for i := 0; i < 50; i++ {
		optimizer.ZeroGrad(g)
		accumulate(t, g, 1, 0)
		if err := optimizer.Step(g, 1); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}

	if bias.Weight() != 0.3 || weight.Weight() != -0.2 {
		t.Errorf("weights moved: bias %f, weight %f", bias.Weight(), weight.Weight())
	}
}

// TestGradientDescent_StepNoInstances tests the instance count precondition.
func TestGradientDescent_StepNoInstances(t *testing.T) {
	g, _, _ := newChain(t, 0, 0)

	optimizer, err := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.1})
	if err != nil {
		t.Fatalf("NewGradientDescent: %v", err)
	}

	if err := optimizer.Step(g, 0); err == nil {
		t.Error("Step with zero instances should fail")
	}
}

// TestGradientDescent_InvalidConfig tests config validation.
func TestGradientDescent_InvalidConfig(t *testing.T) {
	if _, err := optim.NewGradientDescent(optim.GradientDescentConfig{LR: -1}); err == nil {
		t.Error("negative learning rate should be rejected")
	}
	if _, err := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 1, Lambda: -0.5}); err == nil {
		t.Error("negative lambda should be rejected")
	}
}

// TestGradientDescent_GetSetLR tests learning rate getter/setter.
func TestGradientDescent_GetSetLR(t *testing.T) {
	optimizer, err := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.01, Lambda: 0.5})
	if err != nil {
		t.Fatalf("NewGradientDescent: %v", err)
	}

	if optimizer.GetLR() != 0.01 {
		t.Errorf("GetLR: got %f, want 0.01", optimizer.GetLR())
	}

	optimizer.SetLR(0.001)
	if optimizer.GetLR() != 0.001 {
		t.Errorf("GetLR after SetLR: got %f, want 0.001", optimizer.GetLR())
	}
	if optimizer.Lambda() != 0.5 {
		t.Errorf("Lambda: got %f, want 0.5", optimizer.Lambda())
	}

	var _ optim.Optimizer = optimizer
}
