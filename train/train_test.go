// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/bpnet/nn"
	"github.com/born-ml/bpnet/optim"
	"github.com/born-ml/bpnet/train"
)

// TestTrainer verifies that the public packages fit together for a training run.
func TestTrainer(t *testing.T) {
	graph, err := nn.Build([]int{1, 2}, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	optimizer, err := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 1})
	if err != nil {
		t.Fatalf("NewGradientDescent failed: %v", err)
	}
	trainer := train.NewTrainer(graph, optimizer, nil)

	x := [][]float64{{0}, {1}}
	y := [][]float64{{1, 0}, {0, 1}}
	if err := trainer.Train(x, y, 2000); err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	predicted, err := trainer.Evaluate(x)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	accuracy, err := train.Accuracy(predicted, []int{1, 2})
	if err != nil {
		t.Fatalf("Accuracy failed: %v", err)
	}
	if accuracy != 1 {
		t.Errorf("accuracy = %v, want 1 (predicted %v)", accuracy, predicted)
	}
}

// TestAccuracyMismatch verifies the public error for unpaired slices.
func TestAccuracyMismatch(t *testing.T) {
	if _, err := train.Accuracy([]int{1}, []int{1, 2}); !errors.Is(err, nn.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}
