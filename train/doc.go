// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides the training loop and evaluation for graph networks.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/bpnet/nn"
//	    "github.com/born-ml/bpnet/optim"
//	    "github.com/born-ml/bpnet/train"
//	)
//
//	func main() {
//	    graph, _ := nn.Build([]int{2, 3, 2}, rng)
//	    optimizer, _ := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 1})
//	    trainer := train.NewTrainer(graph, optimizer, nil)
//
//	    // Full-batch gradient descent
//	    if err := trainer.Train(x, y, 5000); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Predicted classes are 1-indexed; ties go to the lowest class
//	    predicted, _ := trainer.Evaluate(x)
//	    accuracy, _ := train.Accuracy(predicted, labels)
//	}
package train
