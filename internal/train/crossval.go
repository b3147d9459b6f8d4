package train

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/bpnet/internal/dataset"
	"github.com/born-ml/bpnet/internal/nn"
	"github.com/born-ml/bpnet/internal/optim"
	"github.com/born-ml/bpnet/internal/parallel"
)

// Config holds the cross-validation settings.
type Config struct {
	Iterations   int     // Training iterations per fold
	Folds        int     // Number of random splits
	TrainPercent int     // Share of rows used for training, in [1, 99]
	LearningRate float64 // Gradient descent step size
	Lambda       float64 // L2 regularization strength
	Seed         uint64  // Base seed; fold k draws from PCG(Seed, k)

	Parallel parallel.Config // How folds are spread over goroutines
}

// FoldResult is the outcome of one split.
type FoldResult struct {
	Fold      int     // 1-indexed
	TrainSize int     // Rows used for training
	TestSize  int     // Rows held out
	Cost      float64 // Final training cost
	Accuracy  float64 // Fraction of test rows classified correctly
	Predicted []int   // Predicted classes, test row order
	Actual    []int   // Actual classes, test row order
}

// Result gathers every fold of a run.
type Result struct {
	RunID  uuid.UUID
	Seed   uint64
	Sizes  []int // Layer sizes, input to output
	Folds  []FoldResult
	Mean   float64 // Mean fold accuracy
	StdDev float64 // Sample standard deviation of fold accuracy; 0 for a single fold
}

// Accuracies returns the accuracy of every fold, in fold order.
func (r *Result) Accuracies() []float64 {
	out := make([]float64, len(r.Folds))
	for i, f := range r.Folds {
		out[i] = f.Accuracy
	}
	return out
}

// CrossValidate trains and tests a fresh network on cfg.Folds random splits of ds.
//
// The network has ds.NumFeatures() inputs, the given hidden layers and
// ds.Classes() outputs. Fold k seeds its own generator with (cfg.Seed, k) and
// uses it first for the split, then for weight initialization, so the result
// is the same however folds are scheduled.
//
// The first failing fold aborts the run.
func CrossValidate(ds *dataset.Dataset, hidden []int, cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Folds < 1 {
		return nil, fmt.Errorf("folds %d must be positive", cfg.Folds)
	}

	sizes := make([]int, 0, len(hidden)+2)
	sizes = append(sizes, ds.NumFeatures())
	sizes = append(sizes, hidden...)
	sizes = append(sizes, ds.Classes())

	res := &Result{
		RunID: uuid.New(),
		Seed:  cfg.Seed,
		Sizes: sizes,
		Folds: make([]FoldResult, cfg.Folds),
	}
	logger = logger.With("run_id", res.RunID.String())
	logger.Info("cross validation", "sizes", sizes, "folds", cfg.Folds, "seed", cfg.Seed)

	targets := ds.OneHot()
	err := parallel.For(cfg.Folds, func(k int) error {
		fold, err := runFold(ds, targets, sizes, cfg, k, logger.With("fold", k+1))
		if err != nil {
			return fmt.Errorf("fold %d: %w", k+1, err)
		}
		res.Folds[k] = *fold
		return nil
	}, cfg.Parallel)
	if err != nil {
		return nil, err
	}

	acc := res.Accuracies()
	if len(acc) > 1 {
		res.Mean, res.StdDev = stat.MeanStdDev(acc, nil)
	} else {
		res.Mean = acc[0]
	}
	logger.Info("done", "mean_accuracy", res.Mean, "stddev", res.StdDev)
	return res, nil
}

func runFold(ds *dataset.Dataset, targets [][]float64, sizes []int, cfg Config, k int, logger *slog.Logger) (*FoldResult, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, uint64(k)))

	trainIdx, testIdx, err := dataset.Split(ds.NumSamples(), cfg.TrainPercent, rng)
	if err != nil {
		return nil, err
	}
	trainSet := ds.Subset(trainIdx)
	testSet := ds.Subset(testIdx)
	trainY := pick(targets, trainIdx)

	graph, err := nn.Build(sizes, rng)
	if err != nil {
		return nil, err
	}
	opt, err := optim.NewGradientDescent(optim.GradientDescentConfig{LR: cfg.LearningRate, Lambda: cfg.Lambda})
	if err != nil {
		return nil, err
	}

	trainer := NewTrainer(graph, opt, logger)
	if err := trainer.Train(trainSet.Features, trainY, cfg.Iterations); err != nil {
		return nil, err
	}
	cost, err := trainer.Cost(trainSet.Features, trainY)
	if err != nil {
		return nil, err
	}

	predicted, err := trainer.Evaluate(testSet.Features)
	if err != nil {
		return nil, err
	}
	accuracy, err := Accuracy(predicted, testSet.Labels)
	if err != nil {
		return nil, err
	}
	fold := &FoldResult{
		Fold:      k + 1,
		TrainSize: len(trainIdx),
		TestSize:  len(testIdx),
		Cost:      cost,
		Accuracy:  accuracy,
		Predicted: predicted,
		Actual:    slices.Clone(testSet.Labels),
	}
	logger.Info("fold done", "accuracy", fold.Accuracy, "cost", cost)
	return fold, nil
}

func pick[T any](rows []T, indices []int) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = rows[idx]
	}
	return out
}
