// Package main provides the bpnet CLI: it trains a sigmoid network on CSV data
// and reports its accuracy over repeated random train/test splits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/born-ml/bpnet/internal/config"
	"github.com/born-ml/bpnet/internal/dataset"
	"github.com/born-ml/bpnet/internal/parallel"
	"github.com/born-ml/bpnet/internal/report"
	"github.com/born-ml/bpnet/internal/train"
)

const version = "v0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bpnet: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "version" {
		_, err := fmt.Fprintf(stdout, "bpnet %s\n", version)
		return err
	}

	fs := flag.NewFlagSet("bpnet", flag.ContinueOnError)
	fs.SetOutput(stderr)

	featuresPath := fs.String("x", "x.csv", "CSV file with one feature row per instance")
	labelsPath := fs.String("y", "y.csv", "CSV file with one class label (1..C) per instance")
	layersPath := fs.String("layers", "layers.csv", "File with one hidden layer size per line (\"\" = use the parameters file)")
	paramsPath := fs.String("params", "parameters.csv", "Hyperparameters: 4- or 5-line CSV, or .yaml")
	seed := fs.Uint64("seed", 0, "Random seed (0 = parameters file, then clock)")
	workers := fs.Int("workers", 0, "Folds trained concurrently (0 = physical cores)")
	format := fs.String("format", "text", "Report format: text or yaml")
	verbose := fs.Bool("v", false, "Log training progress")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *format != "text" && *format != "yaml" {
		return fmt.Errorf("unknown format %q", *format)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	params, err := config.Load(*paramsPath)
	if err != nil {
		return err
	}
	ds, err := dataset.Load(*featuresPath, *labelsPath)
	if err != nil {
		return err
	}

	hidden := params.HiddenLayers
	if *layersPath != "" {
		hidden, err = dataset.LoadLayerSizes(*layersPath)
		if err != nil {
			return err
		}
	}

	runSeed := *seed
	if runSeed == 0 {
		runSeed = params.Seed
	}
	if runSeed == 0 {
		runSeed = uint64(time.Now().UnixNano())
	}
	logger.Info("loaded",
		"instances", ds.NumSamples(),
		"features", ds.NumFeatures(),
		"classes", ds.Classes(),
		"hidden", hidden,
		"seed", runSeed,
	)

	res, err := train.CrossValidate(ds, hidden, train.Config{
		Iterations:   params.Iterations,
		Folds:        params.Folds,
		TrainPercent: params.TrainPercentage,
		LearningRate: params.LearningRate,
		Lambda:       params.Lambda,
		Seed:         runSeed,
		Parallel:     parallel.DefaultConfig().WithWorkers(*workers),
	}, logger)
	if err != nil {
		return err
	}

	if *format == "yaml" {
		return report.YAML(stdout, res)
	}
	return report.Text(stdout, res)
}
