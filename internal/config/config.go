// Package config loads and validates the training hyperparameters.
//
// Two formats are accepted. The CSV format has five non-blank lines:
//
//	2000   iterations per fold
//	5      number of cross-validation folds
//	75     percentage of rows used for training
//	0.5    learning rate
//	0      L2 regularization strength (lambda)
//
// The four-line form omits the percentage and trains on 70% of the rows.
//
// Files ending in .yaml or .yml are read as YAML and may also carry the
// hidden layer sizes and the random seed:
//
//	iterations: 2000
//	folds: 5
//	train_percentage: 75
//	learning_rate: 0.5
//	lambda: 0
//	hidden_layers: [2]
//	seed: 42
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/bpnet/internal/dataset"
)

// ErrInvalid reports a hyperparameter outside its domain.
var ErrInvalid = errors.New("invalid configuration")

// Hyperparameters controls one cross-validation run.
type Hyperparameters struct {
	Iterations      int     `yaml:"iterations"`              // Training iterations per fold
	Folds           int     `yaml:"folds"`                   // Number of random train/test splits
	TrainPercentage int     `yaml:"train_percentage"`        // Share of rows used for training, in [1, 99]
	LearningRate    float64 `yaml:"learning_rate"`           // Gradient descent step size (> 0)
	Lambda          float64 `yaml:"lambda"`                  // L2 regularization strength (>= 0)
	HiddenLayers    []int   `yaml:"hidden_layers,omitempty"` // Optional hidden layer sizes
	Seed            uint64  `yaml:"seed,omitempty"`          // Optional seed; 0 means unset
}

// Load reads hyperparameters from path, choosing the format by extension,
// and validates them.
func Load(path string) (*Hyperparameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parameters: %w", err)
	}
	defer f.Close()

	var h *Hyperparameters
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		h, err = ReadYAML(f)
	default:
		h, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// DefaultTrainPercentage is the training share used by the four-line format.
const DefaultTrainPercentage = 70

// ReadCSV parses the four- or five-line format and validates the result.
// Blank lines are skipped.
func ReadCSV(r io.Reader) (*Hyperparameters, error) {
	type entry struct {
		line int
		text string
	}
	var entries []entry
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if text := strings.TrimSpace(sc.Text()); text != "" {
			entries = append(entries, entry{line: n, text: text})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	h := Hyperparameters{TrainPercentage: DefaultTrainPercentage}
	var ints []*int
	switch len(entries) {
	case 4:
		ints = []*int{&h.Iterations, &h.Folds}
	case 5:
		ints = []*int{&h.Iterations, &h.Folds, &h.TrainPercentage}
	default:
		return nil, fmt.Errorf("got %d lines, want 4 or 5: %w", len(entries), ErrInvalid)
	}
	reals := []*float64{&h.LearningRate, &h.Lambda}

	for i, dst := range ints {
		v, err := dataset.ParseCount(entries[i].text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", entries[i].line, err)
		}
		*dst = v
	}
	for i, dst := range reals {
		e := entries[len(ints)+i]
		v, err := dataset.ParseReal(e.text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", e.line, err)
		}
		*dst = v
	}

	if err := h.Validate(); err != nil {
		return nil, err
	}
	return &h, nil
}

// ReadYAML decodes a YAML document and validates the result. Unknown keys are rejected.
func ReadYAML(r io.Reader) (*Hyperparameters, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var h Hyperparameters
	if err := dec.Decode(&h); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalid)
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if err := h.Validate(); err != nil {
		return nil, err
	}
	return &h, nil
}

// Validate checks every field against its domain.
func (h *Hyperparameters) Validate() error {
	switch {
	case h.Iterations < 1:
		return fmt.Errorf("iterations %d must be positive: %w", h.Iterations, ErrInvalid)
	case h.Folds < 1:
		return fmt.Errorf("folds %d must be positive: %w", h.Folds, ErrInvalid)
	case h.TrainPercentage < 1 || h.TrainPercentage > 99:
		return fmt.Errorf("train percentage %d must be in [1, 99]: %w", h.TrainPercentage, ErrInvalid)
	case !(h.LearningRate > 0):
		return fmt.Errorf("learning rate %v must be positive: %w", h.LearningRate, ErrInvalid)
	case !(h.Lambda >= 0):
		return fmt.Errorf("lambda %v must not be negative: %w", h.Lambda, ErrInvalid)
	}
	for i, n := range h.HiddenLayers {
		if n < 1 {
			return fmt.Errorf("hidden layer %d has size %d: %w", i+1, n, ErrInvalid)
		}
	}
	return nil
}

// String lists the parameters one per line.
func (h *Hyperparameters) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "iterations: %d\n", h.Iterations)
	fmt.Fprintf(&b, "folds: %d\n", h.Folds)
	fmt.Fprintf(&b, "train_percentage: %d\n", h.TrainPercentage)
	fmt.Fprintf(&b, "learning_rate: %g\n", h.LearningRate)
	fmt.Fprintf(&b, "lambda: %g\n", h.Lambda)
	if len(h.HiddenLayers) > 0 {
		fmt.Fprintf(&b, "hidden_layers: %v\n", h.HiddenLayers)
	}
	return b.String()
}
