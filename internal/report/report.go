// Package report renders cross-validation results for people and for tools.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/bpnet/internal/train"
)

// Text writes one block per fold followed by the average accuracy:
//
//	Test set 1
//
//	Prediction accuracy: 0.9
//
//	Predicted classes for the test set:
//	1 2 2 1
//
//	Actual classes for the test set:
//	1 2 1 1
//	...
//	Average accuracy: 0.875
//	Standard deviation: 0.05
func Text(w io.Writer, res *train.Result) error {
	var b strings.Builder
	for _, f := range res.Folds {
		fmt.Fprintf(&b, "\nTest set %d\n\nPrediction accuracy: %s\n", f.Fold, formatFloat(f.Accuracy))
		fmt.Fprintf(&b, "\nPredicted classes for the test set:\n%s\n", joinInts(f.Predicted))
		fmt.Fprintf(&b, "\nActual classes for the test set:\n%s\n", joinInts(f.Actual))
	}
	fmt.Fprintf(&b, "\nAverage accuracy: %s\n", formatFloat(res.Mean))
	fmt.Fprintf(&b, "Standard deviation: %s\n", formatFloat(res.StdDev))

	_, err := io.WriteString(w, b.String())
	return err
}

type yamlFold struct {
	Fold      int     `yaml:"fold"`
	TrainSize int     `yaml:"train_size"`
	TestSize  int     `yaml:"test_size"`
	Cost      float64 `yaml:"cost"`
	Accuracy  float64 `yaml:"accuracy"`
	Predicted []int   `yaml:"predicted,flow"`
	Actual    []int   `yaml:"actual,flow"`
}

type yamlResult struct {
	RunID  string     `yaml:"run_id"`
	Seed   uint64     `yaml:"seed"`
	Sizes  []int      `yaml:"layer_sizes,flow"`
	Folds  []yamlFold `yaml:"folds"`
	Mean   float64    `yaml:"mean_accuracy"`
	StdDev float64    `yaml:"stddev_accuracy"`
}

// YAML writes the whole result as a YAML document.
func YAML(w io.Writer, res *train.Result) error {
	doc := yamlResult{
		RunID:  res.RunID.String(),
		Seed:   res.Seed,
		Sizes:  res.Sizes,
		Folds:  make([]yamlFold, len(res.Folds)),
		Mean:   res.Mean,
		StdDev: res.StdDev,
	}
	for i, f := range res.Folds {
		doc.Folds[i] = yamlFold(f)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
