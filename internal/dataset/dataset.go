// Package dataset loads and prepares classification data: feature rows,
// 1-indexed class labels and hidden layer sizes from CSV files, one-hot
// targets and random train/test partitions.
package dataset

import (
	"slices"

	"github.com/pkg/errors"
)

// Dataset holds feature rows and their class labels.
//
// Labels are 1-indexed and contiguous: every class in 1..Classes() occurs at
// least once.
type Dataset struct {
	Features [][]float64 // [num_samples, num_features]
	Labels   []int       // [num_samples]
	classes  int
}

// New validates features and labels and bundles them.
func New(features [][]float64, labels []int) (*Dataset, error) {
	if len(features) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "no feature rows")
	}
	if len(features) != len(labels) {
		return nil, errors.Wrapf(ErrMalformedInput, "%d feature rows but %d labels", len(features), len(labels))
	}
	width := len(features[0])
	if width == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "feature rows are empty")
	}
	for i, row := range features {
		if len(row) != width {
			return nil, errors.Wrapf(ErrMalformedInput, "row %d has %d features, want %d", i+1, len(row), width)
		}
	}

	classes, err := countClasses(labels)
	if err != nil {
		return nil, err
	}
	return &Dataset{Features: features, Labels: labels, classes: classes}, nil
}

// Load reads features and labels from CSV files and validates them together.
func Load(featuresPath, labelsPath string) (*Dataset, error) {
	features, err := LoadFeatures(featuresPath)
	if err != nil {
		return nil, err
	}
	labels, err := LoadLabels(labelsPath)
	if err != nil {
		return nil, err
	}
	ds, err := New(features, labels)
	if err != nil {
		return nil, errors.Wrapf(err, "%s, %s", featuresPath, labelsPath)
	}
	return ds, nil
}

// countClasses checks that labels cover exactly 1..C and returns C.
func countClasses(labels []int) (int, error) {
	distinct := Distinct(labels)
	highest := 0
	for _, l := range distinct {
		if l < 1 {
			return 0, errors.Wrapf(ErrMalformedInput, "class label %d, labels start at 1", l)
		}
		highest = max(highest, l)
	}
	if highest != len(distinct) {
		return 0, errors.Wrapf(ErrMalformedInput, "class labels must cover 1..%d, found %d distinct", highest, len(distinct))
	}
	return highest, nil
}

// NumSamples returns the number of rows.
func (d *Dataset) NumSamples() int { return len(d.Features) }

// NumFeatures returns the width of a feature row.
func (d *Dataset) NumFeatures() int { return len(d.Features[0]) }

// Classes returns the number of classes C.
func (d *Dataset) Classes() int { return d.classes }

// OneHot encodes the labels as rows of width Classes(): label k sets column k-1.
func (d *Dataset) OneHot() [][]float64 {
	return OneHot(d.Labels, d.classes)
}

// Subset returns the rows at the given indices, in that order.
//
// Rows are shared with d, not copied. The subset keeps the class count of d
// even if some class is missing from it.
func (d *Dataset) Subset(indices []int) *Dataset {
	sub := &Dataset{
		Features: make([][]float64, len(indices)),
		Labels:   make([]int, len(indices)),
		classes:  d.classes,
	}
	for i, idx := range indices {
		sub.Features[i] = d.Features[idx]
		sub.Labels[i] = d.Labels[idx]
	}
	return sub
}

// OneHot encodes 1-indexed labels as rows of the given width.
func OneHot(labels []int, classes int) [][]float64 {
	out := make([][]float64, len(labels))
	for i, l := range labels {
		out[i] = make([]float64, classes)
		out[i][l-1] = 1
	}
	return out
}

// Distinct returns the distinct values of s in order of first occurrence.
func Distinct[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0)
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return slices.Clip(out)
}
