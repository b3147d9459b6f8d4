package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// An optional leading minus, then digits with at most one decimal point.
	// Exponents, NaN and Inf are rejected.
	realPattern = regexp.MustCompile(`^(-(\d+\.?\d*|\.\d+)|\d+\.?\d*)$`)

	// Class labels and layer sizes are plain unsigned integers.
	countPattern = regexp.MustCompile(`^\d+$`)
)

// LoadFeatures reads a feature table.
//
// CSV Format (no header):
//
//	0.5,1.25,-3
//	0,2,1.5
//
// The first row fixes the number of features; every other row must have the
// same width. Errors carry "path:line" and wrap ErrMalformedInput or ErrOutOfRange.
func LoadFeatures(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open features file %s", path)
	}
	defer f.Close()

	return ReadFeatures(f, path)
}

// ReadFeatures is LoadFeatures over an open reader. name is used in errors.
func ReadFeatures(r io.Reader, name string) ([][]float64, error) {
	var rows [][]float64
	width := -1

	err := eachRecord(r, name, func(line int, record []string) error {
		if width < 0 {
			width = len(record)
		}
		if len(record) < width {
			return errors.Wrapf(ErrMalformedInput, "%s:%d: got %d columns, want %d (column shortage)", name, line, len(record), width)
		}
		if len(record) > width {
			return errors.Wrapf(ErrMalformedInput, "%s:%d: got %d columns, want %d (column excess)", name, line, len(record), width)
		}

		row := make([]float64, width)
		for j, cell := range record {
			v, err := ParseReal(cell)
			if err != nil {
				return errors.Wrapf(err, "%s:%d: column %d", name, line, j+1)
			}
			row[j] = v
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "%s: no rows", name)
	}
	return rows, nil
}

// LoadLabels reads a label table: one non-negative integer per line.
func LoadLabels(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open labels file %s", path)
	}
	defer f.Close()

	labels, err := readCounts(f, path)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "%s: no rows", path)
	}
	return labels, nil
}

// LoadLayerSizes reads the hidden layer sizes: one positive integer per line.
//
// An empty file means no hidden layers.
func LoadLayerSizes(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open layers file %s", path)
	}
	defer f.Close()

	return ReadLayerSizes(f, path)
}

// ReadLayerSizes is LoadLayerSizes over an open reader. name is used in errors.
func ReadLayerSizes(r io.Reader, name string) ([]int, error) {
	sizes, err := readCounts(r, name)
	if err != nil {
		return nil, err
	}
	for i, n := range sizes {
		if n < 1 {
			return nil, errors.Wrapf(ErrMalformedInput, "%s: hidden layer %d has size %d, want at least 1", name, i+1, n)
		}
	}
	return sizes, nil
}

func readCounts(r io.Reader, name string) ([]int, error) {
	var out []int
	err := eachRecord(r, name, func(line int, record []string) error {
		if len(record) != 1 {
			return errors.Wrapf(ErrMalformedInput, "%s:%d: got %d values, want 1", name, line, len(record))
		}
		v, err := ParseCount(record[0])
		if err != nil {
			return errors.Wrapf(err, "%s:%d", name, line)
		}
		out = append(out, v)
		return nil
	})
	return out, err
}

// eachRecord feeds every non-empty CSV record to fn together with its line number.
func eachRecord(r io.Reader, name string, fn func(line int, record []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(ErrMalformedInput, "%s: %v", name, err)
		}
		line, _ := cr.FieldPos(0)
		if err := fn(line, record); err != nil {
			return err
		}
	}
}

// ParseReal parses a real number: an optional leading '-', then digits with at
// most one decimal point. Errors wrap ErrMalformedInput or ErrOutOfRange.
func ParseReal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !realPattern.MatchString(s) {
		return 0, errors.Wrapf(ErrMalformedInput, "expected a number, got %q", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, numError(err, s)
	}
	return v, nil
}

// ParseCount parses a non-negative integer written with digits only.
// Errors wrap ErrMalformedInput or ErrOutOfRange.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !countPattern.MatchString(s) {
		return 0, errors.Wrapf(ErrMalformedInput, "expected an integer number, got %q", s)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, numError(err, s)
	}
	return v, nil
}

func numError(err error, s string) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return errors.Wrapf(ErrOutOfRange, "%q", s)
	}
	return errors.Wrapf(ErrMalformedInput, "%q: %v", s, err)
}
