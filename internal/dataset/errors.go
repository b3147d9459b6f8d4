package dataset

import "github.com/pkg/errors"

// These are the errors returned by the loaders, always wrapped with the file
// and line they were found at. Match them with errors.Is.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrOutOfRange     = errors.New("number is out of range")
	ErrEmptySplit     = errors.New("split leaves an empty partition")
)
