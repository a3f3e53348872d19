package conformance

import "github.com/pkg/errors"

var (
	errNilGenerator       = errors.New("generator cannot be nil")
	errSamplesNotPositive = errors.New("number of samples must be positive")
	errWorkersNotPositive = errors.New("number of workers must be positive")
)
