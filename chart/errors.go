package chart

import "errors"

var (
	// ErrLengthMismatch is returned when x and y have different lengths.
	ErrLengthMismatch = errors.New("chart: x and y must have the same length")
)
