package wave

import "errors"

// Errors returned by sweep generation and slice helpers.
var (
	ErrInvalidFrequency  = errors.New("wave: frequency must be positive")
	ErrInvalidDuration   = errors.New("wave: duration must be positive")
	ErrInvalidSampleRate = errors.New("wave: sample rate must be positive")
	ErrFrequencyOrder    = errors.New("wave: start frequency must be less than end frequency")
	ErrEmptyInput        = errors.New("wave: input must not be empty")
	ErrNegativePeak      = errors.New("wave: target peak must be >= 0")
	ErrLengthMismatch    = errors.New("wave: slices must have the same length")
)
