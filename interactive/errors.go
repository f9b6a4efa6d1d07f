package interactive

import "errors"

// ErrNilPlotFunc reports an Interact call without a plot function.
var ErrNilPlotFunc = errors.New("interactive: nil plot function")
