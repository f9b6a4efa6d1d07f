package chart

import "sync"

// Package-level registry of open figures in creation order.
var (
	regMu   sync.Mutex
	regOpen []*Figure
)

func register(f *Figure) {
	regMu.Lock()
	defer regMu.Unlock()

	regOpen = append(regOpen, f)
}

// Open returns the number of open figures.
func Open() int {
	regMu.Lock()
	defer regMu.Unlock()

	return len(regOpen)
}

// Figures returns the open figures in creation order.
func Figures() []*Figure {
	regMu.Lock()
	defer regMu.Unlock()

	out := make([]*Figure, len(regOpen))
	copy(out, regOpen)

	return out
}

// Close removes the figure from the registry. Closing twice is a no-op.
func (f *Figure) Close() {
	regMu.Lock()
	defer regMu.Unlock()

	if f.closed {
		return
	}

	f.closed = true
	for i, open := range regOpen {
		if open == f {
			regOpen = append(regOpen[:i], regOpen[i+1:]...)
			break
		}
	}
}

// Closed reports whether the figure has been closed.
func (f *Figure) Closed() bool {
	regMu.Lock()
	defer regMu.Unlock()

	return f.closed
}

// CloseAll closes every open figure.
func CloseAll() {
	regMu.Lock()
	defer regMu.Unlock()

	for _, f := range regOpen {
		f.closed = true
	}

	regOpen = regOpen[:0]
}
