// Package interactive wires sliders to a plot callback the way a notebook
// binds widget controls to a cell that redraws itself.
//
// Interact binds sliders to parameter names, switches them all to
// on-release updates so dragging never floods the redraw path, and redraws
// through the plot function whenever a bound slider is released. Each
// redraw starts by closing every open figure, so the set of figures on
// screen always belongs to the latest draw.
//
// A single goroutine is expected to drive the sliders, matching a UI event
// loop. None of the types are safe for concurrent use.
package interactive

import (
	"fmt"

	"github.com/cwbudde/algo-wavelab/chart"
)

type binding struct {
	name   string
	slider *FloatSlider
}

// Controller re-invokes a plot function with the current slider values.
type Controller struct {
	plotFn   func(map[string]float64) error
	bindings []binding
	renderer Renderer
	onError  func(error)
	err      error
}

// Interact binds sliders to names pairwise and returns a controller that
// redraws through plotFn on every release of a bound slider. Mismatched
// list lengths silently bind only the shorter prefix; the leftover sliders
// are still debounced but never trigger a redraw. Previously open figures
// are closed and plotFn is invoked once with the initial values before
// Interact returns.
func Interact(plotFn func(map[string]float64) error, sliders []*FloatSlider, names []string, opts ...Option) (*Controller, error) {
	if plotFn == nil {
		return nil, ErrNilPlotFunc
	}
	cfg := applyOptions(opts...)

	chart.CloseAll()

	for _, s := range sliders {
		s.SetContinuousUpdate(false)
	}

	n := len(sliders)
	if len(names) < n {
		n = len(names)
	}

	c := &Controller{
		plotFn:   plotFn,
		renderer: cfg.renderer,
		onError:  cfg.onError,
	}
	for i := 0; i < n; i++ {
		c.bindings = append(c.bindings, binding{name: names[i], slider: sliders[i]})
		sliders[i].onRelease = c.redrawFromEvent
	}

	if err := c.Redraw(); err != nil {
		return nil, err
	}
	return c, nil
}

// Redraw closes every open figure, calls the plot function with the current
// slider values and renders whatever figures it opened.
func (c *Controller) Redraw() error {
	chart.CloseAll()

	if err := c.plotFn(c.Values()); err != nil {
		return fmt.Errorf("interactive: plot: %w", err)
	}

	if c.renderer != nil {
		for _, f := range chart.Figures() {
			if err := c.renderer.Render(f); err != nil {
				return fmt.Errorf("interactive: render: %w", err)
			}
		}
	}
	return nil
}

// redrawFromEvent runs a release-triggered redraw. The event path has no
// caller, so failures are kept on the controller and handed to the error
// handler.
func (c *Controller) redrawFromEvent() {
	if err := c.Redraw(); err != nil {
		if c.err == nil {
			c.err = err
		}
		if c.onError != nil {
			c.onError(err)
		}
	}
}

// Values returns the current value of every bound slider keyed by name.
// Duplicate names keep the value bound last.
func (c *Controller) Values() map[string]float64 {
	vals := make(map[string]float64, len(c.bindings))
	for _, b := range c.bindings {
		vals[b.name] = b.slider.Value()
	}
	return vals
}

// BoundNames returns the bound parameter names in binding order.
func (c *Controller) BoundNames() []string {
	names := make([]string, len(c.bindings))
	for i, b := range c.bindings {
		names[i] = b.name
	}
	return names
}

// Err returns the first error from a release-triggered redraw, or nil.
func (c *Controller) Err() error {
	return c.err
}
