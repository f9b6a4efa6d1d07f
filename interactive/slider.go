package interactive

import (
	"github.com/cwbudde/algo-wavelab/core"
)

// FloatSlider is a bounded numeric control. It carries the range metadata a
// front end needs to draw it and fires an update handler when the user lets
// go of the handle, or on every value change in continuous mode.
type FloatSlider struct {
	min, max, step float64
	value          float64
	continuous     bool
	onRelease      func()
}

// NewFloatSlider creates a slider over [min, max] with the given step and
// initial value. Reversed bounds are swapped and the value is clamped into
// range. Sliders start in continuous mode.
func NewFloatSlider(min, max, step, value float64) *FloatSlider {
	if min > max {
		min, max = max, min
	}
	return &FloatSlider{
		min:        min,
		max:        max,
		step:       step,
		value:      core.Clamp(value, min, max),
		continuous: true,
	}
}

// Value returns the current slider value.
func (s *FloatSlider) Value() float64 {
	return s.value
}

// Min returns the lower bound.
func (s *FloatSlider) Min() float64 {
	return s.min
}

// Max returns the upper bound.
func (s *FloatSlider) Max() float64 {
	return s.max
}

// Step returns the drag increment.
func (s *FloatSlider) Step() float64 {
	return s.step
}

// SetValue moves the slider, clamping v into range. In continuous mode the
// update handler fires immediately; otherwise it waits for Release.
func (s *FloatSlider) SetValue(v float64) {
	s.value = core.Clamp(v, s.min, s.max)
	if s.continuous && s.onRelease != nil {
		s.onRelease()
	}
}

// Release ends a drag and fires the update handler if one is bound.
func (s *FloatSlider) Release() {
	if s.onRelease != nil {
		s.onRelease()
	}
}

// SetContinuousUpdate switches between firing on every SetValue (true) and
// only on Release (false).
func (s *FloatSlider) SetContinuousUpdate(on bool) {
	s.continuous = on
}

// ContinuousUpdate reports whether the slider fires on every value change.
func (s *FloatSlider) ContinuousUpdate() bool {
	return s.continuous
}
