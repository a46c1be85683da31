// Package controller maps game-controller input to magnify gesture
// commands.
package controller

import "github.com/sejin-oh/PinchPad/internal/input"

// Default tuning for trigger-driven zoom.
const (
	DefaultDeadzone = 0.15
	DefaultGain     = 0.05
)

// ZoomMapper turns per-tick axis samples into magnify gesture commands
// with a began/changed/ended lifecycle. One sample in, at most one command
// out; there is no queuing or rate limiting.
type ZoomMapper struct {
	deadzone float64
	gain     float64
	active   bool
}

// NewZoomMapper creates a mapper with the given deadzone and gain.
// Non-positive values fall back to the defaults.
func NewZoomMapper(deadzone, gain float64) *ZoomMapper {
	if deadzone <= 0 {
		deadzone = DefaultDeadzone
	}
	if gain <= 0 {
		gain = DefaultGain
	}
	return &ZoomMapper{deadzone: deadzone, gain: gain}
}

// Step consumes one axis sample, nominally in [-1, 1]. Positive samples
// zoom in, negative zoom out. The first sample past the deadzone emits a
// began frame, continued activity emits changed frames, and the first
// quiet sample after activity emits a final ended frame with zero delta.
func (m *ZoomMapper) Step(axis float64) (*input.GestureEvent, bool) {
	engaged := axis > m.deadzone || axis < -m.deadzone

	switch {
	case engaged && !m.active:
		m.active = true
		return m.event(axis, input.PhaseBegan), true
	case engaged:
		return m.event(axis, input.PhaseChanged), true
	case m.active:
		m.active = false
		return m.event(0, input.PhaseEnded), true
	default:
		return nil, false
	}
}

// Active reports whether a pinch is currently in progress.
func (m *ZoomMapper) Active() bool { return m.active }

func (m *ZoomMapper) event(axis float64, phase int) *input.GestureEvent {
	return &input.GestureEvent{
		Type:          input.EventMagnify,
		Magnification: axis * m.gain,
		Phase:         phase,
	}
}
