package input

import (
	"errors"
	"fmt"

	"github.com/sejin-oh/PinchPad/internal/gesture"
)

// ErrConstructionFailed reports that the platform could not build a valid
// event from the gesture command. The platform gives no richer detail.
var ErrConstructionFailed = errors.New("gesture event construction failed")

// MagnifyInjector translates wire gesture commands into synthetic magnify
// events on the local machine.
type MagnifyInjector struct {
	injector *gesture.Injector
}

// NewMagnifyInjector returns an injector backed by the platform's event
// primitives.
func NewMagnifyInjector() *MagnifyInjector {
	return &MagnifyInjector{injector: gesture.NewPlatformInjector()}
}

// NewMagnifyInjectorWith wires a specific core injector. Used by tests to
// substitute fake platform capabilities.
func NewMagnifyInjectorWith(inj *gesture.Injector) *MagnifyInjector {
	return &MagnifyInjector{injector: inj}
}

func (m *MagnifyInjector) Inject(e *GestureEvent) error {
	if e.Type != EventMagnify {
		return fmt.Errorf("unsupported gesture type %q", e.Type)
	}
	if !m.injector.PostMagnify(e.Magnification, wirePhase(e.Phase)) {
		return ErrConstructionFailed
	}
	return nil
}

// wirePhase decodes the integer wire encoding. Unknown values fall back to
// changed, same as the core's policy.
func wirePhase(p int) gesture.Phase {
	switch p {
	case PhaseBegan:
		return gesture.PhaseBegan
	case PhaseEnded:
		return gesture.PhaseEnded
	default:
		return gesture.PhaseChanged
	}
}
