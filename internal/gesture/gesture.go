// Package gesture synthesizes trackpad magnify (pinch) gesture events and
// injects them into the system-wide input stream, so that downstream
// consumers see them exactly as if a real trackpad gesture occurred.
package gesture

// Phase identifies the lifecycle stage of a gesture frame.
type Phase int

const (
	// PhaseBegan marks the first frame of a pinch.
	PhaseBegan Phase = iota
	// PhaseChanged marks a continuation frame. Unknown phase values are
	// treated as PhaseChanged rather than rejected.
	PhaseChanged
	// PhaseEnded marks the final frame of a pinch.
	PhaseEnded
)

// Native HID phase constants, from IOHIDEventTypes.h.
const (
	hidPhaseBegan   = 0x01
	hidPhaseChanged = 0x02
	hidPhaseEnded   = 0x04
)

// hidMagnifySubtype is the gesture subtype constant identifying a magnify
// event in the gesture info record.
const hidMagnifySubtype = 0x08

// native maps the requested phase to the platform's HID phase constant.
func (p Phase) native() int {
	switch p {
	case PhaseBegan:
		return hidPhaseBegan
	case PhaseEnded:
		return hidPhaseEnded
	default:
		return hidPhaseChanged
	}
}

// Descriptor is the metadata record handed to the platform event
// constructor. It always carries exactly these three entries.
type Descriptor struct {
	Subtype       int
	Phase         int // native HID phase constant
	Magnification float64
}

// Contact is one synthetic touch point. Magnify events are synthesized
// without real contact points, so the contact list is always empty here.
type Contact struct {
	X float64
	Y float64
}

// Event is an opaque handle to one constructed low-level input event.
type Event interface {
	// Release frees the handle. Call exactly once, after posting.
	Release()
}

// Builder constructs a low-level input event from gesture metadata.
// A nil event means construction failed; the platform reports nothing
// richer than that.
type Builder interface {
	FromGesture(info Descriptor, touches []Contact) Event
}

// Poster injects a constructed event into the global HID event tap.
// Delivery is fire and forget.
type Poster interface {
	Post(ev Event)
}

// Injector builds magnify gesture events and posts them to the HID event
// tap. It is stateless; concurrent calls are independent and delivery
// order between them is whatever the platform tap imposes.
type Injector struct {
	builder Builder
	poster  Poster
}

// NewInjector wires an Injector to the given platform capabilities.
func NewInjector(b Builder, p Poster) *Injector {
	return &Injector{builder: b, poster: p}
}

// NewPlatformInjector returns an Injector backed by the running platform's
// event construction and posting primitives.
func NewPlatformInjector() *Injector {
	b, p := platformBackend()
	return NewInjector(b, p)
}

// PostMagnify synthesizes one magnify gesture frame carrying the given
// magnification delta and phase and posts it. Positive magnification zooms
// in, negative zooms out; the value is passed through unmodified. It
// returns false if the platform could not construct the event, in which
// case nothing is posted. At most one event is posted per call.
func (inj *Injector) PostMagnify(magnification float64, phase Phase) bool {
	info := Descriptor{
		Subtype:       hidMagnifySubtype,
		Phase:         phase.native(),
		Magnification: magnification,
	}
	touches := []Contact{}

	ev := inj.builder.FromGesture(info, touches)
	if ev == nil {
		return false
	}
	defer ev.Release()

	inj.poster.Post(ev)
	return true
}
