//go:build darwin && !cgo

package gesture

// CGEvent synthesis requires cgo to reach CoreGraphics. Without it the
// builder can never construct an event, so every PostMagnify reports
// failure.
type unavailableBackend struct{}

func (unavailableBackend) FromGesture(Descriptor, []Contact) Event { return nil }

func (unavailableBackend) Post(Event) {}

func platformBackend() (Builder, Poster) {
	return unavailableBackend{}, unavailableBackend{}
}
