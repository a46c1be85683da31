//go:build !darwin

package gesture

// Gesture synthesis is only implemented for macOS. On other platforms the
// builder never constructs an event, so every PostMagnify reports failure.
type unavailableBackend struct{}

func (unavailableBackend) FromGesture(Descriptor, []Contact) Event { return nil }

func (unavailableBackend) Post(Event) {}

func platformBackend() (Builder, Poster) {
	return unavailableBackend{}, unavailableBackend{}
}
