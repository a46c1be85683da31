package input

// EventType identifies the kind of gesture command.
type EventType string

const (
	EventMagnify EventType = "magnify"
)

// Wire encoding of the gesture phase: 0=began, 1=changed, 2=ended.
// Any other value is treated as changed.
const (
	PhaseBegan   = 0
	PhaseChanged = 1
	PhaseEnded   = 2
)

// GestureEvent is the wire format for gesture commands sent over the data
// channel.
type GestureEvent struct {
	Type          EventType `json:"type"`
	Magnification float64   `json:"magnification,omitempty"`
	Phase         int       `json:"phase"`
}
