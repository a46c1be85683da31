package transport

// GestureSender sends serialized gesture commands.
type GestureSender interface {
	SendGesture(data []byte) error
}

// GestureReceiver receives serialized gesture commands.
type GestureReceiver interface {
	OnGesture(callback func(data []byte))
}
