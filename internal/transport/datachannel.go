package transport

import (
	"fmt"

	"github.com/pion/webrtc/v4"
)

// GestureChannelLabel is the data channel carrying gesture commands.
const GestureChannelLabel = "gestures"

// DataChannelTransport carries gesture commands over a WebRTC DataChannel.
// The channel is ordered and reliable: a began/changed/ended sequence must
// arrive intact and in order or the pinch falls apart on the host side.
type DataChannelTransport struct {
	gesturesDC *webrtc.DataChannel
	onGesture  func(data []byte)
}

// NewDataChannelTransport wraps the gestures DataChannel. dc may be nil
// when the channel will be received from the remote peer later.
func NewDataChannelTransport(dc *webrtc.DataChannel) *DataChannelTransport {
	t := &DataChannelTransport{}
	if dc != nil {
		t.SetGestureChannel(dc)
	}
	return t
}

func (t *DataChannelTransport) SendGesture(data []byte) error {
	if t.gesturesDC == nil {
		return fmt.Errorf("gestures data channel not set")
	}
	return t.gesturesDC.Send(data)
}

func (t *DataChannelTransport) OnGesture(cb func(data []byte)) {
	t.onGesture = cb
}

// SetGestureChannel sets or replaces the gestures DataChannel (used when
// the channel is negotiated by the remote peer).
func (t *DataChannelTransport) SetGestureChannel(dc *webrtc.DataChannel) {
	t.gesturesDC = dc
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		if t.onGesture != nil {
			t.onGesture(msg.Data)
		}
	})
}
