package peer

import (
	"encoding/json"

	"github.com/pion/webrtc/v4"
	"github.com/sirupsen/logrus"

	"github.com/sejin-oh/PinchPad/internal/signaling"
	"github.com/sejin-oh/PinchPad/internal/transport"
)

// Controller manages the controller side of the WebRTC connection: it
// offers a session to a host and sends gesture commands.
type Controller struct {
	pc        *webrtc.PeerConnection
	sig       *signaling.Client
	transport *transport.DataChannelTransport
	hostID    string

	onOpen func()
}

// NewController creates a Controller peer manager. onOpen fires when the
// gestures channel is ready to carry commands.
func NewController(sig *signaling.Client, hostID string, onOpen func()) (*Controller, error) {
	pc, err := NewPeerConnection()
	if err != nil {
		return nil, err
	}

	ctrl := &Controller{
		pc:        pc,
		sig:       sig,
		transport: transport.NewDataChannelTransport(nil),
		hostID:    hostID,
		onOpen:    onOpen,
	}

	// The host creates the gestures channel; accept it here.
	pc.OnDataChannel(func(dc *webrtc.DataChannel) {
		if dc.Label() != transport.GestureChannelLabel {
			logrus.WithField("label", dc.Label()).Warn("unexpected data channel")
			return
		}
		dc.OnOpen(func() {
			logrus.Info("gestures data channel open")
			if ctrl.onOpen != nil {
				ctrl.onOpen()
			}
		})
		ctrl.transport.SetGestureChannel(dc)
	})

	pc.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil {
			return
		}
		data, err := json.Marshal(c.ToJSON())
		if err != nil {
			logrus.WithError(err).Warn("marshal ICE candidate")
			return
		}
		_ = sig.SendICECandidate(hostID, data)
	})

	return ctrl, nil
}

// Transport returns the DataChannelTransport.
func (c *Controller) Transport() *transport.DataChannelTransport {
	return c.transport
}

// Connect initiates the WebRTC connection by creating and sending an offer.
func (c *Controller) Connect() error {
	offer, err := c.pc.CreateOffer(nil)
	if err != nil {
		return err
	}

	if err := c.pc.SetLocalDescription(offer); err != nil {
		return err
	}

	offerJSON, err := json.Marshal(offer)
	if err != nil {
		return err
	}

	return c.sig.SendOffer(c.hostID, offerJSON)
}

// HandleAnswer processes an incoming SDP answer.
func (c *Controller) HandleAnswer(payload json.RawMessage) error {
	var answer webrtc.SessionDescription
	if err := json.Unmarshal(payload, &answer); err != nil {
		return err
	}
	return c.pc.SetRemoteDescription(answer)
}

// HandleICECandidate adds a remote ICE candidate.
func (c *Controller) HandleICECandidate(payload json.RawMessage) error {
	var candidate webrtc.ICECandidateInit
	if err := json.Unmarshal(payload, &candidate); err != nil {
		return err
	}
	return c.pc.AddICECandidate(candidate)
}

// Close shuts down the peer connection.
func (c *Controller) Close() {
	if c.pc != nil {
		c.pc.Close()
	}
}
