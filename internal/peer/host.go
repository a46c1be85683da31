package peer

import (
	"encoding/json"

	"github.com/pion/webrtc/v4"
	"github.com/sirupsen/logrus"

	"github.com/sejin-oh/PinchPad/internal/signaling"
	"github.com/sejin-oh/PinchPad/internal/transport"
)

// Host manages the host side of the WebRTC connection: it answers a
// controller's offer and receives gesture commands.
type Host struct {
	pc        *webrtc.PeerConnection
	sig       *signaling.Client
	transport *transport.DataChannelTransport
	peerID    string // the controller we're connected to
}

// NewHost creates a Host peer manager.
func NewHost(sig *signaling.Client) (*Host, error) {
	pc, err := NewPeerConnection()
	if err != nil {
		return nil, err
	}

	h := &Host{
		pc:  pc,
		sig: sig,
	}

	// Create the gestures channel up front so it is in the SDP before we
	// set the local description. Ordered and reliable; see transport.
	ordered := true
	gesturesDC, err := pc.CreateDataChannel(transport.GestureChannelLabel, &webrtc.DataChannelInit{
		Ordered: &ordered,
	})
	if err != nil {
		pc.Close()
		return nil, err
	}

	h.transport = transport.NewDataChannelTransport(gesturesDC)

	pc.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil || h.peerID == "" {
			return
		}
		data, err := json.Marshal(c.ToJSON())
		if err != nil {
			logrus.WithError(err).Warn("marshal ICE candidate")
			return
		}
		_ = sig.SendICECandidate(h.peerID, data)
	})

	return h, nil
}

// Transport returns the DataChannelTransport for receiving gestures.
func (h *Host) Transport() *transport.DataChannelTransport {
	return h.transport
}

// HandleOffer processes an incoming offer from a controller.
func (h *Host) HandleOffer(from string, payload json.RawMessage) error {
	h.peerID = from

	var offer webrtc.SessionDescription
	if err := json.Unmarshal(payload, &offer); err != nil {
		return err
	}

	if err := h.pc.SetRemoteDescription(offer); err != nil {
		return err
	}

	answer, err := h.pc.CreateAnswer(nil)
	if err != nil {
		return err
	}

	if err := h.pc.SetLocalDescription(answer); err != nil {
		return err
	}

	answerJSON, err := json.Marshal(answer)
	if err != nil {
		return err
	}

	return h.sig.SendAnswer(from, answerJSON)
}

// HandleICECandidate adds a remote ICE candidate.
func (h *Host) HandleICECandidate(payload json.RawMessage) error {
	var candidate webrtc.ICECandidateInit
	if err := json.Unmarshal(payload, &candidate); err != nil {
		return err
	}
	return h.pc.AddICECandidate(candidate)
}

// Close shuts down the peer connection.
func (h *Host) Close() {
	if h.pc != nil {
		h.pc.Close()
	}
}
