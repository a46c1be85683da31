package peer

import (
	"github.com/pion/webrtc/v4"
	"github.com/sirupsen/logrus"
)

// ICEServers is the default ICE server configuration.
var ICEServers = []webrtc.ICEServer{
	{URLs: []string{"stun:stun.l.google.com:19302", "stun:stun1.l.google.com:19302"}},
}

// NewPeerConnection creates a configured PeerConnection.
func NewPeerConnection() (*webrtc.PeerConnection, error) {
	cfg := webrtc.Configuration{
		ICEServers: ICEServers,
	}
	pc, err := webrtc.NewPeerConnection(cfg)
	if err != nil {
		return nil, err
	}
	pc.OnConnectionStateChange(func(state webrtc.PeerConnectionState) {
		logrus.WithField("state", state.String()).Info("peer connection state")
	})
	return pc, nil
}
