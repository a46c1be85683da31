package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/sejin-oh/PinchPad/internal/config"
	"github.com/sejin-oh/PinchPad/internal/input"
	"github.com/sejin-oh/PinchPad/internal/peer"
	"github.com/sejin-oh/PinchPad/internal/permissions"
	"github.com/sejin-oh/PinchPad/internal/signaling"
)

func main() {
	cfg := config.ParseHostFlags()

	logrus.Info("PinchPad host starting")
	logrus.Infof("  Host ID:   %s", cfg.HostID)
	logrus.Infof("  Signaling: %s", cfg.SignalingURL)

	if !permissions.HasAccessibility() {
		logrus.Warn("Accessibility permission not granted, requesting...")
		permissions.RequestAccessibility()
		logrus.Fatal("Grant Accessibility permission in System Settings and restart.")
	}

	injector := input.NewMagnifyInjector()

	var hostPeer *peer.Host
	var sig *signaling.Client

	sig = signaling.NewClient(cfg.SignalingURL, cfg.HostID, signaling.ClientTypeHost, signaling.Handler{
		OnRegistered: func() {
			logrus.Info("registered with signaling relay")
		},
		OnOffer: func(from string, payload json.RawMessage) {
			logrus.WithField("from", from).Info("received offer")
			var err error
			if hostPeer != nil {
				hostPeer.Close()
			}
			hostPeer, err = peer.NewHost(sig)
			if err != nil {
				logrus.WithError(err).Error("create host peer")
				return
			}

			hostPeer.Transport().OnGesture(func(data []byte) {
				var evt input.GestureEvent
				if err := json.Unmarshal(data, &evt); err != nil {
					logrus.WithError(err).Warn("unmarshal gesture")
					return
				}
				if err := injector.Inject(&evt); err != nil {
					logrus.WithError(err).Warn("inject gesture")
				}
			})

			if err := hostPeer.HandleOffer(from, payload); err != nil {
				logrus.WithError(err).Error("handle offer")
			}
		},
		OnICECandidate: func(from string, payload json.RawMessage) {
			if hostPeer != nil {
				if err := hostPeer.HandleICECandidate(payload); err != nil {
					logrus.WithError(err).Warn("handle ICE candidate")
				}
			}
		},
		OnError: func(msg string) {
			logrus.Errorf("signaling error: %s", msg)
		},
	})

	if err := sig.Connect(); err != nil {
		logrus.WithError(err).Fatal("signaling connect")
	}
	defer sig.Close()

	logrus.Infof("host ready, share this ID with controllers: %s", cfg.HostID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logrus.Info("shutting down")
	if hostPeer != nil {
		hostPeer.Close()
	}
}
