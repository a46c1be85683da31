package main

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sejin-oh/PinchPad/internal/config"
	"github.com/sejin-oh/PinchPad/internal/controller"
	"github.com/sejin-oh/PinchPad/internal/display"
	"github.com/sejin-oh/PinchPad/internal/input"
	"github.com/sejin-oh/PinchPad/internal/peer"
	"github.com/sejin-oh/PinchPad/internal/signaling"
)

func main() {
	cfg := config.ParseControllerFlags()

	if !cfg.Local && cfg.HostID == "" {
		logrus.Fatal("Usage: pinchpad-controller -signaling <url> -host <host-id> (or -local)")
	}

	logrus.Info("PinchPad controller starting")
	logrus.Infof("  Controller ID: %s", cfg.ControllerID)
	if cfg.Local {
		logrus.Info("  Mode:          local injection")
	} else {
		logrus.Infof("  Signaling:     %s", cfg.SignalingURL)
		logrus.Infof("  Target host:   %s", cfg.HostID)
	}

	mapper := controller.NewZoomMapper(cfg.Deadzone, cfg.Gain)

	if cfg.Local {
		runLocal(mapper)
		return
	}
	runRemote(cfg, mapper)
}

// runLocal injects gestures directly on this machine, no relay involved.
func runLocal(mapper *controller.ZoomMapper) {
	injector := input.NewMagnifyInjector()

	pad := display.NewPad(mapper, func(eventJSON []byte) {
		var evt input.GestureEvent
		if err := json.Unmarshal(eventJSON, &evt); err != nil {
			return
		}
		if err := injector.Inject(&evt); err != nil {
			logrus.WithError(err).Warn("inject gesture")
		}
	})
	pad.SetStatus("local mode")

	if err := pad.Run(); err != nil {
		logrus.WithError(err).Fatal("display")
	}
}

func runRemote(cfg *config.ControllerConfig, mapper *controller.ZoomMapper) {
	var ctrlPeer *peer.Controller

	pad := display.NewPad(mapper, func(eventJSON []byte) {
		if ctrlPeer != nil {
			_ = ctrlPeer.Transport().SendGesture(eventJSON)
		}
	})

	var sig *signaling.Client
	sig = signaling.NewClient(cfg.SignalingURL, cfg.ControllerID, signaling.ClientTypeController, signaling.Handler{
		OnRegistered: func() {
			logrus.Info("registered with signaling relay")
			pad.SetStatus("connecting to " + cfg.HostID)

			var err error
			ctrlPeer, err = peer.NewController(sig, cfg.HostID, func() {
				pad.SetStatus("connected to " + cfg.HostID)
			})
			if err != nil {
				logrus.WithError(err).Error("create controller peer")
				os.Exit(1)
			}

			if err := ctrlPeer.Connect(); err != nil {
				logrus.WithError(err).Error("controller connect")
			}
		},
		OnAnswer: func(from string, payload json.RawMessage) {
			if ctrlPeer != nil {
				if err := ctrlPeer.HandleAnswer(payload); err != nil {
					logrus.WithError(err).Warn("handle answer")
				}
			}
		},
		OnICECandidate: func(from string, payload json.RawMessage) {
			if ctrlPeer != nil {
				if err := ctrlPeer.HandleICECandidate(payload); err != nil {
					logrus.WithError(err).Warn("handle ICE candidate")
				}
			}
		},
		OnHostDisconnected: func(hostID string) {
			if hostID == cfg.HostID {
				pad.SetStatus("host disconnected")
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

	// Ebitengine RunGame must be on the main goroutine (macOS requirement).
	if err := pad.Run(); err != nil {
		logrus.WithError(err).Fatal("display")
	}

	if ctrlPeer != nil {
		ctrlPeer.Close()
	}
}
