package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/sejin-oh/PinchPad/internal/config"
	"github.com/sejin-oh/PinchPad/internal/signaling"
)

func main() {
	cfg := config.ParseRelayFlags()

	logrus.Info("PinchPad signaling relay starting")
	logrus.Infof("  Listen: %s", cfg.ListenAddr)

	srv := signaling.NewServer()
	if err := http.ListenAndServe(cfg.ListenAddr, srv); err != nil {
		logrus.WithError(err).Fatal("listen")
	}
}
