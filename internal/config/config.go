package config

import (
	"flag"
	"fmt"

	"github.com/google/uuid"
)

// HostConfig holds runtime parameters for the host binary.
type HostConfig struct {
	SignalingURL string
	HostID       string
}

// ParseHostFlags parses flags for the host binary.
func ParseHostFlags() *HostConfig {
	cfg := &HostConfig{}
	flag.StringVar(&cfg.SignalingURL, "signaling", "ws://localhost:8080", "Signaling relay WebSocket URL")
	flag.StringVar(&cfg.HostID, "id", "", "Host ID (auto-generated if empty)")
	flag.Parse()

	if cfg.HostID == "" {
		cfg.HostID = fmt.Sprintf("host-%s", shortID())
	}
	return cfg
}

// ControllerConfig holds runtime parameters for the controller binary.
type ControllerConfig struct {
	SignalingURL string
	ControllerID string
	HostID       string
	Local        bool
	Deadzone     float64
	Gain         float64
}

// ParseControllerFlags parses flags for the controller binary.
func ParseControllerFlags() *ControllerConfig {
	cfg := &ControllerConfig{}
	flag.StringVar(&cfg.SignalingURL, "signaling", "ws://localhost:8080", "Signaling relay WebSocket URL")
	flag.StringVar(&cfg.ControllerID, "id", "", "Controller ID (auto-generated if empty)")
	flag.StringVar(&cfg.HostID, "host", "", "Host ID to connect to")
	flag.BoolVar(&cfg.Local, "local", false, "Inject gestures on this machine instead of a remote host")
	flag.Float64Var(&cfg.Deadzone, "deadzone", 0, "Trigger deadzone (0 = default)")
	flag.Float64Var(&cfg.Gain, "gain", 0, "Magnification per full trigger pull per tick (0 = default)")
	flag.Parse()

	if cfg.ControllerID == "" {
		cfg.ControllerID = fmt.Sprintf("controller-%s", shortID())
	}
	return cfg
}

// RelayConfig holds runtime parameters for the relay binary.
type RelayConfig struct {
	ListenAddr string
}

// ParseRelayFlags parses flags for the relay binary.
func ParseRelayFlags() *RelayConfig {
	cfg := &RelayConfig{}
	flag.StringVar(&cfg.ListenAddr, "listen", ":8080", "Listen address for the signaling relay")
	flag.Parse()
	return cfg
}

func shortID() string {
	return uuid.NewString()[:8]
}
