package signaling

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestClientRegistersAgainstRelay(t *testing.T) {
	_, wsURL := setupRelay(t)

	registered := make(chan struct{})
	c := NewClient(wsURL, "ctrl-1", ClientTypeController, Handler{
		OnRegistered: func() { close(registered) },
	})
	require.NoError(t, c.Connect())
	defer c.Close()

	waitFor(t, registered, "registration")
}

func TestClientOfferReachesHostClient(t *testing.T) {
	_, wsURL := setupRelay(t)

	gotOffer := make(chan struct{})
	var offerFrom string
	var offerPayload json.RawMessage

	hostRegistered := make(chan struct{})
	host := NewClient(wsURL, "host-1", ClientTypeHost, Handler{
		OnRegistered: func() { close(hostRegistered) },
		OnOffer: func(from string, payload json.RawMessage) {
			offerFrom = from
			offerPayload = payload
			close(gotOffer)
		},
	})
	require.NoError(t, host.Connect())
	defer host.Close()
	waitFor(t, hostRegistered, "host registration")

	ctrlRegistered := make(chan struct{})
	ctrl := NewClient(wsURL, "ctrl-1", ClientTypeController, Handler{
		OnRegistered: func() { close(ctrlRegistered) },
	})
	require.NoError(t, ctrl.Connect())
	defer ctrl.Close()
	waitFor(t, ctrlRegistered, "controller registration")

	require.NoError(t, ctrl.SendOffer("host-1", json.RawMessage(`{"sdp":"o"}`)))
	waitFor(t, gotOffer, "offer delivery")

	assert.Equal(t, "ctrl-1", offerFrom)
	assert.JSONEq(t, `{"sdp":"o"}`, string(offerPayload))
}

func TestClientHostListUpdates(t *testing.T) {
	_, wsURL := setupRelay(t)

	updates := make(chan []HostInfo, 4)
	ctrlRegistered := make(chan struct{})
	ctrl := NewClient(wsURL, "ctrl-1", ClientTypeController, Handler{
		OnRegistered:   func() { close(ctrlRegistered) },
		OnHostsUpdated: func(hosts []HostInfo) { updates <- hosts },
	})
	require.NoError(t, ctrl.Connect())
	defer ctrl.Close()
	waitFor(t, ctrlRegistered, "controller registration")

	hostRegistered := make(chan struct{})
	host := NewClient(wsURL, "host-1", ClientTypeHost, Handler{
		OnRegistered: func() { close(hostRegistered) },
	})
	require.NoError(t, host.Connect())
	defer host.Close()
	waitFor(t, hostRegistered, "host registration")

	select {
	case hosts := <-updates:
		require.Len(t, hosts, 1)
		assert.Equal(t, "host-1", hosts[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for hosts update")
	}
}
