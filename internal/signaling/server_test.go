package signaling

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRelay(t *testing.T) (*httptest.Server, string) {
	server := httptest.NewServer(NewServer())
	t.Cleanup(server.Close)
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	return server, wsURL
}

func dial(t *testing.T, url string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err, "should connect to relay")
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMsg(t *testing.T, conn *websocket.Conn) Message {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg), "should read relay message")
	return msg
}

func registerConn(t *testing.T, conn *websocket.Conn, id, clientType string) {
	require.NoError(t, conn.WriteJSON(Message{Type: TypeRegister, ID: id, ClientType: clientType}))
	msg := readMsg(t, conn)
	require.Equal(t, TypeRegistered, msg.Type)
	require.Equal(t, id, msg.ID)
}

func TestRelayRegisterAndListHosts(t *testing.T) {
	_, wsURL := setupRelay(t)

	host := dial(t, wsURL)
	registerConn(t, host, "host-1", ClientTypeHost)

	ctrl := dial(t, wsURL)
	registerConn(t, ctrl, "ctrl-1", ClientTypeController)

	require.NoError(t, ctrl.WriteJSON(Message{Type: TypeListHosts}))
	msg := readMsg(t, ctrl)
	require.Equal(t, TypeHosts, msg.Type)
	require.Len(t, msg.List, 1)
	assert.Equal(t, "host-1", msg.List[0].ID)
	assert.True(t, msg.List[0].Online)
}

func TestRelayRoutesOfferAndAnswer(t *testing.T) {
	_, wsURL := setupRelay(t)

	host := dial(t, wsURL)
	registerConn(t, host, "host-1", ClientTypeHost)

	ctrl := dial(t, wsURL)
	registerConn(t, ctrl, "ctrl-1", ClientTypeController)

	offer := json.RawMessage(`{"sdp":"fake-offer"}`)
	require.NoError(t, ctrl.WriteJSON(Message{Type: TypeOffer, Target: "host-1", Payload: offer}))

	msg := readMsg(t, host)
	require.Equal(t, TypeOffer, msg.Type)
	assert.Equal(t, "ctrl-1", msg.From)
	assert.JSONEq(t, string(offer), string(msg.Payload))

	answer := json.RawMessage(`{"sdp":"fake-answer"}`)
	require.NoError(t, host.WriteJSON(Message{Type: TypeAnswer, Target: "ctrl-1", Payload: answer}))

	msg = readMsg(t, ctrl)
	require.Equal(t, TypeAnswer, msg.Type)
	assert.Equal(t, "host-1", msg.From)
	assert.JSONEq(t, string(answer), string(msg.Payload))
}

func TestRelayReportsUnknownTarget(t *testing.T) {
	_, wsURL := setupRelay(t)

	ctrl := dial(t, wsURL)
	registerConn(t, ctrl, "ctrl-1", ClientTypeController)

	require.NoError(t, ctrl.WriteJSON(Message{Type: TypeOffer, Target: "nobody", Payload: json.RawMessage(`{}`)}))
	msg := readMsg(t, ctrl)
	require.Equal(t, TypeError, msg.Type)
	assert.Contains(t, msg.Msg, "nobody")
}

func TestRelayNotifiesHostDisconnect(t *testing.T) {
	_, wsURL := setupRelay(t)

	ctrl := dial(t, wsURL)
	registerConn(t, ctrl, "ctrl-1", ClientTypeController)

	host := dial(t, wsURL)
	registerConn(t, host, "host-1", ClientTypeHost)

	// Host registration is broadcast to controllers.
	msg := readMsg(t, ctrl)
	require.Equal(t, TypeHostsUpdated, msg.Type)
	require.Len(t, msg.List, 1)

	host.Close()

	msg = readMsg(t, ctrl)
	require.Equal(t, TypeHostDisconnected, msg.Type)
	assert.Equal(t, "host-1", msg.HostID)
}

func TestRelayAnswersPing(t *testing.T) {
	_, wsURL := setupRelay(t)

	conn := dial(t, wsURL)
	registerConn(t, conn, "ctrl-1", ClientTypeController)

	require.NoError(t, conn.WriteJSON(Message{Type: TypePing}))
	msg := readMsg(t, conn)
	assert.Equal(t, TypePong, msg.Type)
}
