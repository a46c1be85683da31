package signaling

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Server is the WebSocket relay that brokers session negotiation between
// controllers and hosts. Gesture traffic itself flows peer to peer and
// never touches the relay.
type Server struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]*serverClient
}

type serverClient struct {
	id         string
	clientType string
	conn       *websocket.Conn
	writeMu    sync.Mutex
}

func (sc *serverClient) write(msg Message) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	return sc.conn.WriteJSON(msg)
}

// NewServer creates a relay server.
func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*serverClient),
	}
}

// ServeHTTP upgrades the connection and runs its read loop.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var client *serverClient
	defer func() {
		if client != nil {
			s.unregister(client)
		}
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case TypeRegister:
			client = s.register(conn, msg)
		case TypeListHosts:
			if client != nil {
				_ = client.write(Message{Type: TypeHosts, List: s.hostList()})
			}
		case TypeOffer, TypeAnswer, TypeICECandidate:
			if client != nil {
				s.route(client, msg)
			}
		case TypePing:
			if client != nil {
				_ = client.write(Message{Type: TypePong})
			}
		}
	}
}

func (s *Server) register(conn *websocket.Conn, msg Message) *serverClient {
	client := &serverClient{
		id:         msg.ID,
		clientType: msg.ClientType,
		conn:       conn,
	}

	s.mu.Lock()
	s.clients[client.id] = client
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"id":   client.id,
		"type": client.clientType,
	}).Info("client registered")

	_ = client.write(Message{Type: TypeRegistered, ID: client.id})

	if client.clientType == ClientTypeHost {
		s.broadcastToControllers(Message{Type: TypeHostsUpdated, List: s.hostList()})
	}
	return client
}

func (s *Server) unregister(client *serverClient) {
	s.mu.Lock()
	delete(s.clients, client.id)
	s.mu.Unlock()

	logrus.WithField("id", client.id).Info("client disconnected")

	if client.clientType == ClientTypeHost {
		s.broadcastToControllers(Message{Type: TypeHostDisconnected, HostID: client.id})
	}
}

// route forwards an offer/answer/candidate to its target, stamping the
// sender ID so the target can answer back.
func (s *Server) route(from *serverClient, msg Message) {
	s.mu.Lock()
	target, ok := s.clients[msg.Target]
	s.mu.Unlock()

	if !ok {
		_ = from.write(Message{Type: TypeError, Msg: "unknown target " + msg.Target})
		return
	}

	msg.From = from.id
	msg.Target = ""
	if err := target.write(msg); err != nil {
		logrus.WithError(err).WithField("target", target.id).Warn("relay write failed")
	}
}

func (s *Server) hostList() []HostInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	var hosts []HostInfo
	for _, c := range s.clients {
		if c.clientType == ClientTypeHost {
			hosts = append(hosts, HostInfo{ID: c.id, Online: true})
		}
	}
	return hosts
}

func (s *Server) broadcastToControllers(msg Message) {
	s.mu.Lock()
	controllers := make([]*serverClient, 0, len(s.clients))
	for _, c := range s.clients {
		if c.clientType == ClientTypeController {
			controllers = append(controllers, c)
		}
	}
	s.mu.Unlock()

	for _, c := range controllers {
		_ = c.write(msg)
	}
}
