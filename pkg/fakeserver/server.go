// Package fakeserver is an in-process stand-in for the board API and the
// game WebSocket endpoint. It holds no board of its own: tests script the
// frames it sends.
package fakeserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/cbodonnell/minesweeper/pkg/messages"
	"github.com/gorilla/mux"
	"nhooyr.io/websocket"
)

const (
	CreateBoardPath = "/CreateBoard"
	WebSocketPath   = "/ws"
	channelSize     = 1024
)

// Responder produces the events to broadcast in reply to a client action.
type Responder func(gameID string, action *messages.ClientAction) []messages.ServerEvent

// Board is the response body returned for a successful CreateBoard call.
type Board struct {
	Message   string `json:"message"`
	GameID    string `json:"gameId"`
	BoardSize int    `json:"boardSize,omitempty"`
	BombCount int    `json:"bombCount,omitempty"`
}

type createFailure struct {
	status  int
	message string
}

// Server is a scriptable fake game server.
type Server struct {
	httpServer *httptest.Server

	lock          sync.Mutex
	boards        map[string]*Board
	defaultSize   int
	createFailure *createFailure
	responder     Responder
	conns         map[string][]*websocket.Conn

	received  chan *messages.ClientAction
	connected chan string
}

type NewServerOptions struct {
	// BoardSize is reported by CreateBoard. Zero omits it from the response.
	BoardSize int
	Responder Responder
}

// New starts a server listening on a random local port.
func New(opts NewServerOptions) *Server {
	s := &Server{
		boards:      make(map[string]*Board),
		defaultSize: opts.BoardSize,
		responder:   opts.Responder,
		conns:       make(map[string][]*websocket.Conn),
		received:    make(chan *messages.ClientAction, channelSize),
		connected:   make(chan string, channelSize),
	}

	router := mux.NewRouter()
	router.HandleFunc(CreateBoardPath, s.handleCreateBoard).Methods(http.MethodPost)
	router.HandleFunc(WebSocketPath, s.handleWebSocket).Queries("gameId", "{gameId}")
	s.httpServer = httptest.NewServer(router)

	return s
}

// URL is the base URL of the board API.
func (s *Server) URL() string {
	return s.httpServer.URL
}

// WSURL is the WebSocket endpoint, without the game id.
func (s *Server) WSURL() string {
	return "ws" + strings.TrimPrefix(s.httpServer.URL, "http") + WebSocketPath
}

// Close disconnects every client and stops the server.
func (s *Server) Close() {
	s.DisconnectAll(websocket.StatusGoingAway)
	s.httpServer.Close()
}

// FailCreateBoard makes subsequent CreateBoard calls fail with status and message.
func (s *Server) FailCreateBoard(status int, message string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.createFailure = &createFailure{status: status, message: message}
}

// SetResponder replaces the responder.
func (s *Server) SetResponder(r Responder) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.responder = r
}

// Received delivers every well-formed client action the server reads.
func (s *Server) Received() <-chan *messages.ClientAction {
	return s.received
}

// Connected delivers the game id of each accepted connection.
func (s *Server) Connected() <-chan string {
	return s.connected
}

// Boards returns the ids of the boards created so far.
func (s *Server) Boards() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	ids := make([]string, 0, len(s.boards))
	for id := range s.boards {
		ids = append(ids, id)
	}
	return ids
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	s.lock.Lock()
	failure := s.createFailure
	s.lock.Unlock()
	if failure != nil {
		w.WriteHeader(failure.status)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": failure.message})
		return
	}

	body := struct {
		GameID string `json:"gameId"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.GameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Missing gameId"})
		return
	}

	s.lock.Lock()
	board, ok := s.boards[body.GameID]
	if !ok {
		board = &Board{
			Message:   "GameReady",
			GameID:    body.GameID,
			BoardSize: s.defaultSize,
		}
		s.boards[body.GameID] = board
	}
	s.lock.Unlock()

	if err := json.NewEncoder(w).Encode(board); err != nil {
		log.Error("failed to encode board: %v", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameId"]

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Error("Failed to accept WebSocket connection: %v", err)
		return
	}

	s.lock.Lock()
	s.conns[gameID] = append(s.conns[gameID], conn)
	s.lock.Unlock()
	s.connected <- gameID

	defer s.removeConn(gameID, conn)

	ctx := r.Context()
	for {
		_, b, err := conn.Read(ctx)
		if err != nil {
			return
		}

		action, err := messages.DeserializeClientAction(b)
		if err != nil {
			log.Warn("Fake server dropping client frame: %v", err)
			continue
		}
		select {
		case s.received <- action:
		default:
		}

		s.lock.Lock()
		responder := s.responder
		s.lock.Unlock()
		if responder == nil {
			continue
		}
		for _, event := range responder(gameID, action) {
			if err := s.Broadcast(ctx, gameID, event); err != nil {
				log.Error("Fake server failed to broadcast: %v", err)
			}
		}
	}
}

func (s *Server) removeConn(gameID string, conn *websocket.Conn) {
	s.lock.Lock()
	defer s.lock.Unlock()
	conns := s.conns[gameID]
	for i, c := range conns {
		if c == conn {
			s.conns[gameID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	conn.Close(websocket.StatusNormalClosure, "")
}

// Broadcast sends an event to every connection joined to gameID.
func (s *Server) Broadcast(ctx context.Context, gameID string, event messages.ServerEvent) error {
	b, err := messages.SerializeServerEvent(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %v", err)
	}
	return s.SendRaw(ctx, gameID, b)
}

// SendRaw sends b as a text frame to every connection joined to gameID.
func (s *Server) SendRaw(ctx context.Context, gameID string, b []byte) error {
	s.lock.Lock()
	conns := append([]*websocket.Conn(nil), s.conns[gameID]...)
	s.lock.Unlock()

	for _, conn := range conns {
		if err := conn.Write(ctx, websocket.MessageText, b); err != nil {
			return fmt.Errorf("failed to write to connection: %v", err)
		}
	}
	return nil
}

// DisconnectAll closes every connection with the given status.
func (s *Server) DisconnectAll(status websocket.StatusCode) {
	s.lock.Lock()
	all := s.conns
	s.conns = make(map[string][]*websocket.Conn)
	s.lock.Unlock()

	for _, conns := range all {
		for _, conn := range conns {
			conn.Close(status, "server shutting down")
		}
	}
}
