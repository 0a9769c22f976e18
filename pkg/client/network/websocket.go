package network

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/cbodonnell/minesweeper/pkg/messages"
	"github.com/cbodonnell/minesweeper/pkg/queue"
	"nhooyr.io/websocket"
)

const (
	// GameIDQueryParam is the query parameter carrying the game id on join.
	GameIDQueryParam = "gameId"
	// DefaultSendQueueSize is how many outbound frames may wait for the writer.
	DefaultSendQueueSize = 64
)

// WSTransport is a Transport over a WebSocket connection.
type WSTransport struct {
	serverURL    string
	gameID       string
	messageQueue queue.Queue[*messages.Frame]
	sendTimeout  time.Duration

	connLock     sync.Mutex
	conn         *websocket.Conn
	open         atomic.Bool
	closedByUser atomic.Bool

	outbound   chan []byte
	stopWriter chan struct{}
	writerDone chan struct{}
}

var _ Transport = &WSTransport{}

type NewWSTransportOptions struct {
	// ServerURL is the ws:// or wss:// endpoint of the game server.
	ServerURL string
	GameID    string
	// MessageQueue receives every inbound frame.
	MessageQueue queue.Queue[*messages.Frame]
	// SendTimeout bounds a single write. Zero means no timeout.
	SendTimeout time.Duration
	// SendQueueSize defaults to DefaultSendQueueSize.
	SendQueueSize int
}

// NewWSTransport creates a new WebSocket transport.
func NewWSTransport(opts NewWSTransportOptions) *WSTransport {
	sendQueueSize := opts.SendQueueSize
	if sendQueueSize <= 0 {
		sendQueueSize = DefaultSendQueueSize
	}
	return &WSTransport{
		serverURL:    opts.ServerURL,
		gameID:       opts.GameID,
		messageQueue: opts.MessageQueue,
		sendTimeout:  opts.SendTimeout,
		outbound:     make(chan []byte, sendQueueSize),
	}
}

// JoinURL returns the server URL with the game id query parameter set.
func JoinURL(serverURL, gameID string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse server url: %v", err)
	}
	switch u.Scheme {
	case "ws", "wss", "http", "https":
	default:
		return "", fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}
	q := u.Query()
	q.Set(GameIDQueryParam, gameID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Connect dials the game server.
func (t *WSTransport) Connect(ctx context.Context) error {
	joinURL, err := JoinURL(t.serverURL, t.gameID)
	if err != nil {
		return err
	}

	log.Info("Connecting to WebSocket server at %s", joinURL)
	conn, _, err := websocket.Dial(ctx, joinURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	conn.SetReadLimit(messages.MessageBufferSize)

	stop := make(chan struct{})
	done := make(chan struct{})
	t.connLock.Lock()
	t.conn = conn
	t.stopWriter = stop
	t.writerDone = done
	t.connLock.Unlock()
	t.closedByUser.Store(false)
	t.open.Store(true)

	go t.writeLoop(conn, stop, done)

	return nil
}

// writeLoop writes queued frames in order until stop is closed. Frames still
// queued at that point are discarded.
func (t *WSTransport) writeLoop(conn *websocket.Conn, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case b := <-t.outbound:
			if err := t.write(conn, b); err != nil {
				log.Error("Failed to send frame: %v", err)
			}
		}
	}
}

func (t *WSTransport) write(conn *websocket.Conn, b []byte) error {
	ctx := context.Background()
	if t.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.sendTimeout)
		defer cancel()
	}

	if err := conn.Write(ctx, websocket.MessageText, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}
	log.Trace("Sent frame to WebSocket server: %s", b)
	return nil
}

// HandleMessages reads frames until the connection closes, enqueueing each
// one for the session loop. It returns nil when the connection was closed
// locally and *ErrConnectionClosedByServer when the server closed it.
func (t *WSTransport) HandleMessages(ctx context.Context) error {
	conn := t.getConn()
	if conn == nil {
		return &ErrTransportUnavailable{}
	}
	defer t.open.Store(false)

	for {
		typ, b, err := conn.Read(ctx)
		if err != nil {
			if t.closedByUser.Load() || errors.Is(err, context.Canceled) {
				log.Debug("WebSocket connection closed by client")
				return nil
			}
			switch status := websocket.CloseStatus(err); status {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return &ErrConnectionClosedByServer{Reason: status.String()}
			case -1:
				return fmt.Errorf("failed to read from WebSocket connection: %v", err)
			default:
				return &ErrConnectionClosedByServer{Reason: fmt.Sprintf("%s: %v", status, err)}
			}
		}

		if typ != websocket.MessageText {
			log.Warn("Dropping non-text WebSocket frame of %d bytes", len(b))
			continue
		}
		log.Trace("Received frame from WebSocket server: %s", b)

		frame := &messages.Frame{
			Data:       b,
			ReceivedAt: time.Now(),
		}
		if err := t.messageQueue.Enqueue(frame); err != nil {
			log.Error("Failed to enqueue frame: %v", err)
		}
	}
}

func (t *WSTransport) getConn() *websocket.Conn {
	t.connLock.Lock()
	defer t.connLock.Unlock()
	return t.conn
}

func (t *WSTransport) IsOpen() bool {
	return t.open.Load()
}

// Send queues b for the writer goroutine and returns without waiting for the
// write. It returns *queue.ErrQueueFull when too many frames are waiting.
func (t *WSTransport) Send(ctx context.Context, b []byte) error {
	if !t.open.Load() {
		return &ErrTransportUnavailable{}
	}

	select {
	case t.outbound <- b:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to queue frame: %v", ctx.Err())
	default:
		return &queue.ErrQueueFull{Capacity: cap(t.outbound)}
	}
}

func (t *WSTransport) Close() error {
	t.connLock.Lock()
	conn := t.conn
	stop, done := t.stopWriter, t.writerDone
	t.conn = nil
	t.stopWriter, t.writerDone = nil, nil
	t.connLock.Unlock()

	if conn == nil {
		log.Debug("WebSocket connection is already closed")
		return nil
	}

	t.closedByUser.Store(true)
	t.open.Store(false)
	close(stop)
	if err := conn.Close(websocket.StatusNormalClosure, ""); err != nil {
		// the read loop may have already observed the close
		log.Debug("WebSocket close returned: %v", err)
	}
	<-done
	return nil
}
