package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
	"sync"
	"time"

	"github.com/cbodonnell/minesweeper/pkg/api"
	"github.com/cbodonnell/minesweeper/pkg/client/network"
	"github.com/cbodonnell/minesweeper/pkg/engine"
	"github.com/cbodonnell/minesweeper/pkg/game/constants"
	"github.com/cbodonnell/minesweeper/pkg/gate"
	"github.com/cbodonnell/minesweeper/pkg/journal"
	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/cbodonnell/minesweeper/pkg/messages"
	"github.com/cbodonnell/minesweeper/pkg/queue"
	"github.com/cbodonnell/minesweeper/pkg/repositories"
	"github.com/cbodonnell/minesweeper/pkg/repositories/models"
	"github.com/cbodonnell/minesweeper/pkg/state"
	"github.com/cbodonnell/minesweeper/pkg/workers"
	"github.com/google/uuid"
)

// HistoryBufferSize is how many history writes may be waiting at once.
const HistoryBufferSize = 64

// ErrInvalidGameID is returned when a game id is too short to join.
type ErrInvalidGameID struct {
	GameID string
}

func (e *ErrInvalidGameID) Error() string {
	return fmt.Sprintf("game id must be at least %d characters", constants.MinGameIDLength)
}

func IsInvalidGameID(err error) bool {
	var target *ErrInvalidGameID
	return errors.As(err, &target)
}

// ValidateGameID checks that gameID can be used to join a game.
func ValidateGameID(gameID string) error {
	if utf8.RuneCountInString(strings.TrimSpace(gameID)) < constants.MinGameIDLength {
		return &ErrInvalidGameID{GameID: gameID}
	}
	return nil
}

// Session is a joined game: one board, one connection, one engine.
// Update, Reveal and ToggleFlag must be called from the same goroutine.
type Session struct {
	id     string
	gameID string
	board  *api.BoardInfo
	logger *log.Logger

	grid         *state.InMemoryGrid
	gate         *gate.Gate
	engine       *engine.Engine
	transport    *network.WSTransport
	messageQueue queue.Queue[*messages.Frame]
	recorder     *journal.Recorder
	historyChan  chan workers.HistoryRecord
	historyDone  chan struct{}

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	errChan   chan error
	closeOnce sync.Once
}

type JoinOptions struct {
	GameID string
	// BoardClient creates the board before the connection is opened.
	BoardClient *api.Client
	// ServerURL is the game's WebSocket endpoint.
	ServerURL string

	// JournalDir enables recording when set.
	JournalDir string
	// History is optional.
	History repositories.Repository

	// PendingRevealWindow defaults to constants.PendingRevealWindow.
	// A negative value disables pending tracking.
	PendingRevealWindow time.Duration
	// SendTimeout defaults to constants.SendTimeout.
	SendTimeout time.Duration
	// QueueSize defaults to constants.ServerMessageQueueSize.
	QueueSize int

	OnRender  engine.RenderFunc
	OnMessage engine.MessageFunc
	OnNotice  engine.NoticeFunc
}

// Join creates the board for opts.GameID, connects to the game server and
// starts reading frames. The returned session must be closed.
func Join(ctx context.Context, opts JoinOptions) (*Session, error) {
	gameID := strings.TrimSpace(opts.GameID)
	if err := ValidateGameID(gameID); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := log.Default().With("session", id).With("game", gameID)

	board, err := opts.BoardClient.CreateBoard(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	grid, err := state.NewInMemoryGrid(board.Width, board.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %v", err)
	}

	pendingWindow := opts.PendingRevealWindow
	if pendingWindow == 0 {
		pendingWindow = constants.PendingRevealWindow
	} else if pendingWindow < 0 {
		pendingWindow = 0
	}
	sendTimeout := opts.SendTimeout
	if sendTimeout == 0 {
		sendTimeout = constants.SendTimeout
	}
	queueSize := opts.QueueSize
	if queueSize == 0 {
		queueSize = constants.ServerMessageQueueSize
	}

	messageQueue := queue.NewInMemoryQueue[*messages.Frame](queueSize)
	transport := network.NewWSTransport(network.NewWSTransportOptions{
		ServerURL:    opts.ServerURL,
		GameID:       gameID,
		MessageQueue: messageQueue,
		SendTimeout:  sendTimeout,
	})
	if err := transport.Connect(ctx); err != nil {
		return nil, err
	}

	s := &Session{
		id:           id,
		gameID:       gameID,
		board:        board,
		logger:       logger,
		grid:         grid,
		transport:    transport,
		messageQueue: messageQueue,
		errChan:      make(chan error, 1),
	}

	if opts.JournalDir != "" {
		recorder, err := journal.NewRecorder(journal.NewRecorderOptions{
			Dir: opts.JournalDir,
			Header: journal.Header{
				GameID:    gameID,
				SessionID: id,
				Width:     board.Width,
				Height:    board.Height,
				StartedAt: time.Now(),
			},
		})
		if err != nil {
			logger.Error("Failed to start journal, continuing without it: %v", err)
		} else {
			logger.Info("Recording journal to %s", recorder.Path())
			s.recorder = recorder
		}
	}

	s.gate = gate.NewGate(gate.NewGateOptions{
		Grid:                grid,
		PendingRevealWindow: pendingWindow,
	})
	engineOpts := engine.NewEngineOptions{
		GameID:    gameID,
		Grid:      grid,
		Gate:      s.gate,
		Transport: transport,
		Logger:    logger,
		OnRender:  opts.OnRender,
		OnNotice:  opts.OnNotice,
		OnMessage: func(message string) {
			s.recordNotice(message)
			if opts.OnMessage != nil {
				opts.OnMessage(message)
			}
		},
	}
	if s.recorder != nil {
		engineOpts.Recorder = s.recorder
	}
	s.engine = engine.NewEngine(engineOpts)

	s.ctx, s.cancel = context.WithCancel(context.Background())

	if opts.History != nil {
		s.historyChan = make(chan workers.HistoryRecord, HistoryBufferSize)
		s.historyDone = make(chan struct{})
		worker := workers.NewHistoryWorker(workers.NewHistoryWorkerOptions{
			Repository: opts.History,
			RecordChan: s.historyChan,
			Logger:     logger,
		})
		go func() {
			defer close(s.historyDone)
			worker.Start(context.Background())
		}()
		s.recordHistory(workers.HistoryRecord{Join: &models.Join{
			GameID:    gameID,
			SessionID: id,
			JoinedAt:  time.Now(),
			Width:     board.Width,
			Height:    board.Height,
		}})
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := transport.HandleMessages(s.ctx); err != nil {
			s.errChan <- err
		}
	}()

	logger.Info("Joined game on a %dx%d board", board.Width, board.Height)
	return s, nil
}

func (s *Session) recordNotice(message string) {
	s.recordHistory(workers.HistoryRecord{Notice: &models.Notice{
		GameID:     s.gameID,
		SessionID:  s.id,
		Message:    message,
		ReceivedAt: time.Now(),
	}})
}

func (s *Session) recordHistory(record workers.HistoryRecord) {
	if s.historyChan == nil {
		return
	}
	select {
	case s.historyChan <- record:
	default:
		s.logger.Warn("History buffer full, dropping record")
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) GameID() string {
	return s.gameID
}

func (s *Session) Board() api.BoardInfo {
	return *s.board
}

// Grid returns read access to the locally known board.
func (s *Session) Grid() state.GridReader {
	return s.grid
}

func (s *Session) Counts() state.Counts {
	return s.engine.Counts()
}

func (s *Session) Stats() engine.Stats {
	return s.engine.Stats()
}

// Connected reports whether actions can currently be sent.
func (s *Session) Connected() bool {
	return s.transport.IsOpen()
}

// Update applies every frame received since the last call. It returns an
// error once the connection has been lost.
func (s *Session) Update() error {
	frames, err := s.messageQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read frames: %v", err)
	}
	for _, frame := range frames {
		s.engine.HandleFrame(frame)
	}

	select {
	case err := <-s.errChan:
		return fmt.Errorf("connection lost: %w", err)
	default:
		return nil
	}
}

// Reveal requests that the server reveal (x, y).
func (s *Session) Reveal(x, y int) error {
	return s.engine.Reveal(s.ctx, x, y)
}

// ToggleFlag requests that the server toggle the flag on (x, y).
func (s *Session) ToggleFlag(x, y int) error {
	return s.engine.ToggleFlag(s.ctx, x, y)
}

// Resync renders the whole grid again.
func (s *Session) Resync() {
	s.engine.Resync()
}

// Close disconnects from the game. Frames not yet applied and reveals
// awaiting confirmation are discarded.
func (s *Session) Close() error {
	var closeErr error
	s.closeOnce.Do(func() {
		if err := s.transport.Close(); err != nil {
			s.logger.Error("Failed to close transport: %v", err)
		}
		s.cancel()
		s.wg.Wait()

		if err := s.messageQueue.ClearQueue(); err != nil {
			s.logger.Error("Failed to clear message queue: %v", err)
		}
		s.gate.Reset()

		if s.historyChan != nil {
			close(s.historyChan)
			<-s.historyDone
		}

		if s.recorder != nil {
			if err := s.recorder.Close(); err != nil {
				closeErr = fmt.Errorf("failed to close journal: %v", err)
			}
		}
		s.logger.Info("Left game")
	})
	return closeErr
}
