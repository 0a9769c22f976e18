package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/minesweeper/pkg/client/network"
	"github.com/cbodonnell/minesweeper/pkg/game/types"
	"github.com/cbodonnell/minesweeper/pkg/gate"
	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/cbodonnell/minesweeper/pkg/messages"
	"github.com/cbodonnell/minesweeper/pkg/state"
)

// RenderFunc receives the tiles that changed in one applied event.
type RenderFunc func(tiles []types.PositionedTile)

// MessageFunc receives the text of a DisplayMessage event.
type MessageFunc func(message string)

// NoticeFunc receives informational frames that carry no action.
type NoticeFunc func(notice *messages.Notice)

// Recorder is notified of every inbound frame and every sent action.
type Recorder interface {
	RecordInbound(frame *messages.Frame) error
	RecordOutbound(b []byte, sentAt time.Time) error
}

// Stats counts what the engine has done since it was created.
type Stats struct {
	FramesApplied    int
	TilesRevealed    int
	FlagsChanged     int
	Duplicates       int
	Malformed        int
	Dropped          int
	GesturesSent     int
	GesturesRejected int
	SendFailures     int
}

// Engine applies server events to the grid and turns player gestures into
// outbound actions. The grid only changes in response to server events.
//
// An Engine is not safe for concurrent use. Frames and gestures must be
// handled from the same loop.
type Engine struct {
	gameID    string
	grid      state.GridStore
	gate      *gate.Gate
	transport network.Transport
	recorder  Recorder
	logger    *log.Logger

	onRender  RenderFunc
	onMessage MessageFunc
	onNotice  NoticeFunc

	stats Stats
}

type NewEngineOptions struct {
	GameID    string
	Grid      state.GridStore
	Gate      *gate.Gate
	Transport network.Transport
	// Recorder is optional.
	Recorder Recorder
	// Logger defaults to the package default logger.
	Logger *log.Logger

	OnRender  RenderFunc
	OnMessage MessageFunc
	OnNotice  NoticeFunc
}

func NewEngine(opts NewEngineOptions) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	g := opts.Gate
	if g == nil {
		g = gate.NewGate(gate.NewGateOptions{Grid: opts.Grid})
	}
	return &Engine{
		gameID:    opts.GameID,
		grid:      opts.Grid,
		gate:      g,
		transport: opts.Transport,
		recorder:  opts.Recorder,
		logger:    logger,
		onRender:  opts.OnRender,
		onMessage: opts.OnMessage,
		onNotice:  opts.OnNotice,
	}
}

// Grid returns read access to the grid the engine maintains.
func (e *Engine) Grid() state.GridReader {
	return e.grid
}

// Counts summarizes the grid.
func (e *Engine) Counts() state.Counts {
	return e.grid.Counts()
}

// Stats returns a copy of the engine counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// HandleFrame decodes a raw inbound frame and applies it. Malformed frames
// are logged and dropped without touching the grid.
func (e *Engine) HandleFrame(frame *messages.Frame) {
	if e.recorder != nil {
		if err := e.recorder.RecordInbound(frame); err != nil {
			e.logger.Warn("Failed to record inbound frame: %v", err)
		}
	}

	event, err := messages.DeserializeServerEvent(frame.Data)
	if err != nil {
		e.stats.Malformed++
		e.logger.Warn("Dropping frame: %v", err)
		return
	}
	e.Apply(event)
}

// Apply applies a decoded server event.
func (e *Engine) Apply(event messages.ServerEvent) {
	switch ev := event.(type) {
	case *messages.UpdateTiles:
		e.applyUpdateTiles(ev)
	case *messages.SetFlagState:
		e.applySetFlagState(ev)
	case *messages.DisplayMessage:
		e.stats.FramesApplied++
		e.logger.Info("Server message: %s", ev.Data)
		if e.onMessage != nil {
			e.onMessage(ev.Data)
		}
	case *messages.Notice:
		e.stats.FramesApplied++
		e.logger.Debug("Server notice: %s %s", ev.Message, ev.Details)
		if e.onNotice != nil {
			e.onNotice(ev)
		}
	default:
		e.logger.Warn("Unhandled server event %T", event)
	}
}

func (e *Engine) applyUpdateTiles(ev *messages.UpdateTiles) {
	e.stats.FramesApplied++

	applied := make([]types.PositionedTile, 0, len(ev.Tiles))
	for _, t := range ev.Tiles {
		err := e.grid.ApplyReveal(t.X, t.Y, t.Value)
		switch {
		case err == nil:
			e.gate.Confirm(t.Coordinates)
			tile, _ := e.grid.Get(t.X, t.Y)
			applied = append(applied, types.PositionedTile{Coordinates: t.Coordinates, Tile: tile})
		case state.IsInvalidTransition(err):
			e.gate.Confirm(t.Coordinates)
			e.stats.Duplicates++
		case state.IsOutOfBounds(err):
			e.stats.Dropped++
			e.logger.Warn("Skipping revealed tile: %v", err)
		default:
			e.stats.Dropped++
			e.logger.Error("Failed to apply revealed tile %s: %v", t.Coordinates, err)
		}
	}

	if len(applied) == 0 {
		return
	}
	e.stats.TilesRevealed += len(applied)
	e.render(applied)
}

func (e *Engine) applySetFlagState(ev *messages.SetFlagState) {
	e.stats.FramesApplied++

	c := ev.Coordinates
	tile, err := e.grid.Get(c.X, c.Y)
	if err != nil {
		e.stats.Dropped++
		e.logger.Warn("Skipping flag state: %v", err)
		return
	}
	if !tile.IsRevealed() && tile.IsFlagged() == ev.Flagged {
		e.stats.Duplicates++
		return
	}

	if err := e.grid.ApplyFlagState(c.X, c.Y, ev.Flagged); err != nil {
		if state.IsInvalidTransition(err) {
			e.stats.Duplicates++
			e.logger.Debug("Ignoring flag state: %v", err)
			return
		}
		e.stats.Dropped++
		e.logger.Error("Failed to apply flag state on %s: %v", c, err)
		return
	}

	tile, _ = e.grid.Get(c.X, c.Y)
	e.stats.FlagsChanged++
	e.render([]types.PositionedTile{{Coordinates: c, Tile: tile}})
}

func (e *Engine) render(tiles []types.PositionedTile) {
	if e.onRender != nil {
		e.onRender(tiles)
	}
}

// Resync renders the whole grid, e.g. after the render target was rebuilt.
func (e *Engine) Resync() {
	e.render(e.grid.Snapshot())
}

// Reveal asks the server to reveal (x, y). The returned error is informational:
// a rejected gesture or failed send leaves the session usable.
func (e *Engine) Reveal(ctx context.Context, x, y int) error {
	req, err := e.gate.RequestReveal(x, y)
	if err != nil {
		e.stats.GesturesRejected++
		e.logger.Debug("Reveal gesture dropped: %v", err)
		return err
	}
	return e.send(ctx, req)
}

// ToggleFlag asks the server to toggle the flag on (x, y).
func (e *Engine) ToggleFlag(ctx context.Context, x, y int) error {
	req, err := e.gate.RequestToggleFlag(x, y)
	if err != nil {
		e.stats.GesturesRejected++
		e.logger.Debug("Flag gesture dropped: %v", err)
		return err
	}
	return e.send(ctx, req)
}

func (e *Engine) send(ctx context.Context, req *gate.Request) error {
	b, err := messages.SerializeClientAction(&messages.ClientAction{
		Action:      req.Action,
		Coordinates: req.Coordinates,
		GameID:      e.gameID,
	})
	if err != nil {
		return fmt.Errorf("failed to serialize client action: %v", err)
	}

	if err := e.transport.Send(ctx, b); err != nil {
		e.stats.SendFailures++
		if network.IsTransportUnavailable(err) {
			e.logger.Warn("Dropping %s on %s: %v", req.Action, req.Coordinates, err)
		} else {
			e.logger.Error("Failed to send %s on %s: %v", req.Action, req.Coordinates, err)
		}
		return err
	}

	sentAt := time.Now()
	e.gate.MarkSent(req)
	e.stats.GesturesSent++
	e.logger.Trace("Sent %s", b)

	if e.recorder != nil {
		if err := e.recorder.RecordOutbound(b, sentAt); err != nil {
			e.logger.Warn("Failed to record outbound action: %v", err)
		}
	}
	return nil
}
