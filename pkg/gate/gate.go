package gate

import (
	"errors"
	"fmt"
	"time"

	gametypes "github.com/cbodonnell/minesweeper/pkg/game/types"
	"github.com/cbodonnell/minesweeper/pkg/messages"
	"github.com/cbodonnell/minesweeper/pkg/state"
)

// RejectReason explains why a gesture produced no request.
type RejectReason int

const (
	RejectReasonAlreadyRevealed RejectReason = iota
	RejectReasonPending
	RejectReasonOutOfBounds
)

func (r RejectReason) String() string {
	switch r {
	case RejectReasonAlreadyRevealed:
		return "AlreadyRevealed"
	case RejectReasonPending:
		return "Pending"
	case RejectReasonOutOfBounds:
		return "OutOfBounds"
	default:
		return "Unknown"
	}
}

// ErrRejected is returned when a gesture is known to be invalid locally.
type ErrRejected struct {
	Action      messages.Action
	Coordinates gametypes.Coordinates
	Reason      RejectReason
}

func (e *ErrRejected) Error() string {
	return fmt.Sprintf("%s on %s rejected: %s", e.Action, e.Coordinates, e.Reason)
}

// IsRejected reports whether err is an *ErrRejected with the given reason.
func IsRejected(err error, reason RejectReason) bool {
	var target *ErrRejected
	return errors.As(err, &target) && target.Reason == reason
}

// Request is a gesture that passed the gate and may be sent.
type Request struct {
	Action      messages.Action
	Coordinates gametypes.Coordinates
}

// Gate checks player gestures against the locally known grid.
// It never mutates the grid.
type Gate struct {
	grid          state.GridReader
	pendingWindow time.Duration
	pending       map[gametypes.Coordinates]time.Time
	now           func() time.Time
}

type NewGateOptions struct {
	Grid state.GridReader
	// PendingRevealWindow is how long a sent reveal blocks a repeat reveal
	// of the same tile. Zero disables pending tracking.
	PendingRevealWindow time.Duration
	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

func NewGate(opts NewGateOptions) *Gate {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Gate{
		grid:          opts.Grid,
		pendingWindow: opts.PendingRevealWindow,
		pending:       make(map[gametypes.Coordinates]time.Time),
		now:           now,
	}
}

// RequestReveal returns a reveal request unless the tile is already revealed
// or a reveal for it is still pending. Flagged tiles may be revealed.
func (g *Gate) RequestReveal(x, y int) (*Request, error) {
	c := gametypes.Coordinates{X: x, Y: y}
	if err := g.checkNotRevealed(messages.ActionRevealTile, c); err != nil {
		return nil, err
	}

	if sentAt, ok := g.pending[c]; ok {
		if g.now().Sub(sentAt) < g.pendingWindow {
			return nil, &ErrRejected{Action: messages.ActionRevealTile, Coordinates: c, Reason: RejectReasonPending}
		}
		delete(g.pending, c)
	}

	return &Request{Action: messages.ActionRevealTile, Coordinates: c}, nil
}

// RequestToggleFlag returns a flag toggle request unless the tile is revealed.
func (g *Gate) RequestToggleFlag(x, y int) (*Request, error) {
	c := gametypes.Coordinates{X: x, Y: y}
	if err := g.checkNotRevealed(messages.ActionToggleFlagOnTile, c); err != nil {
		return nil, err
	}
	return &Request{Action: messages.ActionToggleFlagOnTile, Coordinates: c}, nil
}

func (g *Gate) checkNotRevealed(action messages.Action, c gametypes.Coordinates) error {
	tile, err := g.grid.Get(c.X, c.Y)
	if err != nil {
		if state.IsOutOfBounds(err) {
			return &ErrRejected{Action: action, Coordinates: c, Reason: RejectReasonOutOfBounds}
		}
		return fmt.Errorf("failed to get tile %s: %v", c, err)
	}
	if tile.IsRevealed() {
		delete(g.pending, c)
		return &ErrRejected{Action: action, Coordinates: c, Reason: RejectReasonAlreadyRevealed}
	}
	return nil
}

// MarkSent records that a request was handed to the transport.
func (g *Gate) MarkSent(req *Request) {
	if g.pendingWindow <= 0 || req.Action != messages.ActionRevealTile {
		return
	}
	g.pending[req.Coordinates] = g.now()
}

// Confirm clears pending state for a tile the server has revealed.
func (g *Gate) Confirm(c gametypes.Coordinates) {
	delete(g.pending, c)
}

// PendingCount returns the number of reveals awaiting confirmation.
func (g *Gate) PendingCount() int {
	return len(g.pending)
}

// Reset discards all pending reveals.
func (g *Gate) Reset() {
	g.pending = make(map[gametypes.Coordinates]time.Time)
}
