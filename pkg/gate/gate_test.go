package gate

import (
	"testing"
	"time"

	gametypes "github.com/cbodonnell/minesweeper/pkg/game/types"
	"github.com/cbodonnell/minesweeper/pkg/messages"
	"github.com/cbodonnell/minesweeper/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestGate(t *testing.T, window time.Duration) (*Gate, *state.InMemoryGrid, *fakeClock) {
	t.Helper()
	grid, err := state.NewInMemoryGrid(5, 5)
	require.NoError(t, err)
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	g := NewGate(NewGateOptions{
		Grid:                grid,
		PendingRevealWindow: window,
		Now:                 clock.Now,
	})
	return g, grid, clock
}

func TestGate_RequestReveal(t *testing.T) {
	g, grid, _ := newTestGate(t, 0)

	req, err := g.RequestReveal(1, 2)
	require.NoError(t, err)
	assert.Equal(t, &Request{Action: messages.ActionRevealTile, Coordinates: gametypes.Coordinates{X: 1, Y: 2}}, req)

	require.NoError(t, grid.ApplyFlagState(3, 3, true))
	req, err = g.RequestReveal(3, 3)
	require.NoError(t, err, "flag is advisory and must not block a reveal")
	assert.Equal(t, messages.ActionRevealTile, req.Action)

	require.NoError(t, grid.ApplyReveal(4, 4, 3))
	req, err = g.RequestReveal(4, 4)
	assert.Nil(t, req)
	assert.True(t, IsRejected(err, RejectReasonAlreadyRevealed))
}

func TestGate_RequestToggleFlag(t *testing.T) {
	g, grid, _ := newTestGate(t, 0)

	req, err := g.RequestToggleFlag(0, 0)
	require.NoError(t, err)
	assert.Equal(t, messages.ActionToggleFlagOnTile, req.Action)

	require.NoError(t, grid.ApplyFlagState(0, 0, true))
	_, err = g.RequestToggleFlag(0, 0)
	assert.NoError(t, err, "a flagged tile can be unflagged")

	require.NoError(t, grid.ApplyReveal(2, 2, 0))
	req, err = g.RequestToggleFlag(2, 2)
	assert.Nil(t, req)
	assert.True(t, IsRejected(err, RejectReasonAlreadyRevealed))
}

func TestGate_OutOfBounds(t *testing.T) {
	g, _, _ := newTestGate(t, 0)

	_, err := g.RequestReveal(5, 0)
	assert.True(t, IsRejected(err, RejectReasonOutOfBounds))
	_, err = g.RequestToggleFlag(0, -1)
	assert.True(t, IsRejected(err, RejectReasonOutOfBounds))
}

func TestGate_DoesNotMutateGrid(t *testing.T) {
	g, grid, _ := newTestGate(t, time.Second)
	before := grid.Snapshot()

	req, err := g.RequestReveal(1, 1)
	require.NoError(t, err)
	g.MarkSent(req)
	_, _ = g.RequestToggleFlag(2, 2)

	assert.Equal(t, before, grid.Snapshot())
}

func TestGate_PendingReveal(t *testing.T) {
	g, grid, clock := newTestGate(t, time.Second)

	req, err := g.RequestReveal(1, 1)
	require.NoError(t, err)
	g.MarkSent(req)
	assert.Equal(t, 1, g.PendingCount())

	_, err = g.RequestReveal(1, 1)
	assert.True(t, IsRejected(err, RejectReasonPending))

	// other tiles are unaffected
	_, err = g.RequestReveal(1, 2)
	assert.NoError(t, err)

	// flag toggles are never deduplicated
	_, err = g.RequestToggleFlag(1, 1)
	assert.NoError(t, err)

	clock.Advance(time.Second)
	_, err = g.RequestReveal(1, 1)
	assert.NoError(t, err, "pending reveal expires after the window")
	assert.Equal(t, 0, g.PendingCount())

	g.MarkSent(req)
	require.NoError(t, grid.ApplyReveal(1, 1, 2))
	_, err = g.RequestReveal(1, 1)
	assert.True(t, IsRejected(err, RejectReasonAlreadyRevealed))
	assert.Equal(t, 0, g.PendingCount())
}

func TestGate_ConfirmAndReset(t *testing.T) {
	g, _, _ := newTestGate(t, time.Minute)

	req, _ := g.RequestReveal(0, 0)
	g.MarkSent(req)
	g.Confirm(gametypes.Coordinates{X: 0, Y: 0})
	assert.Equal(t, 0, g.PendingCount())

	req, _ = g.RequestReveal(0, 1)
	g.MarkSent(req)
	flag, _ := g.RequestToggleFlag(0, 2)
	g.MarkSent(flag)
	assert.Equal(t, 1, g.PendingCount())

	g.Reset()
	assert.Equal(t, 0, g.PendingCount())
}
