package journal

import (
	"fmt"

	"github.com/cbodonnell/minesweeper/pkg/engine"
	"github.com/cbodonnell/minesweeper/pkg/game/types"
	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/cbodonnell/minesweeper/pkg/messages"
	"github.com/cbodonnell/minesweeper/pkg/state"
)

// ReplayResult is the state reached after replaying a journal.
type ReplayResult struct {
	Grid     *state.InMemoryGrid
	Stats    engine.Stats
	Messages []string
	Notices  []*messages.Notice
	Sent     int
}

type ReplayOptions struct {
	// OnRender is called for every batch the engine renders.
	OnRender engine.RenderFunc
	// OnEntry is called after each entry has been applied.
	OnEntry func(i int, entry Entry, grid state.GridReader)
	Logger  *log.Logger
}

// Replay feeds every inbound entry of j through a fresh engine, in order.
// Outbound entries are counted but not sent anywhere.
func Replay(j *Journal, opts ReplayOptions) (*ReplayResult, error) {
	grid, err := state.NewInMemoryGrid(j.Header.Width, j.Header.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %v", err)
	}

	result := &ReplayResult{Grid: grid}
	e := engine.NewEngine(engine.NewEngineOptions{
		GameID: j.Header.GameID,
		Grid:   grid,
		Logger: opts.Logger,
		OnRender: func(tiles []types.PositionedTile) {
			if opts.OnRender != nil {
				opts.OnRender(tiles)
			}
		},
		OnMessage: func(message string) {
			result.Messages = append(result.Messages, message)
		},
		OnNotice: func(notice *messages.Notice) {
			result.Notices = append(result.Notices, notice)
		},
	})

	for i, entry := range j.Entries {
		switch entry.Direction {
		case DirectionInbound:
			e.HandleFrame(&messages.Frame{Data: []byte(entry.Data), ReceivedAt: entry.At})
		case DirectionOutbound:
			result.Sent++
		default:
			return nil, fmt.Errorf("unknown journal direction %q", entry.Direction)
		}
		if opts.OnEntry != nil {
			opts.OnEntry(i, entry, grid)
		}
	}

	result.Stats = e.Stats()
	return result, nil
}
