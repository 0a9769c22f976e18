package state

import (
	"fmt"

	gametypes "github.com/cbodonnell/minesweeper/pkg/game/types"
)

// GridReader provides read access to the locally known board.
type GridReader interface {
	// Get returns the tile at (x, y).
	Get(x, y int) (gametypes.Tile, error)
	Width() int
	Height() int
}

// GridStore holds the locally known board for a game.
// Implementations are not safe for concurrent use; a session mutates its
// grid from a single loop.
type GridStore interface {
	GridReader
	// ApplyFlagState sets the tile to Flagged or Hidden.
	ApplyFlagState(x, y int, flagged bool) error
	// ApplyReveal sets the tile to Revealed with the given value.
	ApplyReveal(x, y int, value gametypes.TileValue) error
	// Snapshot returns every tile in row-major order.
	Snapshot() []gametypes.PositionedTile
	// Counts returns a summary of tile statuses.
	Counts() Counts
}

// Counts summarizes the tiles of a grid.
type Counts struct {
	Hidden   int
	Flagged  int
	Revealed int
	Mines    int
}

// InMemoryGrid is a GridStore backed by a row-major slice.
type InMemoryGrid struct {
	width  int
	height int
	tiles  []gametypes.Tile
}

var _ GridStore = &InMemoryGrid{}

// NewInMemoryGrid creates a grid of width x height hidden tiles.
func NewInMemoryGrid(width, height int) (*InMemoryGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	return &InMemoryGrid{
		width:  width,
		height: height,
		tiles:  make([]gametypes.Tile, width*height),
	}, nil
}

func (g *InMemoryGrid) Width() int {
	return g.width
}

func (g *InMemoryGrid) Height() int {
	return g.height
}

func (g *InMemoryGrid) index(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, &ErrOutOfBounds{
			Coordinates: gametypes.Coordinates{X: x, Y: y},
			Width:       g.width,
			Height:      g.height,
		}
	}
	return y*g.width + x, nil
}

func (g *InMemoryGrid) Get(x, y int) (gametypes.Tile, error) {
	i, err := g.index(x, y)
	if err != nil {
		return gametypes.Tile{}, err
	}
	return g.tiles[i], nil
}

func (g *InMemoryGrid) ApplyFlagState(x, y int, flagged bool) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}

	to := gametypes.TileStatusHidden
	if flagged {
		to = gametypes.TileStatusFlagged
	}

	tile := &g.tiles[i]
	if tile.IsRevealed() {
		return &ErrInvalidTransition{
			Coordinates: gametypes.Coordinates{X: x, Y: y},
			From:        tile.Status,
			To:          to,
		}
	}

	tile.Status = to
	return nil
}

func (g *InMemoryGrid) ApplyReveal(x, y int, value gametypes.TileValue) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}

	if !value.Valid() {
		return fmt.Errorf("invalid tile value %d", value)
	}

	tile := &g.tiles[i]
	if tile.IsRevealed() {
		return &ErrInvalidTransition{
			Coordinates: gametypes.Coordinates{X: x, Y: y},
			From:        tile.Status,
			To:          gametypes.TileStatusRevealed,
		}
	}

	tile.Status = gametypes.TileStatusRevealed
	tile.Value = value
	return nil
}

func (g *InMemoryGrid) Snapshot() []gametypes.PositionedTile {
	snapshot := make([]gametypes.PositionedTile, 0, len(g.tiles))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			snapshot = append(snapshot, gametypes.PositionedTile{
				Coordinates: gametypes.Coordinates{X: x, Y: y},
				Tile:        g.tiles[y*g.width+x],
			})
		}
	}
	return snapshot
}

func (g *InMemoryGrid) Counts() Counts {
	counts := Counts{}
	for _, tile := range g.tiles {
		switch tile.Status {
		case gametypes.TileStatusHidden:
			counts.Hidden++
		case gametypes.TileStatusFlagged:
			counts.Flagged++
		case gametypes.TileStatusRevealed:
			counts.Revealed++
			if tile.Value.IsMine() {
				counts.Mines++
			}
		}
	}
	return counts
}
