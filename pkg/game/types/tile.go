package types

import (
	"fmt"
	"strconv"
)

// Coordinates identify a tile on the grid. Both components are zero-based.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// TileStatus is the locally known status of a tile.
type TileStatus int

const (
	TileStatusHidden TileStatus = iota
	TileStatusFlagged
	TileStatusRevealed
)

func (s TileStatus) String() string {
	switch s {
	case TileStatusHidden:
		return "Hidden"
	case TileStatusFlagged:
		return "Flagged"
	case TileStatusRevealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}

// TileValue is the adjacent-mine count of a revealed tile, or MineValue.
type TileValue int

const (
	// MaxAdjacentMines is the largest adjacent-mine count a tile can have.
	MaxAdjacentMines TileValue = 8
	// MineValue is the wire encoding of a mine.
	MineValue TileValue = 9
)

// Valid reports whether v is a count in [0, 8] or MineValue.
func (v TileValue) Valid() bool {
	return v >= 0 && v <= MineValue
}

func (v TileValue) IsMine() bool {
	return v == MineValue
}

// Display returns the text drawn on a revealed tile: blank for zero,
// "*" for a mine, otherwise the count.
func (v TileValue) Display() string {
	switch {
	case v == 0:
		return ""
	case v.IsMine():
		return "*"
	default:
		return strconv.Itoa(int(v))
	}
}

// Tile is one cell of the grid. Value is only meaningful once the tile is revealed.
type Tile struct {
	Status TileStatus
	Value  TileValue
}

func (t Tile) IsRevealed() bool {
	return t.Status == TileStatusRevealed
}

func (t Tile) IsFlagged() bool {
	return t.Status == TileStatusFlagged
}

// Display returns the text a renderer should draw for the tile.
func (t Tile) Display() string {
	switch t.Status {
	case TileStatusFlagged:
		return "F"
	case TileStatusRevealed:
		return t.Value.Display()
	default:
		return ""
	}
}

// RevealedTile is a single tile revealed by the server.
type RevealedTile struct {
	Coordinates
	Value TileValue
}

// PositionedTile pairs a tile with its coordinates, as returned by a grid snapshot.
type PositionedTile struct {
	Coordinates
	Tile Tile
}
