package objects

import (
	"image"

	"github.com/cbodonnell/minesweeper/pkg/game/types"
)

const (
	MinCellSize = 8
	MaxCellSize = 40
)

// GridLayout maps tiles to screen pixels.
type GridLayout struct {
	Columns  int
	Rows     int
	CellSize int
	// Origin is the screen position of the top left corner of tile (0, 0).
	Origin image.Point
}

// NewGridLayout fits a columns x rows grid inside area, centered.
func NewGridLayout(columns, rows int, area image.Rectangle) GridLayout {
	cellSize := MaxCellSize
	if columns > 0 && rows > 0 {
		cellSize = min(area.Dx()/columns, area.Dy()/rows)
	}
	cellSize = max(MinCellSize, min(MaxCellSize, cellSize))

	l := GridLayout{
		Columns:  columns,
		Rows:     rows,
		CellSize: cellSize,
	}
	size := l.Size()
	l.Origin = image.Point{
		X: area.Min.X + (area.Dx()-size.X)/2,
		Y: area.Min.Y + (area.Dy()-size.Y)/2,
	}
	return l
}

// Size is the size of the whole grid in pixels.
func (l GridLayout) Size() image.Point {
	return image.Point{X: l.Columns * l.CellSize, Y: l.Rows * l.CellSize}
}

// TileAt returns the tile under the screen position p.
func (l GridLayout) TileAt(p image.Point) (types.Coordinates, bool) {
	rel := p.Sub(l.Origin)
	if rel.X < 0 || rel.Y < 0 {
		return types.Coordinates{}, false
	}
	c := types.Coordinates{X: rel.X / l.CellSize, Y: rel.Y / l.CellSize}
	if c.X >= l.Columns || c.Y >= l.Rows {
		return types.Coordinates{}, false
	}
	return c, true
}

// TileRect is the rectangle of tile c relative to the grid origin.
func (l GridLayout) TileRect(c types.Coordinates) image.Rectangle {
	corner := image.Point{X: c.X * l.CellSize, Y: c.Y * l.CellSize}
	return image.Rectangle{Min: corner, Max: corner.Add(image.Point{X: l.CellSize, Y: l.CellSize})}
}
