package objects

import (
	"image"
	"testing"

	"github.com/cbodonnell/minesweeper/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestNewGridLayout(t *testing.T) {
	tests := []struct {
		name     string
		columns  int
		rows     int
		area     image.Rectangle
		wantCell int
		wantOrig image.Point
	}{
		{
			name:     "default board",
			columns:  25,
			rows:     25,
			area:     image.Rect(0, 40, 760, 800),
			wantCell: 30,
			wantOrig: image.Point{X: 5, Y: 45},
		},
		{
			name:     "small board is capped",
			columns:  5,
			rows:     5,
			area:     image.Rect(0, 0, 800, 800),
			wantCell: MaxCellSize,
			wantOrig: image.Point{X: 300, Y: 300},
		},
		{
			name:     "huge board is floored",
			columns:  200,
			rows:     200,
			area:     image.Rect(0, 0, 800, 800),
			wantCell: MinCellSize,
			wantOrig: image.Point{X: -400, Y: -400},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewGridLayout(tt.columns, tt.rows, tt.area)
			assert.Equal(t, tt.wantCell, l.CellSize)
			assert.Equal(t, tt.wantOrig, l.Origin)
		})
	}
}

func TestGridLayout_TileAt(t *testing.T) {
	l := GridLayout{Columns: 4, Rows: 3, CellSize: 10, Origin: image.Point{X: 100, Y: 50}}

	tests := []struct {
		p      image.Point
		want   types.Coordinates
		wantOK bool
	}{
		{p: image.Point{X: 100, Y: 50}, want: types.Coordinates{X: 0, Y: 0}, wantOK: true},
		{p: image.Point{X: 109, Y: 59}, want: types.Coordinates{X: 0, Y: 0}, wantOK: true},
		{p: image.Point{X: 110, Y: 79}, want: types.Coordinates{X: 1, Y: 2}, wantOK: true},
		{p: image.Point{X: 139, Y: 50}, want: types.Coordinates{X: 3, Y: 0}, wantOK: true},
		{p: image.Point{X: 140, Y: 50}},
		{p: image.Point{X: 99, Y: 60}},
		{p: image.Point{X: 120, Y: 80}},
		{p: image.Point{X: 120, Y: 49}},
	}
	for _, tt := range tests {
		got, ok := l.TileAt(tt.p)
		assert.Equal(t, tt.wantOK, ok, "point %v", tt.p)
		assert.Equal(t, tt.want, got, "point %v", tt.p)
	}
}

func TestGridLayout_TileRect(t *testing.T) {
	l := GridLayout{Columns: 4, Rows: 3, CellSize: 10}
	assert.Equal(t, image.Rect(20, 10, 30, 20), l.TileRect(types.Coordinates{X: 2, Y: 1}))
	assert.Equal(t, image.Point{X: 40, Y: 30}, l.Size())
}
