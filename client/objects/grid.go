package objects

import (
	"image/color"

	"github.com/cbodonnell/minesweeper/client/fonts"
	"github.com/cbodonnell/minesweeper/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	hiddenColor   = color.NRGBA{R: 170, G: 170, B: 180, A: 255}
	revealedColor = color.NRGBA{R: 225, G: 225, B: 230, A: 255}
	mineColor     = color.NRGBA{R: 220, G: 60, B: 60, A: 255}
	flagColor     = color.NRGBA{R: 200, G: 30, B: 30, A: 255}

	valueColors = map[types.TileValue]color.Color{
		1: color.NRGBA{R: 25, G: 118, B: 210, A: 255},
		2: color.NRGBA{R: 56, G: 142, B: 60, A: 255},
		3: color.NRGBA{R: 211, G: 47, B: 47, A: 255},
		4: color.NRGBA{R: 123, G: 31, B: 162, A: 255},
		5: color.NRGBA{R: 255, G: 143, B: 0, A: 255},
		6: color.NRGBA{R: 0, G: 151, B: 167, A: 255},
		7: color.NRGBA{R: 66, G: 66, B: 66, A: 255},
		8: color.NRGBA{R: 158, G: 158, B: 158, A: 255},
	}
)

// GridObject draws the board. Tiles are painted onto an offscreen image
// only when they change.
type GridObject struct {
	*BaseObject

	layout GridLayout
	image  *ebiten.Image
}

func NewGridObject(id string, layout GridLayout) *GridObject {
	return &GridObject{
		BaseObject: NewBaseObject(id, nil),
		layout:     layout,
	}
}

func (o *GridObject) Init() error {
	if o.image == nil {
		size := o.layout.Size()
		o.image = ebiten.NewImage(size.X, size.Y)
	}
	return nil
}

func (o *GridObject) Destroy() error {
	if o.image != nil {
		o.image.Dispose()
		o.image = nil
	}
	return nil
}

func (o *GridObject) Layout() GridLayout {
	return o.layout
}

// RenderTiles repaints the given tiles.
func (o *GridObject) RenderTiles(tiles []types.PositionedTile) {
	if o.image == nil {
		return
	}
	for _, t := range tiles {
		o.drawTile(t)
	}
}

func (o *GridObject) drawTile(t types.PositionedTile) {
	r := o.layout.TileRect(t.Coordinates)
	x, y := float32(r.Min.X), float32(r.Min.Y)
	size := float32(o.layout.CellSize)

	var background color.Color = hiddenColor
	if t.Tile.IsRevealed() {
		background = revealedColor
		if t.Tile.Value.IsMine() {
			background = mineColor
		}
	}
	vector.DrawFilledRect(o.image, x, y, size, size, background, false)
	vector.StrokeRect(o.image, x, y, size, size, 1, color.NRGBA{R: 120, G: 120, B: 130, A: 255}, false)

	label := t.Tile.Display()
	if label == "" {
		return
	}
	var clr color.Color = color.Black
	switch {
	case t.Tile.IsFlagged():
		clr = flagColor
	case t.Tile.IsRevealed() && !t.Tile.Value.IsMine():
		if c, ok := valueColors[t.Tile.Value]; ok {
			clr = c
		}
	}

	f := fonts.TTFTileFont
	bounds, _ := font.BoundString(f, label)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(x)+float64(size)/2-float64((bounds.Max.X+bounds.Min.X).Ceil())/2,
		float64(y)+float64(size)/2-float64((bounds.Max.Y+bounds.Min.Y).Ceil())/2,
	)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(o.image, label, f, op)
}

func (o *GridObject) Draw(screen *ebiten.Image) {
	if o.image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(o.layout.Origin.X), float64(o.layout.Origin.Y))
	screen.DrawImage(o.image, op)
}
