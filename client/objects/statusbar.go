package objects

import (
	"image/color"

	"github.com/cbodonnell/minesweeper/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// StatusBarObject draws a line of text produced each frame by a callback.
type StatusBarObject struct {
	*BaseObject

	y     int
	left  func() string
	right func() string
}

type NewStatusBarObjectOptions struct {
	// Y is the baseline of the text.
	Y int
	// Left and Right produce the text aligned to each side of the screen.
	Left  func() string
	Right func() string
}

func NewStatusBarObject(id string, opts NewStatusBarObjectOptions) *StatusBarObject {
	return &StatusBarObject{
		BaseObject: NewBaseObject(id, nil),
		y:          opts.Y,
		left:       opts.Left,
		right:      opts.Right,
	}
}

func (o *StatusBarObject) Draw(screen *ebiten.Image) {
	const margin = 10
	f := fonts.TTFSmallFont

	if o.left != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(margin, float64(o.y))
		op.ColorScale.ScaleWithColor(color.White)
		text.DrawWithOptions(screen, o.left(), f, op)
	}
	if o.right != nil {
		t := o.right()
		width := text.BoundString(f, t).Dx()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screen.Bounds().Dx()-width-margin), float64(o.y))
		op.ColorScale.ScaleWithColor(color.NRGBA{R: 180, G: 180, B: 190, A: 255})
		text.DrawWithOptions(screen, t, f, op)
	}
}
