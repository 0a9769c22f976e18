package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/minesweeper/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BannerObject shows a message across the top of the screen.
type BannerObject struct {
	*BaseObject

	text       string
	color      color.Color
	background color.Color
	ttl        int
}

type NewBannerObjectOptions struct {
	// Text is the text to display.
	Text string
	// Color is the color of the text.
	Color color.Color
	// Background is the color of the band behind the text.
	Background color.Color
	// TTL is the time to live in milliseconds. Zero keeps the banner until
	// it is removed.
	TTL int
	// ZIndex is the z-index of the banner.
	ZIndex int
}

func NewBannerObject(id string, opts NewBannerObjectOptions) *BannerObject {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	background := opts.Background
	if background == nil {
		background = color.NRGBA{R: 30, G: 30, B: 40, A: 220}
	}

	return &BannerObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		color:      clr,
		background: background,
		ttl:        opts.TTL,
	}
}

func (o *BannerObject) Update() error {
	if o.ttl > 0 {
		o.ttl -= 1000 / ebiten.TPS()
		if o.ttl <= 0 {
			if err := o.BaseObject.RemoveFromParent(); err != nil {
				return fmt.Errorf("failed to remove banner from parent: %w", err)
			}
		}
	}
	return nil
}

func (o *BannerObject) Draw(screen *ebiten.Image) {
	f := fonts.TTFNormalFont
	height := f.Metrics().Height.Ceil() * 2
	width := screen.Bounds().Dx()
	top := screen.Bounds().Dy()/2 - height/2

	vector.DrawFilledRect(screen, 0, float32(top), float32(width), float32(height), o.background, false)

	bounds, _ := font.BoundString(f, o.text)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(width)/2-float64(bounds.Max.X.Ceil())/2, float64(top+height/2)-float64((bounds.Max.Y+bounds.Min.Y).Ceil())/2)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, o.text, f, op)
}
