package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

var (
	TTFLargeFont  font.Face
	TTFNormalFont font.Face
	TTFSmallFont  font.Face
	// TTFTileFont draws the counts on revealed tiles.
	TTFTileFont font.Face
)

const dpi = 72

func loadFonts() error {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse regular font: %v", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse bold font: %v", err)
	}

	TTFLargeFont = newFace(bold, 32)
	TTFNormalFont = newFace(regular, 20)
	TTFSmallFont = newFace(regular, 14)
	TTFTileFont = newFace(bold, 18)

	return nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
