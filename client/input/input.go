package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	return len(touchIDs) > 0
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// RevealJustPressed returns the screen position of a reveal gesture: a left
// click or a tap.
func RevealJustPressed() (image.Point, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return image.Pt(ebiten.CursorPosition()), true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return image.Pt(ebiten.TouchPosition(touchIDs[0])), true
	}
	return image.Point{}, false
}

// FlagJustPressed returns the screen position of a flag gesture: a right
// click, or a left click while shift is held.
func FlagJustPressed() (image.Point, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return image.Pt(ebiten.CursorPosition()), true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		return image.Pt(ebiten.CursorPosition()), true
	}
	return image.Point{}, false
}

// IsResyncJustPressed reports whether the redraw key is just pressed.
func IsResyncJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
