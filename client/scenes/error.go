package scenes

import "github.com/cbodonnell/minesweeper/client/objects"

type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

// NewErrorScene shows msg until the player presses any key or clicks.
func NewErrorScene(msg string, details ...string) (Scene, error) {
	lines := append([]string{msg}, details...)
	lines = append(lines, "Click to return to the menu")
	return &ErrorScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject("overlay-error", lines...)),
	}, nil
}
