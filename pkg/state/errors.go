package state

import (
	"errors"
	"fmt"

	gametypes "github.com/cbodonnell/minesweeper/pkg/game/types"
)

// ErrOutOfBounds is returned when coordinates fall outside the grid.
type ErrOutOfBounds struct {
	Coordinates gametypes.Coordinates
	Width       int
	Height      int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("coordinates %s out of bounds for %dx%d grid", e.Coordinates, e.Width, e.Height)
}

func IsOutOfBounds(err error) bool {
	var target *ErrOutOfBounds
	return errors.As(err, &target)
}

// ErrInvalidTransition is returned when a mutation would leave the
// revealed state, which is terminal.
type ErrInvalidTransition struct {
	Coordinates gametypes.Coordinates
	From        gametypes.TileStatus
	To          gametypes.TileStatus
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid transition for tile %s: %s -> %s", e.Coordinates, e.From, e.To)
}

func IsInvalidTransition(err error) bool {
	var target *ErrInvalidTransition
	return errors.As(err, &target)
}
