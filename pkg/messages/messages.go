package messages

import (
	"time"

	gametypes "github.com/cbodonnell/minesweeper/pkg/game/types"
)

const (
	// MessageBufferSize is the read limit for a single websocket frame.
	// A full 25x25 cascade is well under this.
	MessageBufferSize = 64 * 1024
)

// Action discriminates wire messages.
type Action string

// Client actions
const (
	ActionRevealTile       Action = "RevealTile"
	ActionToggleFlagOnTile Action = "ToggleFlagOnTile"
)

// Server actions
const (
	ActionUpdateTiles    Action = "UpdateTiles"
	ActionSetFlagState   Action = "SetFlagState"
	ActionDisplayMessage Action = "DisplayMessage"
)

// Frame is a raw inbound websocket message waiting to be decoded.
type Frame struct {
	Data       []byte
	ReceivedAt time.Time
}

// ClientAction is a request sent to the game server.
type ClientAction struct {
	Action      Action                `json:"action"`
	Coordinates gametypes.Coordinates `json:"coordinates"`
	GameID      string                `json:"gameId"`
}

// ServerEvent is a decoded server message. The set of implementations is closed:
// *UpdateTiles, *SetFlagState, *DisplayMessage and *Notice.
type ServerEvent interface {
	serverEvent()
}

// UpdateTiles reveals one or more tiles, e.g. a cascade from a zero tile.
type UpdateTiles struct {
	Tiles []gametypes.RevealedTile
}

// SetFlagState sets the flag of a single tile.
type SetFlagState struct {
	Coordinates gametypes.Coordinates
	Flagged     bool
}

// DisplayMessage is a notice for the player, such as game over.
type DisplayMessage struct {
	Data string
}

// Notice is an informational frame without an action, such as a player joining.
type Notice struct {
	Message string
	Details string
}

func (n *Notice) String() string {
	if n.Details == "" {
		return n.Message
	}
	return n.Message + ": " + n.Details
}

func (*UpdateTiles) serverEvent()    {}
func (*SetFlagState) serverEvent()   {}
func (*DisplayMessage) serverEvent() {}
func (*Notice) serverEvent()         {}
