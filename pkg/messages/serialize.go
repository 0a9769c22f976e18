package messages

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	gametypes "github.com/cbodonnell/minesweeper/pkg/game/types"
)

// ErrMalformedMessage is returned when a frame cannot be decoded into an event.
type ErrMalformedMessage struct {
	Reason string
	Err    error
}

func (e *ErrMalformedMessage) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed message: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed message: %s", e.Reason)
}

func (e *ErrMalformedMessage) Unwrap() error {
	return e.Err
}

func IsMalformedMessage(err error) bool {
	var target *ErrMalformedMessage
	return errors.As(err, &target)
}

func malformed(reason string, err error) error {
	return &ErrMalformedMessage{Reason: reason, Err: err}
}

// wire shapes use pointers so missing fields can be told apart from zero values

type wireCoordinates struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type wireTile struct {
	X     *int `json:"x"`
	Y     *int `json:"y"`
	Value *int `json:"value"`
}

type wireUpdateTiles struct {
	Tiles *[]wireTile `json:"tiles"`
}

type wireSetFlagState struct {
	Coordinates *wireCoordinates `json:"coordinates"`
	Flagged     *bool            `json:"flagged"`
}

type wireDisplayMessage struct {
	Data *string `json:"data"`
}

type wireNotice struct {
	Message *string `json:"message"`
	Details *string `json:"details"`
}

type wireClientAction struct {
	Action      *string          `json:"action"`
	Coordinates *wireCoordinates `json:"coordinates"`
	GameID      *string          `json:"gameId"`
}

// SerializeClientAction encodes an outgoing action as JSON text.
func SerializeClientAction(a *ClientAction) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("client action is nil")
	}
	switch a.Action {
	case ActionRevealTile, ActionToggleFlagOnTile:
	default:
		return nil, fmt.Errorf("unknown client action %q", a.Action)
	}
	if a.GameID == "" {
		return nil, fmt.Errorf("client action has no game id")
	}
	if a.Coordinates.X < 0 || a.Coordinates.Y < 0 {
		return nil, fmt.Errorf("client action has negative coordinates %s", a.Coordinates)
	}

	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal client action: %v", err)
	}
	return b, nil
}

// DeserializeClientAction decodes an action sent by a client.
func DeserializeClientAction(b []byte) (*ClientAction, error) {
	w := &wireClientAction{}
	if err := json.Unmarshal(b, w); err != nil {
		return nil, malformed("invalid json", err)
	}
	if w.Action == nil {
		return nil, malformed("missing action", nil)
	}
	action := Action(*w.Action)
	switch action {
	case ActionRevealTile, ActionToggleFlagOnTile:
	default:
		return nil, malformed(fmt.Sprintf("unknown client action %q", *w.Action), nil)
	}
	coordinates, err := parseCoordinates(w.Coordinates)
	if err != nil {
		return nil, err
	}
	if w.GameID == nil || *w.GameID == "" {
		return nil, malformed("missing gameId", nil)
	}

	return &ClientAction{
		Action:      action,
		Coordinates: coordinates,
		GameID:      *w.GameID,
	}, nil
}

// DeserializeServerEvent decodes and validates a frame received from the game server.
// Every failure is an *ErrMalformedMessage.
func DeserializeServerEvent(b []byte) (ServerEvent, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, malformed("invalid json", err)
	}

	rawAction, ok := fields["action"]
	if !ok || isNull(rawAction) {
		if _, ok := fields["message"]; ok {
			return deserializeNotice(b)
		}
		return nil, malformed("missing action", nil)
	}

	var actionStr string
	if err := json.Unmarshal(rawAction, &actionStr); err != nil {
		return nil, malformed("action is not a string", err)
	}

	switch normalizeAction(actionStr) {
	case ActionUpdateTiles:
		return deserializeUpdateTiles(b)
	case ActionSetFlagState:
		return deserializeSetFlagState(b)
	case ActionDisplayMessage:
		return deserializeDisplayMessage(b)
	default:
		return nil, malformed(fmt.Sprintf("unknown action %q", actionStr), nil)
	}
}

// normalizeAction upper-cases the first letter so that "updateTiles",
// which some server versions send, matches ActionUpdateTiles.
func normalizeAction(s string) Action {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return Action(s)
	}
	return Action(string(unicode.ToUpper(r)) + s[size:])
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func deserializeUpdateTiles(b []byte) (ServerEvent, error) {
	w := &wireUpdateTiles{}
	if err := json.Unmarshal(b, w); err != nil {
		return nil, malformed("invalid UpdateTiles", err)
	}
	if w.Tiles == nil {
		return nil, malformed("UpdateTiles missing tiles", nil)
	}
	if len(*w.Tiles) == 0 {
		return nil, malformed("UpdateTiles has no tiles", nil)
	}

	tiles := make([]gametypes.RevealedTile, 0, len(*w.Tiles))
	for i, t := range *w.Tiles {
		if t.X == nil || t.Y == nil || t.Value == nil {
			return nil, malformed(fmt.Sprintf("tile %d missing x, y or value", i), nil)
		}
		if *t.X < 0 || *t.Y < 0 {
			return nil, malformed(fmt.Sprintf("tile %d has negative coordinates (%d,%d)", i, *t.X, *t.Y), nil)
		}
		value := gametypes.TileValue(*t.Value)
		if !value.Valid() {
			return nil, malformed(fmt.Sprintf("tile %d has value %d outside [0, %d]", i, *t.Value, gametypes.MineValue), nil)
		}
		tiles = append(tiles, gametypes.RevealedTile{
			Coordinates: gametypes.Coordinates{X: *t.X, Y: *t.Y},
			Value:       value,
		})
	}

	return &UpdateTiles{Tiles: tiles}, nil
}

func deserializeSetFlagState(b []byte) (ServerEvent, error) {
	w := &wireSetFlagState{}
	if err := json.Unmarshal(b, w); err != nil {
		return nil, malformed("invalid SetFlagState", err)
	}
	coordinates, err := parseCoordinates(w.Coordinates)
	if err != nil {
		return nil, err
	}
	if w.Flagged == nil {
		return nil, malformed("SetFlagState missing flagged", nil)
	}

	return &SetFlagState{
		Coordinates: coordinates,
		Flagged:     *w.Flagged,
	}, nil
}

func deserializeDisplayMessage(b []byte) (ServerEvent, error) {
	w := &wireDisplayMessage{}
	if err := json.Unmarshal(b, w); err != nil {
		return nil, malformed("invalid DisplayMessage", err)
	}
	if w.Data == nil {
		return nil, malformed("DisplayMessage missing data", nil)
	}
	return &DisplayMessage{Data: *w.Data}, nil
}

func deserializeNotice(b []byte) (ServerEvent, error) {
	w := &wireNotice{}
	if err := json.Unmarshal(b, w); err != nil {
		return nil, malformed("invalid notice", err)
	}
	if w.Message == nil {
		return nil, malformed("notice missing message", nil)
	}
	notice := &Notice{Message: *w.Message}
	if w.Details != nil {
		notice.Details = *w.Details
	}
	return notice, nil
}

func parseCoordinates(w *wireCoordinates) (gametypes.Coordinates, error) {
	if w == nil {
		return gametypes.Coordinates{}, malformed("missing coordinates", nil)
	}
	if w.X == nil || w.Y == nil {
		return gametypes.Coordinates{}, malformed("coordinates missing x or y", nil)
	}
	if *w.X < 0 || *w.Y < 0 {
		return gametypes.Coordinates{}, malformed(fmt.Sprintf("negative coordinates (%d,%d)", *w.X, *w.Y), nil)
	}
	return gametypes.Coordinates{X: *w.X, Y: *w.Y}, nil
}

// SerializeServerEvent encodes an event in the server's wire format.
// It is the inverse of DeserializeServerEvent and is used by test servers
// and the journal.
func SerializeServerEvent(event ServerEvent) ([]byte, error) {
	var v interface{}
	switch e := event.(type) {
	case *UpdateTiles:
		type tile struct {
			X     int `json:"x"`
			Y     int `json:"y"`
			Value int `json:"value"`
		}
		tiles := make([]tile, 0, len(e.Tiles))
		for _, t := range e.Tiles {
			tiles = append(tiles, tile{X: t.X, Y: t.Y, Value: int(t.Value)})
		}
		v = struct {
			Action Action `json:"action"`
			Tiles  []tile `json:"tiles"`
		}{ActionUpdateTiles, tiles}
	case *SetFlagState:
		v = struct {
			Action      Action                `json:"action"`
			Coordinates gametypes.Coordinates `json:"coordinates"`
			Flagged     bool                  `json:"flagged"`
		}{ActionSetFlagState, e.Coordinates, e.Flagged}
	case *DisplayMessage:
		v = struct {
			Action Action `json:"action"`
			Data   string `json:"data"`
		}{ActionDisplayMessage, e.Data}
	case *Notice:
		v = struct {
			Message string `json:"message"`
			Details string `json:"details,omitempty"`
		}{e.Message, e.Details}
	default:
		return nil, fmt.Errorf("unknown server event %T", event)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal server event: %v", err)
	}
	return b, nil
}
