package messages

import (
	"encoding/json"
	"testing"

	gametypes "github.com/cbodonnell/minesweeper/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeClientAction(t *testing.T) {
	b, err := SerializeClientAction(&ClientAction{
		Action:      ActionRevealTile,
		Coordinates: gametypes.Coordinates{X: 3, Y: 7},
		GameID:      "abcde",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"RevealTile","coordinates":{"x":3,"y":7},"gameId":"abcde"}`, string(b))

	b, err = SerializeClientAction(&ClientAction{
		Action:      ActionToggleFlagOnTile,
		Coordinates: gametypes.Coordinates{X: 0, Y: 0},
		GameID:      "abcde",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"ToggleFlagOnTile","coordinates":{"x":0,"y":0},"gameId":"abcde"}`, string(b))
}

func TestSerializeClientAction_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		action *ClientAction
	}{
		{name: "nil", action: nil},
		{name: "server action", action: &ClientAction{Action: ActionUpdateTiles, GameID: "abcde"}},
		{name: "no game id", action: &ClientAction{Action: ActionRevealTile}},
		{name: "negative", action: &ClientAction{Action: ActionRevealTile, GameID: "abcde", Coordinates: gametypes.Coordinates{X: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SerializeClientAction(tt.action)
			assert.Error(t, err)
		})
	}
}

func TestDeserializeClientAction(t *testing.T) {
	a, err := DeserializeClientAction([]byte(`{"action":"ToggleFlagOnTile","coordinates":{"x":1,"y":2},"gameId":"abcde"}`))
	require.NoError(t, err)
	assert.Equal(t, &ClientAction{Action: ActionToggleFlagOnTile, Coordinates: gametypes.Coordinates{X: 1, Y: 2}, GameID: "abcde"}, a)

	_, err = DeserializeClientAction([]byte(`{"action":"RevealTile","coordinates":{"x":1},"gameId":"abcde"}`))
	assert.True(t, IsMalformedMessage(err))

	_, err = DeserializeClientAction([]byte(`{"action":"RevealTile","coordinates":{"x":1,"y":1}}`))
	assert.True(t, IsMalformedMessage(err))
}

func TestDeserializeServerEvent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ServerEvent
	}{
		{
			name: "update tiles",
			in:   `{"action":"UpdateTiles","tiles":[{"x":2,"y":3,"value":0},{"x":2,"y":4,"value":9}]}`,
			want: &UpdateTiles{Tiles: []gametypes.RevealedTile{
				{Coordinates: gametypes.Coordinates{X: 2, Y: 3}, Value: 0},
				{Coordinates: gametypes.Coordinates{X: 2, Y: 4}, Value: gametypes.MineValue},
			}},
		},
		{
			name: "lower case update tiles",
			in:   `{"action":"updateTiles","tiles":[{"x":0,"y":0,"value":1}]}`,
			want: &UpdateTiles{Tiles: []gametypes.RevealedTile{
				{Coordinates: gametypes.Coordinates{X: 0, Y: 0}, Value: 1},
			}},
		},
		{
			name: "set flag state",
			in:   `{"action":"SetFlagState","coordinates":{"x":1,"y":1},"flagged":true}`,
			want: &SetFlagState{Coordinates: gametypes.Coordinates{X: 1, Y: 1}, Flagged: true},
		},
		{
			name: "unset flag state",
			in:   `{"action":"SetFlagState","coordinates":{"x":1,"y":1},"flagged":false}`,
			want: &SetFlagState{Coordinates: gametypes.Coordinates{X: 1, Y: 1}, Flagged: false},
		},
		{
			name: "display message",
			in:   `{"action":"DisplayMessage","data":"Game abcde over!"}`,
			want: &DisplayMessage{Data: "Game abcde over!"},
		},
		{
			name: "player joined notice",
			in:   `{"message":"PlayerJoined","details":"A new player has joined game abcde."}`,
			want: &Notice{Message: "PlayerJoined", Details: "A new player has joined game abcde."},
		},
		{
			name: "unknown fields are ignored",
			in:   `{"action":"DisplayMessage","data":"hi","extra":[1,2,3]}`,
			want: &DisplayMessage{Data: "hi"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeserializeServerEvent([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeserializeServerEvent_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "not json", in: `{"action":`},
		{name: "array", in: `[1,2]`},
		{name: "null", in: `null`},
		{name: "missing action", in: `{"tiles":[{"x":1,"y":1,"value":1}]}`},
		{name: "null action", in: `{"action":null,"data":"x"}`},
		{name: "action not string", in: `{"action":5}`},
		{name: "unknown action", in: `{"action":"ExplodeEverything"}`},
		{name: "empty action", in: `{"action":""}`},
		{name: "missing tiles", in: `{"action":"UpdateTiles"}`},
		{name: "empty tiles", in: `{"action":"UpdateTiles","tiles":[]}`},
		{name: "tiles not array", in: `{"action":"UpdateTiles","tiles":{"x":1}}`},
		{name: "tile missing value", in: `{"action":"UpdateTiles","tiles":[{"x":1,"y":1}]}`},
		{name: "tile value 15", in: `{"action":"UpdateTiles","tiles":[{"x":1,"y":1,"value":15}]}`},
		{name: "tile value negative", in: `{"action":"UpdateTiles","tiles":[{"x":1,"y":1,"value":-1}]}`},
		{name: "tile value string", in: `{"action":"UpdateTiles","tiles":[{"x":1,"y":1,"value":"3"}]}`},
		{name: "tile value fractional", in: `{"action":"UpdateTiles","tiles":[{"x":1,"y":1,"value":1.5}]}`},
		{name: "tile negative x", in: `{"action":"UpdateTiles","tiles":[{"x":-1,"y":1,"value":1}]}`},
		{name: "one bad tile in batch", in: `{"action":"UpdateTiles","tiles":[{"x":0,"y":0,"value":1},{"x":1,"y":1,"value":10}]}`},
		{name: "flag missing coordinates", in: `{"action":"SetFlagState","flagged":true}`},
		{name: "flag missing y", in: `{"action":"SetFlagState","coordinates":{"x":1},"flagged":true}`},
		{name: "flag missing flagged", in: `{"action":"SetFlagState","coordinates":{"x":1,"y":1}}`},
		{name: "flag not bool", in: `{"action":"SetFlagState","coordinates":{"x":1,"y":1},"flagged":"yes"}`},
		{name: "display missing data", in: `{"action":"DisplayMessage"}`},
		{name: "display data not string", in: `{"action":"DisplayMessage","data":42}`},
		{name: "notice message not string", in: `{"message":42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeserializeServerEvent([]byte(tt.in))
			assert.Nil(t, got)
			assert.True(t, IsMalformedMessage(err), "expected malformed message, got %v", err)
		})
	}
}

func TestSerializeServerEvent(t *testing.T) {
	events := []ServerEvent{
		&UpdateTiles{Tiles: []gametypes.RevealedTile{{Coordinates: gametypes.Coordinates{X: 1, Y: 2}, Value: 3}}},
		&SetFlagState{Coordinates: gametypes.Coordinates{X: 4, Y: 4}, Flagged: true},
		&DisplayMessage{Data: "Game abcde over!"},
		&Notice{Message: "PlayerJoined"},
	}
	for _, event := range events {
		b, err := SerializeServerEvent(event)
		require.NoError(t, err)
		got, err := DeserializeServerEvent(b)
		require.NoError(t, err)
		assert.Equal(t, event, got)
	}

	b, err := SerializeServerEvent(&SetFlagState{Coordinates: gametypes.Coordinates{X: 4, Y: 4}, Flagged: true})
	require.NoError(t, err)
	wire := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.Equal(t, "SetFlagState", wire["action"])
}

func TestNoticeString(t *testing.T) {
	assert.Equal(t, "PlayerJoined", (&Notice{Message: "PlayerJoined"}).String())
	assert.Equal(t, "PlayerJoined: conn-2", (&Notice{Message: "PlayerJoined", Details: "conn-2"}).String())
}
