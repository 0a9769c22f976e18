package game

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/cbodonnell/minesweeper/client/ui"
	"github.com/cbodonnell/minesweeper/pkg/api"
	"github.com/cbodonnell/minesweeper/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			name:        "invalid game id",
			err:         session.ValidateGameID("abc"),
			wantMessage: "game id must be at least 5 characters",
		},
		{
			name:        "board creation failed",
			err:         &api.ErrBoardCreationFailed{StatusCode: http.StatusBadRequest, Message: "Missing gameId"},
			wantMessage: "Missing gameId",
		},
		{
			name:        "wrapped board creation failure keeps the server message",
			err:         fmt.Errorf("failed to create board: %w", &api.ErrBoardCreationFailed{StatusCode: http.StatusConflict, Message: "Game already concluded"}),
			wantMessage: "Game already concluded",
		},
		{
			name:        "board creation failed without a message",
			err:         &api.ErrBoardCreationFailed{StatusCode: http.StatusInternalServerError},
			wantMessage: "Could not create the board. Please try again.",
		},
		{
			name:        "connection failed",
			err:         errors.New("failed to connect to server: dial tcp: connection refused"),
			wantMessage: "Could not connect to the game server.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := joinError(tt.err)
			var actionable *ui.ActionableError
			require.True(t, errors.As(err, &actionable))
			assert.Equal(t, tt.wantMessage, actionable.Message)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
