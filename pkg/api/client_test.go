package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cbodonnell/minesweeper/pkg/fakeserver"
	"github.com/cbodonnell/minesweeper/pkg/game/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateBoard(t *testing.T) {
	server := fakeserver.New(fakeserver.NewServerOptions{BoardSize: 10})
	defer server.Close()

	client := NewClient(NewClientOptions{BaseURL: server.URL() + "/"})
	info, err := client.CreateBoard(context.Background(), "abcde")
	require.NoError(t, err)
	assert.Equal(t, &BoardInfo{
		GameID:    "abcde",
		Width:     10,
		Height:    10,
		MineCount: constants.DefaultMineCount,
	}, info)
	assert.Equal(t, []string{"abcde"}, server.Boards())

	// joining an existing board succeeds too
	_, err = client.CreateBoard(context.Background(), "abcde")
	require.NoError(t, err)
}

func TestClient_CreateBoardDefaults(t *testing.T) {
	server := fakeserver.New(fakeserver.NewServerOptions{})
	defer server.Close()

	info, err := NewClient(NewClientOptions{BaseURL: server.URL()}).CreateBoard(context.Background(), "abcde")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultBoardSize, info.Width)
	assert.Equal(t, constants.DefaultBoardSize, info.Height)
}

func TestClient_CreateBoardFailure(t *testing.T) {
	server := fakeserver.New(fakeserver.NewServerOptions{})
	defer server.Close()
	server.FailCreateBoard(http.StatusInternalServerError, "Board table unavailable")

	_, err := NewClient(NewClientOptions{BaseURL: server.URL()}).CreateBoard(context.Background(), "abcde")
	require.Error(t, err)
	assert.True(t, IsBoardCreationFailed(err))
	assert.Equal(t, "Board table unavailable", err.Error())
}

func TestClient_CreateBoardResponses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     string
		wantWidth   int
		wantMines   int
		wantFailure bool
	}{
		{
			name:      "plain text success",
			status:    http.StatusOK,
			body:      "ok",
			wantWidth: constants.DefaultBoardSize,
			wantMines: constants.DefaultMineCount,
		},
		{
			name:      "created with size",
			status:    http.StatusCreated,
			body:      `{"message":"GameReady","gameId":"abcde","boardSize":25,"bombCount":65}`,
			wantWidth: 25,
			wantMines: 65,
		},
		{
			name:        "error field",
			status:      http.StatusBadRequest,
			body:        `{"error":"Missing gameId"}`,
			wantErr:     "Missing gameId",
			wantFailure: true,
		},
		{
			name:        "non json failure",
			status:      http.StatusBadGateway,
			body:        "bad gateway\n",
			wantErr:     "bad gateway",
			wantFailure: true,
		},
		{
			name:        "empty failure",
			status:      http.StatusServiceUnavailable,
			wantErr:     "board creation failed with status 503",
			wantFailure: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, CreateBoardPath, r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			info, err := NewClient(NewClientOptions{BaseURL: server.URL}).CreateBoard(context.Background(), "abcde")
			if tt.wantFailure {
				require.Error(t, err)
				assert.True(t, IsBoardCreationFailed(err))
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, info.Width)
			assert.Equal(t, tt.wantMines, info.MineCount)
		})
	}
}

func TestClient_CreateBoardUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClient(NewClientOptions{BaseURL: url}).CreateBoard(context.Background(), "abcde")
	require.Error(t, err)
	assert.False(t, IsBoardCreationFailed(err))
}
