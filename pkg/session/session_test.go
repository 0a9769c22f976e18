package session

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/minesweeper/pkg/api"
	"github.com/cbodonnell/minesweeper/pkg/client/network"
	"github.com/cbodonnell/minesweeper/pkg/fakeserver"
	"github.com/cbodonnell/minesweeper/pkg/game/types"
	"github.com/cbodonnell/minesweeper/pkg/gate"
	"github.com/cbodonnell/minesweeper/pkg/journal"
	"github.com/cbodonnell/minesweeper/pkg/messages"
	"github.com/cbodonnell/minesweeper/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

// revealResponder answers every reveal with the tile's x coordinate as its
// value and every flag toggle with a flag set.
func revealResponder(gameID string, action *messages.ClientAction) []messages.ServerEvent {
	switch action.Action {
	case messages.ActionRevealTile:
		return []messages.ServerEvent{&messages.UpdateTiles{Tiles: []types.RevealedTile{
			{Coordinates: action.Coordinates, Value: types.TileValue(action.Coordinates.X % 9)},
		}}}
	case messages.ActionToggleFlagOnTile:
		return []messages.ServerEvent{&messages.SetFlagState{Coordinates: action.Coordinates, Flagged: true}}
	}
	return nil
}

func join(t *testing.T, server *fakeserver.Server, opts JoinOptions) *Session {
	t.Helper()
	opts.BoardClient = api.NewClient(api.NewClientOptions{BaseURL: server.URL()})
	opts.ServerURL = server.WSURL()
	if opts.GameID == "" {
		opts.GameID = "abcde"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := Join(ctx, opts)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	select {
	case <-server.Connected():
	case <-time.After(5 * time.Second):
		t.Fatal("server never saw the connection")
	}
	return s
}

func waitForTile(t *testing.T, s *Session, x, y int, check func(tile types.Tile) bool) {
	t.Helper()
	assert.Eventually(t, func() bool {
		if err := s.Update(); err != nil {
			return false
		}
		tile, err := s.Grid().Get(x, y)
		return err == nil && check(tile)
	}, 5*time.Second, 10*time.Millisecond)
}

func TestValidateGameID(t *testing.T) {
	assert.NoError(t, ValidateGameID("abcde"))
	assert.NoError(t, ValidateGameID("  abcdef "))
	assert.True(t, IsInvalidGameID(ValidateGameID("abcd")))
	assert.True(t, IsInvalidGameID(ValidateGameID("  ab   ")))
	assert.True(t, IsInvalidGameID(ValidateGameID("ééé")))
	assert.NoError(t, ValidateGameID("ééééé"))
}

func TestJoin_InvalidGameID(t *testing.T) {
	server := fakeserver.New(fakeserver.NewServerOptions{})
	defer server.Close()

	_, err := Join(context.Background(), JoinOptions{
		GameID:      "abc",
		BoardClient: api.NewClient(api.NewClientOptions{BaseURL: server.URL()}),
		ServerURL:   server.WSURL(),
	})
	assert.True(t, IsInvalidGameID(err))
	assert.Empty(t, server.Boards())
}

func TestJoin_BoardCreationFailed(t *testing.T) {
	server := fakeserver.New(fakeserver.NewServerOptions{})
	defer server.Close()
	server.FailCreateBoard(http.StatusInternalServerError, "Could not create board")

	_, err := Join(context.Background(), JoinOptions{
		GameID:      "abcde",
		BoardClient: api.NewClient(api.NewClientOptions{BaseURL: server.URL()}),
		ServerURL:   server.WSURL(),
	})
	require.Error(t, err)
	assert.True(t, api.IsBoardCreationFailed(err))
}

func TestSession_RevealRoundTrip(t *testing.T) {
	server := fakeserver.New(fakeserver.NewServerOptions{BoardSize: 10, Responder: revealResponder})
	defer server.Close()

	renders := 0
	s := join(t, server, JoinOptions{
		OnRender: func(tiles []types.PositionedTile) { renders++ },
	})
	assert.Equal(t, 10, s.Board().Width)
	assert.Equal(t, 10, s.Grid().Width())
	assert.NotEmpty(t, s.ID())
	assert.True(t, s.Connected())

	require.NoError(t, s.Reveal(3, 4))
	// nothing changes until the server answers
	tile, err := s.Grid().Get(3, 4)
	require.NoError(t, err)
	assert.False(t, tile.IsRevealed())

	waitForTile(t, s, 3, 4, func(tile types.Tile) bool { return tile.IsRevealed() })
	tile, _ = s.Grid().Get(3, 4)
	assert.Equal(t, "3", tile.Display())
	assert.Equal(t, 1, renders)

	err = s.Reveal(3, 4)
	assert.True(t, gate.IsRejected(err, gate.RejectReasonAlreadyRevealed))

	require.NoError(t, s.ToggleFlag(0, 0))
	waitForTile(t, s, 0, 0, func(tile types.Tile) bool { return tile.IsFlagged() })

	assert.Equal(t, 1, s.Counts().Revealed)
	assert.Equal(t, 1, s.Counts().Flagged)
	assert.Equal(t, 2, s.Stats().GesturesSent)
}

func TestSession_MessagesAndMalformedFrames(t *testing.T) {
	server := fakeserver.New(fakeserver.NewServerOptions{})
	defer server.Close()

	var messagesSeen []string
	var notices []*messages.Notice
	s := join(t, server, JoinOptions{
		OnMessage: func(message string) { messagesSeen = append(messagesSeen, message) },
		OnNotice:  func(notice *messages.Notice) { notices = append(notices, notice) },
	})

	ctx := context.Background()
	require.NoError(t, server.SendRaw(ctx, "abcde", []byte(`{"tiles":[{"x":1,"y":1,"value":1}]}`)))
	require.NoError(t, server.SendRaw(ctx, "abcde", []byte(`{"message":"PlayerJoined","details":"conn-2"}`)))
	require.NoError(t, server.Broadcast(ctx, "abcde", &messages.DisplayMessage{Data: "Game over!"}))

	assert.Eventually(t, func() bool {
		if err := s.Update(); err != nil {
			return false
		}
		return len(messagesSeen) == 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{"Game over!"}, messagesSeen)
	require.Len(t, notices, 1)
	assert.Equal(t, "PlayerJoined", notices[0].Message)
	assert.Equal(t, 1, s.Stats().Malformed)
	tile, _ := s.Grid().Get(1, 1)
	assert.False(t, tile.IsRevealed())
}

func TestSession_ConnectionLost(t *testing.T) {
	server := fakeserver.New(fakeserver.NewServerOptions{})
	defer server.Close()

	s := join(t, server, JoinOptions{})
	server.DisconnectAll(websocket.StatusGoingAway)

	var lost error
	assert.Eventually(t, func() bool {
		lost = s.Update()
		return lost != nil
	}, 5*time.Second, 10*time.Millisecond)
	assert.True(t, network.IsConnectionClosedByServer(lost))
	assert.False(t, s.Connected())

	err := s.Reveal(0, 0)
	assert.True(t, network.IsTransportUnavailable(err))

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestSession_JournalAndHistory(t *testing.T) {
	server := fakeserver.New(fakeserver.NewServerOptions{BoardSize: 6, Responder: revealResponder})
	defer server.Close()

	ctx := context.Background()
	dir := t.TempDir()
	history, err := repositories.NewRepository(ctx, "sqlite://"+filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	defer history.Close(ctx)

	s := join(t, server, JoinOptions{
		GameID:     "journal-game",
		JournalDir: filepath.Join(dir, "journal"),
		History:    history,
	})

	require.NoError(t, s.Reveal(5, 5))
	waitForTile(t, s, 5, 5, func(tile types.Tile) bool { return tile.IsRevealed() })
	require.NoError(t, server.Broadcast(ctx, "journal-game", &messages.DisplayMessage{Data: "You win!"}))
	assert.Eventually(t, func() bool {
		if err := s.Update(); err != nil {
			return false
		}
		notices, err := history.ListNotices(ctx, "journal-game")
		return err == nil && len(notices) == 1
	}, 5*time.Second, 10*time.Millisecond)

	want := s.grid.Snapshot()
	require.NoError(t, s.Close())

	games, err := history.RecentGames(ctx, 5)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "journal-game", games[0].GameID)

	path := filepath.Join(dir, "journal", journal.FileName("journal-game", s.ID()))
	_, err = os.Stat(path)
	require.NoError(t, err)

	j, err := journal.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 6, j.Header.Width)
	result, err := journal.Replay(j, journal.ReplayOptions{})
	require.NoError(t, err)
	assert.Equal(t, want, result.Grid.Snapshot())
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, []string{"You win!"}, result.Messages)
}
