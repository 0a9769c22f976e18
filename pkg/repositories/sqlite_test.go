package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/minesweeper/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()
	ctx := context.Background()
	repository, err := NewRepository(ctx, "sqlite://"+filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repository.Close(ctx) })
	return repository
}

func TestNewRepository_UnsupportedScheme(t *testing.T) {
	_, err := NewRepository(context.Background(), "mysql://localhost/history")
	assert.Error(t, err)

	_, err = NewRepository(context.Background(), "sqlite://")
	assert.Error(t, err)
}

func TestSQLiteRepository_Migrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.RecordJoin(ctx, &models.Join{GameID: "abcde", SessionID: "s1", JoinedAt: time.Now(), Width: 25, Height: 25}))
	require.NoError(t, first.Close(ctx))

	// reopening applies the migrations again without losing data
	second, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	defer second.Close(ctx)
	games, err := second.RecentGames(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestSQLiteRepository_RecentGames(t *testing.T) {
	ctx := context.Background()
	repository := newTestRepository(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	joins := []*models.Join{
		{GameID: "alpha", SessionID: "s1", JoinedAt: base, Width: 25, Height: 25},
		{GameID: "bravo", SessionID: "s2", JoinedAt: base.Add(time.Minute), Width: 10, Height: 10},
		{GameID: "alpha", SessionID: "s3", JoinedAt: base.Add(2 * time.Minute), Width: 25, Height: 25},
		{GameID: "charlie", SessionID: "s4", JoinedAt: base.Add(30 * time.Second), Width: 25, Height: 25},
	}
	for _, join := range joins {
		require.NoError(t, repository.RecordJoin(ctx, join))
	}

	games, err := repository.RecentGames(ctx, 2)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "alpha", games[0].GameID)
	assert.Equal(t, 2, games[0].Joins)
	assert.True(t, base.Add(2*time.Minute).Equal(games[0].LastJoinedAt))
	assert.Equal(t, "bravo", games[1].GameID)

	join, err := repository.LastJoin(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, "s3", join.SessionID)
	assert.Equal(t, 25, join.Width)

	_, err = repository.LastJoin(ctx, "delta")
	assert.True(t, IsNotFound(err))
}

func TestSQLiteRepository_Notices(t *testing.T) {
	ctx := context.Background()
	repository := newTestRepository(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repository.RecordNotice(ctx, &models.Notice{GameID: "alpha", SessionID: "s1", Message: "Game over!", ReceivedAt: base.Add(time.Second)}))
	require.NoError(t, repository.RecordNotice(ctx, &models.Notice{GameID: "alpha", SessionID: "s1", Message: "PlayerJoined", ReceivedAt: base}))
	require.NoError(t, repository.RecordNotice(ctx, &models.Notice{GameID: "bravo", SessionID: "s2", Message: "other game", ReceivedAt: base}))

	notices, err := repository.ListNotices(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, "PlayerJoined", notices[0].Message)
	assert.Equal(t, "Game over!", notices[1].Message)

	notices, err = repository.ListNotices(ctx, "charlie")
	require.NoError(t, err)
	assert.Empty(t, notices)
}
