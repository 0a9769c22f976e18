package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cbodonnell/minesweeper/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and applies migrations.
func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	scripts, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range scripts {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) RecordJoin(ctx context.Context, join *models.Join) error {
	q := `
	INSERT OR REPLACE INTO joins (game_id, session_id, joined_at, width, height)
	VALUES (?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, join.GameID, join.SessionID, join.JoinedAt.UnixMilli(), join.Width, join.Height)
	if err != nil {
		return fmt.Errorf("failed to insert join: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) RecordNotice(ctx context.Context, notice *models.Notice) error {
	q := `
	INSERT INTO notices (game_id, session_id, message, received_at)
	VALUES (?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, notice.GameID, notice.SessionID, notice.Message, notice.ReceivedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert notice: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) RecentGames(ctx context.Context, limit int) ([]*models.Game, error) {
	q := `
	SELECT game_id, MAX(joined_at) AS last_joined_at, COUNT(*)
	FROM joins
	GROUP BY game_id
	ORDER BY last_joined_at DESC, game_id
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent games: %v", err)
	}
	defer rows.Close()

	games := make([]*models.Game, 0)
	for rows.Next() {
		game := &models.Game{}
		var lastJoinedAt int64
		if err := rows.Scan(&game.GameID, &lastJoinedAt, &game.Joins); err != nil {
			return nil, fmt.Errorf("failed to scan game: %v", err)
		}
		game.LastJoinedAt = time.UnixMilli(lastJoinedAt)
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %v", err)
	}

	return games, nil
}

func (r *SQLiteRepository) LastJoin(ctx context.Context, gameID string) (*models.Join, error) {
	q := `
	SELECT session_id, joined_at, width, height FROM joins
	WHERE game_id = ?
	ORDER BY joined_at DESC
	LIMIT 1;
	`
	join := &models.Join{GameID: gameID}
	var joinedAt int64
	if err := r.db.QueryRowContext(ctx, q, gameID).Scan(&join.SessionID, &joinedAt, &join.Width, &join.Height); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan join: %v", err)
	}
	join.JoinedAt = time.UnixMilli(joinedAt)

	return join, nil
}

func (r *SQLiteRepository) ListNotices(ctx context.Context, gameID string) ([]*models.Notice, error) {
	q := `
	SELECT session_id, message, received_at FROM notices
	WHERE game_id = ?
	ORDER BY received_at, id;
	`
	rows, err := r.db.QueryContext(ctx, q, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notices: %v", err)
	}
	defer rows.Close()

	notices := make([]*models.Notice, 0)
	for rows.Next() {
		notice := &models.Notice{GameID: gameID}
		var receivedAt int64
		if err := rows.Scan(&notice.SessionID, &notice.Message, &receivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notice: %v", err)
		}
		notice.ReceivedAt = time.UnixMilli(receivedAt)
		notices = append(notices, notice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notices: %v", err)
	}

	return notices, nil
}
