package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/cbodonnell/minesweeper/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to connStr and applies migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	scripts, err := readMigrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for i, migration := range scripts {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) RecordJoin(ctx context.Context, join *models.Join) error {
	q := `
	INSERT INTO joins (game_id, session_id, joined_at, width, height) VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (game_id, session_id) DO UPDATE SET joined_at = $3, width = $4, height = $5;
	`
	_, err := r.conn.Exec(ctx, q, join.GameID, join.SessionID, join.JoinedAt.UnixMilli(), join.Width, join.Height)
	if err != nil {
		return fmt.Errorf("failed to insert join: %v", err)
	}
	return nil
}

func (r *PostgresRepository) RecordNotice(ctx context.Context, notice *models.Notice) error {
	q := `
	INSERT INTO notices (game_id, session_id, message, received_at) VALUES ($1, $2, $3, $4);
	`
	_, err := r.conn.Exec(ctx, q, notice.GameID, notice.SessionID, notice.Message, notice.ReceivedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert notice: %v", err)
	}
	return nil
}

func (r *PostgresRepository) RecentGames(ctx context.Context, limit int) ([]*models.Game, error) {
	q := `
	SELECT game_id, MAX(joined_at) AS last_joined_at, COUNT(*)
	FROM joins
	GROUP BY game_id
	ORDER BY last_joined_at DESC, game_id
	LIMIT $1;
	`
	rows, err := r.conn.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent games: %v", err)
	}
	defer rows.Close()

	games := make([]*models.Game, 0)
	for rows.Next() {
		game := &models.Game{}
		var lastJoinedAt int64
		var joins int64
		if err := rows.Scan(&game.GameID, &lastJoinedAt, &joins); err != nil {
			return nil, fmt.Errorf("failed to scan game: %v", err)
		}
		game.LastJoinedAt = time.UnixMilli(lastJoinedAt)
		game.Joins = int(joins)
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %v", err)
	}

	return games, nil
}

func (r *PostgresRepository) LastJoin(ctx context.Context, gameID string) (*models.Join, error) {
	q := `
	SELECT session_id, joined_at, width, height FROM joins
	WHERE game_id = $1
	ORDER BY joined_at DESC
	LIMIT 1;
	`
	join := &models.Join{GameID: gameID}
	var joinedAt int64
	var width, height int32
	if err := r.conn.QueryRow(ctx, q, gameID).Scan(&join.SessionID, &joinedAt, &width, &height); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan join: %v", err)
	}
	join.JoinedAt = time.UnixMilli(joinedAt)
	join.Width = int(width)
	join.Height = int(height)

	return join, nil
}

func (r *PostgresRepository) ListNotices(ctx context.Context, gameID string) ([]*models.Notice, error) {
	q := `
	SELECT session_id, message, received_at FROM notices
	WHERE game_id = $1
	ORDER BY received_at, id;
	`
	rows, err := r.conn.Query(ctx, q, gameID)
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
