package repositories

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"sort"

	"github.com/cbodonnell/minesweeper/pkg/repositories/models"
)

//go:embed migrations
var migrations embed.FS

// Repository stores the history of games joined from this client.
type Repository interface {
	Close(ctx context.Context) error
	RecordJoin(ctx context.Context, join *models.Join) error
	RecordNotice(ctx context.Context, notice *models.Notice) error
	// RecentGames returns up to limit games, most recently joined first.
	RecentGames(ctx context.Context, limit int) ([]*models.Game, error)
	// LastJoin returns the most recent join of gameID or *ErrNotFound.
	LastJoin(ctx context.Context, gameID string) (*models.Join, error)
	// ListNotices returns the notices of gameID in the order they were received.
	ListNotices(ctx context.Context, gameID string) ([]*models.Notice, error)
}

// NewRepository opens the repository described by connStr. Supported schemes
// are sqlite:// and postgresql://.
func NewRepository(ctx context.Context, connStr string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse history url: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		return NewSQLiteRepository(ctx, u.Host+u.Path)
	case "postgres", "postgresql":
		return NewPostgresRepository(ctx, u.String())
	default:
		return nil, fmt.Errorf("unsupported history url scheme %q", u.Scheme)
	}
}

// readMigrations returns the migration scripts for dialect in file name order.
func readMigrations(dialect string) ([]string, error) {
	dir := "migrations/" + dialect
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	scripts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		b, err := fs.ReadFile(migrations, dir+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", entry.Name(), err)
		}
		scripts = append(scripts, string(b))
	}
	return scripts, nil
}
