package blogkit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/reflectoring/blogkit/internal/articles"
	"github.com/reflectoring/blogkit/internal/runtimeconfig"
)

func openDatabase(cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch driver {
	case "sqlite":
		sqlDB, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("blogkit: open sqlite storage: %w", err)
		}
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "postgres":
		sqlDB, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("blogkit: open postgres storage: %w", err)
		}
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrStorageDriverUnknown, cfg.Driver)
	}
}

// Migrate creates the catalog schema when it does not exist yet. Hosts with
// their own migration tooling can skip this and manage the table directly.
func (m *Module) Migrate(ctx context.Context) error {
	if m == nil || m.db == nil {
		return nil
	}
	_, err := m.db.NewCreateTable().
		Model((*articles.Article)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("blogkit: migrate catalog schema: %w", err)
	}
	return nil
}
