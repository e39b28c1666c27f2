package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/mysql/*.sql migrations/postgres/*.sql
var migrationFiles embed.FS

// Migrate applies every embedded migration for the connection's dialect, in
// file name order. Statements are idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	dir := path.Join("migrations", dialectDir(db))
	entries, err := fs.ReadDir(migrationFiles, dir)
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := migrationFiles.ReadFile(path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		zap.L().Debug("migration applied", zap.String("file", name))
	}
	return nil
}

func dialectDir(db *sqlx.DB) string {
	if db.DriverName() == "pgx" {
		return "postgres"
	}
	return "mysql"
}
