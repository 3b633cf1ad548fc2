package store

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"

	"github.com/PauloHFS/prosa/migrations"
)

// RunMigrations aplica os .sql embutidos em ordem de nome de arquivo. Os
// scripts são idempotentes (CREATE IF NOT EXISTS), então rodar no boot é
// seguro.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	names, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := migrations.FS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}
	return nil
}
