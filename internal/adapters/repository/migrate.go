package repository

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ApplyMigrations executes every *.up.sql file under dir in name order, one
// Exec per file.
func ApplyMigrations(ctx context.Context, db *sql.DB, fsys fs.FS, dir string) error {
	return runMigrations(ctx, db, fsys, dir, ".up.sql", false)
}

// RollbackMigrations executes every *.down.sql file under dir in reverse
// name order, undoing what ApplyMigrations created.
func RollbackMigrations(ctx context.Context, db *sql.DB, fsys fs.FS, dir string) error {
	return runMigrations(ctx, db, fsys, dir, ".down.sql", true)
}

func runMigrations(ctx context.Context, db *sql.DB, fsys fs.FS, dir, suffix string, reverse bool) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	} else {
		sort.Strings(names)
	}

	for _, name := range names {
		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", name, err)
		}
	}

	return nil
}
