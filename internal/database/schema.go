package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/learncoach/schemas"
)

// SchemaVersion is bumped whenever a migration file is added.
const SchemaVersion = 1

// Tables lists the record tables in creation order.
var Tables = []string{"notes", "quizzes", "quiz_results", "review_schedules"}

// Migrate creates missing tables and records the schema version.
func Migrate(ctx context.Context, db *sqlx.DB, dialect Dialect) error {
	statements, err := migrationStatements(schemas.Migrations, dialect)
	if err != nil {
		return err
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("db.ExecContext(schema) > %w", err)
		}
	}

	version, err := currentVersion(ctx, db)
	if err != nil {
		return err
	}
	if version == SchemaVersion {
		return nil
	}
	slog.Default().Info("migrating store schema", "from", version, "to", SchemaVersion)
	return RunInTx(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM schema_version"); err != nil {
			return fmt.Errorf("tx.ExecContext(delete schema_version) > %w", err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
			return fmt.Errorf("tx.ExecContext(insert schema_version) > %w", err)
		}
		return nil
	})
}

func currentVersion(ctx context.Context, db *sqlx.DB) (int, error) {
	var version int
	err := db.GetContext(ctx, &version, "SELECT version FROM schema_version LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("db.GetContext(schema_version) > %w", err)
	}
	return version, nil
}

// migrationStatements returns the statements of the dialect's migration files
// in file name order. Statements are separated by semicolons.
func migrationStatements(migrations fs.FS, dialect Dialect) ([]string, error) {
	files, err := fs.Glob(migrations, path.Join("migrations", string(dialect), "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("fs.Glob(%s) > %w", dialect, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}
	sort.Strings(files)

	var statements []string
	for _, file := range files {
		body, err := fs.ReadFile(migrations, file)
		if err != nil {
			return nil, fmt.Errorf("fs.ReadFile(%s) > %w", file, err)
		}
		for _, stmt := range strings.Split(string(body), ";") {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				statements = append(statements, stmt)
			}
		}
	}
	return statements, nil
}
