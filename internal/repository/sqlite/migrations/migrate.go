package migrations

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Apply   func(tx *sql.Tx) error
}

// Run executes all pending migrations. Every migration is individually
// idempotent, so re-running initialization against an already-migrated
// database is safe even if the bookkeeping table was lost.
func Run(db *sql.DB, defaultCategory string) error {
	// Create migrations table if it doesn't exist
	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	// Get applied migrations
	applied, err := getAppliedMigrations(db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	// Apply pending migrations
	for _, migration := range all(defaultCategory) {
		if !applied[migration.Version] {
			if err := applyMigration(db, migration); err != nil {
				return fmt.Errorf("failed to apply migration %d (%s): %w", migration.Version, migration.Name, err)
			}
		}
	}

	return nil
}

// all returns the ordered migration list. Versions 2 and 3 exist for
// databases written before the category and status columns were added;
// on a fresh database they find the columns already present and do nothing.
func all(defaultCategory string) []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_tasks_table",
			Apply: func(tx *sql.Tx) error {
				_, err := tx.Exec(fmt.Sprintf(`
				CREATE TABLE IF NOT EXISTS tasks (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					text TEXT NOT NULL,
					category TEXT NOT NULL DEFAULT '%s',
					status TEXT NOT NULL DEFAULT 'new',
					author TEXT NOT NULL,
					created_at TEXT NOT NULL
				)`, escapeLiteral(defaultCategory)))
				return err
			},
		},
		{
			Version: 2,
			Name:    "add_category_column",
			Apply: func(tx *sql.Tx) error {
				return addColumnIfMissing(tx, "tasks", "category",
					fmt.Sprintf("TEXT NOT NULL DEFAULT '%s'", escapeLiteral(defaultCategory)))
			},
		},
		{
			Version: 3,
			Name:    "add_status_column",
			Apply: func(tx *sql.Tx) error {
				return addColumnIfMissing(tx, "tasks", "status", "TEXT NOT NULL DEFAULT 'new'")
			},
		},
	}
}

func createMigrationsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	_, err := db.Exec(query)
	return err
}

func getAppliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func applyMigration(db *sql.DB, migration Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if err := migration.Apply(tx); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("INSERT INTO migrations (version) VALUES (?)", migration.Version); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// addColumnIfMissing adds a column to an existing table only when the
// column is absent. Existing rows pick up the column default; other fields
// are untouched.
func addColumnIfMissing(tx *sql.Tx, table, column, definition string) error {
	columns, err := tableColumns(tx, table)
	if err != nil {
		return err
	}
	if columns[column] {
		return nil
	}

	_, err = tx.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
	return err
}

// tableColumns returns the set of column names for a table
func tableColumns(tx *sql.Tx, table string) (map[string]bool, error) {
	rows, err := tx.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid          int
			name, ctype  string
			notNull, pk  int
			defaultValue sql.NullString
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &defaultValue, &pk); err != nil {
			return nil, err
		}
		columns[name] = true
	}
	return columns, rows.Err()
}

// escapeLiteral doubles single quotes for safe embedding in DDL, which
// cannot use placeholders
func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
