package sqlite

import (
	"context"
	"time"

	"database/sql"

	"teamplay/internal/errors"
	"teamplay/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// CreateTask persists a task, assigning its ID and creation time.
	// The write is durable before the call returns.
	CreateTask(ctx context.Context, task *Task) error

	// ListTasks returns every task, grouped by category and ordered by
	// creation time descending within each category.
	ListTasks(ctx context.Context) ([]*Task, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance. The schema is created or
// upgraded in place before the repository is returned; defaultCategory is
// the value stamped onto rows that predate the category column.
func New(dbPath string, defaultCategory string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.Run(db, defaultCategory); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task. The creation timestamp is stamped here so
// that the stored value and the returned struct always agree.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	if task.Status == "" {
		task.Status = "new"
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	query := `
	INSERT INTO tasks (text, category, status, author, created_at)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Text, task.Category, task.Status, task.Author, FormatTimeForDB(task.CreatedAt))
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// ListTasks retrieves all tasks grouped by category. The id tie-break keeps
// ordering stable for tasks created within the same second.
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, text, category, status, author, created_at
	FROM tasks
	ORDER BY category ASC, created_at DESC, id DESC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}
