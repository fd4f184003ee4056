package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "teamplay/internal/errors"
)

func TestHandleDatabaseError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := HandleDatabaseError("create task", cause)

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
	assert.Contains(t, err.Error(), "create task")
}

func TestExecuteWithLastInsertID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, err := ExecuteWithLastInsertID(context.Background(), repo.db,
		`INSERT INTO tasks (text, category, status, author, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		"direct insert", "Work", "new", "alice", "2026-08-30T10:00:00Z")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))
}

func TestExecuteWithLastInsertID_BadQuery(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := ExecuteWithLastInsertID(context.Background(), repo.db, "INSERT INTO missing_table VALUES (1)")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
}

func TestQueryMultiple_BadQuery(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := QueryMultiple(context.Background(), repo.db, "SELECT * FROM missing_table", ScanTasks, "tasks")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
}
