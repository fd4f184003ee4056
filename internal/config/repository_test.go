package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamplay/internal/repository/sqlite"
)

func TestCreateRepository(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = filepath.Join(t.TempDir(), "nested", "dir")
	cfg.Database.Filename = "test.db"

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	// The directory is created on first run and the schema is usable.
	task := &sqlite.Task{Text: "Check wiring", Category: "💼 Work", Author: "alice"}
	require.NoError(t, repo.CreateTask(context.Background(), task))
	assert.Greater(t, task.ID, int64(0))
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	require.NoError(t, err)
	defer repo.Close()

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
