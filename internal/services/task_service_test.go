package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamplay/internal/domain"
	"teamplay/internal/errors"
	"teamplay/internal/repository/sqlite"
)

var serviceCategories = []string{"💼 Work", "🏠 Home"}

const serviceDefaultCategory = "default-personal"

func setupTaskService(t *testing.T) (TaskService, sqlite.Repository) {
	repo, err := sqlite.New(":memory:", serviceDefaultCategory)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	svc := NewTaskService(repo, serviceCategories, serviceDefaultCategory, 1000)
	return svc, repo
}

func TestTaskService_Create(t *testing.T) {
	svc, _ := setupTaskService(t)

	task, err := svc.Create(context.Background(), "Prepare the report", "💼 Work", "alice")
	require.NoError(t, err)

	assert.Greater(t, task.ID, int64(0))
	assert.Equal(t, "Prepare the report", task.Text)
	assert.Equal(t, "💼 Work", task.Category)
	assert.Equal(t, domain.StatusNew, task.Status)
	assert.Equal(t, "alice", task.Author)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestTaskService_Create_TrimsText(t *testing.T) {
	svc, _ := setupTaskService(t)

	task, err := svc.Create(context.Background(), "  Buy milk \n", "🏠 Home", "bob")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Text)
}

func TestTaskService_Create_DefaultCategoryAccepted(t *testing.T) {
	svc, _ := setupTaskService(t)

	task, err := svc.Create(context.Background(), "Uncategorized task", serviceDefaultCategory, "alice")
	require.NoError(t, err)
	assert.Equal(t, serviceDefaultCategory, task.Category)
}

func TestTaskService_Create_Validation(t *testing.T) {
	svc, _ := setupTaskService(t)

	tests := []struct {
		name     string
		text     string
		category string
		author   string
	}{
		{"empty text", "", "💼 Work", "alice"},
		{"whitespace text", "   ", "💼 Work", "alice"},
		{"text over limit", strings.Repeat("x", 1001), "💼 Work", "alice"},
		{"unknown category", "Buy milk", "Shopping", "alice"},
		{"empty author", "Buy milk", "💼 Work", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.text, tt.category, tt.author)
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
		})
	}
}

func TestTaskService_Create_IDsStrictlyIncreasing(t *testing.T) {
	svc, _ := setupTaskService(t)

	var lastID int64
	for i := 0; i < 5; i++ {
		task, err := svc.Create(context.Background(), "Task", "💼 Work", "alice")
		require.NoError(t, err)
		assert.Greater(t, task.ID, lastID)
		lastID = task.ID
	}
}

func TestTaskService_ListAll(t *testing.T) {
	svc, _ := setupTaskService(t)

	tasks, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = svc.Create(context.Background(), "Fix the sink", "🏠 Home", "bob")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "Prepare the report", "💼 Work", "alice")
	require.NoError(t, err)

	tasks, err = svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Store ordering: category ascending
	assert.Equal(t, "🏠 Home", tasks[0].Category)
	assert.Equal(t, "💼 Work", tasks[1].Category)
}
