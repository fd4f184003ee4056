package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamplay/internal/repository/sqlite"
)

func TestTaskMapper_ToDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	createdAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	domainTask := Task{
		ID:        3,
		Text:      "Buy milk",
		Category:  "Home",
		Status:    StatusNew,
		Author:    "alice",
		CreatedAt: createdAt,
	}

	dbTask := mapper.ToDatabase(domainTask)
	assert.Equal(t, int64(3), dbTask.ID)
	assert.Equal(t, "Buy milk", dbTask.Text)
	assert.Equal(t, "Home", dbTask.Category)
	assert.Equal(t, "new", dbTask.Status)
	assert.Equal(t, "alice", dbTask.Author)
	assert.Equal(t, createdAt, dbTask.CreatedAt)
}

func TestTaskMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	createdAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	dbTask := sqlite.Task{
		ID:        5,
		Text:      "Write report",
		Category:  "Work",
		Status:    "in_progress",
		Author:    "bob",
		CreatedAt: createdAt,
	}

	domainTask := mapper.FromDatabase(dbTask)
	assert.Equal(t, int64(5), domainTask.ID)
	assert.Equal(t, StatusInProgress, domainTask.Status)
	assert.Equal(t, createdAt, domainTask.CreatedAt)
}

func TestTaskMapper_RoundTrip(t *testing.T) {
	mapper := NewTaskMapper()

	original := Task{
		ID:        1,
		Text:      "Купить молоко",
		Category:  "🏠 Home",
		Status:    StatusDone,
		Author:    "алиса",
		CreatedAt: time.Now().Truncate(time.Second),
	}

	roundTripped := mapper.FromDatabase(mapper.ToDatabase(original))
	assert.Equal(t, original, roundTripped)
}

func TestTaskMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewTaskMapper()

	dbTasks := []*sqlite.Task{
		{ID: 1, Text: "one", Category: "Work", Status: "new", Author: "alice"},
		{ID: 2, Text: "two", Category: "Home", Status: "done", Author: "bob"},
	}

	domainTasks := mapper.FromDatabaseSlice(dbTasks)
	require.Len(t, domainTasks, 2)
	assert.Equal(t, "one", domainTasks[0].Text)
	assert.Equal(t, StatusDone, domainTasks[1].Status)
}
