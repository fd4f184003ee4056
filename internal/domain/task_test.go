package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Buy milk", "Home", "alice")

	assert.Equal(t, "Buy milk", task.Text)
	assert.Equal(t, "Home", task.Category)
	assert.Equal(t, StatusNew, task.Status)
	assert.Equal(t, "alice", task.Author)
	assert.Zero(t, task.ID)
	assert.True(t, task.CreatedAt.IsZero())
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"valid task", NewTask("Buy milk", "Home", "alice"), true},
		{"missing text", NewTask("", "Home", "alice"), false},
		{"missing category", NewTask("Buy milk", "", "alice"), false},
		{"missing author", NewTask("Buy milk", "Home", ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_String(t *testing.T) {
	task := NewTask("Buy milk", "Home", "alice")
	assert.Equal(t, "Buy milk", task.String())
}
