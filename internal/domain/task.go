package domain

import "time"

// Task represents a shared team task in the domain model.
// Tasks are immutable once created; there are no update or delete
// operations in the command set.
type Task struct {
	ID        int64
	Text      string
	Category  string
	Status    Status
	Author    string
	CreatedAt time.Time
}

// NewTask creates a new Task with the given text, category and author.
// Status always starts as new.
func NewTask(text, category, author string) Task {
	return Task{
		Text:     text,
		Category: category,
		Status:   StatusNew,
		Author:   author,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Text != "" && t.Category != "" && t.Author != ""
}

// String returns the task text for display purposes.
func (t Task) String() string {
	return t.Text
}
