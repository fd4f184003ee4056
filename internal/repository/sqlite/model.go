package sqlite

import "time"

// Task represents a row in the tasks table
type Task struct {
	ID        int64
	Text      string
	Category  string
	Status    string
	Author    string
	CreatedAt time.Time
}
