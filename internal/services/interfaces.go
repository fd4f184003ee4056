package services

import (
	"context"

	"teamplay/internal/domain"
)

// TaskService handles task creation and retrieval
type TaskService interface {
	// Create validates and persists a new task, returning it with its
	// assigned ID and creation time
	Create(ctx context.Context, text, category, author string) (*domain.Task, error)

	// ListAll returns every task, grouped by category and ordered by
	// creation time descending within each category
	ListAll(ctx context.Context) ([]*domain.Task, error)
}

// ListingService renders stored tasks for delivery
type ListingService interface {
	// RenderList renders tasks as grouped human-readable text, split into
	// chunks that respect the transport size limit. Zero tasks yield a
	// single informational chunk.
	RenderList(tasks []*domain.Task) []string

	// RenderCSV renders tasks as an in-memory CSV artifact. The caller
	// decides how to deliver it and discards it afterwards.
	RenderCSV(tasks []*domain.Task) ([]byte, error)
}
