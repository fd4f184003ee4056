package services

import (
	"context"

	"teamplay/internal/domain"
	"teamplay/internal/errors"
	"teamplay/internal/repository/sqlite"
	"teamplay/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance. The default category
// is accepted alongside the configured list so tasks committed without an
// explicit selection still validate.
func NewTaskService(repo sqlite.Repository, categories []string, defaultCategory string, textMaxLength int) TaskService {
	accepted := make([]string, 0, len(categories)+1)
	accepted = append(accepted, categories...)
	accepted = append(accepted, defaultCategory)

	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(accepted, textMaxLength),
	}
}

// Create validates and persists a new task
func (t *taskServiceImpl) Create(ctx context.Context, text, category, author string) (*domain.Task, error) {
	trimmedText, err := t.taskValidator.GetValidText(text)
	if err != nil {
		return nil, errors.NewValidationError("invalid task text", err)
	}

	if err := t.taskValidator.ValidateCategory(category); err != nil {
		return nil, errors.NewValidationError("invalid category", err)
	}

	if author == "" {
		return nil, errors.NewValidationError("author cannot be empty", nil)
	}

	dbTask := &sqlite.Task{
		Text:     trimmedText,
		Category: category,
		Status:   string(domain.StatusNew),
		Author:   author,
	}

	if err := t.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListAll returns every task in the store's grouped ordering
func (t *taskServiceImpl) ListAll(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}
