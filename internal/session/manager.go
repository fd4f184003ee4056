package session

import (
	"context"
	"sync"
	"time"

	"teamplay/internal/domain"
	"teamplay/internal/errors"
	"teamplay/internal/services"
	"teamplay/internal/validation"
)

// Manager owns the per-user conversation states. Sessions are created on
// first use and reset to idle on commit, cancel or expiry. The mutex exists
// for the background sweeper; user events themselves arrive serially.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*State

	tasks           services.TaskService
	validator       *validation.TaskValidator
	categories      []string
	defaultCategory string
	ttl             time.Duration

	// now is swappable for tests
	now func() time.Time
}

// NewManager creates a session manager over the given task service.
// Sessions idle longer than ttl behave as if they never existed.
func NewManager(tasks services.TaskService, categories []string, defaultCategory string, ttl time.Duration) *Manager {
	return &Manager{
		sessions:        make(map[int64]*State),
		tasks:           tasks,
		validator:       validation.NewTaskValidator(categories, validation.DefaultTextMaxLength),
		categories:      categories,
		defaultCategory: defaultCategory,
		ttl:             ttl,
		now:             time.Now,
	}
}

// StartAdd begins (or restarts) the add-task flow for the user and returns
// the category enumeration to present. Calling it repeatedly is safe: each
// call discards any partial progress and resets to awaiting a category.
func (m *Manager) StartAdd(userID int64) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[userID] = &State{
		Phase:     PhaseAwaitingCategory,
		UpdatedAt: m.now(),
	}

	return m.categories
}

// SelectCategory records the chosen category and advances to awaiting the
// task text. Outside the awaiting-category phase it fails with an
// invalid-state error the caller is expected to swallow.
func (m *Manager) SelectCategory(userID int64, category string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.liveState(userID)
	if state == nil || state.Phase != PhaseAwaitingCategory {
		return errors.NewInvalidStateError("SelectCategory", m.phaseOf(state).String())
	}

	if err := m.validator.ValidateCategory(category); err != nil {
		return errors.NewInvalidInputError("category", category, "unknown category")
	}

	state.PendingCategory = category
	state.Phase = PhaseAwaitingText
	state.UpdatedAt = m.now()
	return nil
}

// SubmitText commits the pending task. Valid only while awaiting text;
// otherwise the text is not a task and the caller should ignore or reroute
// it. On success the session resets to idle and the created task is
// returned. On a store failure the session is left intact so the user can
// retry.
func (m *Manager) SubmitText(ctx context.Context, userID int64, author, text string) (*domain.Task, error) {
	m.mu.Lock()
	state := m.liveState(userID)
	if state == nil || state.Phase != PhaseAwaitingText {
		phase := m.phaseOf(state)
		m.mu.Unlock()
		return nil, errors.NewInvalidStateError("SubmitText", phase.String())
	}

	category := state.PendingCategory
	if category == "" {
		category = m.defaultCategory
	}
	m.mu.Unlock()

	// Single store write; the session lock is not held across it
	task, err := m.tasks.Create(ctx, text, category, author)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()

	return task, nil
}

// Cancel resets the user's session to idle. It reports false when there was
// nothing to cancel, which is informational rather than an error.
func (m *Manager) Cancel(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.liveState(userID)
	if state == nil || state.Phase == PhaseIdle {
		delete(m.sessions, userID)
		return false
	}

	delete(m.sessions, userID)
	return true
}

// Phase returns the user's current phase, treating expired sessions as idle
func (m *Manager) Phase(userID int64) Phase {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.phaseOf(m.liveState(userID))
}

// SweepExpired removes sessions idle longer than the TTL and returns how
// many were removed
func (m *Manager) SweepExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	swept := 0
	cutoff := m.now().Add(-m.ttl)
	for userID, state := range m.sessions {
		if state.UpdatedAt.Before(cutoff) {
			delete(m.sessions, userID)
			swept++
		}
	}
	return swept
}

// liveState returns the user's session if present and unexpired, expiring
// it lazily otherwise. Callers must hold the mutex.
func (m *Manager) liveState(userID int64) *State {
	state, ok := m.sessions[userID]
	if !ok {
		return nil
	}
	if m.now().Sub(state.UpdatedAt) > m.ttl {
		delete(m.sessions, userID)
		return nil
	}
	return state
}

// phaseOf maps a possibly-nil state to its phase
func (m *Manager) phaseOf(state *State) Phase {
	if state == nil {
		return PhaseIdle
	}
	return state.Phase
}
