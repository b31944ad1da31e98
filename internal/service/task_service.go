package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jnbreid/todo-backend/internal/auth"
	"github.com/jnbreid/todo-backend/internal/domain"
)

// TaskStore is the persistence collaborator for tasks.
type TaskStore interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	SetCompleted(ctx context.Context, publicID uuid.UUID, completed bool) error
	Delete(ctx context.Context, publicID uuid.UUID) error
}

// TaskInput carries the caller-settable fields of a task. The owner and
// the public id are never part of it: the owner always comes from the
// resolved identity and the public id is assigned once at creation.
type TaskInput struct {
	Name        string
	Description string
	Deadline    time.Time
	Priority    int
	Completed   bool
}

type TaskService struct {
	tasks TaskStore
	now   func() time.Time
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks, now: time.Now}
}

// Create validates the input, stamps the task with the caller's identity
// and a fresh random public id, and persists it.
func (s *TaskService) Create(ctx context.Context, ident *auth.Identity, in TaskInput) (*domain.Task, error) {
	if ident == nil {
		return nil, domain.ErrNotFound
	}
	t := &domain.Task{
		PublicID:    uuid.New(),
		OwnerID:     ident.UserID,
		Name:        in.Name,
		Description: in.Description,
		Deadline:    domain.DateOf(in.Deadline),
		Priority:    in.Priority,
		Completed:   in.Completed,
	}
	if err := t.Validate(s.now()); err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetByPublicID loads a task and checks ownership. A missing task and a
// task owned by someone else come back as the same ErrNotFound.
func (s *TaskService) GetByPublicID(ctx context.Context, ident *auth.Identity, publicID uuid.UUID) (*domain.Task, error) {
	t, err := s.tasks.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(ident, t.OwnerID); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) ListMine(ctx context.Context, ident *auth.Identity) ([]*domain.Task, error) {
	if ident == nil {
		return nil, domain.ErrNotFound
	}
	return s.tasks.ListByOwner(ctx, ident.UserID)
}

// Update replaces the mutable fields of an owned task.
func (s *TaskService) Update(ctx context.Context, ident *auth.Identity, publicID uuid.UUID, in TaskInput) (*domain.Task, error) {
	existing, err := s.GetByPublicID(ctx, ident, publicID)
	if err != nil {
		return nil, err
	}
	existing.Name = in.Name
	existing.Description = in.Description
	existing.Deadline = domain.DateOf(in.Deadline)
	existing.Priority = in.Priority
	existing.Completed = in.Completed
	if err := existing.Validate(s.now()); err != nil {
		return nil, err
	}
	if err := s.tasks.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TaskService) SetCompleted(ctx context.Context, ident *auth.Identity, publicID uuid.UUID, completed bool) error {
	if _, err := s.GetByPublicID(ctx, ident, publicID); err != nil {
		return err
	}
	return s.tasks.SetCompleted(ctx, publicID, completed)
}

func (s *TaskService) Delete(ctx context.Context, ident *auth.Identity, publicID uuid.UUID) error {
	if _, err := s.GetByPublicID(ctx, ident, publicID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, publicID)
}
