package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jnbreid/todo-backend/internal/domain"
)

// In-memory stands-ins for the pgx repositories, mirroring their error
// translation (duplicate usernames, missing rows).

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (s *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Username]; ok {
		return domain.ErrDuplicateUsername
	}
	s.nextID++
	u.ID = s.nextID
	u.CreatedAt = time.Now()
	copied := *u
	s.users[u.Username] = &copied
	return nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeUserStore) Delete(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; !ok {
		return domain.ErrNotFound
	}
	delete(s.users, username)
	return nil
}

type fakeTaskStore struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[uuid.UUID]*domain.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (s *fakeTaskStore) Create(_ context.Context, t *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t.ID = s.nextID
	t.CreatedAt = time.Now()
	copied := *t
	s.tasks[t.PublicID] = &copied
	return nil
}

func (s *fakeTaskStore) GetByPublicID(_ context.Context, publicID uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[publicID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *fakeTaskStore) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*domain.Task
	for _, t := range s.tasks {
		if t.OwnerID == ownerID {
			copied := *t
			res = append(res, &copied)
		}
	}
	return res, nil
}

func (s *fakeTaskStore) Update(_ context.Context, t *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[t.PublicID]; !ok {
		return domain.ErrNotFound
	}
	copied := *t
	s.tasks[t.PublicID] = &copied
	return nil
}

func (s *fakeTaskStore) SetCompleted(_ context.Context, publicID uuid.UUID, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[publicID]
	if !ok {
		return domain.ErrNotFound
	}
	t.Completed = completed
	return nil
}

func (s *fakeTaskStore) Delete(_ context.Context, publicID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[publicID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.tasks, publicID)
	return nil
}
