package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jnbreid/todo-backend/internal/domain"
)

// Integration tests against a real Postgres. They run only when
// TEST_DATABASE_URL is set and expect the migrations to be applied.

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestUserRepositoryIntegration(t *testing.T) {
	pool := testPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	username := uniqueName("it-user")
	u := &domain.User{Username: username, PasswordHash: "digest"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("id must be filled in")
	}
	t.Cleanup(func() { _ = repo.Delete(ctx, username) })

	// Duplicate insert hits the unique index and comes back translated.
	dup := &domain.User{Username: username, PasswordHash: "other"}
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	got, err := repo.GetByUsername(ctx, username)
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if got.PasswordHash != "digest" {
		t.Fatalf("unexpected hash %q", got.PasswordHash)
	}

	byID, err := repo.GetByID(ctx, u.ID)
	if err != nil || byID.Username != username {
		t.Fatalf("get by id: %v", err)
	}

	if _, err := repo.GetByUsername(ctx, uniqueName("missing")); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := repo.Delete(ctx, username); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, username); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("double delete: expected ErrNotFound, got %v", err)
	}
}

func TestTaskRepositoryIntegration(t *testing.T) {
	pool := testPool(t)
	users := NewUserRepository(pool)
	tasks := NewTaskRepository(pool)
	ctx := context.Background()

	owner := &domain.User{Username: uniqueName("it-owner"), PasswordHash: "digest"}
	if err := users.Create(ctx, owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}
	// Cascades to the owner's tasks.
	t.Cleanup(func() { _ = users.Delete(ctx, owner.Username) })

	task := &domain.Task{
		PublicID: uuid.New(),
		OwnerID:  owner.ID,
		Name:     "integration task",
		Deadline: domain.DateOf(time.Now().AddDate(0, 0, 3)),
		Priority: 3,
	}
	if err := tasks.Create(ctx, task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	got, err := tasks.GetByPublicID(ctx, task.PublicID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.OwnerID != owner.ID || got.Name != task.Name {
		t.Fatalf("unexpected task %+v", got)
	}

	if _, err := tasks.GetByPublicID(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for random id, got %v", err)
	}

	got.Name = "renamed"
	got.Completed = true
	if err := tasks.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}

	list, err := tasks.ListByOwner(ctx, owner.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v (%d tasks)", err, len(list))
	}
	if list[0].Name != "renamed" || !list[0].Completed {
		t.Fatalf("update not persisted: %+v", list[0])
	}

	if err := tasks.SetCompleted(ctx, task.PublicID, false); err != nil {
		t.Fatalf("set completed: %v", err)
	}

	if err := tasks.Delete(ctx, task.PublicID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := tasks.Delete(ctx, task.PublicID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("double delete: expected ErrNotFound, got %v", err)
	}
}
