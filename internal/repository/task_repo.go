package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jnbreid/todo-backend/internal/domain"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (public_id, user_id, name, description, deadline, priority, completed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		t.PublicID, t.OwnerID, t.Name, t.Description, t.Deadline, t.Priority, t.Completed,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *TaskRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, public_id, user_id, name, description, deadline, priority, completed, created_at
		 FROM tasks
		 WHERE public_id = $1`,
		publicID,
	)
	var t domain.Task
	if err := row.Scan(&t.ID, &t.PublicID, &t.OwnerID, &t.Name, &t.Description,
		&t.Deadline, &t.Priority, &t.Completed, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, public_id, user_id, name, description, deadline, priority, completed, created_at
		 FROM tasks
		 WHERE user_id = $1
		 ORDER BY deadline, priority DESC, created_at`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.PublicID, &t.OwnerID, &t.Name, &t.Description,
			&t.Deadline, &t.Priority, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

// Update persists the mutable fields of a task. The public id and owner
// are immutable and never part of the SET list.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	result, err := r.db.Exec(ctx,
		`UPDATE tasks
		 SET name = $1, description = $2, deadline = $3, priority = $4, completed = $5
		 WHERE public_id = $6`,
		t.Name, t.Description, t.Deadline, t.Priority, t.Completed, t.PublicID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) SetCompleted(ctx context.Context, publicID uuid.UUID, completed bool) error {
	result, err := r.db.Exec(ctx,
		`UPDATE tasks SET completed = $1 WHERE public_id = $2`,
		completed, publicID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, publicID uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE public_id = $1`, publicID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
