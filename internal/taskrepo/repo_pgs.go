// Package taskrepo manages repository layer of tasks.
package taskrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yash261/banking-app/internal/domain"
	"github.com/yash261/banking-app/pkg/dbpkg"
	"github.com/yash261/banking-app/pkg/errorspkg"
)

// RepoPGS facilitates task repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns task RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    tasks (title, description, completed)
VALUES
    ($1, $2, $3)
RETURNING id, title, description, completed, created_at
`

// Create creates the task and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTaskParams) (domain.Task, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.Title, arg.Description, arg.Completed)

	var t domain.Task

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Completed,
		&t.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getQuery = `
SELECT
	id, title, description, completed, created_at
FROM tasks
WHERE id = $1
`

// Get returns the task with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var t domain.Task

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Completed,
		&t.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrTaskNotFound
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listQuery = `
SELECT
	id, title, description, completed, created_at
FROM tasks
ORDER BY created_at, id
`

// List returns all tasks.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Task, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Task{}

	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE tasks
SET title = $2, description = $3, completed = $4
WHERE id = $1
RETURNING id, title, description, completed, created_at
`

// Update replaces the task fields and returns the updated task.
func (r *RepoPGS) Update(ctx context.Context, id uuid.UUID, arg domain.CreateTaskParams) (domain.Task, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, id, arg.Title, arg.Description, arg.Completed)

	var t domain.Task

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Completed,
		&t.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrTaskNotFound
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const deleteQuery = `
DELETE FROM tasks
WHERE id = $1
`

// Delete removes the task with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id uuid.UUID) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}
