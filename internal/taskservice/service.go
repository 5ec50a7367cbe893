// Package taskservice manages business logic layer of tasks.
package taskservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/yash261/banking-app/internal/domain"
)

// Repo provides data access layer interface needed by task service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package taskservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTaskParams) (domain.Task, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, id uuid.UUID, arg domain.CreateTaskParams) (domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service facilitates task service layer logic.
type Service struct {
	repo Repo
}

// New returns task service struct to manage task business logic.
func New(tr Repo) *Service {
	return &Service{
		repo: tr,
	}
}

// Create creates and returns a task.
func (s *Service) Create(ctx context.Context, arg domain.CreateTaskParams) (domain.Task, error) {
	return s.repo.Create(ctx, arg)
}

// Get returns the task with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	return s.repo.Get(ctx, id)
}

// List returns all tasks.
func (s *Service) List(ctx context.Context) ([]domain.Task, error) {
	return s.repo.List(ctx)
}

// Update replaces the task fields and returns the updated task.
func (s *Service) Update(ctx context.Context, id uuid.UUID, arg domain.CreateTaskParams) (domain.Task, error) {
	return s.repo.Update(ctx, id, arg)
}

// Delete removes the task with the given id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
