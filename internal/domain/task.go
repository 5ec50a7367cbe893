package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrTaskNotFound indicates that the task is not found.
var ErrTaskNotFound = errors.New("task not found")

// Task holds a single task record.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateTaskParams is the input data to create a task.
type CreateTaskParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
