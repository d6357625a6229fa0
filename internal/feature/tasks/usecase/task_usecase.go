package usecase

import (
	"context"
	"time"

	"taskboard/internal/feature/tasks/domain/entity"
)

// Completion timestamps are UTC, truncated to the minute. The rendered
// value is always 16 characters wide.
const timestampLayout = "2006-01-02 15:04"

// TaskRepository abstracts the persistence layer for task entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type TaskRepository interface {
	// ListAll returns every task in the store's natural retrieval order.
	ListAll(ctx context.Context) ([]entity.Task, error)

	// FindByID retrieves a task by ID.
	// It returns ErrTaskNotFound if no such task exists.
	FindByID(ctx context.Context, id uint) (*entity.Task, error)

	// Create persists a new task.
	Create(ctx context.Context, task *entity.Task) error

	// Delete removes a task by ID. A missing row is a no-op, not an error.
	Delete(ctx context.Context, id uint) error

	// Complete sets a task's status to done and its last-modified value.
	// A missing row is a no-op, not an error.
	Complete(ctx context.Context, id uint, timestamp string) error
}

// taskUsecase implements the task lifecycle business logic.
type taskUsecase struct {
	tasks TaskRepository
	now   func() time.Time
}

// NewTaskUsecase creates a new instance of taskUsecase.
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{
		tasks: tasks,
		now:   time.Now,
	}
}

// List returns all tasks for the board listing.
func (u *taskUsecase) List(ctx context.Context) ([]entity.Task, error) {
	return u.tasks.ListAll(ctx)
}

// Create persists a new pending task. The last-modified value stays nil
// until the task is completed.
func (u *taskUsecase) Create(ctx context.Context, tarefa, responsavel, frequencia, descricao string) error {
	task := &entity.Task{
		Tarefa:      tarefa,
		Responsavel: responsavel,
		Frequencia:  frequencia,
		Descricao:   descricao,
		Status:      entity.StatusPending,
	}
	return u.tasks.Create(ctx, task)
}

// Complete marks a task done and stamps it with the current UTC minute.
// Completing an unknown ID is a silent no-op.
func (u *taskUsecase) Complete(ctx context.Context, id uint) error {
	timestamp := u.now().UTC().Format(timestampLayout)
	return u.tasks.Complete(ctx, id, timestamp)
}

// Delete removes a task. Deleting an unknown ID is a silent no-op.
func (u *taskUsecase) Delete(ctx context.Context, id uint) error {
	return u.tasks.Delete(ctx, id)
}
