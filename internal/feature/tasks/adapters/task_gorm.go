// Package adapters provides repository implementations for the tasks feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/feature/tasks/domain/entity"
	"taskboard/internal/feature/tasks/usecase"
)

// taskGorm is the GORM implementation of the TaskRepository interface.
type taskGorm struct {
	db *gorm.DB
}

// Compile-time check that taskGorm implements TaskRepository.
var _ usecase.TaskRepository = (*taskGorm)(nil)

// NewTaskGorm creates a new instance of taskGorm for the given connection.
func NewTaskGorm(db *gorm.DB) *taskGorm {
	return &taskGorm{db: db}
}

// ListAll returns every task in primary-key order.
func (r *taskGorm) ListAll(ctx context.Context) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID retrieves a task by ID.
// It returns usecase.ErrTaskNotFound when no row matches.
func (r *taskGorm) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	var task entity.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Create persists a new task.
func (r *taskGorm) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Delete removes a task by ID. Zero rows affected is a no-op, not an error.
func (r *taskGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Task{}, id).Error
}

// Complete marks a task done and records the completion timestamp.
// Zero rows affected is a no-op, not an error.
func (r *taskGorm) Complete(ctx context.Context, id uint, timestamp string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             entity.StatusDone,
			"ultima_modificacao": timestamp,
		}).Error
}
