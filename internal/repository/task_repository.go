package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// TaskRepository defines task persistence operations. Every finder returns
// fully loaded results.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id uint) (*model.Task, error)
	FindOpen(ctx context.Context) ([]model.Task, error)
	FindClosed(ctx context.Context) ([]model.Task, error)
	UpdateStatus(ctx context.Context, id uint, status model.TaskStatus) error
	Delete(ctx context.Context, id uint) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create inserts a new task.
func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID.
func (r *taskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindOpen lists every open task, earliest due date first.
func (r *taskRepository) FindOpen(ctx context.Context) ([]model.Task, error) {
	return r.findByStatus(ctx, model.TaskStatusOpen)
}

// FindClosed lists every closed task, earliest due date first.
func (r *taskRepository) FindClosed(ctx context.Context) ([]model.Task, error) {
	return r.findByStatus(ctx, model.TaskStatusClosed)
}

func (r *taskRepository) findByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	tasks := []model.Task{}
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("status = ?", status).
		Order("due_date ASC").
		Order("id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateStatus sets the status of a task.
func (r *taskRepository) UpdateStatus(ctx context.Context, id uint, status model.TaskStatus) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes the task row.
func (r *taskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, id).Error
}
