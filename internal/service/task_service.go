package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskboard/internal/auth"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// NewTask carries validated input for a task to be created.
type NewTask struct {
	Name     string
	DueDate  time.Time
	Priority model.Priority
}

// TaskLists groups the board's tasks by status.
type TaskLists struct {
	Open   []model.Task
	Closed []model.Task
}

// TaskService handles task operations. Mutations are allowed only for the
// task's owner or an admin.
type TaskService interface {
	List(ctx context.Context) (*TaskLists, error)
	Create(ctx context.Context, actor auth.Principal, input NewTask) (*model.Task, error)
	Complete(ctx context.Context, actor auth.Principal, id uint) error
	Delete(ctx context.Context, actor auth.Principal, id uint) error
}

type taskService struct {
	repo repository.TaskRepository
	now  func() time.Time
}

// NewTaskService creates a new task service.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{
		repo: repo,
		now:  time.Now,
	}
}

// List returns every user's open and closed tasks.
func (s *taskService) List(ctx context.Context) (*TaskLists, error) {
	open, err := s.repo.FindOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open tasks: %w", err)
	}
	closed, err := s.repo.FindClosed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list closed tasks: %w", err)
	}
	return &TaskLists{Open: open, Closed: closed}, nil
}

// Create stores an open task owned by the actor.
func (s *taskService) Create(ctx context.Context, actor auth.Principal, input NewTask) (*model.Task, error) {
	if !actor.Authenticated {
		return nil, apperrors.ErrPermissionDenied
	}

	task := &model.Task{
		Name:     input.Name,
		DueDate:  input.DueDate,
		Priority: input.Priority,
		PostedAt: s.now().UTC(),
		Status:   model.TaskStatusOpen,
		UserID:   actor.UserID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Complete closes the task. Completing a closed task leaves it closed.
func (s *taskService) Complete(ctx context.Context, actor auth.Principal, id uint) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, model.TaskStatusClosed); err != nil {
		return fmt.Errorf("complete task %d: %w", id, err)
	}
	return nil
}

// Delete removes the task.
func (s *taskService) Delete(ctx context.Context, actor auth.Principal, id uint) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

func (s *taskService) authorize(ctx context.Context, actor auth.Principal, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	if !actor.CanModify(task) {
		return nil, apperrors.ErrPermissionDenied
	}
	return task, nil
}
