package service

import (
	"context"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.AddTask(ctx, input)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	if id == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return s.taskRepository.GetTask(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error) {
	if id == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.UpdateTask(ctx, id, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	if id == 0 {
		return domain.ErrTaskNotFound
	}
	return s.taskRepository.DeleteTask(ctx, id)
}

var _ ports.TaskService = (*TaskService)(nil)
