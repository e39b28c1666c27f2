package ports

import (
	"context"

	"tasktracker/internal/core/domain"
)

type TaskRepository interface {
	AddTask(ctx context.Context, input domain.TaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.TaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}
