package tests

import (
	"context"
	"errors"
	"sort"
	"sync"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

// memoryRepository keeps tasks in a map so the full request flow can run
// without a database.
type memoryRepository struct {
	mu     sync.Mutex
	nextID uint64
	tasks  map[uint64]domain.Task
	calls  int
	err    error
}

var _ ports.TaskRepository = (*memoryRepository)(nil)

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{tasks: map[uint64]domain.Task{}}
}

func (r *memoryRepository) AddTask(_ context.Context, input domain.TaskInput) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return domain.Task{}, r.err
	}

	r.nextID++
	task := toTask(r.nextID, input)
	r.tasks[task.ID] = task
	return task, nil
}

func (r *memoryRepository) GetTask(_ context.Context, id uint64) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return domain.Task{}, r.err
	}

	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *memoryRepository) ListTasks(context.Context) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}

	tasks := make([]domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (r *memoryRepository) UpdateTask(_ context.Context, id uint64, input domain.TaskInput) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return domain.Task{}, r.err
	}

	if _, ok := r.tasks[id]; !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	task := toTask(id, input)
	r.tasks[id] = task
	return task, nil
}

func (r *memoryRepository) DeleteTask(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return r.err
	}

	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memoryRepository) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *memoryRepository) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

var errStorageDown = errors.New("connection refused")

func toTask(id uint64, input domain.TaskInput) domain.Task {
	return domain.Task{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Due:         input.Due.UTC(),
	}
}
