package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

const (
	insertTaskQuery = `INSERT INTO cases (title, description, status, due) VALUES (?, ?, ?, ?)`
	getTaskQuery    = `SELECT id, title, description, status, due FROM cases WHERE id = ?`
	listTasksQuery  = `SELECT id, title, description, status, due FROM cases ORDER BY id`
	updateTaskQuery = `UPDATE cases SET title = ?, description = ?, status = ?, due = ? WHERE id = ?`
	deleteTaskQuery = `DELETE FROM cases WHERE id = ?`
)

const defaultQueryTimeout = 5 * time.Second

type TaskRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Due         time.Time      `db:"due"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository binds the repository to db. Every call runs a single
// statement bounded by timeout; a non-positive timeout falls back to 5s.
func NewTaskRepository(db *sqlx.DB, timeout time.Duration) *TaskRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &TaskRepository{db: db, timeout: timeout}
}

func (r *TaskRepository) AddTask(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := []any{input.Title, nullableString(input.Description), string(input.Status), input.Due.UTC()}

	var id uint64
	if r.returnsIDs() {
		query := r.db.Rebind(insertTaskQuery + " RETURNING id")
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return domain.Task{}, classify("insert task", err)
		}
	} else {
		result, err := r.db.ExecContext(ctx, r.db.Rebind(insertTaskQuery), args...)
		if err != nil {
			return domain.Task{}, classify("insert task", err)
		}
		lastID, err := result.LastInsertId()
		if err != nil {
			return domain.Task{}, fmt.Errorf("insert task: last insert id: %w", err)
		}
		id = uint64(lastID)
	}

	return domain.Task{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Due:         input.Due.UTC(),
	}, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var row taskRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(getTaskQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, r.db.Rebind(updateTaskQuery),
		input.Title, nullableString(input.Description), string(input.Status), input.Due.UTC(), id)
	if err != nil {
		return domain.Task{}, classify("update task", err)
	}
	if err := requireAffected(result); err != nil {
		return domain.Task{}, err
	}

	return domain.Task{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Due:         input.Due.UTC(),
	}, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id uint64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, r.db.Rebind(deleteTaskQuery), id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return requireAffected(result)
}

func (r *TaskRepository) returnsIDs() bool {
	return r.db.DriverName() == "pgx"
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// classify turns constraint violations into ErrInvalidTask so they are not
// reported as storage outages.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", "23514", "22001", "22007", "22008":
			return fmt.Errorf("%s: %w: %s", op, domain.ErrInvalidTask, pgErr.Message)
		}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1048, 1292, 1406, 3819:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrInvalidTask, myErr.Message)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:     row.ID,
		Title:  row.Title,
		Status: domain.TaskStatus(row.Status),
		Due:    row.Due.UTC(),
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	return task
}
