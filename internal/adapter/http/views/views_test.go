package views_test

import (
	"bytes"
	"testing"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/views"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"

	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, data map[string]any) string {
	t.Helper()
	tmpl, err := views.Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestFormatDue(t *testing.T) {
	due := time.Date(2023, 12, 15, 14, 30, 0, 0, time.UTC)
	require.Equal(t, "15 December 2023 at 14:30", views.FormatDue(due))
}

func TestStatusChecked(t *testing.T) {
	require.True(t, views.StatusChecked("TODO", domain.TaskStatusTodo))
	require.True(t, views.StatusChecked("in_progress", domain.TaskStatusInProgress))
	require.False(t, views.StatusChecked("", domain.TaskStatusDone))
}

func TestTasksPage(t *testing.T) {
	description := "Outline the project requirements"
	html := render(t, "tasks.html", map[string]any{
		"PageTitle": "Tasks",
		"Tasks": []domain.Task{{
			ID:          7,
			Title:       "Project outline",
			Description: &description,
			Status:      domain.TaskStatusInProgress,
			Due:         time.Date(2023, 12, 15, 14, 30, 0, 0, time.UTC),
		}},
	})

	require.Contains(t, html, `<a href="/getTask/7">Project outline</a>`)
	require.Contains(t, html, "In progress")
	require.Contains(t, html, "15 December 2023 at 14:30")
	require.Contains(t, html, `action="/deleteTask/7"`)
}

func TestTasksPage_Empty(t *testing.T) {
	html := render(t, "tasks.html", map[string]any{"PageTitle": "Tasks"})
	require.Contains(t, html, "There are no tasks yet.")
}

func TestTaskPage_WithoutDescription(t *testing.T) {
	html := render(t, "task.html", map[string]any{
		"PageTitle": "Project outline",
		"Task": domain.Task{
			ID:     3,
			Title:  "Project outline",
			Status: domain.TaskStatusDone,
			Due:    time.Date(2024, 2, 29, 9, 5, 0, 0, time.UTC),
		},
	})

	require.Contains(t, html, "No description")
	require.Contains(t, html, "29 February 2024 at 09:05")
	require.Contains(t, html, `href="/updateTaskForm/3"`)
}

func TestCreateTaskPage_RedisplaysValuesAndErrors(t *testing.T) {
	errs := apierrors.ValidationErrs{Errors: []apierrors.FieldError{{
		Msg:      "Due day must be a number between 1 and 31.",
		Param:    "due-day",
		Location: "body",
	}}}

	html := render(t, "create-task.html", map[string]any{
		"PageTitle":   "Create a task",
		"Form":        dto.TaskForm{Title: "<b>Project</b>", Status: "TODO", DueDay: "32"},
		"Errors":      errs.Errors,
		"FieldErrors": errs.ByParam(),
	})

	require.Contains(t, html, "What is the title of the task?")
	require.Contains(t, html, "There is a problem")
	require.Contains(t, html, "Due day must be a number between 1 and 31.")
	require.Contains(t, html, `value="&lt;b&gt;Project&lt;/b&gt;"`)
	require.Contains(t, html, `value="32"`)
	require.Contains(t, html, `value="to_do" checked`)
}

func TestEditTaskPage(t *testing.T) {
	html := render(t, "edit-task.html", map[string]any{
		"PageTitle":   "Edit task",
		"TaskID":      uint64(12),
		"Form":        dto.TaskForm{Title: "Project outline", Status: "done", DueYear: "2023"},
		"FieldErrors": map[string]string{},
	})

	require.Contains(t, html, `action="/updateTask/12"`)
	require.Contains(t, html, `name="_method" value="PUT"`)
	require.NotContains(t, html, "There is a problem")
	require.Contains(t, html, `value="done" checked`)
}

func TestErrorPage(t *testing.T) {
	html := render(t, "error.html", map[string]any{
		"PageTitle": "Error",
		"Message":   "Internal server error",
		"Detail":    "dial tcp: connection refused",
	})

	require.Contains(t, html, "Internal server error")
	require.Contains(t, html, "dial tcp: connection refused")
}
