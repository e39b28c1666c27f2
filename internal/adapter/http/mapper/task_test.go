package mapper_test

import (
	"testing"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestToTaskItem_FormatsDueInUTC(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	description := "Draft the sections"
	task := domain.Task{
		ID:          3,
		Title:       "Project outline",
		Description: &description,
		Status:      domain.TaskStatusDone,
		Due:         time.Date(2023, 12, 15, 15, 30, 0, 0, paris),
	}

	item := mapper.ToTaskItem(task)

	require.Equal(t, "2023-12-15T14:30:00Z", item.Due)
	require.Equal(t, "done", item.Status)
	require.Equal(t, description, *item.Description)

	description = "changed"
	require.Equal(t, "Draft the sections", *item.Description)
}

func TestToTaskItems_EmptyIsNotNil(t *testing.T) {
	items := mapper.ToTaskItems(nil)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestToTaskForm_SplitsDue(t *testing.T) {
	form := mapper.ToTaskForm(domain.Task{
		Title:  "Project outline",
		Status: domain.TaskStatusTodo,
		Due:    time.Date(2024, 2, 1, 9, 5, 0, 0, time.UTC),
	})

	require.Equal(t, dto.TaskForm{
		Title:      "Project outline",
		Status:     "to_do",
		DueDay:     "1",
		DueMonth:   "2",
		DueYear:    "2024",
		DueHour:    "9",
		DueMinutes: "5",
	}, form)
}
