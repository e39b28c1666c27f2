package mapper

import (
	"strconv"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:     task.ID,
		Title:  task.Title,
		Status: string(task.Status),
		Due:    task.Due.UTC().Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	return item
}

// ToTaskForm prefills an edit form from a stored task.
func ToTaskForm(task domain.Task) dto.TaskForm {
	parts := domain.DuePartsFromTime(task.Due)
	form := dto.TaskForm{
		Title:      task.Title,
		Status:     string(task.Status),
		DueDay:     strconv.Itoa(parts.Day),
		DueMonth:   strconv.Itoa(parts.Month),
		DueYear:    strconv.Itoa(parts.Year),
		DueHour:    strconv.Itoa(parts.Hour),
		DueMinutes: strconv.Itoa(parts.Minute),
	}
	if task.Description != nil {
		form.Description = *task.Description
	}
	return form
}
