package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "to_do"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

const (
	TitleMinLength       = 3
	TitleMaxLength       = 100
	DescriptionMaxLength = 500
)

// TaskStatuses lists the accepted statuses in display order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

var statusAliases = map[string]TaskStatus{
	"todo": TaskStatusTodo,
}

// NormalizeTaskStatus folds user input onto the canonical status spelling.
// "TODO", "In Progress" and "in-progress" all normalize; unknown values are
// returned folded but otherwise untouched so validation can reject them.
func NormalizeTaskStatus(raw string) TaskStatus {
	folded := strings.ToLower(strings.TrimSpace(raw))
	folded = strings.NewReplacer(" ", "_", "-", "_").Replace(folded)
	if alias, ok := statusAliases[folded]; ok {
		return alias
	}
	return TaskStatus(folded)
}

func (s TaskStatus) Valid() bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label is the human readable form used by the HTML views.
func (s TaskStatus) Label() string {
	switch s {
	case TaskStatusTodo:
		return "To do"
	case TaskStatusInProgress:
		return "In progress"
	case TaskStatusDone:
		return "Done"
	}
	return string(s)
}

type Task struct {
	ID          uint64
	Title       string
	Description *string
	Status      TaskStatus
	Due         time.Time
}

// TaskInput is the fully validated shape handed to storage on create and update.
type TaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	Due         time.Time
}

// Validate re-checks the storage invariant: nothing partially valid is written.
func (in TaskInput) Validate() error {
	titleLength := utf8.RuneCountInString(in.Title)
	if titleLength < TitleMinLength || titleLength > TitleMaxLength {
		return ErrInvalidTask
	}
	if in.Description != nil && utf8.RuneCountInString(*in.Description) > DescriptionMaxLength {
		return ErrInvalidTask
	}
	if !in.Status.Valid() {
		return ErrInvalidTask
	}
	if in.Due.IsZero() {
		return ErrInvalidTask
	}
	return nil
}
