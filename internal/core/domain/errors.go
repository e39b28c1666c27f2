package domain

import "errors"

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidTask    = errors.New("invalid task")
	ErrInvalidDueDate = errors.New("due date must be a valid date")
)
