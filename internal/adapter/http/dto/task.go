package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"tasktracker/pkg/apierrors"
)

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Due         string  `json:"due"`
}

type DeletedTask struct {
	ID uint64 `json:"id"`
}

// TaskForm is a create/update submission exactly as typed: every field is the
// raw string so a rejected form can be shown back unchanged.
type TaskForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDay      string `json:"due-day"`
	DueMonth    string `json:"due-month"`
	DueYear     string `json:"due-year"`
	DueHour     string `json:"due-hour"`
	DueMinutes  string `json:"due-minutes"`
}

// FormState is what a form page shows: submitted or stored values plus the
// errors of the last rejected attempt.
type FormState struct {
	Task   TaskForm               `json:"task"`
	Errors []apierrors.FieldError `json:"errors"`
}

// TaskPayload binds both urlencoded forms and JSON bodies. JSON clients may
// send the due components as numbers.
type TaskPayload struct {
	Title       FlexString `json:"title" form:"title"`
	Description FlexString `json:"description" form:"description"`
	Status      FlexString `json:"status" form:"status"`
	DueDay      FlexString `json:"due-day" form:"due-day"`
	DueMonth    FlexString `json:"due-month" form:"due-month"`
	DueYear     FlexString `json:"due-year" form:"due-year"`
	DueHour     FlexString `json:"due-hour" form:"due-hour"`
	DueMinutes  FlexString `json:"due-minutes" form:"due-minutes"`
}

func (p TaskPayload) Form() TaskForm {
	return TaskForm{
		Title:       string(p.Title),
		Description: string(p.Description),
		Status:      string(p.Status),
		DueDay:      string(p.DueDay),
		DueMonth:    string(p.DueMonth),
		DueYear:     string(p.DueYear),
		DueHour:     string(p.DueHour),
		DueMinutes:  string(p.DueMinutes),
	}
}

// FlexString accepts a JSON string, number or null.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*s = ""
		return nil
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return err
	}
	switch v := value.(type) {
	case string:
		*s = FlexString(v)
	case float64:
		*s = FlexString(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("expected string or number, got %s", trimmed)
	}
	return nil
}
