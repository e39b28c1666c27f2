package handlers

import (
	"errors"
	"net/http"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateTaskForm renders an empty create form, or the last rejected
// submission of this session with its errors. That submission is shown once.
func (h *TaskHandler) CreateTaskForm(c *gin.Context) {
	state := dto.FormState{Errors: []apierrors.FieldError{}}
	if previous, ok := h.relay.ConsumeFor(c, 0); ok {
		state.Task = previous.Form
		state.Errors = previous.Errors
	}

	h.renderForm(c, "create-task.html", "Create a task", 0, state)
}

// UpdateTaskForm renders the edit form prefilled from storage, unless this
// session has a rejected edit of the same task waiting to be shown.
func (h *TaskHandler) UpdateTaskForm(c *gin.Context) {
	taskID, err := validation.ParseTaskID(c.Param("taskId"), middleware.GetLang(c))
	if err != nil {
		h.rejectParams(c, err)
		return
	}

	previous, hasPrevious := h.relay.ConsumeFor(c, taskID)

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			h.fail(c, http.StatusNotFound, apierrors.MsgTaskNotFound, nil)
			return
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		h.fail(c, http.StatusInternalServerError, apierrors.MsgFailGetTask, err)
		return
	}

	state := dto.FormState{Task: mapper.ToTaskForm(task), Errors: []apierrors.FieldError{}}
	if hasPrevious {
		state.Task = previous.Form
		state.Errors = previous.Errors
	}

	h.renderForm(c, "edit-task.html", "Edit task", taskID, state)
}

func (h *TaskHandler) renderForm(c *gin.Context, template, title string, taskID uint64, state dto.FormState) {
	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, state)
		return
	}

	c.HTML(http.StatusOK, template, page(c, title, gin.H{
		"TaskID":      taskID,
		"Form":        state.Task,
		"Errors":      state.Errors,
		"FieldErrors": apierrors.ValidationErrs{Errors: state.Errors}.ByParam(),
	}))
}
