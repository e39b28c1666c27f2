package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/relay"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	tasksURL          = "/tasks"
	createTaskFormURL = "/createTaskForm"
)

type TaskHandler struct {
	taskService  ports.TaskService
	relay        *relay.Relay
	exposeErrors bool
}

// NewTaskHandler wires the task routes. exposeErrors adds the underlying
// cause to 500 responses and is meant for test environments only.
func NewTaskHandler(taskService ports.TaskService, formRelay *relay.Relay, exposeErrors bool) *TaskHandler {
	return &TaskHandler{taskService: taskService, relay: formRelay, exposeErrors: exposeErrors}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		h.fail(c, http.StatusInternalServerError, apierrors.MsgFailListTasks, err)
		return
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
		return
	}
	c.HTML(http.StatusOK, "tasks.html", page(c, "Tasks", gin.H{"Tasks": tasks}))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, err := validation.ParseTaskID(c.Param("taskId"), middleware.GetLang(c))
	if err != nil {
		h.rejectParams(c, err)
		return
	}

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

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, mapper.ToTaskItem(task))
		return
	}
	c.HTML(http.StatusOK, "task.html", page(c, task.Title, gin.H{"Task": task}))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	form, err := bindTaskForm(c)
	if err != nil {
		h.fail(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, err)
		return
	}

	input, err := validation.BuildTaskInput(form, middleware.GetLang(c))
	if err != nil {
		h.rejectForm(c, err, 0, form, createTaskFormURL)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		h.persistFailed(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailCreateTask)
		return
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
		return
	}
	c.Redirect(http.StatusFound, tasksURL)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := validation.ParseTaskID(c.Param("taskId"), lang)
	if err != nil {
		h.rejectParams(c, err)
		return
	}

	form, err := bindTaskForm(c)
	if err != nil {
		h.fail(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, err)
		return
	}

	input, err := validation.BuildTaskInput(form, lang)
	if err != nil {
		h.rejectForm(c, err, taskID, form, updateTaskFormURL(taskID))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		h.persistFailed(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailUpdateTask)
		return
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, mapper.ToTaskItem(task))
		return
	}
	c.Redirect(http.StatusFound, tasksURL)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := validation.ParseTaskID(c.Param("taskId"), middleware.GetLang(c))
	if err != nil {
		h.rejectParams(c, err)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		h.persistFailed(c, err, apierrors.MsgTaskNotDeleted, apierrors.MsgFailDeleteTask)
		return
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, dto.DeletedTask{ID: taskID})
		return
	}
	c.Redirect(http.StatusFound, tasksURL)
}

func (h *TaskHandler) NotFound(c *gin.Context) {
	h.fail(c, http.StatusNotFound, apierrors.MsgPageNotFound, nil)
}

func updateTaskFormURL(taskID uint64) string {
	return fmt.Sprintf("/updateTaskForm/%d", taskID)
}
