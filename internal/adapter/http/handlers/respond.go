package handlers

import (
	"errors"
	"net/http"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/relay"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// page fills the fields every template expects.
func page(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["PageTitle"] = title
	data["Lang"] = middleware.GetLang(c)
	return data
}

// fail writes a translated error, as JSON or as the error page. The cause is
// attached only when the handler was built to expose errors.
func (h *TaskHandler) fail(c *gin.Context, status int, msgKey string, cause error) {
	if cause != nil {
		_ = c.Error(cause)
	}

	apiErr := apierrors.CreateError(status, msgKey, middleware.GetLang(c))
	if h.exposeErrors {
		apiErr = apiErr.WithDetail(cause)
	}

	if middleware.WantsJSON(c) {
		c.JSON(status, apiErr)
		return
	}
	c.HTML(status, "error.html", page(c, http.StatusText(status), gin.H{
		"Message": apiErr.ErrDetails.Message,
		"Detail":  apiErr.ErrDetails.Detail,
	}))
}

// rejectParams answers a malformed path parameter. There is no form to go
// back to, so HTML clients get an error page rather than a redirect.
func (h *TaskHandler) rejectParams(c *gin.Context, err error) {
	var verrs apierrors.ValidationErrs
	if !errors.As(err, &verrs) {
		h.fail(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID, err)
		return
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusBadRequest, verrs)
		return
	}
	c.HTML(http.StatusBadRequest, "error.html", page(c, http.StatusText(http.StatusBadRequest), gin.H{
		"Errors": verrs.Errors,
	}))
}

// rejectForm answers a submission that failed validation. JSON clients get the
// error list; HTML clients are sent back to formURL with their input relayed.
func (h *TaskHandler) rejectForm(c *gin.Context, err error, taskID uint64, form dto.TaskForm, formURL string) {
	var verrs apierrors.ValidationErrs
	if !errors.As(err, &verrs) {
		h.fail(c, http.StatusInternalServerError, apierrors.MsgInternalServerError, err)
		return
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusBadRequest, verrs)
		return
	}

	state := relay.State{TaskID: taskID, Form: form, Errors: verrs.Errors}
	if err := h.relay.Stash(c, state); err != nil {
		zap.L().Warn("failed to keep rejected form", zap.Uint64("task_id", taskID), zap.Error(err))
	}
	c.Redirect(http.StatusFound, formURL)
}

// persistFailed maps a service error from a write onto a response.
func (h *TaskHandler) persistFailed(c *gin.Context, err error, notFoundKey, failKey string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		h.fail(c, http.StatusNotFound, notFoundKey, nil)
	case errors.Is(err, domain.ErrInvalidTask):
		h.fail(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, err)
	default:
		zap.L().Error(failKey, zap.String("path", c.Request.URL.Path), zap.Error(err))
		h.fail(c, http.StatusInternalServerError, failKey, err)
	}
}

func bindTaskForm(c *gin.Context) (dto.TaskForm, error) {
	var payload dto.TaskPayload
	if err := c.ShouldBind(&payload); err != nil {
		return dto.TaskForm{}, err
	}
	return payload.Form(), nil
}
