package http

import (
	"fmt"
	"net/http"

	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the engine with recovery, request logging and the page
// templates, then registers every route.
func NewRouter(logger *zap.Logger, trustedProxies []string, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.GinZapMiddleware(logger))

	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	tmpl, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	RegisterRoutes(r, healthHandler, taskHandler)
	return r, nil
}

// Handler wraps the router so HTML forms can reach the PUT and DELETE
// routes. Routing happens inside gin, so the rewrite must come first.
func Handler(r *gin.Engine) http.Handler {
	return middleware.MethodOverride(r)
}

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	site := r.Group("/")
	site.Use(middleware.LanguageMiddleware(), middleware.FormatMiddleware())
	{
		site.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/tasks")
		})
		site.GET("/tasks", taskHandler.ListTasks)
		site.GET("/getTask/:taskId", taskHandler.GetTask)
		site.GET("/createTaskForm", taskHandler.CreateTaskForm)
		site.POST("/createTask", taskHandler.CreateTask)
		site.GET("/updateTaskForm/:taskId", taskHandler.UpdateTaskForm)
		site.PUT("/updateTask/:taskId", taskHandler.UpdateTask)
		site.DELETE("/deleteTask/:taskId", taskHandler.DeleteTask)
	}

	r.NoRoute(middleware.LanguageMiddleware(), middleware.FormatMiddleware(), taskHandler.NotFound)
}
