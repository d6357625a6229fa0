// Package handler provides the HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskboard/internal/feature/tasks/domain/entity"
	"taskboard/internal/feature/tasks/transport/http/dto"
)

// TaskUsecase defines the task operations used by this handler.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type TaskUsecase interface {
	// List returns all tasks for the board listing.
	List(ctx context.Context) ([]entity.Task, error)
	// Create persists a new pending task.
	Create(ctx context.Context, tarefa, responsavel, frequencia, descricao string) error
	// Complete marks a task done; unknown IDs are a no-op.
	Complete(ctx context.Context, id uint) error
	// Delete removes a task; unknown IDs are a no-op.
	Delete(ctx context.Context, id uint) error
}

// TaskHandler handles the task board and its lifecycle routes.
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler creates a new instance of TaskHandler.
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Home renders the task board listing. The route is session-gated by the
// router, so by the time this runs the request is authenticated.
func (h *TaskHandler) Home(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		slog.Error("task listing failed", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"tasks": tasks})
}

// CreateTask handles the task-creation form. Missing required fields are
// a 400; success redirects back to the board.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var form dto.CreateTaskForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("create-task validation failed", "error", err, "remote_addr", c.ClientIP())
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	if err := h.tasks.Create(c.Request.Context(), form.Tarefa, form.Responsavel, form.Frequencia, form.Descricao); err != nil {
		slog.Error("create-task failed", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("task created", "tarefa", form.Tarefa, "responsavel", form.Responsavel)
	c.Redirect(http.StatusFound, "/home")
}

// CheckTask marks a task complete. A nonexistent ID still redirects to
// the board; only a malformed ID is an error.
func (h *TaskHandler) CheckTask(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.tasks.Complete(c.Request.Context(), id); err != nil {
		slog.Error("check-task failed", "id", id, "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusFound, "/home")
}

// DeleteTask removes a task. A nonexistent ID still redirects to the
// board; only a malformed ID is an error.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		slog.Error("delete-task failed", "id", id, "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusFound, "/home")
}

// parseID converts the :id path parameter into a task ID.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
