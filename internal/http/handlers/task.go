package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jnbreid/todo-backend/internal/domain"
	"github.com/jnbreid/todo-backend/internal/http/middleware"
	"github.com/jnbreid/todo-backend/internal/service"
)

type taskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    int    `json:"priority"`
	Completed   bool   `json:"completed"`
}

// taskResponse is the external shape of a task. Internal ids never appear;
// public_id is the only identifier a caller can hold.
type taskResponse struct {
	PublicID    string    `json:"public_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Deadline    string    `json:"deadline"`
	Priority    int       `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		PublicID:    t.PublicID.String(),
		Name:        t.Name,
		Description: t.Description,
		Deadline:    t.Deadline.Format(time.DateOnly),
		Priority:    t.Priority,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
	}
}

func (r taskRequest) toInput() (service.TaskInput, error) {
	deadline, err := time.Parse(time.DateOnly, r.Deadline)
	if err != nil {
		return service.TaskInput{}, domain.ValidationError{Field: "deadline", Reason: "must be a date in YYYY-MM-DD form"}
	}
	return service.TaskInput{
		Name:        r.Name,
		Description: r.Description,
		Deadline:    deadline,
		Priority:    r.Priority,
		Completed:   r.Completed,
	}, nil
}

// publicID parses the :public_id route param. An unparseable value gets
// the same not-found response as an unknown one: the format of ids in use
// is nobody's business either.
func publicID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("public_id"))
	if err != nil {
		writeError(c, domain.ErrNotFound)
		return uuid.UUID{}, false
	}
	return id, true
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(c, err)
		return
	}

	t, err := h.Tasks.Create(c.Request.Context(), middleware.IdentityFrom(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(t))
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := publicID(c)
	if !ok {
		return
	}
	t, err := h.Tasks.GetByPublicID(c.Request.Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(t))
}

func (h *Handler) MyTasks(c *gin.Context) {
	tasks, err := h.Tasks.ListMine(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	res := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, toTaskResponse(t))
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := publicID(c)
	if !ok {
		return
	}
	var req taskRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(c, err)
		return
	}

	t, err := h.Tasks.Update(c.Request.Context(), middleware.IdentityFrom(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(t))
}

func (h *Handler) CompleteTask(c *gin.Context) {
	id, ok := publicID(c)
	if !ok {
		return
	}
	if err := h.Tasks.SetCompleted(c.Request.Context(), middleware.IdentityFrom(c), id, true); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := publicID(c)
	if !ok {
		return
	}
	if err := h.Tasks.Delete(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
