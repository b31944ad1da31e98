package handlers

import (
	"github.com/jnbreid/todo-backend/internal/service"
)

// Handler bundles the services behind the HTTP boundary.
type Handler struct {
	Users *service.UserService
	Tasks *service.TaskService
}

func NewHandler(users *service.UserService, tasks *service.TaskService) *Handler {
	return &Handler{Users: users, Tasks: tasks}
}
