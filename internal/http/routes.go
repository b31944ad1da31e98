package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jnbreid/todo-backend/internal/http/handlers"
	"github.com/jnbreid/todo-backend/internal/http/middleware"
)

// RegisterRoutes wires the route table. The authentication middleware runs
// on every request (public endpoints simply ignore the identity);
// authLimit fronts the three credential endpoints, which are the only ones
// that run bcrypt.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, authenticate, authLimit gin.HandlerFunc) {
	r.Use(authenticate)

	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	users := api.Group("/users")
	users.POST("/register", authLimit, h.Register)
	users.POST("/login", authLimit, h.Login)
	users.DELETE("/delete", middleware.RequireIdentity(), authLimit, h.DeleteSelf)

	tasks := api.Group("/tasks", middleware.RequireIdentity())
	tasks.POST("", h.CreateTask)
	tasks.GET("/my-tasks", h.MyTasks)
	tasks.GET("/public/:public_id", h.GetTask)
	tasks.PUT("/public/:public_id", h.UpdateTask)
	tasks.PATCH("/public/:public_id/complete", h.CompleteTask)
	tasks.DELETE("/public/:public_id", h.DeleteTask)
}
