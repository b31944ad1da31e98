package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jnbreid/todo-backend/internal/http/middleware"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account from a username/password pair.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	if err := h.Users.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Login verifies credentials and returns a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	token, err := h.Users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "username": req.Username})
}

// DeleteSelf removes the caller's own account after re-verifying its
// credentials.
func (h *Handler) DeleteSelf(c *gin.Context) {
	var req credentialsRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	ident := middleware.IdentityFrom(c)
	if err := h.Users.DeleteSelf(c.Request.Context(), ident, req.Username, req.Password); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
