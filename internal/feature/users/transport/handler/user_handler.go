// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"scene_backend/internal/api"
	"scene_backend/internal/feature/users/domain/entity"
	"scene_backend/internal/feature/users/transport/http/dto"
	"scene_backend/internal/feature/users/usecase"
)

// UserUsecase defines the user lifecycle operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type UserUsecase interface {
	Create(ctx context.Context, in usecase.CreateUserInput) (*entity.User, error)
	List(ctx context.Context, filter usecase.ListUsersFilter) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, id string, in usecase.UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}

// UserHandler handles HTTP requests for user resources.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler with the given usecase.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users.
// Validation failures return 422 with the binding detail; the created user
// is returned without the password field.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		return
	}
	user, err := h.users.Create(c.Request.Context(), usecase.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		slog.Error("create user failed", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	slog.Info("user created", "id", user.ID.Hex(), "username", user.Username)
	c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

// List handles GET /users.
// Returns a plain array of user responses; no total count for this endpoint.
func (h *UserHandler) List(c *gin.Context) {
	var req dto.ListUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Warn("list users validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		return
	}
	users, err := h.users.List(c.Request.Context(), usecase.ListUsersFilter{
		Skip:     req.Skip,
		Limit:    req.Limit,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		slog.Error("list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.UserResponseFromEntity(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /users/:id.
// A missing, malformed, or soft-deleted id uniformly returns 404.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err, "get user")
		return
	}
	c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

// Update handles PUT /users/:id with a partial body.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		return
	}
	user, err := h.users.Update(c.Request.Context(), c.Param("id"), usecase.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		h.renderError(c, err, "update user")
		return
	}
	slog.Info("user updated", "id", user.ID.Hex())
	c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

// Delete handles DELETE /users/:id. The user record is only flagged, never
// physically removed.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err, "delete user")
		return
	}
	slog.Info("user deleted", "id", c.Param("id"))
	c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted successfully"})
}

// renderError maps usecase errors to HTTP responses. Store failures are
// logged with full detail but the response body stays generic.
func (h *UserHandler) renderError(c *gin.Context, err error, op string) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		return
	}
	slog.Error(op+" failed", "error", err, "id", c.Param("id"))
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
}
