// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"phonebook_backend/internal/feature/auth/transport/http/dto"
	"phonebook_backend/internal/feature/auth/usecase"
	"phonebook_backend/internal/platform/problem"
)

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns a bearer token.
	Register(ctx context.Context, login, password string) (string, error)
	// Login authenticates the user and returns a bearer token on success.
	Login(ctx context.Context, login, password string) (string, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/v1/users/register.
// - 400 with field details on validation failure
// - 400 with the rejected login when the login is taken
// - 201 with the issued token on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		problem.RespondBindingError(c, err)
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		var dup *usecase.DuplicateLoginError
		if errors.As(err, &dup) {
			slog.Warn("register rejected: login taken", "login", req.Login, "remote_addr", c.ClientIP())
			problem.Respond(c, http.StatusBadRequest, "User login already exists",
				problem.Detail{Message: "The user already exists", WrongValue: dup.Login})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		problem.Respond(c, http.StatusInternalServerError, "Internal error",
			problem.Detail{Message: "unexpected error"})
		return
	}

	slog.Info("user registered", "login", req.Login, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.TokenResponse{Token: token})
}

// Login handles POST /api/v1/users/auth.
// - 400 with field details on validation failure
// - 403 on bad credentials; the body never says which part was wrong
// - 200 with the issued token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		problem.RespondBindingError(c, err)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "login", req.Login, "remote_addr", c.ClientIP())
			problem.Respond(c, http.StatusForbidden, "Invalid credentials",
				problem.Detail{Message: "invalid login or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		problem.Respond(c, http.StatusInternalServerError, "Internal error",
			problem.Detail{Message: "unexpected error"})
		return
	}

	slog.Info("user login successful", "login", req.Login, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
