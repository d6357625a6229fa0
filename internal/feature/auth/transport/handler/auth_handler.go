// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/feature/auth/transport/http/dto"
	"taskboard/internal/feature/auth/usecase"
	"taskboard/internal/platform/session"
)

// AuthUsecase defines the authentication operations used by this handler.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Login authenticates a user and returns a new session ID on success.
	Login(ctx context.Context, nome, senha string) (string, error)
	// Logout clears the session unconditionally.
	Logout(ctx context.Context, sessionID string) error
	// Register creates a new user with a hashed senha.
	Register(ctx context.Context, nome, email, senha, area string) error
}

// AuthHandler handles the login, logout and user-creation routes.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Login handles the login form submission.
// Validation failures, unknown users and bad senhas all re-render the
// login page with no session established; the causes are deliberately
// not distinguished to the client.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.HTML(http.StatusOK, "login.html", nil)
		return
	}

	sessionID, err := h.auth.Login(c.Request.Context(), form.Nome, form.Senha)
	if err != nil {
		slog.Warn("login failed", "nome", form.Nome, "remote_addr", c.ClientIP())
		c.HTML(http.StatusOK, "login.html", nil)
		return
	}

	slog.Info("user login successful", "nome", form.Nome, "remote_addr", c.ClientIP())
	c.SetCookie(session.CookieName, sessionID, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/home")
}

// Logout clears the session and the cookie, then redirects to /login.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(session.CookieName); err == nil && id != "" {
		if err := h.auth.Logout(c.Request.Context(), id); err != nil {
			slog.Warn("logout failed to clear session", "error", err)
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// CreateUser handles the user-creation form posted from the management
// page. Missing or malformed fields are a 400; a taken nome is a 409;
// success redirects back to /gerenciar.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var form dto.CreateUserForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("create-user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	if err := h.auth.Register(c.Request.Context(), form.Nome, form.Email, form.Senha, form.Area); err != nil {
		if errors.Is(err, usecase.ErrNomeAlreadyExists) {
			slog.Warn("create-user rejected", "nome", form.Nome, "error", err)
			c.String(http.StatusConflict, "nome already exists")
			return
		}
		slog.Error("create-user failed", "nome", form.Nome, "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("user created", "nome", form.Nome)
	c.Redirect(http.StatusFound, "/gerenciar")
}
