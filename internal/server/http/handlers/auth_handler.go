package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/L1nkStart/authsvc/internal/domain/errors"
	"github.com/L1nkStart/authsvc/internal/server/http/dto"
	"github.com/L1nkStart/authsvc/internal/server/http/middleware"
)

// AuthHandler processes registration, login, logout and profile requests.
type AuthHandler struct {
	facade AuthFacade
	logger *slog.Logger
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, logger: logger}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid request body"))
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if v, ok := domainErrors.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, dto.ErrWithDetails("invalid input data", v.Fields))
			return
		}
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, dto.Err("user already exists with this email"))
			return
		}
		h.logger.Error("register failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("internal server error"))
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.OK("user registered successfully", dto.AuthData{
		User:  dto.NewUserPayload(user),
		Token: token,
	}))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid request body"))
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if v, ok := domainErrors.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, dto.ErrWithDetails("invalid input data", v.Fields))
			return
		}
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.Err("invalid credentials"))
			return
		}
		h.logger.Error("login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("internal server error"))
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.OK("login successful", dto.AuthData{
		User:  dto.NewUserPayload(user),
		Token: token,
	}))
}

// Logout handles POST /auth/logout. Tokens are stateless, so there is
// nothing to revoke server-side; the call only acknowledges.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK("logout successful", nil))
}

// Profile handles GET /auth/profile. The auth middleware has already
// verified the token and stored the user id in the context.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, dto.Err("invalid or missing token"))
		return
	}

	user, err := h.facade.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Err("user not found"))
			return
		}
		h.logger.Error("profile lookup failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("", dto.ProfileData{User: dto.NewUserPayload(user)}))
}
