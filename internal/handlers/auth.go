package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harshittt-21/shopneticc/internal/middleware"
	"github.com/harshittt-21/shopneticc/internal/models"
	"github.com/harshittt-21/shopneticc/internal/services"
)

// AuthHandler handles registration, login and the current-user route
type AuthHandler struct {
	authService services.AuthServiceInterface
	logger      zerolog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateUser):
			fail(c, http.StatusBadRequest, "User with this email or username already exists")
		case errors.Is(err, models.ErrInvalidInput):
			fail(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("registration failed")
			failWithError(c, http.StatusInternalServerError, "Server error during registration", err)
		}
		return
	}

	ok(c, http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCredentials):
			fail(c, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, models.ErrInvalidInput):
			fail(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("login failed")
			failWithError(c, http.StatusInternalServerError, "Server error during login", err)
		}
		return
	}

	ok(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	ok(c, http.StatusOK, gin.H{"user": user})
}
