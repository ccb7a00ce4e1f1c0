package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harshittt-21/shopneticc/internal/middleware"
	"github.com/harshittt-21/shopneticc/internal/models"
	"github.com/harshittt-21/shopneticc/internal/services"
)

// MockAuthService is a mock implementation of AuthServiceInterface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*services.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*services.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) RequireRole(user *models.User, requiredRole models.UserRole) error {
	args := m.Called(user, requiredRole)
	return args.Error(0)
}

func setupAuthRouter(authService *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(authService, zerolog.Nop())

	router := gin.New()
	router.POST("/api/auth/register", handler.Register)
	router.POST("/api/auth/login", handler.Login)
	router.GET("/api/auth/me", handler.Me)
	return router
}

func TestAuthHandlerRegister(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Username: "alice", Email: "alice@example.com"}

	authService := new(MockAuthService)
	authService.On("Register", mock.Anything, mock.AnythingOfType("*models.RegisterRequest")).
		Return(&services.AuthResponse{Token: "signed-token", User: user}, nil)

	router := setupAuthRouter(authService)

	body := `{"username":"alice","email":"alice@example.com","password":"secret1"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token")
	assert.Contains(t, w.Body.String(), "User created successfully")
	// The password hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandlerRegisterDuplicate(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("Register", mock.Anything, mock.Anything).Return(nil, models.ErrDuplicateUser)

	router := setupAuthRouter(authService)

	body := `{"username":"alice","email":"alice@example.com","password":"secret1"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestAuthHandlerLogin(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Username: "alice", Email: "alice@example.com"}

	authService := new(MockAuthService)
	authService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
		Return(&services.AuthResponse{Token: "signed-token", User: user}, nil)

	router := setupAuthRouter(authService)

	body := `{"email":"alice@example.com","password":"secret1"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login successful")
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("Login", mock.Anything, mock.Anything).Return(nil, models.ErrInvalidCredentials)

	router := setupAuthRouter(authService)

	body := `{"email":"alice@example.com","password":"wrong"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestAuthHandlerMe(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Username: "alice", Email: "alice@example.com"}

	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(new(MockAuthService), zerolog.Nop())

	router := gin.New()
	router.GET("/api/auth/me", func(c *gin.Context) {
		middleware.SetUser(c, user)
		handler.Me(c)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}
