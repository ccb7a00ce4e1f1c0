package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harshittt-21/shopneticc/internal/middleware"
	"github.com/harshittt-21/shopneticc/internal/models"
)

// MockCartService is a mock implementation of CartServiceInterface
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.HydratedCart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HydratedCart), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.HydratedCart, error) {
	args := m.Called(ctx, userID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HydratedCart), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.HydratedCart, error) {
	args := m.Called(ctx, userID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HydratedCart), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) (*models.HydratedCart, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HydratedCart), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func setupCartRouter(user *models.User, cartService *MockCartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCartHandler(cartService, zerolog.Nop())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		middleware.SetUser(c, user)
	})
	router.GET("/api/cart", handler.Get)
	router.POST("/api/cart/add", handler.Add)
	router.PUT("/api/cart/update/:productId", handler.Update)
	router.DELETE("/api/cart/remove/:productId", handler.Remove)
	router.DELETE("/api/cart/clear", handler.Clear)
	return router
}

func emptyHydratedCart(userID primitive.ObjectID) *models.HydratedCart {
	return &models.HydratedCart{
		ID:       primitive.NewObjectID(),
		UserID:   userID,
		Products: []models.HydratedCartItem{},
		Total:    0,
	}
}

func TestCartHandlerGet(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Username: "alice"}

	cartService := new(MockCartService)
	cartService.On("GetOrCreate", mock.Anything, user.ID).Return(emptyHydratedCart(user.ID), nil)

	router := setupCartRouter(user, cartService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                `json:"success"`
		Cart    models.HydratedCart `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, user.ID, body.Cart.UserID)
	assert.Empty(t, body.Cart.Products)
}

func TestCartHandlerAdd(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Username: "alice"}
	productID := primitive.NewObjectID()

	cart := emptyHydratedCart(user.ID)
	cart.Total = 20.00

	cartService := new(MockCartService)
	// Quantity defaults to 1 when the body omits it.
	cartService.On("AddItem", mock.Anything, user.ID, productID, 1).Return(cart, nil)
	cartService.On("AddItem", mock.Anything, user.ID, productID, 2).Return(cart, nil)

	router := setupCartRouter(user, cartService)

	body := fmt.Sprintf(`{"productId":%q,"quantity":2}`, productID.Hex())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cart/add", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Product added to cart successfully")

	body = fmt.Sprintf(`{"productId":%q}`, productID.Hex())
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cart/add", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusOK, w.Code)
	cartService.AssertCalled(t, "AddItem", mock.Anything, user.ID, productID, 1)
}

func TestCartHandlerAddErrors(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Username: "alice"}
	productID := primitive.NewObjectID()

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantText   string
	}{
		{"invalid quantity", models.ErrInvalidQuantity, http.StatusBadRequest, "Quantity must be at least 1"},
		{"insufficient stock", models.ErrInsufficientStock, http.StatusBadRequest, "Insufficient stock available"},
		{"unknown product", models.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{"persistence failure", fmt.Errorf("write timeout"), http.StatusInternalServerError, "Error adding product to cart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartService := new(MockCartService)
			cartService.On("AddItem", mock.Anything, user.ID, productID, 1).Return(nil, tt.serviceErr)

			router := setupCartRouter(user, cartService)

			body := fmt.Sprintf(`{"productId":%q,"quantity":1}`, productID.Hex())
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cart/add", bytes.NewBufferString(body)))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
			assert.Contains(t, w.Body.String(), tt.wantText)
		})
	}
}

func TestCartHandlerAddMissingProductID(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Username: "alice"}
	cartService := new(MockCartService)
	router := setupCartRouter(user, cartService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cart/add", bytes.NewBufferString(`{"quantity":2}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	cartService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartHandlerUpdate(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Username: "alice"}
	productID := primitive.NewObjectID()

	cart := emptyHydratedCart(user.ID)

	cartService := new(MockCartService)
	cartService.On("UpdateQuantity", mock.Anything, user.ID, productID, 3).Return(cart, nil)

	router := setupCartRouter(user, cartService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/cart/update/"+productID.Hex(), bytes.NewBufferString(`{"quantity":3}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cart updated successfully")
}

func TestCartHandlerUpdateErrors(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Username: "alice"}
	productID := primitive.NewObjectID()

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantText   string
	}{
		{"no cart", models.ErrCartNotFound, http.StatusNotFound, "Cart not found"},
		{"line not in cart", models.ErrItemNotFound, http.StatusNotFound, "Product not found in cart"},
		{"invalid quantity", models.ErrInvalidQuantity, http.StatusBadRequest, "Quantity must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartService := new(MockCartService)
			cartService.On("UpdateQuantity", mock.Anything, user.ID, productID, 3).Return(nil, tt.serviceErr)

			router := setupCartRouter(user, cartService)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/cart/update/"+productID.Hex(), bytes.NewBufferString(`{"quantity":3}`))
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantText)
		})
	}
}

func TestCartHandlerRemove(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Username: "alice"}
	productID := primitive.NewObjectID()

	cartService := new(MockCartService)
	cartService.On("RemoveItem", mock.Anything, user.ID, productID).Return(emptyHydratedCart(user.ID), nil)

	router := setupCartRouter(user, cartService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/cart/remove/"+productID.Hex(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Product removed from cart successfully")
}

func TestCartHandlerClear(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Username: "alice"}

	cartService := new(MockCartService)
	cartService.On("Clear", mock.Anything, user.ID).Return(nil)

	router := setupCartRouter(user, cartService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/cart/clear", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cart cleared successfully")
	// Clear returns no cart payload, just the success envelope.
	assert.NotContains(t, w.Body.String(), `"cart"`)
}
