package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harshittt-21/shopneticc/internal/middleware"
	"github.com/harshittt-21/shopneticc/internal/models"
	"github.com/harshittt-21/shopneticc/internal/services"
)

// CartHandler handles shopping cart requests. Every route is gated by
// the auth middleware, so a user is always present in the context.
type CartHandler struct {
	cartService services.CartServiceInterface
	logger      zerolog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService services.CartServiceInterface, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// addItemRequest is the body of POST /api/cart/add. Quantity defaults
// to 1 when omitted.
type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

// updateQuantityRequest is the body of PUT /api/cart/update/:productId.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	user := middleware.GetUser(c)

	cart, err := h.cartService.GetOrCreate(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch cart")
		failWithError(c, http.StatusInternalServerError, "Error fetching cart", err)
		return
	}

	ok(c, http.StatusOK, gin.H{"cart": cart})
}

// Add handles POST /api/cart/add
func (h *CartHandler) Add(c *gin.Context) {
	user := middleware.GetUser(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "productId is required")
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), user.ID, productID, quantity)
	if err != nil {
		h.respondCartError(c, err, "Error adding product to cart")
		return
	}

	ok(c, http.StatusOK, gin.H{
		"message": "Product added to cart successfully",
		"cart":    cart,
	})
}

// Update handles PUT /api/cart/update/:productId
func (h *CartHandler) Update(c *gin.Context) {
	user := middleware.GetUser(c)

	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		fail(c, http.StatusNotFound, "Product not found in cart")
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), user.ID, productID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err, "Error updating cart")
		return
	}

	ok(c, http.StatusOK, gin.H{
		"message": "Cart updated successfully",
		"cart":    cart,
	})
}

// Remove handles DELETE /api/cart/remove/:productId
func (h *CartHandler) Remove(c *gin.Context) {
	user := middleware.GetUser(c)

	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		fail(c, http.StatusNotFound, "Product not found in cart")
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), user.ID, productID)
	if err != nil {
		h.respondCartError(c, err, "Error removing product from cart")
		return
	}

	ok(c, http.StatusOK, gin.H{
		"message": "Product removed from cart successfully",
		"cart":    cart,
	})
}

// Clear handles DELETE /api/cart/clear
func (h *CartHandler) Clear(c *gin.Context) {
	user := middleware.GetUser(c)

	if err := h.cartService.Clear(c.Request.Context(), user.ID); err != nil {
		h.logger.Error().Err(err).Msg("failed to clear cart")
		failWithError(c, http.StatusInternalServerError, "Error clearing cart", err)
		return
	}

	ok(c, http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}

// respondCartError maps cart service errors onto the status codes of
// the API: 400 for bad input and stock shortfalls, 404 for missing
// product, cart or line, 500 otherwise.
func (h *CartHandler) respondCartError(c *gin.Context, err error, internalMessage string) {
	switch {
	case errors.Is(err, models.ErrInvalidQuantity):
		fail(c, http.StatusBadRequest, "Quantity must be at least 1")
	case errors.Is(err, models.ErrInsufficientStock):
		fail(c, http.StatusBadRequest, "Insufficient stock available")
	case errors.Is(err, models.ErrProductNotFound):
		fail(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, models.ErrCartNotFound):
		fail(c, http.StatusNotFound, "Cart not found")
	case errors.Is(err, models.ErrItemNotFound):
		fail(c, http.StatusNotFound, "Product not found in cart")
	default:
		h.logger.Error().Err(err).Msg("cart operation failed")
		failWithError(c, http.StatusInternalServerError, internalMessage, err)
	}
}
