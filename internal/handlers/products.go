package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harshittt-21/shopneticc/internal/models"
	"github.com/harshittt-21/shopneticc/internal/services"
)

// ProductHandler handles catalog requests. Reads are public, writes are
// admin-gated by the router.
type ProductHandler struct {
	productService services.ProductServiceInterface
	logger         zerolog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService services.ProductServiceInterface, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list products")
		failWithError(c, http.StatusInternalServerError, "Error fetching products", err)
		return
	}

	ok(c, http.StatusOK, gin.H{
		"count":    len(products),
		"products": products,
	})
}

// Get handles GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			fail(c, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error().Err(err).Msg("failed to get product")
		failWithError(c, http.StatusInternalServerError, "Error fetching product", err)
		return
	}

	ok(c, http.StatusOK, gin.H{"product": product})
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req models.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("failed to create product")
		failWithError(c, http.StatusInternalServerError, "Error creating product", err)
		return
	}

	ok(c, http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	var req models.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrProductNotFound):
			fail(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, models.ErrInvalidInput):
			fail(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to update product")
			failWithError(c, http.StatusInternalServerError, "Error updating product", err)
		}
		return
	}

	ok(c, http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			fail(c, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error().Err(err).Msg("failed to delete product")
		failWithError(c, http.StatusInternalServerError, "Error deleting product", err)
		return
	}

	ok(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
