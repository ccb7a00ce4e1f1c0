package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harshittt-21/shopneticc/internal/models"
)

// ProductService handles catalog business logic
type ProductService struct {
	productRepo ProductRepositoryInterface
}

// NewProductService creates a new product service
func NewProductService(productRepo ProductRepositoryInterface) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns all products, newest first.
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.List(ctx)
}

// Get returns a single product by ID.
func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// Create validates and stores a new product.
func (s *ProductService) Create(ctx context.Context, req *models.ProductCreateRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
		Category:    req.Category,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update applies a partial update and returns the updated product.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, req *models.ProductUpdateRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}

	return s.productRepo.Update(ctx, id, updates)
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.productRepo.Delete(ctx, id)
}
