package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harshittt-21/shopneticc/internal/models"
)

// CartService owns one cart per user and keeps the stored total
// consistent with the lines across every mutation. Stock is checked
// against the catalog but never reserved, so concurrent adds by
// different users can jointly oversell a product.
type CartService struct {
	cartRepo    CartRepositoryInterface
	productRepo ProductRepositoryInterface
}

// NewCartService creates a new cart service
func NewCartService(cartRepo CartRepositoryInterface, productRepo ProductRepositoryInterface) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetOrCreate returns the user's cart, lazily creating and persisting
// an empty one on first access.
func (s *CartService) GetOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.HydratedCart, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, models.ErrCartNotFound) {
			return nil, err
		}
		cart = models.NewCart(userID)
		if err := s.cartRepo.Save(ctx, cart); err != nil {
			return nil, err
		}
	}
	return s.hydrate(ctx, cart)
}

// AddItem puts quantity units of a product into the cart. If the cart
// already holds a line for the product the quantities are merged and
// the line keeps the unit price captured when it was first added; a new
// line snapshots the current catalog price. Stock is checked against
// the requested quantity only, not the merged line total.
func (s *CartService) AddItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.HydratedCart, error) {
	if quantity < 1 {
		return nil, models.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, models.ErrInsufficientStock
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, models.ErrCartNotFound) {
			return nil, err
		}
		cart = models.NewCart(userID)
	}

	if i := cart.FindItem(productID); i >= 0 {
		cart.Products[i].Quantity += quantity
	} else {
		cart.Products = append(cart.Products, models.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}

	cart.Recalculate()
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.hydrate(ctx, cart)
}

// UpdateQuantity sets a line's quantity to the given value exactly.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.HydratedCart, error) {
	if quantity < 1 {
		return nil, models.ErrInvalidQuantity
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := cart.FindItem(productID)
	if i < 0 {
		return nil, models.ErrItemNotFound
	}
	cart.Products[i].Quantity = quantity

	cart.Recalculate()
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.hydrate(ctx, cart)
}

// RemoveItem drops the line holding the product. Removing a product
// that is not in the cart succeeds and leaves the cart unchanged.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) (*models.HydratedCart, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if i := cart.FindItem(productID); i >= 0 {
		cart.Products = append(cart.Products[:i], cart.Products[i+1:]...)
	}

	cart.Recalculate()
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.hydrate(ctx, cart)
}

// Clear empties the user's cart. Clearing a nonexistent cart is a
// no-op that still succeeds.
func (s *CartService) Clear(ctx context.Context, userID primitive.ObjectID) error {
	return s.cartRepo.Clear(ctx, userID)
}

// hydrate joins cart lines with live product display fields for the
// response. Lines whose product has since been deleted keep their
// quantity and snapshot price with a nil product.
func (s *CartService) hydrate(ctx context.Context, cart *models.Cart) (*models.HydratedCart, error) {
	ids := make([]primitive.ObjectID, 0, len(cart.Products))
	for _, item := range cart.Products {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	hydrated := &models.HydratedCart{
		ID:       cart.ID,
		UserID:   cart.UserID,
		Products: make([]models.HydratedCartItem, 0, len(cart.Products)),
		Total:    cart.Total,
	}
	for _, item := range cart.Products {
		view := models.HydratedCartItem{
			Quantity: item.Quantity,
			Price:    item.Price,
		}
		if p, ok := byID[item.ProductID]; ok {
			summary := p.Summary()
			view.Product = &summary
		}
		hydrated.Products = append(hydrated.Products, view)
	}
	return hydrated, nil
}
