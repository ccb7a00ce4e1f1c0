package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harshittt-21/shopneticc/internal/database"
	"github.com/harshittt-21/shopneticc/internal/models"
)

// CartRepository handles cart data operations. Each user owns at most
// one cart document, enforced by a unique index on userId.
type CartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *database.DB) *CartRepository {
	return &CartRepository{collection: db.Collection(database.CartsCollection)}
}

// GetByUserID retrieves a user's cart, or models.ErrCartNotFound.
func (r *CartRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	cart := &models.Cart{}
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return cart, nil
}

// Save writes the whole cart document in one replace, inserting it if
// the user has no cart yet. Lines and total land together, so a reader
// never observes a total inconsistent with the lines.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"userId": cart.UserID}, cart, opts)
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Clear empties the user's cart in place. Clearing a nonexistent cart
// is a no-op.
func (r *CartRepository) Clear(ctx context.Context, userID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"products":  []models.CartItem{},
		"total":     0.0,
		"updatedAt": time.Now().UTC(),
	}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
