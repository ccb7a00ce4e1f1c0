package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line of a cart. Price is the unit price captured from
// the catalog when the line was added or last set; merging more quantity
// into an existing line does not refresh it.
type CartItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Price     float64            `json:"price" bson:"price"`
}

// Cart holds one user's shopping cart. Total is derived from the lines
// and is recomputed before every persist so the stored document is
// always internally consistent.
type Cart struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Products  []CartItem         `json:"products" bson:"products"`
	Total     float64            `json:"total" bson:"total"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NewCart returns an empty cart for the given user.
func NewCart(userID primitive.ObjectID) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Products:  []CartItem{},
		Total:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FindItem returns the index of the line holding productID, or -1.
func (c *Cart) FindItem(productID primitive.ObjectID) int {
	for i := range c.Products {
		if c.Products[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Recalculate recomputes the cart total from its lines and bumps the
// update timestamp. Must be called after every line mutation.
func (c *Cart) Recalculate() {
	total := 0.0
	for _, item := range c.Products {
		total += item.Price * float64(item.Quantity)
	}
	c.Total = total
	c.UpdatedAt = time.Now().UTC()
}

// HydratedCartItem is a cart line joined with live product display
// fields for presentation. Product is nil when the referenced product
// no longer exists in the catalog.
type HydratedCartItem struct {
	Product  *ProductSummary `json:"product"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
}

// HydratedCart is the read-side shape of a cart returned to clients.
type HydratedCart struct {
	ID       primitive.ObjectID `json:"id"`
	UserID   primitive.ObjectID `json:"userId"`
	Products []HydratedCartItem `json:"products"`
	Total    float64            `json:"total"`
}
