package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewCart(t *testing.T) {
	userID := primitive.NewObjectID()
	cart := NewCart(userID)

	assert.False(t, cart.ID.IsZero())
	assert.Equal(t, userID, cart.UserID)
	assert.Empty(t, cart.Products)
	assert.Equal(t, 0.0, cart.Total)
}

func TestCartRecalculate(t *testing.T) {
	tests := []struct {
		name     string
		products []CartItem
		expected float64
	}{
		{
			name:     "empty cart",
			products: []CartItem{},
			expected: 0,
		},
		{
			name: "single line",
			products: []CartItem{
				{ProductID: primitive.NewObjectID(), Quantity: 2, Price: 10.00},
			},
			expected: 20.00,
		},
		{
			name: "multiple lines",
			products: []CartItem{
				{ProductID: primitive.NewObjectID(), Quantity: 3, Price: 10.00},
				{ProductID: primitive.NewObjectID(), Quantity: 1, Price: 5.50},
			},
			expected: 35.50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart(primitive.NewObjectID())
			cart.Products = tt.products
			cart.Total = -1 // stale value that must be overwritten

			cart.Recalculate()

			assert.Equal(t, tt.expected, cart.Total)
		})
	}
}

func TestCartFindItem(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	cart := NewCart(primitive.NewObjectID())
	cart.Products = []CartItem{
		{ProductID: first, Quantity: 1, Price: 1.00},
		{ProductID: second, Quantity: 2, Price: 2.00},
	}

	assert.Equal(t, 0, cart.FindItem(first))
	assert.Equal(t, 1, cart.FindItem(second))
	assert.Equal(t, -1, cart.FindItem(primitive.NewObjectID()))
}
