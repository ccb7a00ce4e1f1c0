package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harshittt-21/shopneticc/internal/models"
)

// AuthServiceInterface defines the interface for authentication services
type AuthServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	RequireRole(user *models.User, requiredRole models.UserRole) error
}

// ProductServiceInterface defines the interface for catalog services
type ProductServiceInterface interface {
	List(ctx context.Context) ([]*models.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, req *models.ProductCreateRequest) (*models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.ProductUpdateRequest) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CartServiceInterface defines the interface for cart services
type CartServiceInterface interface {
	GetOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.HydratedCart, error)
	AddItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.HydratedCart, error)
	UpdateQuantity(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.HydratedCart, error)
	RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) (*models.HydratedCart, error)
	Clear(ctx context.Context, userID primitive.ObjectID) error
}

// UserRepositoryInterface defines the user data access the services need
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}

// ProductRepositoryInterface defines the product data access the services need
type ProductRepositoryInterface interface {
	List(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CartRepositoryInterface defines the cart data access the services need
type CartRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Clear(ctx context.Context, userID primitive.ObjectID) error
}
