package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harshittt-21/shopneticc/internal/models"
	"github.com/harshittt-21/shopneticc/internal/services"
)

const userContextKey = "user"

// AuthMiddleware resolves bearer tokens into users and gates routes on
// the role policy.
type AuthMiddleware struct {
	authService services.AuthServiceInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authService services.AuthServiceInterface) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireUser aborts with 401 unless the request carries a valid bearer
// token for a known user. The resolved user is stored in the request
// context for downstream handlers.
func (m *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "No token provided, access denied",
			})
			return
		}

		user, err := m.authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token",
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireAdmin enforces the admin role on top of RequireUser. It must
// be registered after it in the chain.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if err := m.authService.RequireRole(user, models.RoleAdmin); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// GetUser retrieves the authenticated user from the request context, or
// nil when the request is unauthenticated.
func GetUser(c *gin.Context) *models.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SetUser stores the user in the request context (for testing).
func SetUser(c *gin.Context, user *models.User) {
	c.Set(userContextKey, user)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
