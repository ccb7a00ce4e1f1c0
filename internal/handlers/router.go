package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harshittt-21/shopneticc/internal/middleware"
)

// Router bundles everything needed to build the HTTP surface.
type Router struct {
	Auth     *AuthHandler
	Products *ProductHandler
	Cart     *CartHandler
	AuthMW   *middleware.AuthMiddleware
	Logger   zerolog.Logger
}

// Build assembles the gin engine with all routes and middleware.
func (r *Router) Build() *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestLogger(r.Logger),
		middleware.Recovery(r.Logger),
		cors.Default(),
	)

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ShopNetic API is working!"})
	})

	api := engine.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", r.Auth.Register)
		auth.POST("/login", r.Auth.Login)
		auth.GET("/me", r.AuthMW.RequireUser(), r.Auth.Me)
	}

	products := api.Group("/products")
	{
		products.GET("", r.Products.List)
		products.GET("/:id", r.Products.Get)

		admin := products.Group("", r.AuthMW.RequireUser(), r.AuthMW.RequireAdmin())
		{
			admin.POST("", r.Products.Create)
			admin.PUT("/:id", r.Products.Update)
			admin.DELETE("/:id", r.Products.Delete)
		}
	}

	cart := api.Group("/cart", r.AuthMW.RequireUser())
	{
		cart.GET("", r.Cart.Get)
		cart.POST("/add", r.Cart.Add)
		cart.PUT("/update/:productId", r.Cart.Update)
		cart.DELETE("/remove/:productId", r.Cart.Remove)
		cart.DELETE("/clear", r.Cart.Clear)
	}

	return engine
}
