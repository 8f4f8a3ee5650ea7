package routes

import (
	"net/http"
	"time"

	"storefront-service/controllers"
	"storefront-service/middleware"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// Controllers bundles the per-resource controllers registered on the router.
type Controllers struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Product  *controllers.ProductController
	Review   *controllers.ReviewController
	Order    *controllers.OrderController
	Wishlist *controllers.WishlistController
}

// Register wires all routes. Protected routes sit behind the bearer-token
// auth middleware; product listing and the health check stay public.
func Register(router *gin.Engine, ctrl Controllers, identity services.IdentityProvider) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	auth := router.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware())
	{
		auth.POST("/signup", ctrl.Auth.Signup)
		auth.POST("/login", ctrl.Auth.Login)
	}

	router.GET("/products", ctrl.Product.ListProducts)
	router.GET("/products/:id", ctrl.Product.GetProduct)
	router.POST("/admin/seed", ctrl.Product.SeedCatalog)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(identity))
	{
		protected.GET("/user/profile", ctrl.User.GetProfile)
		protected.PUT("/user/profile", ctrl.User.UpdateProfile)

		protected.POST("/products/:id/reviews", ctrl.Review.AddReview)

		protected.POST("/orders", ctrl.Order.CreateOrder)
		protected.GET("/orders/:id", ctrl.Order.GetOrder)
		protected.PUT("/orders/:id/status", ctrl.Order.UpdateOrderStatus)
		protected.GET("/user/orders", ctrl.Order.ListOrders)

		protected.GET("/user/wishlist", ctrl.Wishlist.ListWishlist)
		protected.POST("/user/wishlist/:productId", ctrl.Wishlist.AddToWishlist)
		protected.DELETE("/user/wishlist/:productId", ctrl.Wishlist.RemoveFromWishlist)
	}
}
