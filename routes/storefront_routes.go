package routes

import (
	"time"

	"github.com/Velora-Fashion/velora-storefront-backend/controllers/storefront/cart_controller"
	"github.com/Velora-Fashion/velora-storefront-backend/controllers/storefront/filter_controller"
	"github.com/Velora-Fashion/velora-storefront-backend/controllers/storefront/order_controller"
	"github.com/Velora-Fashion/velora-storefront-backend/controllers/storefront/product_controller"
	"github.com/Velora-Fashion/velora-storefront-backend/controllers/storefront/wishlist_controller"
	"github.com/Velora-Fashion/velora-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth; sessions are anonymous tokens)
	store := router.Group("/store")
	store.Use(middleware.RateLimiter(120, time.Minute))

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", product_controller.ListProducts)         // List with filters
		products.GET("/:id", product_controller.GetProductByID)   // Single product
	}

	// Section views (mens | womens | sale)
	store.GET("/sections/:section/products", product_controller.SectionProducts)

	// Filter rail metadata
	store.GET("/filters", filter_controller.GetFilterMetadata)

	// Cart routes
	cart := store.Group("/cart")
	{
		cart.GET("/:session_id", cart_controller.GetCart)
		cart.POST("", cart_controller.AddToCart)
		cart.PUT("/:item_id", cart_controller.UpdateCartItem)
		cart.DELETE("/:item_id", cart_controller.RemoveCartItem)
		cart.DELETE("/session/:session_id", cart_controller.ClearCart)
	}

	// Wishlist routes
	wishlist := store.Group("/wishlist")
	{
		wishlist.GET("/:session_id", wishlist_controller.GetWishlist)
		wishlist.POST("", wishlist_controller.AddToWishlist)
		wishlist.POST("/toggle", wishlist_controller.ToggleWishlist)
		wishlist.DELETE("/:session_id/:product_id", wishlist_controller.RemoveFromWishlist)
	}

	// Order routes
	orders := store.Group("/orders")
	{
		orders.POST("", order_controller.CreateOrder)
		orders.GET("/:session_id", order_controller.GetOrders)
		orders.GET("/:session_id/:order_id", order_controller.GetOrderDetails)
		orders.GET("/:session_id/:order_id/invoice", order_controller.DownloadInvoice)
	}
}
