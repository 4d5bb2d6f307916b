package routes

import (
	"time"

	"github.com/Velora-Fashion/velora-storefront-backend/controllers/cms/product_controller"
	"github.com/Velora-Fashion/velora-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCMSRoutes wires the admin catalog endpoints. There is no auth layer;
// deployments keep /cms off the public ingress.
func SetupCMSRoutes(router *gin.RouterGroup) {
	cms := router.Group("/cms")
	cms.Use(middleware.RateLimiter(60, time.Minute))

	products := cms.Group("/products")
	{
		products.GET("", product_controller.GetProducts)
		products.POST("", product_controller.CreateProduct)
		products.GET("/:id", product_controller.GetProductByID)
		products.PUT("/:id", product_controller.UpdateProduct)
		products.DELETE("/:id", product_controller.DeleteProduct)
	}
}
