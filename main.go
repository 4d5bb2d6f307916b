// @title Velora Storefront API
// @version 1.0
// @description REST API for the Velora fashion storefront: catalog, cart, wishlist and checkout.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Velora-Fashion/velora-storefront-backend/config"
	_ "github.com/Velora-Fashion/velora-storefront-backend/docs"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/Velora-Fashion/velora-storefront-backend/routes"
)

func main() {
	_ = godotenv.Load()

	config.InitDB()
	defer config.CloseDB()
	config.ConnectRedis()

	if err := config.StoreGorm.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderLine{},
	); err != nil {
		log.Fatalf("❌ Auto-migration failed: %v", err)
	}
	log.Println("✅ Database schema up to date")

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	routes.SetupStorefrontRoutes(api)
	routes.SetupCMSRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	log.Printf("🚀 Velora storefront API listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
