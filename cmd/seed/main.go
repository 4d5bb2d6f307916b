package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the sample catalog.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VELORA STOREFRONT - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.StoreGorm.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderLine{},
	); err != nil {
		log.Fatalf("Auto-migration failed: %v", err)
	}

	var existing int64
	if err := config.StoreGorm.Model(&models.Product{}).Count(&existing).Error; err != nil {
		log.Fatalf("Database error: %v", err)
	}
	if existing > 0 {
		fmt.Printf("Catalog already has %d products, nothing to do\n", existing)
		return
	}

	products := sampleProducts()
	if err := config.StoreGorm.Create(&products).Error; err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	fmt.Printf("✓ Seeded %d sample products\n", len(products))
}

func sampleProducts() []models.Product {
	now := time.Now().UTC()
	return []models.Product{
		{
			Name:          "Classic White Shirt",
			Description:   "Elegant white cotton shirt perfect for formal occasions and office wear",
			Category:      models.CategoryFormalWear,
			BrandName:     "Velora Atelier",
			Price:         79.99,
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"White", "Light Blue"},
			Images:        []string{"https://images.unsplash.com/photo-1532453288672-3a27e9be9efd"},
			StockQuantity: 50,
			Featured:      true,
			AverageRating: 4.6,
		},
		{
			Name:               "Elegant Maroon Dress",
			Description:        "Stunning maroon dress perfect for evening events and special occasions",
			Category:           models.CategoryWomensDresses,
			BrandName:          "Maison Lune",
			Price:              129.99,
			DiscountPercentage: 20,
			Sizes:              []string{"XS", "S", "M", "L"},
			Colors:             []string{"Maroon", "Black", "Navy"},
			Images:             []string{"https://images.unsplash.com/photo-1568252542512-9fe8fe9c87bb"},
			StockQuantity:      30,
			Featured:           true,
			AverageRating:      4.8,
		},
		{
			Name:               "Casual Yellow Tracksuit",
			Description:        "Comfortable yellow tracksuit ideal for casual outings and sports activities",
			Category:           models.CategorySportswear,
			BrandName:          "Northloop",
			Price:              89.99,
			DiscountPercentage: 40,
			Sizes:              []string{"S", "M", "L", "XL"},
			Colors:             []string{"Yellow", "Gray", "Black"},
			Images:             []string{"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f"},
			StockQuantity:      40,
			AverageRating:      4.1,
		},
		{
			Name:          "Designer Denim Jeans",
			Description:   "Premium quality denim jeans with perfect fit and modern styling",
			Category:      models.CategoryMensPants,
			BrandName:     "Forge & Thread",
			Price:         99.99,
			Sizes:         []string{"M", "L", "XL", "XXL"},
			Colors:        []string{"Blue", "Black", "Gray"},
			Images:        []string{"https://images.unsplash.com/photo-1441984904996-e0b6ba687e04"},
			StockQuantity: 60,
			Featured:      true,
			AverageRating: 4.4,
		},
		{
			Name:               "Stylish Summer Top",
			Description:        "Light and breathable summer top perfect for warm weather",
			Category:           models.CategoryWomensTops,
			BrandName:          "Maison Lune",
			Price:              49.99,
			DiscountPercentage: 55,
			Sizes:              []string{"XS", "S", "M", "L"},
			Colors:             []string{"Pink", "White", "Mint Green"},
			Images:             []string{"https://images.unsplash.com/photo-1445205170230-053b83016050"},
			StockQuantity:      35,
			AverageRating:      4.0,
			CreatedAt:          now.AddDate(0, 0, -7),
		},
		{
			Name:          "Professional Blazer",
			Description:   "Sharp and sophisticated blazer for business meetings and formal events",
			Category:      models.CategoryFormalWear,
			BrandName:     "Velora Atelier",
			Price:         159.99,
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Black", "Navy", "Charcoal"},
			Images:        []string{"https://images.unsplash.com/photo-1562572159-4efc207f5aff"},
			StockQuantity: 25,
			Featured:      true,
			AverageRating: 4.7,
		},
		{
			Name:          "Everyday Oxford Shirt",
			Description:   "Breathable oxford weave shirt that works from desk to dinner",
			Category:      models.CategoryMensShirts,
			BrandName:     "Forge & Thread",
			Price:         64.99,
			Sizes:         []string{"S", "M", "L"},
			Colors:        []string{"White", "Sky Blue"},
			Images:        []string{"https://images.unsplash.com/photo-1598033129183-c4f50c736f10"},
			StockQuantity: 45,
			AverageRating: 4.3,
			CreatedAt:     now.AddDate(0, 0, -3),
		},
		{
			Name:               "Weekend Linen Set",
			Description:        "Relaxed two-piece linen set for easy casual wear",
			Category:           models.CategoryCasualWear,
			BrandName:          "Northloop",
			Price:              119.99,
			DiscountPercentage: 30,
			Sizes:              []string{"M", "L", "XL"},
			Colors:             []string{"Sand", "Olive"},
			Images:             []string{"https://images.unsplash.com/photo-1529139574466-a303027c1d8b"},
			StockQuantity:      20,
			AverageRating:      4.2,
		},
	}
}
