package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/controllers"
	"github.com/kalyani-jewellers/jewellers-api/middleware"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/services"
)

func main() {
	log.Println("Starting Kalyani Jewellers API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Migrate database models
	db := config.GetDB()
	if err := models.MigrateAll(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize image storage when a bucket is configured
	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitImageService(s3Service)
		log.Printf("Image storage enabled (bucket %s)", cfg.AWSS3Bucket)
	} else {
		log.Println("AWS_S3_BUCKET not set, image uploads disabled")
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.CORS(nil))

	registerRoutes(router)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// registerRoutes wires every API endpoint onto the router
func registerRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)

		v1.GET("/roles", controllers.ListRoles)
		v1.GET("/roles/:id", controllers.GetRole)
		v1.POST("/roles", controllers.CreateRole)
		v1.PUT("/roles/:id", controllers.UpdateRole)
		v1.DELETE("/roles/:id", controllers.DeleteRole)

		v1.GET("/branches", controllers.ListBranches)
		v1.GET("/branches/:id", controllers.GetBranch)
		v1.POST("/branches", controllers.CreateBranch)
		v1.PUT("/branches/:id", controllers.UpdateBranch)
		v1.DELETE("/branches/:id", controllers.DeleteBranch)

		v1.GET("/users", controllers.ListUsers)
		v1.GET("/users/:id", controllers.GetUser)
		v1.POST("/users", controllers.CreateUser)
		v1.PUT("/users/:id", controllers.UpdateUser)
		v1.DELETE("/users/:id", controllers.DeleteUser)

		v1.GET("/categories", controllers.ListCategories)
		v1.GET("/categories/:id", controllers.GetCategory)
		v1.POST("/categories", controllers.CreateCategory)
		v1.PUT("/categories/:id", controllers.UpdateCategory)
		v1.DELETE("/categories/:id", controllers.DeleteCategory)

		v1.GET("/metals", controllers.ListMetals)
		v1.GET("/metals/:id", controllers.GetMetal)
		v1.POST("/metals", controllers.CreateMetal)
		v1.PUT("/metals/:id", controllers.UpdateMetal)
		v1.DELETE("/metals/:id", controllers.DeleteMetal)

		v1.GET("/gems", controllers.ListGems)
		v1.GET("/gems/:id", controllers.GetGem)
		v1.POST("/gems", controllers.CreateGem)
		v1.PUT("/gems/:id", controllers.UpdateGem)
		v1.DELETE("/gems/:id", controllers.DeleteGem)

		v1.GET("/products", controllers.ListProducts)
		v1.GET("/products/:id", controllers.GetProduct)
		v1.POST("/products", controllers.CreateProduct)
		v1.PUT("/products/:id", controllers.UpdateProduct)
		v1.DELETE("/products/:id", controllers.DeleteProduct)

		v1.GET("/products/:id/images", controllers.ListProductImages)
		v1.POST("/products/:id/images", controllers.AddProductImage)
		v1.DELETE("/products/:id/images/:imageId", controllers.DeleteProductImage)

		v1.POST("/products/:id/gems/:gemId", controllers.AttachGem)
		v1.DELETE("/products/:id/gems/:gemId", controllers.DetachGem)
		v1.POST("/products/:id/offers/:offerId", controllers.AttachOffer)
		v1.DELETE("/products/:id/offers/:offerId", controllers.DetachOffer)

		v1.GET("/material-rates", controllers.ListMaterialRates)
		v1.GET("/material-rates/:id", controllers.GetMaterialRate)
		v1.POST("/material-rates", controllers.CreateMaterialRate)
		v1.PUT("/material-rates/:id", controllers.UpdateMaterialRate)
		v1.DELETE("/material-rates/:id", controllers.DeleteMaterialRate)

		v1.GET("/service-tickets", controllers.ListServiceTickets)
		v1.GET("/service-tickets/:id", controllers.GetServiceTicket)
		v1.POST("/service-tickets", controllers.CreateServiceTicket)
		v1.PUT("/service-tickets/:id", controllers.UpdateServiceTicket)
		v1.DELETE("/service-tickets/:id", controllers.DeleteServiceTicket)

		v1.GET("/custom-designs", controllers.ListCustomDesigns)
		v1.GET("/custom-designs/:id", controllers.GetCustomDesign)
		v1.POST("/custom-designs", controllers.CreateCustomDesign)
		v1.PUT("/custom-designs/:id", controllers.UpdateCustomDesign)
		v1.DELETE("/custom-designs/:id", controllers.DeleteCustomDesign)

		v1.GET("/reviews", controllers.ListReviews)
		v1.GET("/reviews/:id", controllers.GetReview)
		v1.POST("/reviews", controllers.CreateReview)
		v1.PUT("/reviews/:id", controllers.UpdateReview)
		v1.DELETE("/reviews/:id", controllers.DeleteReview)

		v1.GET("/offers", controllers.ListOffers)
		v1.GET("/offers/:id", controllers.GetOffer)
		v1.POST("/offers", controllers.CreateOffer)
		v1.PUT("/offers/:id", controllers.UpdateOffer)
		v1.DELETE("/offers/:id", controllers.DeleteOffer)

		v1.GET("/books", controllers.ListBooks)
		v1.GET("/books/:id", controllers.GetBook)
		v1.POST("/books", controllers.CreateBook)
		v1.PUT("/books/:id", controllers.UpdateBook)
		v1.DELETE("/books/:id", controllers.DeleteBook)

		v1.POST("/uploads", controllers.UploadImage)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Kalyani Jewellers API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
