package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medingen-server/internal/config"
	"medingen-server/internal/handlers"
	"medingen-server/internal/middleware"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	medicineHandler := handlers.NewMedicineHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	faqHandler := handlers.NewFAQHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)

		public.GET("/medicines", medicineHandler.GetMedicines)
		public.GET("/medicines/:id", medicineHandler.GetMedicineByID)
		public.GET("/featured-medicine", medicineHandler.GetFeaturedMedicine)
		public.GET("/medicines/:id/alternatives", medicineHandler.GetAlternatives)
		public.GET("/medicines/:id/reviews", reviewHandler.GetReviews)
		public.GET("/medicines/:id/faqs", faqHandler.GetFAQs)
	}

	// Authenticated routes
	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		private.GET("/profile", authHandler.GetProfile)
		private.POST("/medicines/:id/reviews", reviewHandler.AddReview)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
}
