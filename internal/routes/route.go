package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kofiasare/tourbay/internal/container"
	"github.com/kofiasare/tourbay/internal/handlers"
	"github.com/kofiasare/tourbay/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(appContainer *container.Container) *gin.Engine {
	if appContainer.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(appContainer.Logger))
	r.Use(middleware.ErrorHandler(appContainer.Logger))
	r.Use(gin.Recovery())

	cfg := appContainer.Config

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "tourbay-api",
			})
		})

		// Catalog reads are public
		v1.GET("/tours", handlers.ListTours(appContainer.TourService, cfg))
		v1.GET("/tours/:tourId", handlers.GetTour(appContainer.TourService, cfg))
		v1.GET("/tours/:tourId/ratings", handlers.GetTourRatings(appContainer.RatingService, cfg))
		v1.GET("/tours/:tourId/rating/:userId", handlers.GetUserRating(appContainer.RatingService, cfg))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret, appContainer.Logger))

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.POST("", handlers.CreateBooking(appContainer.BookingService, cfg))
		bookingRoutes.GET("", handlers.GetAllBookings(appContainer.BookingService, cfg))
		bookingRoutes.GET("/user/:userId", handlers.GetUserBookings(appContainer.BookingService, cfg))
		bookingRoutes.PUT("/:id", handlers.UpdateBookingStatus(appContainer.BookingService, cfg))
		bookingRoutes.DELETE("/:id", handlers.DeleteBooking(appContainer.BookingService, cfg))
	}

	savedRoutes := protected.Group("/saved")
	{
		savedRoutes.POST("", handlers.SaveTour(appContainer.SavedService, cfg))
		savedRoutes.GET("/:userId", handlers.GetSavedTours(appContainer.SavedService, cfg))
		savedRoutes.DELETE("/:userId/:tourId", handlers.RemoveSavedTour(appContainer.SavedService, cfg))
	}

	// Rating submission and catalog management require a signed-in caller
	protected.POST("/tours/:tourId/rate", handlers.RateTour(appContainer.RatingService, cfg))
	protected.POST("/tours", handlers.CreateTour(appContainer.TourService, cfg))
	protected.PUT("/tours/:tourId", handlers.UpdateTour(appContainer.TourService, cfg))
	protected.DELETE("/tours/:tourId", handlers.DeleteTour(appContainer.TourService, cfg))

	return r
}
