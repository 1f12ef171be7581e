package container

import (
	"log/slog"

	"github.com/kofiasare/tourbay/internal/config"
	"github.com/kofiasare/tourbay/internal/models"
	"github.com/kofiasare/tourbay/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client

	TourService    *services.TourService
	BookingService *services.BookingService
	RatingService  *services.RatingService
	SavedService   *services.SavedTourService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	tourService := services.NewTourService(repo)
	bookingService := services.NewBookingService(repo, repo, repo)
	ratingService := services.NewRatingService(repo, repo)
	savedService := services.NewSavedTourService(repo, repo)

	return &Container{
		Logger:         logger,
		Config:         cfg,
		MongoDBClient:  mongoDBClient,
		TourService:    tourService,
		BookingService: bookingService,
		RatingService:  ratingService,
		SavedService:   savedService,
	}
}
