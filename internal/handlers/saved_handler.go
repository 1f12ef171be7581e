package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kofiasare/tourbay/internal/config"
	"github.com/kofiasare/tourbay/internal/models"
	"github.com/kofiasare/tourbay/internal/services"
)

func SaveTour(s *services.SavedTourService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			UserID string `json:"userId"`
			TourID string `json:"tourId"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		view, err := s.SaveTour(c.Request.Context(), reqBody.UserID, reqBody.TourID)
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(view, "Tour saved successfully"))
	}
}

func RemoveSavedTour(s *services.SavedTourService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.RemoveSavedTour(c.Request.Context(), c.Param("userId"), c.Param("tourId")); err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Saved tour removed"))
	}
}

func GetSavedTours(s *services.SavedTourService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := s.GetSavedTours(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(views, ""))
	}
}
