package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kofiasare/tourbay/internal/config"
	"github.com/kofiasare/tourbay/internal/helpers"
	"github.com/kofiasare/tourbay/internal/models"
	"github.com/kofiasare/tourbay/internal/services"
)

func adminClaims(c *gin.Context) (*helpers.AuthClaims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized"))
		return nil, false
	}
	claims, ok := userClaims.(*helpers.AuthClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Invalid user claims"))
		return nil, false
	}
	if !claims.IsAdmin() {
		c.JSON(http.StatusForbidden, models.ErrorResponse("Only admins can manage tours"))
		return nil, false
	}
	return claims, true
}

func CreateTour(t *services.TourService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := adminClaims(c); !ok {
			return
		}

		var tour models.Tour
		if err := c.ShouldBindJSON(&tour); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		created, err := t.CreateTour(c.Request.Context(), &tour)
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Tour created successfully"))
	}
}

func UpdateTour(t *services.TourService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := adminClaims(c); !ok {
			return
		}

		var tour models.Tour
		if err := c.ShouldBindJSON(&tour); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		updated, err := t.UpdateTour(c.Request.Context(), c.Param("tourId"), &tour)
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Tour updated successfully"))
	}
}

func GetTour(t *services.TourService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tour, err := t.GetTour(c.Request.Context(), c.Param("tourId"))
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(tour, ""))
	}
}

func ListTours(t *services.TourService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tours, err := t.ListTours(c.Request.Context(), c.Query("region"), c.Query("category"))
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(tours, ""))
	}
}

func DeleteTour(t *services.TourService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := adminClaims(c); !ok {
			return
		}

		if err := t.DeactivateTour(c.Request.Context(), c.Param("tourId")); err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Tour deactivated successfully"))
	}
}

func RateTour(r *services.RatingService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			UserID string `json:"userId"`
			Rating int    `json:"rating"`
			Review string `json:"review"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		result, err := r.RateTour(c.Request.Context(), c.Param("tourId"), reqBody.UserID, reqBody.Rating, reqBody.Review)
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(result, "Rating submitted successfully"))
	}
}

func GetTourRatings(r *services.RatingService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ratings, err := r.GetTourRatings(c.Request.Context(), c.Param("tourId"))
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(ratings, ""))
	}
}

func GetUserRating(r *services.RatingService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		rating, err := r.GetUserRating(c.Request.Context(), c.Param("tourId"), c.Param("userId"))
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		// A user without a rating is a normal empty result.
		c.JSON(http.StatusOK, models.SuccessResponse(rating, ""))
	}
}
