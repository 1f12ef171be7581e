package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kofiasare/tourbay/internal/config"
	"github.com/kofiasare/tourbay/internal/helpers"
	"github.com/kofiasare/tourbay/internal/models"
	"github.com/kofiasare/tourbay/internal/services"
)

func CreateBooking(b *services.BookingService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		view, err := b.CreateBooking(c.Request.Context(), &input)
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(view, "Booking created successfully"))
	}
}

func GetAllBookings(b *services.BookingService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := b.GetAllBookings(c.Request.Context())
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(list, ""))
	}
}

func GetUserBookings(b *services.BookingService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := helpers.StringTrim(c.Param("userId"))
		if userID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("User ID is required"))
			return
		}

		list, err := b.GetUserBookings(c.Request.Context(), userID)
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(list, ""))
	}
}

func UpdateBookingStatus(b *services.BookingService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := helpers.StringTrim(c.Param("id"))
		if bookingID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Booking ID is required"))
			return
		}

		var reqBody struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		updated, err := b.UpdateBookingStatus(c.Request.Context(), bookingID, reqBody.Status)
		if err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"id":        updated.ID.Hex(),
			"status":    updated.Status,
			"updatedAt": updated.UpdatedAt,
		}, "Booking status updated"))
	}
}

func DeleteBooking(b *services.BookingService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := helpers.StringTrim(c.Param("id"))
		if bookingID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Booking ID is required"))
			return
		}

		if err := b.DeleteBooking(c.Request.Context(), bookingID); err != nil {
			respondError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Booking deleted successfully"))
	}
}
