package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kofiasare/tourbay/internal/config"
	"github.com/kofiasare/tourbay/internal/models"
)

// respondError maps domain errors onto the response envelope. Unexpected
// errors become a 500 whose detail is exposed only outside production.
func respondError(c *gin.Context, cfg *config.Config, err error) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError
	var duplicateErr *models.DuplicateError
	var malformedErr *models.MalformedIDError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.ErrorListResponse("Validation failed", validationErr.Violations))
	case errors.As(err, &malformedErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(malformedErr.Error()))
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(duplicateErr.Error()))
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, models.ErrorResponse(notFoundErr.Error()))
	default:
		_ = c.Error(err)
		msg := "Internal server error"
		if !cfg.IsProduction() {
			msg = err.Error()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(msg))
	}
}
