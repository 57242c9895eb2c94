package controllers

import (
	"errors"
	"net/http"

	"admin-service/apperrors"
	"admin-service/logger"
	"admin-service/repository"
	"admin-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError maps service errors onto the dashboard's notice
// taxonomy and attaches them to the context; the apperrors middleware
// renders them. Missing document, bad input, refused destructive
// action, or a store call that failed in transit. Every outcome is
// terminal for the triggering action.
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.Error(apperrors.NotFound(notFoundMsg, err))
	case errors.Is(err, services.ErrInvalidID):
		c.Error(apperrors.New(http.StatusBadRequest, "Invalid UUID format", err))
	case errors.Is(err, services.ErrCategoryHasProducts),
		errors.Is(err, services.ErrDuplicateCategory):
		logger.Warn(c.Request.Context(), "Refused write", zap.String("reason", err.Error()))
		c.Error(apperrors.Constraint(err.Error()))
	default:
		logger.Error(c.Request.Context(), "Service error", err)
		c.Error(apperrors.Transport("Store request failed", err))
	}
}
