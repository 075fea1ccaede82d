package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/berkcan/schedbuilder/internal/app/models/dto"
	"github.com/berkcan/schedbuilder/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Controllers
// funnel every service error through here so status codes and error codes
// stay consistent across endpoints.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	var details interface{}
	if errors.As(err, &custom) {
		message = custom.Message
		details = custom.Details
	}

	switch {
	case errors.Is(err, apperrors.ErrUnknownCourse):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnknownCourse, message).WithField("courses")
		if details != nil {
			errorDetail = errorDetail.WithDetails(details)
		}
		c.JSON(404, dto.NewErrorResponse(errorDetail))
	case errors.Is(err, apperrors.ErrCatalogueUnavailable):
		// The catalogue failed to load at startup or has never been
		// scraped; this is a service-level failure, not a bad request.
		c.JSON(503, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeCatalogueUnavailable, "Catalogue is not loaded"),
		))
	case errors.Is(err, apperrors.ErrMalformedCatalogue):
		c.JSON(502, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeMalformedCatalogue, message),
		))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message),
		))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		))
	default:
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
