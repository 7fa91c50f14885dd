package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/campusgate/internal/app/models/dto"
	"github.com/okandemir/campusgate/internal/pkg/apperrors"
	"github.com/okandemir/campusgate/internal/pkg/upstream"
)

// HandleAPIError converts service errors into the standard error envelope.
// Backend request errors keep their upstream status and exact body text so
// the UI shows what the backend said, nothing reworded.
func HandleAPIError(c *gin.Context, err error) {
	var reqErr *upstream.RequestError
	if errors.As(err, &reqErr) {
		c.JSON(reqErr.Status, dto.NewErrorResponse(
			dto.NewErrorDetail(codeForStatus(reqErr.Status), reqErr.Message),
		))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrMissingGradeSelection):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()).
				WithRecovery("Select both a student and a module before submitting"),
		))
	case errors.Is(err, apperrors.ErrOperationNotRevertable):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		))
	case errors.Is(err, apperrors.ErrOperationNotFound), errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials").
				WithRecovery("Check your username and password"),
		))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		))
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUpstreamError, "Records backend timed out"),
		))
	default:
		// Transport-level failures (connection refused, DNS) land here
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUpstreamError, "Records backend unreachable"),
		))
	}
}

// codeForStatus picks the error code matching an upstream HTTP status
func codeForStatus(status int) dto.ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return dto.ErrorCodeUnauthorized
	case http.StatusForbidden:
		return dto.ErrorCodeForbidden
	case http.StatusNotFound:
		return dto.ErrorCodeResourceNotFound
	case http.StatusConflict:
		return dto.ErrorCodeResourceAlreadyExists
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return dto.ErrorCodeValidationFailed
	default:
		return dto.ErrorCodeUpstreamError
	}
}
