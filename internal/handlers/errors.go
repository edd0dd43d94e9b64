package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const invalidJSONMessage = "Invalid JSON payload"

// bindErrorMessage turns a binding failure into the 400 message: a field message
// for schema violations, otherwise the generic invalid payload message.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		if fe.Param() != "" {
			return fmt.Sprintf("field '%s' failed validation '%s=%s'", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("field '%s' failed validation '%s'", field, fe.Tag())
	}
	return invalidJSONMessage
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: message})
}

// respondError maps service errors onto the HTTP error taxonomy. Storage and
// unexpected failures are logged and answered with a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var vErr *portssvc.ValidationFailedError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &vErr):
		logger.Info("Validation failed", slog.String("action", action), slog.Any("errors", vErr.Messages()))
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationFailedResponse{Success: false, Errors: vErr.Messages()})
	case errors.Is(err, apperrors.ErrInvalidInput):
		msg := err.Error()
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
		logger.Warn("Invalid input", slog.String("action", action), slog.String("error", err.Error()))
		badRequest(c, msg)
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("action", action))
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Success: false, Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Success: false, Error: "Not found"})
	case errors.Is(err, apperrors.ErrConflict):
		msg := "Conflict"
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
		logger.Warn("Conflict", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Success: false, Error: msg})
	default:
		logger.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: "Failed to " + action})
	}
}
