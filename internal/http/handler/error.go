package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"filesmanager/internal/http/middleware"
	"filesmanager/internal/service"
)

const (
	msgUnauthorized   = "Unauthorized"
	msgNotFound       = "Not found"
	msgFolderNoData   = "A folder doesn't have content"
	msgInvalidBody    = "Invalid request body"
	msgInvalidData    = "Invalid data"
	msgInternal       = "Internal server error"
	msgMethodNotAllow = "Method not allowed"
	msgUnavailable    = "Service unavailable"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// writeError writes a standardized JSON error response. message must be
// safe to show clients.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error:     message,
	})
}

// respondError maps a service error to its status and wire message.
// Anything unrecognised is logged and reported as a 500.
func respondError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return writeError(c, fiber.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, msgNotFound)
	case errors.Is(err, service.ErrFolderHasNoContent):
		return writeError(c, fiber.StatusBadRequest, msgFolderNoData)
	case errors.As(err, &ve):
		return writeError(c, fiber.StatusBadRequest, ve.Message)
	}

	zap.L().Error("request failed",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return writeError(c, fiber.StatusInternalServerError, msgInternal)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, msgInvalidBody)
		case fiber.StatusNotFound:
			return writeError(c, status, msgNotFound)
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, msgMethodNotAllow)
		default:
			return writeError(c, status, msgInternal)
		}
	}
}
