package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"onemore-backend/internal/pkg/apperror"
	"onemore-backend/internal/pkg/logger"
)

// NewErrorHandler returns the app-wide fiber error handler. Service
// failures carry their own status and code; anything else is reported as
// INTERNAL_SERVER_ERROR with only the message string exposed.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return Fail(ctx, appErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if fiberErr.Code == fiber.StatusNotFound {
				return Fail(ctx, apperror.NotFound("Route not found: "+ctx.Method()+" "+ctx.Path()))
			}
			return Fail(ctx, apperror.New(fiberErr.Code, "INTERNAL_SERVER_ERROR", fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return Fail(ctx, apperror.Internal(err.Error()))
	}
}
