package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"oguso-digital-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into
// the JSON envelope. AppError carries its own status; anything else is
// treated as an internal failure and the cause stays in the logs.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= 500 {
				log.Error("http", "request failed", map[string]interface{}{
					"path":   ctx.Path(),
					"method": ctx.Method(),
					"error":  appErr.Error(),
				})
			}
			return ErrorResponse(ctx, appErr.Code, appErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ErrorResponse(ctx, fiberErr.Code, fiberErr.Message)
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})
		return ErrorResponse(ctx, fiber.StatusInternalServerError, "internal server error")
	}
}
