package serverutils

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps typed service errors to HTTP statuses.
// Internal detail is only surfaced outside production.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(400, validationErr.Message))
		}

		var authErr *AuthenticationError
		if errors.As(err, &authErr) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, authErr.Message))
		}

		var configErr *ConfigurationError
		if errors.As(err, &configErr) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, configErr.Message))
		}

		var upstreamErr *UpstreamGenerationError
		if errors.As(err, &upstreamErr) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, upstreamErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		message := "Internal server error"
		if os.Getenv("GO_ENV") != "production" {
			message = err.Error()
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, message))
	}
}
