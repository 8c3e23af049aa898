// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"crypto/subtle"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/pkg/logger"
)

// Константы для логирования.
const (
	LogAPIKeyMiddleware = "api key middleware"

	ErrorNoAPIKeyConfigured = "API is not secured with key"
	ErrorInvalidAPIKey      = "Invalid API key"
)

// NewAPIKeyMiddleware создает промежуточное ПО для статической проверки
// ключа API. Ключ передается в заголовке X-Api-Key или в query-параметре
// api_key. Отсутствие настроенного ключа означает, что сервис развернут
// без защиты, и запрос отклоняется как ошибка сервера.
func NewAPIKeyMiddleware(apiKey string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "apikey"))
		log.Debug(requestCtx, LogAPIKeyMiddleware)

		if apiKey == "" {
			log.Error(requestCtx, "api key is not configured")
			if err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": ErrorNoAPIKeyConfigured,
			}); err != nil {
				return fmt.Errorf("failed to send server error response: %w", err)
			}
			return nil
		}

		key := ctx.Get("X-Api-Key")
		if key == "" {
			key = ctx.Query("api_key")
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			log.Warn(requestCtx, "invalid api key")
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidAPIKey,
			}); err != nil {
				return fmt.Errorf("failed to send unauthorized response: %w", err)
			}
			return nil
		}

		return ctx.Next()
	}
}
