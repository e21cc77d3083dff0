// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"petfit/pkg/logger"
)

// AccessTokenKey - ключ Locals, под которым хранится токен доступа.
const AccessTokenKey = "accessToken"

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
)

// bearerPrefix - префикс схемы Bearer в заголовке Authorization.
const bearerPrefix = "Bearer "

// NewAuthMiddleware создает промежуточное ПО, извлекающее bearer-токен
// из заголовка Authorization. Проверка токена выполняется сценарием.
func NewAuthMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			})
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		ctx.Locals(AccessTokenKey, strings.TrimPrefix(authHeader, bearerPrefix))

		return ctx.Next()
	}
}
