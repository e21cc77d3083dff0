// Package http содержит компоненты HTTP сервера аутентификации.
package http

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"petfit/internal/auth/adapters/http/auth"
	"petfit/internal/auth/adapters/http/middleware"
	"petfit/internal/auth/ports/api"
)

// Pinger проверяет доступность зависимостей для эндпоинта здоровья.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, authUseCase api.AuthUseCase, userUseCase api.UserUseCase, db Pinger) {
	authHandler := auth.NewHandler(authUseCase, userUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Эндпоинт здоровья.
	app.Get("/healthz", func(c fiber.Ctx) error {
		if err := db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Выход требует действительный токен.
	authRoutes.Post("/logout", authHandler.Logout, middleware.NewAuthMiddleware())

	// Защищенные маршруты.
	userRoutes := apiV1.Group("/user")
	userRoutes.Use(middleware.NewAuthMiddleware())
	userRoutes.Get("/me", authHandler.Me)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
