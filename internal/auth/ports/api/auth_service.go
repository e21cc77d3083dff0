// Package api определяет входные порты сервиса аутентификации.
package api

import (
	"context"

	"petfit/internal/auth/domain/entities"
	"petfit/internal/auth/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string, role entities.Role) (*entities.User, error)

	Login(ctx context.Context, email, password string) (*services.AccessToken, error)

	Logout(ctx context.Context, userID string) error
}
