package api

import (
	"context"

	"petfit/internal/auth/domain/entities"
)

// UserUseCase определяет основной порт для пользовательских операций.
type UserUseCase interface {
	GetCurrentUser(ctx context.Context, accessToken string) (*entities.User, error)
}
