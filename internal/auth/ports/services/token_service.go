// Package services определяет порты вспомогательных сервисов аутентификации.
package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для выдачи и проверки токенов доступа.
// Токены самодостаточны: проверка не обращается к хранилищу.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID string) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, token string) (string, error)
}
