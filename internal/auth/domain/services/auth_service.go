// Package services содержит доменные типы и ошибки сервисов аутентификации.
package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailAlreadyExists    = errors.New("user with this email already exists")
	ErrTokenGenerationFailed = errors.New("failed to generate access token")
)

// TokenTypeBearer - тип выдаваемых токенов.
const TokenTypeBearer = "bearer"

// AccessToken представляет выданный токен доступа.
type AccessToken struct {
	UserID    string
	Token     string
	TokenType string
	ExpiresAt time.Time
}
