// Package entities содержит основные сущности домена пользователя.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrEmptyUserID  = errors.New("user ID cannot be empty")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrInvalidRole  = errors.New("invalid user role")
	ErrUserNotFound = errors.New("user not found")
)

// Role определяет уровень доступа пользователя.
type Role string

// Поддерживаемые роли пользователей.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid проверяет, что роль содержит допустимое значение.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User представляет основную сущность домена пользователя.
// Email хранится в нормализованном виде, пароль - только в виде хэша.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
