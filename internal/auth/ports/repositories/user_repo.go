// Package repositories определяет порты для операций сохранения данных.
package repositories

import (
	"context"

	"petfit/internal/auth/domain/entities"
)

// UserRepository определяет интерфейс хранилища пользователей.
// Уникальность email обеспечивается хранилищем атомарно.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	Update(ctx context.Context, user *entities.User) (*entities.User, error)

	Delete(ctx context.Context, id string) error
}
