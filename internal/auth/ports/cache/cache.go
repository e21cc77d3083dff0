// Package cache определяет порт кэша профилей.
package cache

import (
	"context"
	"time"
)

// Cache определяет интерфейс для кэширования строковых значений.
// Кэш хранит только профили пользователей; токены и сессии не кэшируются.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Close() error
}
