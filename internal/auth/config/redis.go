package config

import (
	"fmt"
	"time"
)

// Значения по умолчанию для таймаутов Redis.
const (
	defaultRedisTimeout    = 5 * time.Second
	defaultProfileCacheTTL = 5 * time.Minute
)

// RedisConfig содержит настройки подключения к Redis для кэша профилей.
type RedisConfig struct {
	Host       string `yaml:"host" env:"AUTH_REDIS_HOST" env-default:"localhost"`
	Port       int    `yaml:"port" env:"AUTH_REDIS_PORT" env-default:"6379"`
	Password   string `yaml:"password" env:"AUTH_REDIS_PASSWORD" env-default:""`
	DB         int    `yaml:"db" env:"AUTH_REDIS_DB" env-default:"0"`
	PoolSize   int    `yaml:"pool_size" env:"AUTH_REDIS_POOL_SIZE" env-default:"10"`
	Timeout    string `yaml:"timeout" env:"AUTH_REDIS_TIMEOUT" env-default:"5s"`
	DefaultTTL string `yaml:"default_ttl" env:"AUTH_REDIS_DEFAULT_TTL" env-default:"5m"`
}

// GetAddress возвращает адрес Redis сервера.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetTimeout возвращает таймаут операций Redis.
func (c *RedisConfig) GetTimeout() time.Duration {
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return defaultRedisTimeout
	}
	return duration
}

// GetDefaultTTL возвращает время жизни записей кэша по умолчанию.
func (c *RedisConfig) GetDefaultTTL() time.Duration {
	duration, err := time.ParseDuration(c.DefaultTTL)
	if err != nil {
		return defaultProfileCacheTTL
	}
	return duration
}
