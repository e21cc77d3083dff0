package config

import "time"

// defaultAccessTokenTTL - срок действия токена по умолчанию.
const defaultAccessTokenTTL = 15 * time.Minute

// JWTConfig содержит настройки для токенов доступа.
type JWTConfig struct {
	SecretKey      string `yaml:"secret_key" env:"AUTH_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	AccessTokenTTL string `yaml:"access_token_ttl" env:"AUTH_JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	BCryptCost     int    `yaml:"bcrypt_cost" env:"AUTH_JWT_BCRYPT_COST" env-default:"10"`
}

// GetAccessTokenTTL возвращает продолжительность времени жизни токена доступа.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return defaultAccessTokenTTL
	}
	return duration
}
