package config

import (
	"petfit/internal/auth/domain/valueobjects"
)

// PasswordConfig содержит пороги политики сложности паролей.
type PasswordConfig struct {
	MinLength      int  `yaml:"min_length" env:"AUTH_PASSWORD_MIN_LENGTH" env-default:"8"`
	RequireLetter  bool `yaml:"require_letter" env:"AUTH_PASSWORD_REQUIRE_LETTER" env-default:"true"`
	RequireDigit   bool `yaml:"require_digit" env:"AUTH_PASSWORD_REQUIRE_DIGIT" env-default:"true"`
	RequireSpecial bool `yaml:"require_special" env:"AUTH_PASSWORD_REQUIRE_SPECIAL" env-default:"false"`
}

// GetPolicy возвращает доменную политику паролей.
func (p *PasswordConfig) GetPolicy() valueobjects.PasswordPolicy {
	return valueobjects.PasswordPolicy{
		MinLength:      p.MinLength,
		RequireLetter:  p.RequireLetter,
		RequireDigit:   p.RequireDigit,
		RequireSpecial: p.RequireSpecial,
	}
}
