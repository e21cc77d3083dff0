package valueobjects

import (
	"errors"
	"fmt"
	"unicode"
)

// Ошибки валидации пароля. Все конкретные нарушения политики
// оборачивают ErrPasswordValidation и различимы через errors.Is.
var (
	ErrPasswordValidation = errors.New("password validation failed")

	ErrPasswordTooShort  = fmt.Errorf("%w: too short", ErrPasswordValidation)
	ErrPasswordNoLetter  = fmt.Errorf("%w: must contain at least one letter", ErrPasswordValidation)
	ErrPasswordNoDigit   = fmt.Errorf("%w: must contain at least one digit", ErrPasswordValidation)
	ErrPasswordNoSpecial = fmt.Errorf("%w: must contain at least one special character", ErrPasswordValidation)
)

// DefaultMinPasswordLength - минимальная длина пароля по умолчанию.
const DefaultMinPasswordLength = 8

// PasswordPolicy задает требования к сложности пароля.
// Конкретные пороги поступают из конфигурации, не из кода домена.
type PasswordPolicy struct {
	MinLength      int
	RequireLetter  bool
	RequireDigit   bool
	RequireSpecial bool
}

// DefaultPasswordPolicy возвращает политику по умолчанию:
// не менее восьми символов, хотя бы одна буква и одна цифра.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:     DefaultMinPasswordLength,
		RequireLetter: true,
		RequireDigit:  true,
	}
}

// Validate проверяет пароль на соответствие политике.
func (p PasswordPolicy) Validate(plaintext string) error {
	if len(plaintext) < p.MinLength {
		return ErrPasswordTooShort
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range plaintext {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if p.RequireLetter && !hasLetter {
		return ErrPasswordNoLetter
	}
	if p.RequireDigit && !hasDigit {
		return ErrPasswordNoDigit
	}
	if p.RequireSpecial && !hasSpecial {
		return ErrPasswordNoSpecial
	}

	return nil
}

// Password представляет проверенный пароль в открытом виде.
// Объект существует только на время обработки запроса; хранится всегда хэш.
type Password struct {
	plaintext string
}

// NewPassword создает Password, проверяя строку на соответствие политике.
func NewPassword(plaintext string, policy PasswordPolicy) (Password, error) {
	if err := policy.Validate(plaintext); err != nil {
		return Password{}, fmt.Errorf("validating password: %w", err)
	}
	return Password{plaintext: plaintext}, nil
}

// Plaintext возвращает пароль в открытом виде для хэширования или проверки.
func (p Password) Plaintext() string {
	return p.plaintext
}
