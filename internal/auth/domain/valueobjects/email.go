// Package valueobjects содержит объекты-значения домена: email и пароль.
// Объекты неизменяемы и валидируются при создании.
package valueobjects

import (
	"fmt"
	"regexp"
	"strings"

	"petfit/internal/auth/domain/entities"
)

// errCtxValidatingEmail - контекст ошибки валидации email.
const errCtxValidatingEmail = "validating email"

// emailRegex описывает допустимый формат адреса: local-part@domain,
// домен содержит хотя бы одну точку, пробелы недопустимы.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email представляет проверенный адрес электронной почты.
// Доменная часть приводится к нижнему регистру при создании,
// поэтому сравнение и проверка уникальности не зависят от регистра домена.
type Email struct {
	value string
}

// NewEmail создает Email из сырой строки.
// Возвращает entities.ErrInvalidEmail, если строка не соответствует формату.
func NewEmail(raw string) (Email, error) {
	if raw == "" || strings.ContainsAny(raw, " \t\r\n") {
		return Email{}, fmt.Errorf("%s: %w", errCtxValidatingEmail, entities.ErrInvalidEmail)
	}

	if !emailRegex.MatchString(raw) {
		return Email{}, fmt.Errorf("%s: %w", errCtxValidatingEmail, entities.ErrInvalidEmail)
	}

	at := strings.LastIndex(raw, "@")
	normalized := raw[:at] + "@" + strings.ToLower(raw[at+1:])

	return Email{value: normalized}, nil
}

// String возвращает нормализованное строковое представление адреса.
func (e Email) String() string {
	return e.value
}

// Equal сравнивает два адреса по нормализованному значению.
func (e Email) Equal(other Email) bool {
	return e.value == other.value
}
