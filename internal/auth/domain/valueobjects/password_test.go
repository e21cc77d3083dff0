package valueobjects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petfit/internal/auth/domain/valueobjects"
)

func TestNewPassword(t *testing.T) {
	policy := valueobjects.DefaultPasswordPolicy()

	tests := []struct {
		name        string
		plaintext   string
		policy      valueobjects.PasswordPolicy
		expectedErr error
	}{
		{
			name:      "Валидный пароль с буквами и цифрами",
			plaintext: "Str0ng!Pass",
			policy:    policy,
		},
		{
			name:      "Минимально допустимая длина",
			plaintext: "abcd1234",
			policy:    policy,
		},
		{
			name:        "Пустой пароль",
			plaintext:   "",
			policy:      policy,
			expectedErr: valueobjects.ErrPasswordTooShort,
		},
		{
			name:        "Слишком короткий пароль",
			plaintext:   "a1b2c3",
			policy:      policy,
			expectedErr: valueobjects.ErrPasswordTooShort,
		},
		{
			name:        "Пароль без цифр",
			plaintext:   "onlyletters",
			policy:      policy,
			expectedErr: valueobjects.ErrPasswordNoDigit,
		},
		{
			name:        "Пароль без букв",
			plaintext:   "1234567890",
			policy:      policy,
			expectedErr: valueobjects.ErrPasswordNoLetter,
		},
		{
			name:      "Политика со спецсимволом выполняется",
			plaintext: "Str0ng!Pass",
			policy: valueobjects.PasswordPolicy{
				MinLength:      8,
				RequireLetter:  true,
				RequireDigit:   true,
				RequireSpecial: true,
			},
		},
		{
			name:      "Политика со спецсимволом нарушается",
			plaintext: "NoSpecial1",
			policy: valueobjects.PasswordPolicy{
				MinLength:      8,
				RequireLetter:  true,
				RequireDigit:   true,
				RequireSpecial: true,
			},
			expectedErr: valueobjects.ErrPasswordNoSpecial,
		},
		{
			name:      "Увеличенная минимальная длина",
			plaintext: "abcd1234",
			policy: valueobjects.PasswordPolicy{
				MinLength:     12,
				RequireLetter: true,
				RequireDigit:  true,
			},
			expectedErr: valueobjects.ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := valueobjects.NewPassword(tt.plaintext, tt.policy)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, valueobjects.ErrPasswordValidation)
				assert.Empty(t, password.Plaintext())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, password.Plaintext())
		})
	}
}
