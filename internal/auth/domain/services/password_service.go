package services

import (
	"errors"
)

// Ошибки, связанные с хэшированием паролей.
var (
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrInvalidPassword = errors.New("invalid password")
)
