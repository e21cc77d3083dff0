// Package app реализует прикладные сценарии аутентификации.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"petfit/internal/auth/domain/entities"
	"petfit/internal/auth/domain/services"
	"petfit/internal/auth/domain/valueobjects"
	"petfit/internal/auth/ports/api"
	"petfit/internal/auth/ports/cache"
	"petfit/internal/auth/ports/repositories"
	svc "petfit/internal/auth/ports/services"
	"petfit/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"
	methodLogout   = "Logout"

	msgStartRegistration  = "starting user registration"
	msgInvalidEmailFormat = "invalid email format"
	msgEmptyName          = "empty name provided"
	msgInvalidRole        = "invalid role provided"
	msgInvalidPassword    = "password does not satisfy policy"
	msgEmailExists        = "user with this email already exists"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent email"
	msgWrongPassword      = "wrong password provided"
	msgUserLoggedIn       = "user logged in successfully"
	msgTokenIssued        = "access token issued"
	msgProcessingLogout   = "processing logout request"
	msgUserLoggedOut      = "user logged out successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrIssueToken        = "failed to issue access token"
	msgErrDropCachedProfile = "failed to drop cached profile"

	errCtxValidatingName     = "validating name"
	errCtxValidatingRole     = "validating role"
	errCtxValidatingUserID   = "validating user ID"
	errCtxCheckingUser       = "checking existing user"
	errCtxEmailRegistered    = "email already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxIssuingToken       = "issuing access token"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	cache       cache.Cache
	policy      valueobjects.PasswordPolicy
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	profileCache cache.Cache,
	policy valueobjects.PasswordPolicy,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		cache:       profileCache,
		policy:      policy,
	}
}

// Register создает нового пользователя с предоставленными учетными данными.
// Возвращаемая сущность не содержит хэш пароля.
func (a *AuthUseCaseImpl) Register(ctx context.Context, name, email, password string, role entities.Role) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	emailVO, err := valueobjects.NewEmail(email)
	if err != nil {
		log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
		return nil, err
	}
	passwordVO, err := valueobjects.NewPassword(password, a.policy)
	if err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return nil, err
	}
	if name == "" {
		log.Debug(ctx, msgEmptyName)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingName, entities.ErrEmptyName)
	}
	if role == "" {
		role = entities.RoleUser
	}
	if !role.Valid() {
		log.Debug(ctx, msgInvalidRole, zap.String("role", string(role)))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingRole, entities.ErrInvalidRole)
	}

	existingUser, err := a.userRepo.FindByEmail(ctx, emailVO.String())
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
	}

	passwordHash, err := a.passwordSvc.Hash(ctx, passwordVO.Plaintext())
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        emailVO.String(),
		PasswordHash: passwordHash,
		Role:         role,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			log.Debug(ctx, msgEmailExists)
			return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))

	createdUser.PasswordHash = ""
	return createdUser, nil
}

// Login аутентифицирует пользователя по email и паролю и выдает токен доступа.
// Ошибка для неизвестного email и неверного пароля одинакова.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*services.AccessToken, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	emailVO, err := valueobjects.NewEmail(email)
	if err != nil {
		log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
		return nil, err
	}
	passwordVO, err := valueobjects.NewPassword(password, a.policy)
	if err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return nil, err
	}

	user, err := a.userRepo.FindByEmail(ctx, emailVO.String())
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, passwordVO.Plaintext(), user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgWrongPassword, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))

	token, expiresAt, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgTokenIssued, zap.String("userID", user.ID), zap.Time("expiresAt", expiresAt))

	return &services.AccessToken{
		UserID:    user.ID,
		Token:     token,
		TokenType: services.TokenTypeBearer,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout завершает сессию пользователя. Токены самодостаточны и не отзываются,
// поэтому операция лишь сбрасывает кэшированный профиль и всегда идемпотентна.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout), zap.String("userID", userID))
	log.Debug(ctx, msgProcessingLogout)

	if userID == "" {
		return fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserID)
	}

	if err := a.cache.Delete(ctx, profileCacheKey(userID)); err != nil {
		log.Warn(ctx, msgErrDropCachedProfile, zap.Error(err))
	}

	log.Info(ctx, msgUserLoggedOut)
	return nil
}
