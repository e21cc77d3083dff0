package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"petfit/internal/auth/domain/entities"
	"petfit/internal/auth/ports/api"
	"petfit/internal/auth/ports/cache"
	"petfit/internal/auth/ports/repositories"
	svc "petfit/internal/auth/ports/services"
	"petfit/pkg/logger"
)

const (
	methodGetCurrentUser = "GetCurrentUser"

	msgResolvingCurrentUser = "resolving current user from access token"
	msgTokenRejected        = "access token rejected"
	msgProfileFromCache     = "user profile served from cache"
	msgProfileRetrieved     = "user profile successfully retrieved"

	msgErrFindingUserByID = "failed to find user by ID"
	msgErrCacheProfile    = "failed to cache user profile"

	errCtxValidatingToken = "validating access token"
	errCtxFetchingProfile = "fetching user profile"
)

// profileCacheKeyPrefix - префикс ключей кэша профилей.
const profileCacheKeyPrefix = "user:profile:"

// profileCacheKey возвращает ключ кэша профиля для пользователя.
func profileCacheKey(userID string) string {
	return profileCacheKeyPrefix + userID
}

// profileRecord - форма профиля в кэше. Хэш пароля в кэш не попадает.
type profileRecord struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Role      entities.Role `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
	tokenSvc svc.TokenService
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewUserUseCase создает новый экземпляр сервиса пользователя.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	tokenSvc svc.TokenService,
	profileCache cache.Cache,
	cacheTTL time.Duration,
) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		cache:    profileCache,
		cacheTTL: cacheTTL,
	}
}

// GetCurrentUser проверяет токен доступа и возвращает профиль его владельца.
// Профиль не содержит хэш пароля. Просроченный или поврежденный токен
// отклоняется до обращения к хранилищу.
func (u *UserUseCaseImpl) GetCurrentUser(ctx context.Context, accessToken string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetCurrentUser))
	log.Debug(ctx, msgResolvingCurrentUser)

	userID, err := u.tokenSvc.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, err)
	}

	log = log.With(zap.String("userID", userID))

	if cached := u.lookupCachedProfile(ctx, userID); cached != nil {
		log.Debug(ctx, msgProfileFromCache)
		return cached, nil
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	user.PasswordHash = ""
	u.storeCachedProfile(ctx, user)

	log.Info(ctx, msgProfileRetrieved)
	return user, nil
}

// lookupCachedProfile возвращает профиль из кэша или nil при промахе.
func (u *UserUseCaseImpl) lookupCachedProfile(ctx context.Context, userID string) *entities.User {
	cached, err := u.cache.Get(ctx, profileCacheKey(userID))
	if err != nil || cached == "" {
		return nil
	}

	var record profileRecord
	if err := json.Unmarshal([]byte(cached), &record); err != nil {
		return nil
	}

	return &entities.User{
		ID:        record.ID,
		Name:      record.Name,
		Email:     record.Email,
		Role:      record.Role,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// storeCachedProfile сохраняет профиль в кэш. Ошибки кэша не прерывают запрос.
func (u *UserUseCaseImpl) storeCachedProfile(ctx context.Context, user *entities.User) {
	record := profileRecord{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	payload, err := json.Marshal(record)
	if err != nil {
		logger.Log(ctx).Warn(ctx, msgErrCacheProfile, zap.Error(err))
		return
	}

	if err := u.cache.Set(ctx, profileCacheKey(user.ID), string(payload), u.cacheTTL); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrCacheProfile, zap.Error(err))
	}
}
