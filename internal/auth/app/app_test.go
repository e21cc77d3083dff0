package app_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"petfit/internal/auth/adapters/cache"
	adapterservices "petfit/internal/auth/adapters/services"
	"petfit/internal/auth/app"
	"petfit/internal/auth/domain/entities"
	"petfit/internal/auth/domain/services"
	"petfit/internal/auth/domain/valueobjects"
	"petfit/internal/auth/ports/api"
)

// memoryUserRepository - потокобезопасное хранилище пользователей в памяти
// для сценарных тестов с настоящими сервисами паролей и токенов.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, services.ErrEmailAlreadyExists
	}

	stored := *user
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored

	result := stored
	return &result, nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[user.ID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	delete(r.byEmail, existing.Email)

	stored := *user
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()

	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored

	result := stored
	return &result, nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return entities.ErrUserNotFound
	}

	delete(r.byEmail, user.Email)
	delete(r.byID, id)
	return nil
}

type testEnv struct {
	authUseCase api.AuthUseCase
	userUseCase api.UserUseCase
	repo        *memoryUserRepository
	redisServer *miniredis.Miniredis
}

func newTestEnv(t *testing.T, tokenTTL time.Duration) *testEnv {
	t.Helper()

	redisServer := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: redisServer.Addr()})
	profileCache := cache.NewRedisCacheWithClient(redisClient, 5*time.Minute)

	repo := newMemoryUserRepository()
	factory := adapterservices.NewServiceFactory("integration-test-secret", tokenTTL, bcrypt.MinCost)

	authUseCase := app.NewAuthUseCase(
		repo,
		factory.PasswordService(),
		factory.TokenService(),
		profileCache,
		valueobjects.DefaultPasswordPolicy(),
	)
	userUseCase := app.NewUserUseCase(repo, factory.TokenService(), profileCache, 5*time.Minute)

	return &testEnv{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
		repo:        repo,
		redisServer: redisServer,
	}
}

// TestRegisterLoginFlow покрывает полный путь регистрации и входа
// с настоящими bcrypt и JWT.
func TestRegisterLoginFlow(t *testing.T) {
	env := newTestEnv(t, 15*time.Minute)
	ctx := context.Background()

	user, err := env.authUseCase.Register(ctx, "Ana", "ana@EXAMPLE.com", "Str0ng!Pass", entities.RoleUser)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ana@example.com", user.Email, "домен email должен быть приведен к нижнему регистру")
	assert.Empty(t, user.PasswordHash)
	assert.NotEmpty(t, user.ID)

	stored, err := env.repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"), "в хранилище должен лежать bcrypt-хэш")
	assert.NotEqual(t, "Str0ng!Pass", stored.PasswordHash)

	token, err := env.authUseCase.Login(ctx, "ana@example.COM", "Str0ng!Pass")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, user.ID, token.UserID)
	assert.Equal(t, services.TokenTypeBearer, token.TokenType)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	current, err := env.userUseCase.GetCurrentUser(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
	assert.Equal(t, "ana@example.com", current.Email)
	assert.Empty(t, current.PasswordHash)
}

// TestRegisterDuplicateEmail проверяет уникальность email без учета регистра домена.
func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t, 15*time.Minute)
	ctx := context.Background()

	_, err := env.authUseCase.Register(ctx, "Ana", "ana@example.com", "Str0ng!Pass", entities.RoleUser)
	require.NoError(t, err)

	_, err = env.authUseCase.Register(ctx, "Ana Two", "ana@EXAMPLE.COM", "An0ther!Pass", entities.RoleUser)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)
}

// TestLoginFailuresIndistinguishable проверяет, что неизвестный email
// и неверный пароль дают одинаковую ошибку.
func TestLoginFailuresIndistinguishable(t *testing.T) {
	env := newTestEnv(t, 15*time.Minute)
	ctx := context.Background()

	_, err := env.authUseCase.Register(ctx, "Ana", "ana@example.com", "Str0ng!Pass", entities.RoleUser)
	require.NoError(t, err)

	_, errWrongPass := env.authUseCase.Login(ctx, "ana@example.com", "Wr0ng!Pass1")
	_, errUnknown := env.authUseCase.Login(ctx, "nobody@example.com", "Wr0ng!Pass1")

	require.Error(t, errWrongPass)
	require.Error(t, errUnknown)
	assert.ErrorIs(t, errWrongPass, services.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, services.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

// TestExpiredTokenRejected проверяет, что просроченный токен отклоняется
// как просроченный, а не как отсутствующий пользователь.
func TestExpiredTokenRejected(t *testing.T) {
	env := newTestEnv(t, -time.Minute)
	ctx := context.Background()

	_, err := env.authUseCase.Register(ctx, "Ana", "ana@example.com", "Str0ng!Pass", entities.RoleUser)
	require.NoError(t, err)

	token, err := env.authUseCase.Login(ctx, "ana@example.com", "Str0ng!Pass")
	require.NoError(t, err)

	_, err = env.userUseCase.GetCurrentUser(ctx, token.Token)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrExpiredJWTToken)
	assert.NotErrorIs(t, err, entities.ErrUserNotFound)
}

// TestLogoutInvalidatesCachedProfile проверяет, что выход сбрасывает
// кэшированный профиль, а повторный выход безвреден.
func TestLogoutInvalidatesCachedProfile(t *testing.T) {
	env := newTestEnv(t, 15*time.Minute)
	ctx := context.Background()

	user, err := env.authUseCase.Register(ctx, "Ana", "ana@example.com", "Str0ng!Pass", entities.RoleUser)
	require.NoError(t, err)

	token, err := env.authUseCase.Login(ctx, "ana@example.com", "Str0ng!Pass")
	require.NoError(t, err)

	_, err = env.userUseCase.GetCurrentUser(ctx, token.Token)
	require.NoError(t, err)

	cacheKey := "user:profile:" + user.ID
	assert.True(t, env.redisServer.Exists(cacheKey), "профиль должен попасть в кэш после чтения")

	cached, err := env.redisServer.Get(cacheKey)
	require.NoError(t, err)
	assert.NotContains(t, cached, "$2", "хэш пароля не должен попадать в кэш")

	require.NoError(t, env.authUseCase.Logout(ctx, user.ID))
	assert.False(t, env.redisServer.Exists(cacheKey), "выход должен сбрасывать кэшированный профиль")

	require.NoError(t, env.authUseCase.Logout(ctx, user.ID))

	current, err := env.userUseCase.GetCurrentUser(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID, "токен остается действительным после выхода")
}
