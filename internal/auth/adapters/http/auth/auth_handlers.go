// Package auth содержит HTTP обработчики сервиса аутентификации.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"petfit/internal/auth/adapters/http/middleware"
	"petfit/internal/auth/app/dto"
	"petfit/internal/auth/domain/entities"
	"petfit/internal/auth/domain/services"
	"petfit/internal/auth/domain/valueobjects"
	"petfit/internal/auth/ports/api"
	"petfit/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"
	LogHandlerLogout   = "auth handler: logout"
	LogHandlerMe       = "auth handler: current user"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorUnauthorized         = "unauthorized"
)

// Сообщения успешных операций.
const (
	MsgUserRegistered = "user registered successfully"
	MsgLogoutDone     = "logout successful"
)

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
	userUseCase api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase, userUseCase api.UserUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
	}
}

// sendErrorResponse отправляет JSON с сообщением об ошибке.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// statusFromError переводит доменную ошибку в HTTP статус.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entities.ErrInvalidEmail),
		errors.Is(err, valueobjects.ErrPasswordValidation),
		errors.Is(err, entities.ErrEmptyName),
		errors.Is(err, entities.ErrInvalidRole),
		errors.Is(err, entities.ErrEmptyUserID):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrExpiredJWTToken),
		errors.Is(err, services.ErrInvalidJWTToken):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// userToResponse преобразует сущность пользователя в публичный профиль.
func userToResponse(user *entities.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "name, email and password are required")
	}

	user, err := h.authUseCase.Register(requestCtx, req.Name, req.Email, req.Password, entities.Role(req.Role))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.MessageUserResponse{
		Message: MsgUserRegistered,
		User:    userToResponse(user),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "email and password are required")
	}

	token, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.TokenResponse{
		AccessToken: token.Token,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout обрабатывает запрос на выход пользователя.
// Токен из заголовка проверяется, затем сбрасывается кэшированный профиль.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	accessToken, ok := ctx.Locals(middleware.AccessTokenKey).(string)
	if !ok || accessToken == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	user, err := h.userUseCase.GetCurrentUser(requestCtx, accessToken)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := h.authUseCase.Logout(requestCtx, user.ID); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.MessageResponse{
		Message: MsgLogoutDone,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Me обрабатывает запрос на получение профиля текущего пользователя.
func (h *Handler) Me(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerMe)

	accessToken, ok := ctx.Locals(middleware.AccessTokenKey).(string)
	if !ok || accessToken == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	user, err := h.userUseCase.GetCurrentUser(requestCtx, accessToken)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(userToResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
