package services

import (
	"context"
	"errors"
	"strings"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/logger"
	"finance-tracker/internal/models"
	"finance-tracker/internal/storage"
)

const serviceName = "finance-api"

// AuthServiceImpl реализует интерфейс AuthService
type AuthServiceImpl struct {
	store  storage.Store
	tokens *auth.TokenManager
}

// NewAuthService создает сервис аутентификации.
// tokens может быть nil, если нужна только регистрация (cmd/adduser).
func NewAuthService(store storage.Store, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{store: store, tokens: tokens}
}

func (s *AuthServiceImpl) SignUp(ctx context.Context, creds models.Credentials) (*models.PublicUser, error) {
	email := strings.TrimSpace(creds.Email)
	if email == "" {
		return nil, validationError("Email cannot be empty")
	}
	if creds.PasswordHash == "" {
		return nil, validationError("Password cannot be empty")
	}

	hash, err := auth.HashPassword(creds.PasswordHash)
	if err != nil {
		return nil, &Error{Kind: KindInternal, Message: "Failed to hash password", Err: err}
	}

	var user *models.User
	err = s.store.WithTx(ctx, func(repo storage.Repository) error {
		var err error
		user, err = repo.CreateUser(ctx, email, hash)
		return err
	})
	if err != nil {
		return nil, storageError(err, "create user")
	}

	logger.LogEvent(logger.EventUserRegistered, serviceName, "sqlite", user.ID, map[string]interface{}{
		"email": user.Email,
	})

	return &models.PublicUser{ID: user.ID, Email: user.Email}, nil
}

// Login не различает "нет пользователя" и "неверный пароль"
func (s *AuthServiceImpl) Login(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error) {
	if s.tokens == nil {
		return nil, &Error{Kind: KindInternal, Message: "Token issuing is not configured"}
	}

	var user *models.User
	err := s.store.WithConn(ctx, func(repo storage.Repository) error {
		var err error
		user, err = repo.GetUserByEmail(ctx, strings.TrimSpace(creds.Email))
		return err
	})
	if errors.Is(err, storage.ErrNotFound) {
		return nil, &Error{Kind: KindUnauthorized, Message: MsgInvalidCredentials}
	}
	if err != nil {
		return nil, storageError(err, "fetch user")
	}

	ok, err := auth.CheckPassword(user.PasswordHash, creds.PasswordHash)
	if err != nil || !ok {
		return nil, &Error{Kind: KindUnauthorized, Message: MsgInvalidCredentials, Err: err}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, &Error{Kind: KindInternal, Message: "Failed to issue token", Err: err}
	}
	return &models.TokenResponse{Token: token}, nil
}

func (s *AuthServiceImpl) Authenticate(token string) (int64, error) {
	if s.tokens == nil || token == "" {
		return 0, &Error{Kind: KindUnauthorized, Message: "Unauthorized"}
	}
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return 0, &Error{Kind: KindUnauthorized, Message: "Unauthorized", Err: err}
	}
	return userID, nil
}
