package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"parts-store/models"
	"parts-store/utils"

	"github.com/google/uuid"
)

type UserStore interface {
	Create(ctx context.Context, identity *models.Identity, account *models.UserAccount) error
	FindByEmail(ctx context.Context, email string) (*models.Identity, error)
	GetAccountView(ctx context.Context, userID string) (*models.UserAccountView, error)
	UpdateName(ctx context.Context, userID string, name *string) error
	Delete(ctx context.Context, userID string) error
}

type TokenIssuer interface {
	GenerateToken(userID, email, role string) (string, error)
}

type UserService struct {
	users  UserStore
	tokens TokenIssuer
	logger *slog.Logger

	hashPassword   func(string) (string, error)
	verifyPassword func(hash, password string) (bool, error)
}

func NewUserService(users UserStore, tokens TokenIssuer, logger *slog.Logger) *UserService {
	return &UserService{
		users:          users,
		tokens:         tokens,
		logger:         logger,
		hashPassword:   utils.HashPassword,
		verifyPassword: utils.VerifyPassword,
	}
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", models.ErrInvalidUser)
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	identity := &models.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleCustomer,
	}
	account := &models.UserAccount{
		UserID: identity.ID,
		Name:   normalizeName(req.Name),
	}

	if err := s.users.Create(ctx, identity, account); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", identity.ID)
	return s.issue(identity, account.Name)
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	identity, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, models.ErrUserNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := s.verifyPassword(identity.PasswordHash, req.Password)
	if err != nil || !ok {
		return nil, models.ErrInvalidCredentials
	}

	view, err := s.users.GetAccountView(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	return s.issue(identity, view.Name)
}

func (s *UserService) GetAccount(ctx context.Context, userID string) (*models.UserAccountView, error) {
	return s.users.GetAccountView(ctx, userID)
}

// UpdateName sets the display name; nil or blank clears it.
func (s *UserService) UpdateName(ctx context.Context, userID string, name *string) (*models.UserAccountView, error) {
	if err := s.users.UpdateName(ctx, userID, normalizeName(name)); err != nil {
		return nil, err
	}
	return s.users.GetAccountView(ctx, userID)
}

func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", userID)
	return nil
}

func (s *UserService) issue(identity *models.Identity, name *string) (*models.LoginResponse, error) {
	token, err := s.tokens.GenerateToken(identity.ID, identity.Email, identity.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &models.LoginResponse{
		Token: token,
		Account: models.UserAccountView{
			ID:        identity.ID,
			Email:     identity.Email,
			Role:      identity.Role,
			Name:      name,
			CreatedAt: identity.CreatedAt,
		},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
