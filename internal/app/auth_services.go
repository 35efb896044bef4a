package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"github.com/google/uuid"
)

// authService implements the AuthService interface
type authService struct {
	store  store.Store
	hasher staff.PasswordHasher
	tokens staff.TokenIssuer
	logger logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(st store.Store, hasher staff.PasswordHasher, tokens staff.TokenIssuer, logger logger.Logger) (staff.AuthService, error) {
	return &authService{
		store:  st,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*staff.Session, error) {
	repos := s.store.Repos()
	user, err := repos.Users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, staff.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive || s.hasher.Compare(user.PasswordHash, password) != nil {
		s.logger.Warn("Rejected login", "username", user.Username)
		return nil, staff.ErrInvalidCredentials
	}

	now := time.Now()
	token, expiresAt, err := s.tokens.Issue(user, now)
	if err != nil {
		return nil, err
	}
	if err := repos.Users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("Failed to record last login", "user_id", user.ID, "error", err)
	} else {
		user.LastLogin = &now
	}

	s.logger.Info("User logged in", "user_id", user.ID, "username", user.Username)
	return &staff.Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*staff.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, staff.ErrInvalidToken
	}
	user, err := s.store.Repos().Users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, staff.ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, staff.ErrInvalidToken
	}
	return user, nil
}

func (s *authService) CreateUser(ctx context.Context, username, password string, isStaff bool) (*staff.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "Este campo é obrigatório.")
	}
	if len(password) < staff.MinPasswordLength {
		return nil, staff.ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &staff.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		IsStaff:      isStaff,
		IsActive:     true,
	}

	repos := s.store.Repos()
	if _, err := repos.Users.GetByUsername(ctx, username); err == nil {
		return nil, staff.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if err := repos.Users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, staff.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User created", "user_id", user.ID, "username", user.Username, "staff", isStaff)
	return user, nil
}
