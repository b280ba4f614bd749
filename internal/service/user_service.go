package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/duongle/go-shop-backend/internal/auth"
	"github.com/duongle/go-shop-backend/internal/repository"
)

// UserService handles registration and login.
type UserService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
}

func NewUserService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates an account with a bcrypt-hashed credential.
func (s *UserService) Register(ctx context.Context, username, email, password string) (int64, error) {
	_, err := s.users.ByEmail(ctx, email)
	if err == nil {
		return 0, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return 0, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User registered", "user_id", userID)
	return userID, nil
}

// Login verifies the credential and mints a bearer token. Unknown email
// and wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.ByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Mint(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to mint token: %w", err)
	}
	return token, nil
}
