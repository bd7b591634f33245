package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Okelahbegitu/fesnuk-api/internal/models"
	"github.com/Okelahbegitu/fesnuk-api/internal/repository"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService interface {
	Signup(ctx context.Context, username, password string) (*models.Account, error)
	Login(ctx context.Context, username, password string) (string, time.Time, *models.Account, error)
}

type authService struct {
	accounts repository.AccountRepository
	tokens   *TokenService
	verifier Verifier
	logger   *zap.Logger
}

func NewAuthService(accounts repository.AccountRepository, tokens *TokenService, verifier Verifier, logger *zap.Logger) AuthService {
	return &authService{
		accounts: accounts,
		tokens:   tokens,
		verifier: verifier,
		logger:   logger,
	}
}

func (s *authService) Signup(ctx context.Context, username, password string) (*models.Account, error) {
	// Check-then-insert in two round trips. Concurrent signups for the same
	// username can race past the check; that window is accepted.
	_, err := s.accounts.GetAccountByUsername(ctx, username)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		s.logger.Error("Failed to check existing username", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}

	secret, err := s.verifier.Hash(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := s.accounts.CreateAccount(ctx, username, secret)
	if err != nil {
		s.logger.Error("Failed to create account", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("Account created", zap.Int64("account_id", account.ID), zap.String("username", username))
	return account, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, *models.Account, error) {
	account, err := s.accounts.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Same outcome as a wrong password so the response does not
			// reveal whether the username exists.
			return "", time.Time{}, nil, ErrInvalidCredentials
		}
		s.logger.Error("Failed to retrieve account", zap.String("username", username), zap.Error(err))
		return "", time.Time{}, nil, fmt.Errorf("failed to retrieve account: %w", err)
	}

	if !s.verifier.Verify(account.Password, password) {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}

	tokenString, expirationTime, err := s.tokens.Issue(account.ID, account.Username)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.String("username", username), zap.Error(err))
		return "", time.Time{}, nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User logged in", zap.String("username", username))
	return tokenString, expirationTime, account, nil
}
