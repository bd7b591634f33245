package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Okelahbegitu/fesnuk-api/internal/models"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, username, password string) (*models.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)
}

type accountRepository struct {
	db     *Database
	logger *zap.Logger
}

func NewAccountRepository(db *Database, logger *zap.Logger) AccountRepository {
	return &accountRepository{db: db, logger: logger}
}

func (r *accountRepository) CreateAccount(ctx context.Context, username, password string) (*models.Account, error) {
	account := &models.Account{Username: username, Password: password}
	query := `INSERT INTO accounts (username, password) VALUES ($1, $2) RETURNING id`
	if err := sqlx.GetContext(ctx, r.db.ext, &account.ID, query, username, password); err != nil {
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}
	return account, nil
}

func (r *accountRepository) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	var account models.Account
	query := `SELECT id, username, password FROM accounts WHERE username = $1`
	if err := sqlx.GetContext(ctx, r.db.ext, &account, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to select account: %w", err)
	}
	return &account, nil
}
