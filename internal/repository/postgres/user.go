package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/duongle/go-shop-backend/internal/entity"
	"github.com/duongle/go-shop-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a UserRepository backed by Postgres.
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, username, email, passwordHash string) (int64, error) {
	var userID int64
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING user_id",
		username, email, passwordHash,
	).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return userID, nil
}

func (r *userRepository) ByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id, username, email, password_hash FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &u, nil
}
