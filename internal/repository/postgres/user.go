package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pricewatch/pricewatch-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// uniqueViolation is the SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT email, password_hash, phone_number, created_at
			  FROM users WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.Email, &user.PasswordHash, &user.PhoneNumber, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// Create inserts the user. The primary key on email makes concurrent
// duplicate registrations fail atomically at the storage layer.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (email, password_hash, phone_number, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING email, password_hash, phone_number, created_at`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.PhoneNumber, user.CreatedAt,
	).Scan(
		&savedUser.Email, &savedUser.PasswordHash, &savedUser.PhoneNumber, &savedUser.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}
