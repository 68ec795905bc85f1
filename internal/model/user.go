package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users. Email is the tenant
// key and is treated as an opaque, case-sensitive string.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with authentication material.
type User struct {
	Email        string
	PasswordHash string
	PhoneNumber  string
	CreatedAt    time.Time
}
