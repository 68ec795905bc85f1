package model

import "errors"

var (
	// ErrNotFound is returned by stores when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when creating a user whose email is taken.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrInvalidCredentials is returned on a password mismatch during login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
