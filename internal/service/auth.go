package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pricewatch/pricewatch-server/internal/logger"
	"github.com/pricewatch/pricewatch-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	notifier     model.Notifier
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	notifier model.Notifier,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		notifier:     notifier,
		logger:       logger,
	}
}

// Register creates a user and returns a fresh session token. The phone
// number is registered with the notifier best-effort after the credential
// write commits; a notifier failure is logged but does not fail or roll
// back the registration.
func (a *Auth) Register(ctx context.Context, email, password, phoneNumber string) (string, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return "", model.ErrAlreadyExists
	}
	if !errors.Is(err, model.ErrNotFound) {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Email:        email,
		PasswordHash: passwordHash,
		PhoneNumber:  phoneNumber,
		CreatedAt:    time.Now(),
	}

	_, err = a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrAlreadyExists) {
		// lost a race with a concurrent registration; the storage-level
		// guard is authoritative
		return "", model.ErrAlreadyExists
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	if err := a.notifier.RegisterPhoneNumber(ctx, phoneNumber); err != nil {
		a.logger.Warn("Auth service: failed to register phone number, continuing",
			"email", email,
			"error", err.Error())
	}

	token, err := a.tokenManager.GenerateToken(email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"email", email)

	return token, nil
}

// Login verifies the password against the stored credential and returns a
// fresh session token.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		// a malformed stored encoding is a data-integrity failure, never
		// reported as a wrong password
		a.logger.Error("Auth service: stored credential is malformed",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: incorrect password",
			"email", email)
		return "", model.ErrInvalidCredentials
	}

	token, err := a.tokenManager.GenerateToken(email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Info("Auth service: user logged in successfully",
		"email", email)

	return token, nil
}
