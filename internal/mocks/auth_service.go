package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// AuthService is a mock type for the handler.AuthService interface.
type AuthService struct {
	mock.Mock
}

func (_m *AuthService) Register(ctx context.Context, email string, password string, phoneNumber string) (string, error) {
	ret := _m.Called(ctx, email, password, phoneNumber)
	return ret.String(0), ret.Error(1)
}

func (_m *AuthService) Login(ctx context.Context, email string, password string) (string, error) {
	ret := _m.Called(ctx, email, password)
	return ret.String(0), ret.Error(1)
}
