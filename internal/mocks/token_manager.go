package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// TokenManager is a mock type for the model.TokenManager interface.
type TokenManager struct {
	mock.Mock
}

func (_m *TokenManager) GenerateToken(email string) (string, error) {
	ret := _m.Called(email)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) ParseToken(token string) (string, error) {
	ret := _m.Called(token)
	return ret.String(0), ret.Error(1)
}
