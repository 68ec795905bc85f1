package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock type for the model.PasswordHasher interface.
type PasswordHasher struct {
	mock.Mock
}

func (_m *PasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)
	return ret.String(0), ret.Error(1)
}

func (_m *PasswordHasher) Verify(password string, encoded string) (bool, error) {
	ret := _m.Called(password, encoded)
	return ret.Bool(0), ret.Error(1)
}
