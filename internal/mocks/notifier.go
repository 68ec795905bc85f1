package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// Notifier is a mock type for the model.Notifier interface.
type Notifier struct {
	mock.Mock
}

func (_m *Notifier) RegisterPhoneNumber(ctx context.Context, phoneNumber string) error {
	ret := _m.Called(ctx, phoneNumber)
	return ret.Error(0)
}
