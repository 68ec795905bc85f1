package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	model "github.com/pricewatch/pricewatch-server/internal/model"
)

// ProductStore is a mock type for the model.ProductStore interface.
type ProductStore struct {
	mock.Mock
}

func (_m *ProductStore) Create(ctx context.Context, product model.Product) (model.Product, error) {
	ret := _m.Called(ctx, product)
	return ret.Get(0).(model.Product), ret.Error(1)
}

func (_m *ProductStore) GetByOwner(ctx context.Context, owner string) ([]model.Product, error) {
	ret := _m.Called(ctx, owner)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]model.Product), ret.Error(1)
}

func (_m *ProductStore) Delete(ctx context.Context, owner string, productID string) error {
	ret := _m.Called(ctx, owner, productID)
	return ret.Error(0)
}

func (_m *ProductStore) UpdatePrice(ctx context.Context, owner string, productID string, newPrice string) error {
	ret := _m.Called(ctx, owner, productID, newPrice)
	return ret.Error(0)
}
