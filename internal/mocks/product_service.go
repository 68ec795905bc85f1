package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	model "github.com/pricewatch/pricewatch-server/internal/model"
)

// ProductService is a mock type for the handler.ProductService interface.
type ProductService struct {
	mock.Mock
}

func (_m *ProductService) Add(ctx context.Context, owner string, params model.AddProductParams) (string, error) {
	ret := _m.Called(ctx, owner, params)
	return ret.String(0), ret.Error(1)
}

func (_m *ProductService) List(ctx context.Context, owner string) ([]model.Product, error) {
	ret := _m.Called(ctx, owner)

	var r0 []model.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Product)
	}
	return r0, ret.Error(1)
}

func (_m *ProductService) Delete(ctx context.Context, owner string, productID string) error {
	ret := _m.Called(ctx, owner, productID)
	return ret.Error(0)
}

func (_m *ProductService) UpdatePrice(ctx context.Context, owner string, productID string, newPrice string) error {
	ret := _m.Called(ctx, owner, productID, newPrice)
	return ret.Error(0)
}
