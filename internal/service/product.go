package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/pricewatch/pricewatch-server/internal/logger"
	"github.com/pricewatch/pricewatch-server/internal/model"
)

type Product struct {
	productStore model.ProductStore
	logger       *logger.Logger
}

func NewProduct(productStore model.ProductStore, logger *logger.Logger) *Product {
	return &Product{
		productStore: productStore,
		logger:       logger,
	}
}

// newProductID returns 16 random bytes hex-encoded: a 32-character id
// unique within any owner's namespace. The id space is large enough that
// collisions are not re-checked.
func newProductID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate product id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Add stores a new product for owner and returns its generated id.
func (s *Product) Add(ctx context.Context, owner string, params model.AddProductParams) (string, error) {
	s.logger.Debug("Product service: adding product",
		"owner", owner,
		"name", params.Name)

	id, err := newProductID()
	if err != nil {
		return "", err
	}

	product := model.Product{
		Owner:         owner,
		ID:            id,
		Name:          params.Name,
		URL:           params.URL,
		Vendor:        params.Vendor,
		Price:         params.Price,
		PreviousPrice: params.PreviousPrice,
	}

	if _, err := s.productStore.Create(ctx, product); err != nil {
		s.logger.Error("Product service: failed to create product",
			"owner", owner,
			"error", err.Error())
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product service: product added",
		"owner", owner,
		"product_id", id)

	return id, nil
}

// List returns all products belonging to owner, in unspecified order.
func (s *Product) List(ctx context.Context, owner string) ([]model.Product, error) {
	products, err := s.productStore.GetByOwner(ctx, owner)
	if err != nil {
		s.logger.Error("Product service: failed to list products",
			"owner", owner,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// Delete removes the product at {owner, productID}. Deleting an id that no
// longer exists succeeds silently.
func (s *Product) Delete(ctx context.Context, owner string, productID string) error {
	if err := s.productStore.Delete(ctx, owner, productID); err != nil {
		s.logger.Error("Product service: failed to delete product",
			"owner", owner,
			"product_id", productID,
			"error", err.Error())
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info("Product service: product deleted",
		"owner", owner,
		"product_id", productID)

	return nil
}

// UpdatePrice records a new current price, keeping the prior value as the
// previous price.
func (s *Product) UpdatePrice(ctx context.Context, owner string, productID string, newPrice string) error {
	err := s.productStore.UpdatePrice(ctx, owner, productID, newPrice)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		s.logger.Error("Product service: failed to update product price",
			"owner", owner,
			"product_id", productID,
			"error", err.Error())
		return fmt.Errorf("failed to update product price: %w", err)
	}

	s.logger.Info("Product service: product price updated",
		"owner", owner,
		"product_id", productID)

	return nil
}
