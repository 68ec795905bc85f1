package model

import "context"

// ProductStore defines persistence operations for price-tracked products.
// Every operation is bound to the owning user's email; there is no way to
// address a product without its owner.
type ProductStore interface {
	Create(ctx context.Context, product Product) (Product, error)
	GetByOwner(ctx context.Context, owner string) ([]Product, error)
	Delete(ctx context.Context, owner string, productID string) error
	UpdatePrice(ctx context.Context, owner string, productID string, newPrice string) error
}

// AddProductParams contains caller-supplied fields for a new product.
type AddProductParams struct {
	Name          string
	URL           string
	Vendor        string
	Price         string
	PreviousPrice string
}

// Product represents a price-tracked item belonging to one user.
// Prices are opaque decimal strings; the service never does arithmetic
// on them.
type Product struct {
	Owner         string
	ID            string
	Name          string
	URL           string
	Vendor        string
	Price         string
	PreviousPrice string
}
