package postgres

import (
	"context"
	"fmt"

	"github.com/pricewatch/pricewatch-server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	db *Connection
}

func NewProductRepository(db *Connection) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	query := `INSERT INTO products (owner_email, id, name, url, vendor, price, previous_price)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING owner_email, id, name, url, vendor, price, previous_price`

	var savedProduct model.Product
	err := r.db.QueryRow(ctx, query,
		product.Owner, product.ID, product.Name, product.URL,
		product.Vendor, product.Price, product.PreviousPrice,
	).Scan(
		&savedProduct.Owner, &savedProduct.ID, &savedProduct.Name, &savedProduct.URL,
		&savedProduct.Vendor, &savedProduct.Price, &savedProduct.PreviousPrice,
	)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return savedProduct, nil
}

func (r *ProductRepository) GetByOwner(ctx context.Context, owner string) ([]model.Product, error) {
	query := `SELECT owner_email, id, name, url, vendor, price, previous_price
			  FROM products WHERE owner_email = $1`

	rows, err := r.db.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by owner: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var product model.Product
		if err := rows.Scan(
			&product.Owner, &product.ID, &product.Name, &product.URL,
			&product.Vendor, &product.Price, &product.PreviousPrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}

	return products, nil
}

// Delete removes the product at {owner, id}. Deleting an absent pair is not
// an error.
func (r *ProductRepository) Delete(ctx context.Context, owner string, productID string) error {
	query := `DELETE FROM products WHERE owner_email = $1 AND id = $2`

	if _, err := r.db.Exec(ctx, query, owner, productID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// UpdatePrice atomically moves the current price into previous_price and
// sets the new price, bound to the owning user.
func (r *ProductRepository) UpdatePrice(ctx context.Context, owner string, productID string, newPrice string) error {
	query := `UPDATE products SET previous_price = price, price = $3
			  WHERE owner_email = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, owner, productID, newPrice)
	if err != nil {
		return fmt.Errorf("failed to update product price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
