// Package storage implements the catalog HTTP service: the Postgres
// product repository and the gin surface the bot fetches from.
package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/furnibot/internal/catalog"
)

// ProductRepo reads the product assortment from Postgres.
type ProductRepo struct {
	db *sqlx.DB
}

func NewProductRepo(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// List returns all products ordered by id.
func (r *ProductRepo) List(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	err := r.db.SelectContext(ctx, &products,
		`SELECT id, title, description, price, room FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Ping reports whether the database is reachable.
func (r *ProductRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
