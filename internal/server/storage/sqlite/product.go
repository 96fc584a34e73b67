package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
)

const productColumns = `id, name, category, image_url, price, stock, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner, p *models.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Category, &p.ImageURL, &p.Price, &p.Stock, &p.UpdatedAt)
}

// ListProducts returns the whole catalog ordered by name
func (s *Storage) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.queryProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY name, id`)
}

// GetProducts returns products with the given ids
func (s *Storage) GetProducts(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id IN (` + placeholders(len(ids)) + `) ORDER BY id`
	return s.queryProducts(ctx, query, args...)
}

// GetProduct retrieves a product by ID
func (s *Storage) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	p := &models.Product{}
	row := s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	if err := scanProduct(row, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// UpsertProduct creates or replaces a product
func (s *Storage) UpsertProduct(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (id, name, category, image_url, price, stock, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			image_url = excluded.image_url,
			price = excluded.price,
			stock = excluded.stock,
			updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query, p.ID, p.Name, p.Category, p.ImageURL, p.Price, p.Stock, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}
	return nil
}

func (s *Storage) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return products, nil
}
