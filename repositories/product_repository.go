package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"parts-store/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db     DBPool
	cache  ProductCache
	logger *slog.Logger
}

// NewProductRepository reads through cache when it is non-nil.
func NewProductRepository(db DBPool, cache ProductCache, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{db: db, cache: cache, logger: logger}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	if r.cache != nil {
		p, err := r.cache.Get(ctx, id)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, errCacheMiss) {
			r.logger.Warn("product cache read failed", "product_id", id, "error", err)
		}
	}

	query := `SELECT id, name, description, created_at FROM products WHERE id = $1`

	var p models.Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, &p); err != nil {
			r.logger.Warn("product cache write failed", "product_id", id, "error", err)
		}
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, product.Name, product.Description).
		Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}
