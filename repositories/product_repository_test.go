package repositories

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"parts-store/models"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryProductCache struct {
	items  map[int64]models.Product
	getErr error
	sets   int
}

func newMemoryProductCache() *memoryProductCache {
	return &memoryProductCache{items: map[int64]models.Product{}}
}

func (c *memoryProductCache) Get(ctx context.Context, id int64) (*models.Product, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	p, ok := c.items[id]
	if !ok {
		return nil, errCacheMiss
	}
	return &p, nil
}

func (c *memoryProductCache) Set(ctx context.Context, p *models.Product) error {
	c.sets++
	c.items[p.ID] = *p
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var productCols = []string{"id", "name", "description", "created_at"}

func TestProductRepository_GetByIDReadsThroughCache(t *testing.T) {
	mock := newMock(t)
	cache := newMemoryProductCache()
	repo := NewProductRepository(mock, cache, discardLogger())

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery("FROM products WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(productCols).AddRow(int64(7), "Brake pad", "front", created))

	p, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Brake pad", p.Name)
	assert.Equal(t, 1, cache.sets)

	// second lookup is served from cache; no further query expected
	p, err = repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetByIDMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock, nil, discardLogger())

	mock.ExpectQuery("FROM products WHERE id").
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestProductRepository_CacheFailureFallsBackToDB(t *testing.T) {
	mock := newMock(t)
	cache := newMemoryProductCache()
	cache.getErr = errors.New("redis down")
	repo := NewProductRepository(mock, cache, discardLogger())

	mock.ExpectQuery("FROM products WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(productCols).AddRow(int64(3), "Filter", "", time.Now()))

	p, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Filter", p.Name)
}

func TestProductRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock, nil, discardLogger())

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO products").
		WithArgs("Spark plug", "iridium").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(12), created))

	p := &models.Product{Name: "Spark plug", Description: "iridium"}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, int64(12), p.ID)
	assert.Equal(t, created, p.CreatedAt)
}
