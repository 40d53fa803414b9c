package services

import (
	"context"
	"fmt"
	"strings"

	"parts-store/models"
)

type ProductStore interface {
	ProductCatalog
	Create(ctx context.Context, product *models.Product) error
}

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	if id <= 0 {
		return nil, models.ErrProductNotFound
	}
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	if product.Name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrInvalidProduct)
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
