package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"parts-store/models"

	"github.com/go-playground/validator/v10"
)

type CartStore interface {
	Create(ctx context.Context, item *models.CartItem) error
	AddOrIncrement(ctx context.Context, item *models.CartItem) error
	GetByID(ctx context.Context, cartItemID int64) (*models.CartItem, error)
	ListByCart(ctx context.Context, cartID string) ([]models.CartItem, error)
	UpdateCount(ctx context.Context, cartID string, cartItemID int64, count, expectedVersion int) (*models.CartItem, error)
	Delete(ctx context.Context, cartID string, cartItemID int64) error
	DeleteByCart(ctx context.Context, cartID string) (int64, error)
	CountByCart(ctx context.Context, cartID string) (int, error)
}

type ProductCatalog interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

type CartService struct {
	items    CartStore
	products ProductCatalog
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

func NewCartService(items CartStore, products ProductCatalog, logger *slog.Logger) *CartService {
	return &CartService{
		items:    items,
		products: products,
		validate: newValidator(),
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// AddItem puts count units of a product in the cart, merging with an
// existing line for the same product. A zero count means one unit. A merge
// that would push the line past models.MaxItemCount is rejected by the store
// with models.ErrInvalidCartItem.
func (s *CartService) AddItem(ctx context.Context, cartID string, productID int64, count int) (*models.CartItem, error) {
	if count == 0 {
		count = models.MinItemCount
	}
	item := &models.CartItem{
		CartID:      strings.TrimSpace(cartID),
		ProductID:   productID,
		Count:       count,
		DateCreated: s.now(),
	}
	if err := s.validateItem(item); err != nil {
		return nil, err
	}

	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	if err := s.items.AddOrIncrement(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("cart item added",
		"cart_id", item.CartID, "cart_item_id", item.CartItemID,
		"product_id", item.ProductID, "count", item.Count)
	return item, nil
}

// CreateItem always inserts a new line. DateCreated defaults to now and
// Count to one when left zero.
func (s *CartService) CreateItem(ctx context.Context, item models.CartItem) (*models.CartItem, error) {
	item.CartItemID = 0
	item.Version = 0
	item.Product = nil
	item.CartID = strings.TrimSpace(item.CartID)
	if item.Count == 0 {
		item.Count = models.MinItemCount
	}
	if item.DateCreated.IsZero() {
		item.DateCreated = s.now()
	}
	if err := s.validateItem(&item); err != nil {
		return nil, err
	}

	if err := s.items.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartService) GetItem(ctx context.Context, cartID string, cartItemID int64) (*models.CartItem, error) {
	item, err := s.items.GetByID(ctx, cartItemID)
	if err != nil {
		return nil, err
	}
	if item.CartID != strings.TrimSpace(cartID) {
		return nil, models.ErrCartItemNotFound
	}
	return item, nil
}

func (s *CartService) ListItems(ctx context.Context, cartID string) (*models.Cart, error) {
	cartID, err := s.validateCartID(cartID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListByCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart := &models.Cart{CartID: cartID, Items: items}
	for _, it := range items {
		cart.TotalCount += it.Count
	}
	return cart, nil
}

// UpdateCount changes the quantity of a line; no other field moves.
func (s *CartService) UpdateCount(ctx context.Context, cartID string, cartItemID int64, count, version int) (*models.CartItem, error) {
	cartID, err := s.validateCartID(cartID)
	if err != nil {
		return nil, err
	}
	if count < models.MinItemCount || count > models.MaxItemCount {
		return nil, fmt.Errorf("%w: count must be between %d and %d",
			models.ErrInvalidCartItem, models.MinItemCount, models.MaxItemCount)
	}
	if version < 0 {
		return nil, fmt.Errorf("%w: version must not be negative", models.ErrInvalidCartItem)
	}

	item, err := s.items.UpdateCount(ctx, cartID, cartItemID, count, version)
	if err != nil {
		return nil, err
	}

	s.logger.Info("cart item count updated",
		"cart_id", cartID, "cart_item_id", cartItemID, "count", count, "version", item.Version)
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID string, cartItemID int64) error {
	cartID, err := s.validateCartID(cartID)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, cartID, cartItemID); err != nil {
		return err
	}

	s.logger.Info("cart item removed", "cart_id", cartID, "cart_item_id", cartItemID)
	return nil
}

func (s *CartService) ClearCart(ctx context.Context, cartID string) (int64, error) {
	cartID, err := s.validateCartID(cartID)
	if err != nil {
		return 0, err
	}

	removed, err := s.items.DeleteByCart(ctx, cartID)
	if err != nil {
		return 0, err
	}

	s.logger.Info("cart cleared", "cart_id", cartID, "removed", removed)
	return removed, nil
}

// CountItems returns the number of units across all lines of the cart.
func (s *CartService) CountItems(ctx context.Context, cartID string) (int, error) {
	cartID, err := s.validateCartID(cartID)
	if err != nil {
		return 0, err
	}
	return s.items.CountByCart(ctx, cartID)
}

// GetProduct looks up the product a line refers to. A missing product is
// reported as models.ErrProductNotFound.
func (s *CartService) GetProduct(ctx context.Context, productID int64) (*models.Product, error) {
	if productID <= 0 {
		return nil, models.ErrProductNotFound
	}
	return s.products.GetByID(ctx, productID)
}

func (s *CartService) ResolveItemProduct(ctx context.Context, cartID string, cartItemID int64) (*models.CartItem, error) {
	item, err := s.GetItem(ctx, cartID, cartItemID)
	if err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

func (s *CartService) validateItem(item *models.CartItem) error {
	if err := s.validate.Struct(item); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidCartItem, err)
	}
	return nil
}

func (s *CartService) validateCartID(cartID string) (string, error) {
	cartID = strings.TrimSpace(cartID)
	if err := s.validate.Var(cartID, cartIDRules); err != nil {
		return "", fmt.Errorf("%w: cart id: %v", models.ErrInvalidCartItem, err)
	}
	return cartID, nil
}
