package repositories

import (
	"context"
	"errors"
	"fmt"

	"parts-store/models"

	"github.com/jackc/pgx/v5"
)

const cartItemColumns = `cart_item_id, cart_id, product_id, count, date_created, version`

type CartRepository struct {
	db DBPool
}

func NewCartRepository(db DBPool) *CartRepository {
	return &CartRepository{db: db}
}

// Create inserts a new line item and fills in its generated id and version.
func (r *CartRepository) Create(ctx context.Context, item *models.CartItem) error {
	query := `
		INSERT INTO cart_items (cart_id, product_id, count, date_created)
		VALUES ($1, $2, $3, $4)
		RETURNING cart_item_id, version
	`
	err := r.db.QueryRow(ctx, query, item.CartID, item.ProductID, item.Count, item.DateCreated).
		Scan(&item.CartItemID, &item.Version)
	if err != nil {
		return translateCartError("create cart item", err)
	}
	return nil
}

// AddOrIncrement inserts the line or, when the cart already holds the
// product, adds item.Count to the existing line in the same statement.
func (r *CartRepository) AddOrIncrement(ctx context.Context, item *models.CartItem) error {
	query := `
		INSERT INTO cart_items (cart_id, product_id, count, date_created)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET count = cart_items.count + EXCLUDED.count, version = cart_items.version + 1
		RETURNING ` + cartItemColumns
	row := r.db.QueryRow(ctx, query, item.CartID, item.ProductID, item.Count, item.DateCreated)
	if err := scanCartItem(row, item); err != nil {
		return translateCartError("add cart item", err)
	}
	return nil
}

func (r *CartRepository) GetByID(ctx context.Context, cartItemID int64) (*models.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE cart_item_id = $1`

	item := &models.CartItem{}
	if err := scanCartItem(r.db.QueryRow(ctx, query, cartItemID), item); err != nil {
		return nil, translateCartError("get cart item", err)
	}
	return item, nil
}

func (r *CartRepository) ListByCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items
	          WHERE cart_id = $1 ORDER BY date_created, cart_item_id`

	rows, err := r.db.Query(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		if err := scanCartItem(rows, &item); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	return items, nil
}

// UpdateCount changes only the count of a line. A zero expectedVersion
// skips the optimistic check.
func (r *CartRepository) UpdateCount(ctx context.Context, cartID string, cartItemID int64, count, expectedVersion int) (*models.CartItem, error) {
	query := `
		UPDATE cart_items SET count = $1, version = version + 1
		WHERE cart_item_id = $2 AND cart_id = $3 AND ($4 = 0 OR version = $4)
		RETURNING ` + cartItemColumns

	item := &models.CartItem{}
	err := scanCartItem(r.db.QueryRow(ctx, query, count, cartItemID, cartID, expectedVersion), item)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, translateCartError("update cart item", err)
	}

	// Nothing matched: either the line is gone or its version moved on.
	if expectedVersion == 0 {
		return nil, models.ErrCartItemNotFound
	}
	current, getErr := r.GetByID(ctx, cartItemID)
	if getErr != nil {
		return nil, getErr
	}
	if current.CartID != cartID {
		return nil, models.ErrCartItemNotFound
	}
	return nil, models.ErrVersionConflict
}

func (r *CartRepository) Delete(ctx context.Context, cartID string, cartItemID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM cart_items WHERE cart_item_id = $1 AND cart_id = $2`, cartItemID, cartID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) DeleteByCart(ctx context.Context, cartID string) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		return 0, fmt.Errorf("clear cart: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *CartRepository) CountByCart(ctx context.Context, cartID string) (int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(count), 0) FROM cart_items WHERE cart_id = $1`, cartID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count cart items: %w", err)
	}
	return total, nil
}

func scanCartItem(row pgx.Row, item *models.CartItem) error {
	return row.Scan(
		&item.CartItemID,
		&item.CartID,
		&item.ProductID,
		&item.Count,
		&item.DateCreated,
		&item.Version,
	)
}

func translateCartError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrCartItemNotFound
	}
	switch pgErrorCode(err) {
	case pgForeignKeyViolation:
		return models.ErrProductNotFound
	case pgUniqueViolation:
		return models.ErrDuplicateLineItem
	case pgNotNullViolation, pgCheckViolation, pgNumericOutOfRange, pgCharNotInRepertoire:
		return fmt.Errorf("%w: %v", models.ErrInvalidCartItem, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
