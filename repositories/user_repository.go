package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parts-store/models"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DBPool
}

func NewUserRepository(db DBPool) *UserRepository {
	return &UserRepository{db: db}
}

// Create stores the identity and its account in one transaction.
func (r *UserRepository) Create(ctx context.Context, identity *models.Identity, account *models.UserAccount) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO identities (id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, identity.ID, identity.Email, identity.PasswordHash, identity.Role).Scan(&identity.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return models.ErrEmailTaken
		}
		return fmt.Errorf("create identity: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO user_accounts (user_id, name)
		VALUES ($1, $2)
		RETURNING updated_at
	`, account.UserID, account.Name).Scan(&account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.Identity, error) {
	query := `SELECT id, email, password_hash, role, created_at FROM identities WHERE email = $1`

	identity := &models.Identity{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&identity.ID,
		&identity.Email,
		&identity.PasswordHash,
		&identity.Role,
		&identity.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return identity, nil
}

func (r *UserRepository) GetAccountView(ctx context.Context, userID string) (*models.UserAccountView, error) {
	query := `
		SELECT i.id, i.email, i.role, i.created_at, a.name
		FROM identities i
		LEFT JOIN user_accounts a ON a.user_id = i.id
		WHERE i.id = $1
	`

	view := &models.UserAccountView{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&view.ID,
		&view.Email,
		&view.Role,
		&view.CreatedAt,
		&view.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return view, nil
}

// UpdateName upserts so identities created without an account row still work.
func (r *UserRepository) UpdateName(ctx context.Context, userID string, name *string) error {
	query := `
		INSERT INTO user_accounts (user_id, name, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET name = EXCLUDED.name, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query, userID, name, time.Now().UTC())
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return models.ErrUserNotFound
		}
		return fmt.Errorf("update account name: %w", err)
	}
	return nil
}

// Delete removes the user's own cart, the account and the identity.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM cart_items WHERE cart_id = $1", userID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM user_accounts WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	result, err := tx.Exec(ctx, "DELETE FROM identities WHERE id = $1", userID)
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}

	return tx.Commit(ctx)
}
