package repositories

import (
	"context"
	"testing"
	"time"

	"parts-store/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	name := strPtr("Ana")

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO identities").
		WithArgs("u-1", "ana@example.com", "hash", models.RoleCustomer).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery("INSERT INTO user_accounts").
		WithArgs("u-1", name).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectCommit()

	identity := &models.Identity{ID: "u-1", Email: "ana@example.com", PasswordHash: "hash", Role: models.RoleCustomer}
	account := &models.UserAccount{UserID: "u-1", Name: name}

	require.NoError(t, repo.Create(context.Background(), identity, account))
	assert.Equal(t, now, identity.CreatedAt)
	assert.Equal(t, now, account.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO identities").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	mock.ExpectRollback()

	err := repo.Create(context.Background(),
		&models.Identity{ID: "u-2", Email: "ana@example.com"},
		&models.UserAccount{UserID: "u-2"})
	assert.ErrorIs(t, err, models.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("FROM identities WHERE email").
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserRepository_GetAccountView(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("LEFT JOIN user_accounts").
		WithArgs("u-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "role", "created_at", "name"}).
			AddRow("u-1", "ana@example.com", models.RoleCustomer, now, strPtr("Ana")))

	view, err := repo.GetAccountView(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", view.Email)
	require.NotNil(t, view.Name)
	assert.Equal(t, "Ana", *view.Name)
}

func TestUserRepository_UpdateNameUnknownUser(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec("INSERT INTO user_accounts").
		WithArgs("ghost", strPtr("X"), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := repo.UpdateName(context.Background(), "ghost", strPtr("X"))
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	t.Run("removes cart, account and identity", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM cart_items").WithArgs("u-1").WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec("DELETE FROM user_accounts").WithArgs("u-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("DELETE FROM identities").WithArgs("u-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), "u-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user rolls back", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM cart_items").WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec("DELETE FROM user_accounts").WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec("DELETE FROM identities").WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Delete(context.Background(), "ghost"), models.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
