package storage

import (
	"testing"
	"time"

	"meal-orders/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupCartRepo(t *testing.T) (*PostgresCartRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresCartRepository(db), mock
}

func TestGetOrCreateCart_IsUpsert(t *testing.T) {
	repo, mock := setupCartRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO carts").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at", "updated_at"}).
			AddRow(3, "user-1", now, now))

	cart, err := repo.GetOrCreateCart("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, cart.ID)
	assert.Equal(t, "user-1", cart.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertItem_MergesOnConflict(t *testing.T) {
	repo, mock := setupCartRepo(t)

	mock.ExpectExec("INSERT INTO cart_items").
		WithArgs(3, "item-a", "Plov", 2, 25000.0, "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertItem(3, &domain.CartItem{
		ItemID:    "item-a",
		ItemName:  "Plov",
		Quantity:  2,
		UnitPrice: 25000,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateItemQuantity_ReportsAffectedRows(t *testing.T) {
	repo, mock := setupCartRepo(t)

	mock.ExpectExec("UPDATE cart_items SET quantity").
		WithArgs(5, 3, "item-a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE cart_items SET quantity").
		WithArgs(5, 3, "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.UpdateItemQuantity(3, "item-a", 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.UpdateItemQuantity(3, "ghost", 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveItem_ReportsAffectedRows(t *testing.T) {
	repo, mock := setupCartRepo(t)

	mock.ExpectExec("DELETE FROM cart_items WHERE cart_id").
		WithArgs(3, "item-a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.RemoveItem(3, "item-a")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCartItems(t *testing.T) {
	repo, mock := setupCartRepo(t)

	mock.ExpectQuery("FROM cart_items").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "cart_id", "item_id", "item_name", "quantity", "unit_price", "notes"}).
			AddRow(7, 3, "item-a", "Plov", 2, 25000.0, "no onions"))

	items, err := repo.GetCartItems(3)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "no onions", items[0].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
