package storage

import (
	"database/sql"

	"meal-orders/internal/domain"
)

type PostgresCartRepository struct {
	DB *sql.DB
}

func NewPostgresCartRepository(db *sql.DB) *PostgresCartRepository {
	return &PostgresCartRepository{DB: db}
}

// GetOrCreateCart is idempotent: one cart per user, created lazily and
// reused forever.
func (r *PostgresCartRepository) GetOrCreateCart(userID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.DB.QueryRow(`
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
		RETURNING id, user_id, created_at, updated_at
	`, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *PostgresCartRepository) GetCartItems(cartID int) ([]domain.CartItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, cart_id, item_id, item_name, quantity, unit_price, COALESCE(notes, '')
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY id
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ItemID, &item.ItemName,
			&item.Quantity, &item.UnitPrice, &item.Notes); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpsertItem merges quantities on conflict and refreshes the cached name and
// price to the latest the client saw.
func (r *PostgresCartRepository) UpsertItem(cartID int, item *domain.CartItem) error {
	_, err := r.DB.Exec(`
		INSERT INTO cart_items (cart_id, item_id, item_name, quantity, unit_price, notes)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		ON CONFLICT (cart_id, item_id) DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity,
			item_name = EXCLUDED.item_name,
			unit_price = EXCLUDED.unit_price,
			notes = COALESCE(EXCLUDED.notes, cart_items.notes)
	`, cartID, item.ItemID, item.ItemName, item.Quantity, item.UnitPrice, item.Notes)
	return err
}

func (r *PostgresCartRepository) UpdateItemQuantity(cartID int, itemID string, quantity int) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND item_id = $3
	`, quantity, cartID, itemID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresCartRepository) RemoveItem(cartID int, itemID string) (int64, error) {
	result, err := r.DB.Exec(`
		DELETE FROM cart_items WHERE cart_id = $1 AND item_id = $2
	`, cartID, itemID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresCartRepository) ClearCart(cartID int) error {
	_, err := r.DB.Exec(`DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	return err
}
