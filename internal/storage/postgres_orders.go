package storage

import (
	"database/sql"
	"fmt"

	"meal-orders/internal/domain"
)

type PostgresOrderRepository struct {
	DB *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// statusTimestampColumns maps a reached status to the order column stamped
// on transition.
var statusTimestampColumns = map[domain.OrderStatus]string{
	domain.StatusConfirmed: "confirmed_at",
	domain.StatusPreparing: "preparing_at",
	domain.StatusReady:     "ready_at",
	domain.StatusDelivered: "delivered_at",
	domain.StatusCancelled: "cancelled_at",
}

const orderColumns = `
	id, order_number, user_id, COALESCE(company_id, ''), COALESCE(employee_id, ''),
	order_type, status, subtotal, discount, subsidy_amount, tax, delivery_fee,
	total, user_payable, company_payable, delivery_date, COALESCE(delivery_slot, ''),
	COALESCE(delivery_address, ''), COALESCE(notes, ''), COALESCE(promo_code, ''),
	catalog_verified, confirmed_at, preparing_at, ready_at, delivered_at,
	cancelled_at, COALESCE(cancelled_reason, ''), created_at, updated_at`

// CreateOrder writes the header, the item snapshots and the initial pending
// history row in one transaction. A partial order is never visible.
func (r *PostgresOrderRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (
			order_number, user_id, company_id, employee_id, order_type, status,
			subtotal, discount, subsidy_amount, tax, delivery_fee, total,
			user_payable, company_payable, delivery_date, delivery_slot,
			delivery_address, notes, promo_code, catalog_verified
		) VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, NULLIF($16, ''), NULLIF($17, ''),
			NULLIF($18, ''), NULLIF($19, ''), $20)
		RETURNING id, created_at, updated_at
	`, order.OrderNumber, order.UserID, order.CompanyID, order.EmployeeID,
		order.OrderType, order.Status, order.Subtotal, order.Discount,
		order.SubsidyAmount, order.Tax, order.DeliveryFee, order.Total,
		order.UserPayable, order.CompanyPayable, order.DeliveryDate,
		order.DeliverySlot, order.DeliveryAddress, order.Notes, order.PromoCode,
		order.CatalogVerified).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(`
			INSERT INTO order_items (order_id, item_id, item_name, quantity, unit_price, line_total, notes)
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
			RETURNING id
		`, order.ID, item.ItemID, item.ItemName, item.Quantity, item.UnitPrice,
			item.LineTotal, item.Notes).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO order_status_history (order_id, status, actor_id, notes)
		VALUES ($1, $2, $3, $4)
	`, order.ID, domain.StatusPending, order.UserID, "order created")
	if err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}

	return tx.Commit()
}

func (r *PostgresOrderRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`SELECT`+orderColumns+` FROM orders WHERE id = $1`, id).Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &order.CompanyID, &order.EmployeeID,
		&order.OrderType, &order.Status, &order.Subtotal, &order.Discount,
		&order.SubsidyAmount, &order.Tax, &order.DeliveryFee, &order.Total,
		&order.UserPayable, &order.CompanyPayable, &order.DeliveryDate, &order.DeliverySlot,
		&order.DeliveryAddress, &order.Notes, &order.PromoCode, &order.CatalogVerified,
		&order.ConfirmedAt, &order.PreparingAt, &order.ReadyAt, &order.DeliveredAt,
		&order.CancelledAt, &order.CancelledReason, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT id, order_id, item_id, item_name, quantity, unit_price, line_total, COALESCE(notes, '')
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ItemID, &item.ItemName,
			&item.Quantity, &item.UnitPrice, &item.LineTotal, &item.Notes); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}

	return &order, rows.Err()
}

func (r *PostgresOrderRepository) ListOrders(userID string, filters domain.OrderFilters) ([]domain.Order, error) {
	query := `SELECT` + orderColumns + ` FROM orders WHERE user_id = $1`
	args := []interface{}{userID}

	if filters.Status != "" {
		args = append(args, filters.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filters.OrderType != "" {
		args = append(args, filters.OrderType)
		query += fmt.Sprintf(" AND order_type = $%d", len(args))
	}
	if filters.DateFrom != "" {
		args = append(args, filters.DateFrom)
		query += fmt.Sprintf(" AND delivery_date >= $%d", len(args))
	}
	if filters.DateTo != "" {
		args = append(args, filters.DateTo)
		query += fmt.Sprintf(" AND delivery_date <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.OrderNumber, &order.UserID, &order.CompanyID, &order.EmployeeID,
			&order.OrderType, &order.Status, &order.Subtotal, &order.Discount,
			&order.SubsidyAmount, &order.Tax, &order.DeliveryFee, &order.Total,
			&order.UserPayable, &order.CompanyPayable, &order.DeliveryDate, &order.DeliverySlot,
			&order.DeliveryAddress, &order.Notes, &order.PromoCode, &order.CatalogVerified,
			&order.ConfirmedAt, &order.PreparingAt, &order.ReadyAt, &order.DeliveredAt,
			&order.CancelledAt, &order.CancelledReason, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus applies the transition, stamps the status timestamp and
// appends the history row in one transaction. The WHERE guard on the
// from-status makes concurrent conflicting transitions lose cleanly.
func (r *PostgresOrderRepository) UpdateOrderStatus(id int, from, to domain.OrderStatus, actorID *string, notes, reason string) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	set := "status = $1, updated_at = NOW()"
	args := []interface{}{to}
	if column, ok := statusTimestampColumns[to]; ok {
		set += ", " + column + " = NOW()"
	}
	if reason != "" {
		args = append(args, reason)
		set += fmt.Sprintf(", cancelled_reason = $%d", len(args))
	}
	args = append(args, id, from)
	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d AND status = $%d",
		set, len(args)-1, len(args))

	result, err := tx.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update order: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, nil
	}

	historyNotes := notes
	if historyNotes == "" {
		historyNotes = reason
	}
	_, err = tx.Exec(`
		INSERT INTO order_status_history (order_id, status, actor_id, notes)
		VALUES ($1, $2, $3, NULLIF($4, ''))
	`, id, to, actorID, historyNotes)
	if err != nil {
		return 0, fmt.Errorf("failed to insert status history: %w", err)
	}

	return rows, tx.Commit()
}

func (r *PostgresOrderRepository) GetStatusHistory(orderID int) ([]domain.OrderStatusHistory, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, status, actor_id, COALESCE(notes, ''), created_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY created_at, id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.OrderStatusHistory
	for rows.Next() {
		var entry domain.OrderStatusHistory
		if err := rows.Scan(&entry.ID, &entry.OrderID, &entry.Status, &entry.ActorID,
			&entry.Notes, &entry.CreatedAt); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}
	return history, rows.Err()
}

func (r *PostgresOrderRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresOrderRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow(`SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr)
	if err != nil {
		return nil, err
	}
	return qr, nil
}
