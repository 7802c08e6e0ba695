package storage

import (
	"database/sql"
	"fmt"
	"time"

	"meal-orders/internal/domain"
)

type PostgresReservationRepository struct {
	DB *sql.DB
}

func NewPostgresReservationRepository(db *sql.DB) *PostgresReservationRepository {
	return &PostgresReservationRepository{DB: db}
}

const recomputeTotal = `
	UPDATE weekly_reservations
	SET total_amount = COALESCE((
		SELECT SUM(quantity * unit_price)
		FROM reservation_items
		WHERE reservation_id = $1 AND status = 'scheduled'
	), 0), updated_at = NOW()
	WHERE id = $1`

func (r *PostgresReservationRepository) GetActiveReservation(userID string, weekStart time.Time) (*domain.WeeklyReservation, error) {
	var reservation domain.WeeklyReservation
	err := r.DB.QueryRow(`
		SELECT id, user_id, week_start, status, total_amount, created_at, updated_at
		FROM weekly_reservations
		WHERE user_id = $1 AND week_start = $2 AND status = 'active'
	`, userID, weekStart).Scan(&reservation.ID, &reservation.UserID, &reservation.WeekStart,
		&reservation.Status, &reservation.TotalAmount, &reservation.CreatedAt, &reservation.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if reservation.Items, err = r.getItems(reservation.ID); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *PostgresReservationRepository) GetReservation(id int) (*domain.WeeklyReservation, error) {
	var reservation domain.WeeklyReservation
	err := r.DB.QueryRow(`
		SELECT id, user_id, week_start, status, total_amount, created_at, updated_at
		FROM weekly_reservations
		WHERE id = $1
	`, id).Scan(&reservation.ID, &reservation.UserID, &reservation.WeekStart,
		&reservation.Status, &reservation.TotalAmount, &reservation.CreatedAt, &reservation.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if reservation.Items, err = r.getItems(reservation.ID); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *PostgresReservationRepository) CreateReservation(reservation *domain.WeeklyReservation) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO weekly_reservations (user_id, week_start, status, total_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, reservation.UserID, reservation.WeekStart, reservation.Status, reservation.TotalAmount).
		Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	for i := range reservation.Items {
		item := &reservation.Items[i]
		item.ReservationID = reservation.ID
		err = tx.QueryRow(`
			INSERT INTO reservation_items (reservation_id, date, meal_type, item_id, item_name, quantity, unit_price, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, reservation.ID, item.Date, item.MealType, item.ItemID, item.ItemName,
			item.Quantity, item.UnitPrice, item.Status).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert reservation item: %w", err)
		}
	}

	return tx.Commit()
}

// ReplaceItems deletes and recreates the full item set with the new total,
// all in one transaction.
func (r *PostgresReservationRepository) ReplaceItems(reservationID int, items []domain.ReservationItem, total float64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM reservation_items WHERE reservation_id = $1`, reservationID); err != nil {
		return fmt.Errorf("failed to delete reservation items: %w", err)
	}

	for i := range items {
		item := &items[i]
		item.ReservationID = reservationID
		err = tx.QueryRow(`
			INSERT INTO reservation_items (reservation_id, date, meal_type, item_id, item_name, quantity, unit_price, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, reservationID, item.Date, item.MealType, item.ItemID, item.ItemName,
			item.Quantity, item.UnitPrice, item.Status).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert reservation item: %w", err)
		}
	}

	if _, err := tx.Exec(`
		UPDATE weekly_reservations SET total_amount = $1, updated_at = NOW() WHERE id = $2
	`, total, reservationID); err != nil {
		return fmt.Errorf("failed to update reservation total: %w", err)
	}

	return tx.Commit()
}

// CancelDay flips that date's scheduled items to cancelled and recomputes
// the total from the remaining scheduled items.
func (r *PostgresReservationRepository) CancelDay(reservationID int, date time.Time) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		UPDATE reservation_items SET status = 'cancelled'
		WHERE reservation_id = $1 AND date = $2 AND status = 'scheduled'
	`, reservationID, date); err != nil {
		return fmt.Errorf("failed to cancel reservation day: %w", err)
	}

	if _, err := tx.Exec(recomputeTotal, reservationID); err != nil {
		return fmt.Errorf("failed to recompute reservation total: %w", err)
	}

	return tx.Commit()
}

func (r *PostgresReservationRepository) CancelReservation(reservationID int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		UPDATE reservation_items SET status = 'cancelled'
		WHERE reservation_id = $1 AND status = 'scheduled'
	`, reservationID); err != nil {
		return fmt.Errorf("failed to cancel reservation items: %w", err)
	}

	if _, err := tx.Exec(`
		UPDATE weekly_reservations SET status = 'cancelled', total_amount = 0, updated_at = NOW()
		WHERE id = $1
	`, reservationID); err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	return tx.Commit()
}

func (r *PostgresReservationRepository) getItems(reservationID int) ([]domain.ReservationItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, reservation_id, date, meal_type, item_id, item_name, quantity, unit_price, status
		FROM reservation_items
		WHERE reservation_id = $1
		ORDER BY date, meal_type, id
	`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ReservationItem
	for rows.Next() {
		var item domain.ReservationItem
		if err := rows.Scan(&item.ID, &item.ReservationID, &item.Date, &item.MealType,
			&item.ItemID, &item.ItemName, &item.Quantity, &item.UnitPrice, &item.Status); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
