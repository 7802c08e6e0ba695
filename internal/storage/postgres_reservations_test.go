package storage

import (
	"testing"
	"time"

	"meal-orders/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupReservationRepo(t *testing.T) (*PostgresReservationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresReservationRepository(db), mock
}

var testWeek = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestGetActiveReservation_MissingIsNotAnError(t *testing.T) {
	repo, mock := setupReservationRepo(t)

	mock.ExpectQuery("FROM weekly_reservations").
		WithArgs("user-1", testWeek).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	reservation, err := repo.GetActiveReservation("user-1", testWeek)
	assert.NoError(t, err)
	assert.Nil(t, reservation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReservation_LoadsItems(t *testing.T) {
	repo, mock := setupReservationRepo(t)
	now := time.Now()

	mock.ExpectQuery("FROM weekly_reservations").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "week_start", "status", "total_amount", "created_at", "updated_at"}).
			AddRow(5, "user-1", testWeek, "active", 81000.0, now, now))
	mock.ExpectQuery("FROM reservation_items").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "reservation_id", "date", "meal_type", "item_id", "item_name", "quantity", "unit_price", "status"}).
			AddRow(11, 5, testWeek, "lunch", "item-a", "Plov", 1, 25000.0, "scheduled").
			AddRow(12, 5, testWeek.AddDate(0, 0, 1), "lunch", "item-b", "Lagman", 2, 28000.0, "scheduled"))

	reservation, err := repo.GetReservation(5)
	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationActive, reservation.Status)
	assert.Len(t, reservation.Items, 2)
	assert.Equal(t, domain.ReservationItemScheduled, reservation.Items[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservation_Transactional(t *testing.T) {
	repo, mock := setupReservationRepo(t)
	now := time.Now()

	reservation := &domain.WeeklyReservation{
		UserID:      "user-1",
		WeekStart:   testWeek,
		Status:      domain.ReservationActive,
		TotalAmount: 25000,
		Items: []domain.ReservationItem{
			{Date: testWeek, MealType: "lunch", ItemID: "item-a", ItemName: "Plov",
				Quantity: 1, UnitPrice: 25000, Status: domain.ReservationItemScheduled},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO weekly_reservations").
		WithArgs("user-1", testWeek, domain.ReservationActive, 25000.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(5, now, now))
	mock.ExpectQuery("INSERT INTO reservation_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	err := repo.CreateReservation(reservation)
	assert.NoError(t, err)
	assert.Equal(t, 5, reservation.ID)
	assert.Equal(t, 5, reservation.Items[0].ReservationID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceItems_DeletesInsertsAndRecomputes(t *testing.T) {
	repo, mock := setupReservationRepo(t)

	items := []domain.ReservationItem{
		{Date: testWeek, MealType: "lunch", ItemID: "item-b", ItemName: "Lagman",
			Quantity: 2, UnitPrice: 28000, Status: domain.ReservationItemScheduled},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reservation_items").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery("INSERT INTO reservation_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectExec("UPDATE weekly_reservations SET total_amount").
		WithArgs(56000.0, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceItems(5, items, 56000)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelDay_RecomputesTotalFromScheduledItems(t *testing.T) {
	repo, mock := setupReservationRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE reservation_items SET status = 'cancelled'").
		WithArgs(5, testWeek).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE weekly_reservations(.|\n)+SUM\\(quantity \\* unit_price\\)").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CancelDay(5, testWeek)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelReservation_CancelsEverything(t *testing.T) {
	repo, mock := setupReservationRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE reservation_items SET status = 'cancelled'").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE weekly_reservations SET status = 'cancelled', total_amount = 0").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CancelReservation(5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
