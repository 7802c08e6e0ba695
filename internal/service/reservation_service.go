package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meal-orders/internal/domain"
)

var (
	ErrReservationExists    = errors.New("an active reservation already exists for this week")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationNotActive = errors.New("reservation is not active")
	ErrNotReservationOwner  = errors.New("reservation belongs to another user")
	ErrDateOutsideWeek      = errors.New("date is outside the reservation week")
)

type ReservationService struct {
	repo   ReservationRepository
	prices PriceResolver
}

func NewReservationService(repo ReservationRepository, prices PriceResolver) *ReservationService {
	return &ReservationService{repo: repo, prices: prices}
}

// WeekStart normalizes any time to Monday 00:00 UTC of its ISO week.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := t.AddDate(0, 0, 1-weekday)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

// Create books a week of meals. Pricing is strict: every item must resolve
// against the catalog, with no client-supplied fallback, or the whole
// reservation fails.
func (s *ReservationService) Create(ctx context.Context, userID string, req *domain.CreateReservationRequest) (*domain.WeeklyReservation, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidOrder)
	}

	weekStart := WeekStart(req.WeekStart)
	for _, item := range req.Items {
		if item.ItemID == "" || item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %q quantity %d", ErrInvalidOrder, item.ItemID, item.Quantity)
		}
		if day := WeekStart(item.Date); !day.Equal(weekStart) {
			return nil, fmt.Errorf("%w: %s", ErrDateOutsideWeek, item.Date.Format("2006-01-02"))
		}
	}

	existing, err := s.repo.GetActiveReservation(userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing reservation: %w", err)
	}
	if existing != nil {
		return nil, ErrReservationExists
	}

	items, total, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	reservation := &domain.WeeklyReservation{
		UserID:      userID,
		WeekStart:   weekStart,
		Status:      domain.ReservationActive,
		TotalAmount: total,
		Items:       items,
	}
	if err := s.repo.CreateReservation(reservation); err != nil {
		return nil, fmt.Errorf("failed to persist reservation: %w", err)
	}
	return reservation, nil
}

func (s *ReservationService) GetCurrent(userID string, week time.Time) (*domain.WeeklyReservation, error) {
	reservation, err := s.repo.GetActiveReservation(userID, WeekStart(week))
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}
	if reservation == nil {
		return nil, ErrReservationNotFound
	}
	return reservation, nil
}

// Update replaces the full item set transactionally and recomputes the
// total, with the same strict pricing as Create.
func (s *ReservationService) Update(ctx context.Context, reservationID int, userID string, items []domain.ReservationItemRequest) (*domain.WeeklyReservation, error) {
	reservation, err := s.owned(reservationID, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidOrder)
	}
	for _, item := range items {
		if day := WeekStart(item.Date); !day.Equal(reservation.WeekStart) {
			return nil, fmt.Errorf("%w: %s", ErrDateOutsideWeek, item.Date.Format("2006-01-02"))
		}
	}

	priced, total, err := s.priceItems(ctx, items)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceItems(reservationID, priced, total); err != nil {
		return nil, fmt.Errorf("failed to replace reservation items: %w", err)
	}
	return s.repo.GetReservation(reservationID)
}

// CancelDay cancels only that date's scheduled items; sibling days stay
// untouched and the total is recomputed from what remains.
func (s *ReservationService) CancelDay(reservationID int, userID string, date time.Time) (*domain.WeeklyReservation, error) {
	if _, err := s.owned(reservationID, userID); err != nil {
		return nil, err
	}
	if err := s.repo.CancelDay(reservationID, date); err != nil {
		return nil, fmt.Errorf("failed to cancel reservation day: %w", err)
	}
	return s.repo.GetReservation(reservationID)
}

func (s *ReservationService) Cancel(reservationID int, userID string) error {
	if _, err := s.owned(reservationID, userID); err != nil {
		return err
	}
	if err := s.repo.CancelReservation(reservationID); err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}
	return nil
}

func (s *ReservationService) owned(reservationID int, userID string) (*domain.WeeklyReservation, error) {
	reservation, err := s.repo.GetReservation(reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, ErrReservationNotFound
	}
	if reservation.UserID != userID {
		return nil, ErrNotReservationOwner
	}
	if reservation.Status != domain.ReservationActive {
		return nil, ErrReservationNotActive
	}
	return reservation, nil
}

func (s *ReservationService) priceItems(ctx context.Context, requests []domain.ReservationItemRequest) ([]domain.ReservationItem, float64, error) {
	ids := make([]string, 0, len(requests))
	for _, item := range requests {
		ids = append(ids, item.ItemID)
	}

	resolution, err := s.prices.ResolveItems(ctx, ids, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve reservation prices: %w", err)
	}

	items := make([]domain.ReservationItem, 0, len(requests))
	var total float64
	for _, reqItem := range requests {
		resolved, ok := resolution.Items[reqItem.ItemID]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrItemNotFound, reqItem.ItemID)
		}
		if !resolved.Available {
			return nil, 0, fmt.Errorf("%w: %s", ErrItemUnavailable, resolved.Name)
		}
		items = append(items, domain.ReservationItem{
			Date:      reqItem.Date,
			MealType:  reqItem.MealType,
			ItemID:    reqItem.ItemID,
			ItemName:  resolved.Name,
			Quantity:  reqItem.Quantity,
			UnitPrice: resolved.Price,
			Status:    domain.ReservationItemScheduled,
		})
		total += float64(reqItem.Quantity) * resolved.Price
	}

	return items, round2(total), nil
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
