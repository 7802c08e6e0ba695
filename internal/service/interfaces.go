package service

import (
	"context"
	"time"

	"meal-orders/internal/catalog"
	"meal-orders/internal/domain"
)

type OrderRepository interface {
	// CreateOrder persists the order header, its item snapshots and the
	// initial pending history row as one transaction.
	CreateOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders(userID string, filters domain.OrderFilters) ([]domain.Order, error)
	// UpdateOrderStatus applies the transition only if the order is still in
	// the expected from-status; returns the number of rows updated.
	UpdateOrderStatus(id int, from, to domain.OrderStatus, actorID *string, notes, reason string) (int64, error)
	GetStatusHistory(orderID int) ([]domain.OrderStatusHistory, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type CartRepository interface {
	GetOrCreateCart(userID string) (*domain.Cart, error)
	GetCartItems(cartID int) ([]domain.CartItem, error)
	// UpsertItem merges quantities when the item id already exists in the
	// cart, refreshing the cached name and price.
	UpsertItem(cartID int, item *domain.CartItem) error
	UpdateItemQuantity(cartID int, itemID string, quantity int) (int64, error)
	RemoveItem(cartID int, itemID string) (int64, error)
	ClearCart(cartID int) error
}

type ReservationRepository interface {
	// GetActiveReservation returns (nil, nil) when no active reservation
	// exists for the user/week pair.
	GetActiveReservation(userID string, weekStart time.Time) (*domain.WeeklyReservation, error)
	GetReservation(id int) (*domain.WeeklyReservation, error)
	CreateReservation(res *domain.WeeklyReservation) error
	// ReplaceItems swaps the full item set and the total in one transaction.
	ReplaceItems(reservationID int, items []domain.ReservationItem, total float64) error
	// CancelDay marks that date's scheduled items cancelled and recomputes
	// the total from the remaining scheduled items.
	CancelDay(reservationID int, date time.Time) error
	CancelReservation(reservationID int) error
}

type PriceResolver interface {
	ResolveItems(ctx context.Context, ids []string, fallback map[string]domain.ItemFallback) (*catalog.Resolution, error)
}

type SubsidyResolver interface {
	CalculateSubsidy(ctx context.Context, companyID, userID string, orderAmount float64, mealType string) domain.SubsidyResult
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderNumber string) ([]byte, error)
}

// CartClearer is the slice of the cart service the order service needs to
// empty a cart after a successful conversion.
type CartClearer interface {
	Clear(userID string) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, caller domain.CallerContext, req *domain.CreateOrderRequest) (*domain.Order, []string, error)
	Get(id int) (*domain.Order, error)
	List(userID string, filters domain.OrderFilters) ([]domain.Order, error)
	History(orderID int) ([]domain.OrderStatusHistory, error)
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus, actorID, notes string) (*domain.Order, error)
	Cancel(ctx context.Context, orderID int, userID, reason string) (*domain.Order, error)
	Reorder(ctx context.Context, orderID int, caller domain.CallerContext) (*domain.Order, []string, error)
	QRCode(orderID int) ([]byte, error)
}

type CartServiceInterface interface {
	Get(userID string) (*domain.CartView, error)
	AddItem(userID string, req *domain.AddCartItemRequest) (*domain.CartView, error)
	UpdateItem(userID, itemID string, quantity int) (*domain.CartView, error)
	RemoveItem(userID, itemID string) (*domain.CartView, error)
	Clear(userID string) error
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, userID string, req *domain.CreateReservationRequest) (*domain.WeeklyReservation, error)
	GetCurrent(userID string, week time.Time) (*domain.WeeklyReservation, error)
	Update(ctx context.Context, reservationID int, userID string, items []domain.ReservationItemRequest) (*domain.WeeklyReservation, error)
	CancelDay(reservationID int, userID string, date time.Time) (*domain.WeeklyReservation, error)
	Cancel(reservationID int, userID string) error
}
