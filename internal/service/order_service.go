package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"meal-orders/internal/domain"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrder            = errors.New("invalid order payload")
	ErrItemNotFound            = errors.New("item could not be resolved")
	ErrItemUnavailable         = errors.New("item is not available")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrCannotCancel            = errors.New("order can no longer be cancelled")
	ErrReasonRequired          = errors.New("cancellation reason is required")
	ErrNotOrderOwner           = errors.New("order belongs to another user")
)

// OrderConfig carries the pricing knobs owned by this service; promo
// discounts are resolved by an external service and stay zero here.
type OrderConfig struct {
	DeliveryFee float64
	TaxRate     float64
}

type OrderService struct {
	repo      OrderRepository
	prices    PriceResolver
	subsidies SubsidyResolver
	publisher EventPublisher
	carts     CartClearer
	qrEncoder QRGenerator
	cfg       OrderConfig
}

func NewOrderService(repo OrderRepository, prices PriceResolver, subsidies SubsidyResolver,
	publisher EventPublisher, carts CartClearer, qr QRGenerator, cfg OrderConfig) *OrderService {
	return &OrderService{
		repo:      repo,
		prices:    prices,
		subsidies: subsidies,
		publisher: publisher,
		carts:     carts,
		qrEncoder: qr,
		cfg:       cfg,
	}
}

// Create converts a request into an immutable, snapshot-priced order.
// Catalog prices are authoritative; client-supplied prices are used only
// when the catalog is unreachable and always produce a warning. Subsidy
// failures degrade to zero, never block checkout. Nothing is persisted if a
// fatal condition is hit.
func (s *OrderService) Create(ctx context.Context, caller domain.CallerContext, req *domain.CreateOrderRequest) (*domain.Order, []string, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, nil, fmt.Errorf("%w: no items", ErrInvalidOrder)
	}
	for _, item := range req.Items {
		if item.ItemID == "" || item.Quantity < 1 {
			return nil, nil, fmt.Errorf("%w: item %q quantity %d", ErrInvalidOrder, item.ItemID, item.Quantity)
		}
	}

	// Company and employee ids come from the authenticated caller context,
	// never from the request body.
	orderType := req.OrderType
	if orderType == "" {
		orderType = domain.OrderTypePersonal
	}

	ids := make([]string, 0, len(req.Items))
	fallback := make(map[string]domain.ItemFallback)
	for _, item := range req.Items {
		ids = append(ids, item.ItemID)
		if item.ItemName != "" && item.UnitPrice > 0 {
			fallback[item.ItemID] = domain.ItemFallback{Name: item.ItemName, Price: item.UnitPrice}
		}
	}

	resolution, err := s.prices.ResolveItems(ctx, ids, fallback)
	if err != nil && resolution == nil {
		return nil, nil, fmt.Errorf("failed to resolve prices: %w", err)
	}

	var warnings []string
	if !resolution.Verified {
		warnings = append(warnings, "catalog service unreachable; order priced in degraded mode")
	}

	var orderItems []domain.OrderItem
	var subtotal float64
	for _, reqItem := range req.Items {
		resolved, ok := resolution.Items[reqItem.ItemID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrItemNotFound, reqItem.ItemID)
		}
		if resolution.FromFallback[reqItem.ItemID] {
			warnings = append(warnings, fmt.Sprintf(
				"price for %q could not be verified against the catalog; using client-supplied data", resolved.Name))
		} else if !resolved.Available {
			// Availability is only trustworthy when the catalog answered.
			return nil, nil, fmt.Errorf("%w: %s", ErrItemUnavailable, resolved.Name)
		}

		lineTotal := round2(float64(reqItem.Quantity) * resolved.Price)
		orderItems = append(orderItems, domain.OrderItem{
			ItemID:    reqItem.ItemID,
			ItemName:  resolved.Name,
			Quantity:  reqItem.Quantity,
			UnitPrice: resolved.Price,
			LineTotal: lineTotal,
			Notes:     reqItem.Notes,
		})
		subtotal += lineTotal
	}
	subtotal = round2(subtotal)

	discount := 0.0
	tax := round2(subtotal * s.cfg.TaxRate)
	total := round2(subtotal - discount + tax + s.cfg.DeliveryFee)

	var subsidy float64
	if orderType == domain.OrderTypeCorporate && caller.CompanyID != "" {
		result := s.subsidies.CalculateSubsidy(ctx, caller.CompanyID, caller.UserID, subtotal, req.MealType)
		subsidy = round2(result.SubsidyAmount)
		if subsidy == 0 && result.Reason != "" {
			warnings = append(warnings, fmt.Sprintf("subsidy not applied: %s", result.Reason))
		}
		if subsidy > total {
			subsidy = total
		}
	}

	order := &domain.Order{
		OrderNumber:     newOrderNumber(time.Now()),
		UserID:          caller.UserID,
		CompanyID:       caller.CompanyID,
		EmployeeID:      caller.EmployeeID,
		OrderType:       orderType,
		Status:          domain.StatusPending,
		Subtotal:        subtotal,
		Discount:        discount,
		SubsidyAmount:   subsidy,
		Tax:             tax,
		DeliveryFee:     s.cfg.DeliveryFee,
		Total:           total,
		UserPayable:     round2(total - subsidy),
		CompanyPayable:  subsidy,
		DeliveryDate:    req.DeliveryDate,
		DeliverySlot:    req.DeliverySlot,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		PromoCode:       req.PromoCode,
		CatalogVerified: resolution.Verified,
		Items:           orderItems,
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return nil, nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if req.FromCart && s.carts != nil {
		if err := s.carts.Clear(caller.UserID); err != nil {
			log.Printf("Warning: failed to clear cart for user %s after order %s: %v",
				caller.UserID, order.OrderNumber, err)
		}
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.OrderNumber); err == nil {
			if err := s.repo.SaveQRCode(order.ID, qr); err != nil {
				log.Printf("Warning: failed to save QR code for order %s: %v", order.OrderNumber, err)
			}
		}
	}

	s.publish(ctx, domain.OrderEvent{
		Type:            domain.EventOrderCreated,
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		UserID:          order.UserID,
		Status:          string(order.Status),
		Total:           order.Total,
		DeliveryDate:    order.DeliveryDate,
		CatalogVerified: order.CatalogVerified,
	})

	return order, warnings, nil
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	return s.get(id)
}

func (s *OrderService) get(id int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
	}
	return order, err
}

func (s *OrderService) List(userID string, filters domain.OrderFilters) ([]domain.Order, error) {
	return s.repo.ListOrders(userID, filters)
}

func (s *OrderService) History(orderID int) ([]domain.OrderStatusHistory, error) {
	return s.repo.GetStatusHistory(orderID)
}

// UpdateStatus applies one transition from the table, stamps the matching
// timestamp, appends a history row and publishes the lifecycle event.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus, actorID, notes string) (*domain.Order, error) {
	order, err := s.get(orderID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, order.Status, status)
	}

	var actor *string
	if actorID != "" {
		actor = &actorID
	}

	rows, err := s.repo.UpdateOrderStatus(orderID, order.Status, status, actor, notes, "")
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if rows == 0 {
		// Lost the race against a concurrent transition.
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, order.Status, status)
	}

	refreshed, err := s.get(orderID)
	if err != nil {
		return nil, err
	}

	if eventType, ok := eventTypeForStatus[status]; ok {
		s.publish(ctx, domain.OrderEvent{
			Type:        eventType,
			OrderID:     refreshed.ID,
			OrderNumber: refreshed.OrderNumber,
			UserID:      refreshed.UserID,
			Status:      string(status),
		})
	}

	return refreshed, nil
}

// Cancel is the user-facing cancellation: only from pending or confirmed,
// and always with a reason. An empty userID means a system-initiated cancel
// (e.g. a failed payment) and skips the ownership check.
func (s *OrderService) Cancel(ctx context.Context, orderID int, userID, reason string) (*domain.Order, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}

	order, err := s.get(orderID)
	if err != nil {
		return nil, err
	}
	if userID != "" && order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	if !cancellableStatuses[order.Status] {
		return nil, fmt.Errorf("%w: status %s", ErrCannotCancel, order.Status)
	}

	var actor *string
	if userID != "" {
		actor = &userID
	}

	rows, err := s.repo.UpdateOrderStatus(orderID, order.Status, domain.StatusCancelled, actor, "", reason)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: status changed concurrently", ErrCannotCancel)
	}

	refreshed, err := s.get(orderID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:        domain.EventOrderCancelled,
		OrderID:     refreshed.ID,
		OrderNumber: refreshed.OrderNumber,
		UserID:      refreshed.UserID,
		Status:      string(domain.StatusCancelled),
		Reason:      reason,
	})

	return refreshed, nil
}

// Reorder replays a prior order with today's date, carrying the old item
// snapshots as fallback data so the replay survives catalog deletions.
func (s *OrderService) Reorder(ctx context.Context, orderID int, caller domain.CallerContext) (*domain.Order, []string, error) {
	prior, err := s.get(orderID)
	if err != nil {
		return nil, nil, err
	}
	if prior.UserID != caller.UserID {
		return nil, nil, ErrNotOrderOwner
	}

	items := make([]domain.OrderItemRequest, 0, len(prior.Items))
	for _, item := range prior.Items {
		items = append(items, domain.OrderItemRequest{
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			ItemName:  item.ItemName,
			UnitPrice: item.UnitPrice,
			Notes:     item.Notes,
		})
	}

	return s.Create(ctx, caller, &domain.CreateOrderRequest{
		OrderType:       prior.OrderType,
		Items:           items,
		DeliveryDate:    time.Now().Format("2006-01-02"),
		DeliverySlot:    prior.DeliverySlot,
		DeliveryAddress: prior.DeliveryAddress,
	})
}

func (s *OrderService) QRCode(orderID int) ([]byte, error) {
	return s.repo.GetQRCode(orderID)
}

// publish is best-effort: a publish failure never invalidates an already
// persisted write.
func (s *OrderService) publish(ctx context.Context, evt domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	evt.Timestamp = time.Now()
	evt.Source = "order-service"
	if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
		log.Printf("Warning: failed to publish %s for order %s: %v", evt.Type, evt.OrderNumber, err)
	}
}

func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%06d", now.Format("20060102"), rand.Intn(1000000))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var _ OrderServiceInterface = (*OrderService)(nil)
