package domain

import "time"

const (
	EventOrderCreated   = "order.created"
	EventOrderConfirmed = "order.confirmed"
	EventOrderPreparing = "order.preparing"
	EventOrderReady     = "order.ready"
	EventOrderDelivered = "order.delivered"
	EventOrderCancelled = "order.cancelled"

	EventPaymentCompleted = "payment.completed"
	EventPaymentFailed    = "payment.failed"
)

// OrderEvent is published on the orders topic, keyed by event type.
// Delivery is best-effort; consumers must not assume exactly-once.
type OrderEvent struct {
	Type            string    `json:"type"`
	OrderID         int       `json:"order_id"`
	OrderNumber     string    `json:"order_number"`
	UserID          string    `json:"user_id"`
	Status          string    `json:"status,omitempty"`
	Total           float64   `json:"total,omitempty"`
	DeliveryDate    string    `json:"delivery_date,omitempty"`
	CatalogVerified bool      `json:"catalog_verified,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
	Source          string    `json:"source"`
}

type PaymentEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	UserID    string    `json:"user_id"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
