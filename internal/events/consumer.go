package events

import (
	"context"
	"encoding/json"
	"log"

	"meal-orders/internal/domain"

	"github.com/segmentio/kafka-go"
)

// OrderStatusUpdater is the slice of the order service the payment consumer
// drives. Empty actor/user ids mark system-initiated transitions.
type OrderStatusUpdater interface {
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus, actorID, notes string) (*domain.Order, error)
	Cancel(ctx context.Context, orderID int, userID, reason string) (*domain.Order, error)
}

// PaymentConsumer reacts to payment outcomes: a completed payment confirms
// the order, a failed one cancels it.
type PaymentConsumer struct {
	Reader *kafka.Reader
	Orders OrderStatusUpdater
}

func NewPaymentConsumer(reader *kafka.Reader, orders OrderStatusUpdater) *PaymentConsumer {
	return &PaymentConsumer{Reader: reader, Orders: orders}
}

func (c *PaymentConsumer) Start(ctx context.Context) {
	log.Println("Starting payment events consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading payment message: %v", err)
			continue
		}

		var evt domain.PaymentEvent
		if err := json.Unmarshal(message.Value, &evt); err != nil {
			log.Printf("Error unmarshaling payment message: %v", err)
			continue
		}

		c.ProcessPayment(ctx, evt)
	}
}

func (c *PaymentConsumer) ProcessPayment(ctx context.Context, evt domain.PaymentEvent) {
	switch evt.Type {
	case domain.EventPaymentCompleted:
		if _, err := c.Orders.UpdateStatus(ctx, evt.OrderID, domain.StatusConfirmed, "", "payment completed"); err != nil {
			log.Printf("Error confirming order %d after payment: %v", evt.OrderID, err)
			return
		}
		log.Printf("Order %d confirmed after payment", evt.OrderID)
	case domain.EventPaymentFailed:
		reason := evt.Reason
		if reason == "" {
			reason = "payment failed"
		}
		if _, err := c.Orders.Cancel(ctx, evt.OrderID, "", reason); err != nil {
			log.Printf("Error cancelling order %d after failed payment: %v", evt.OrderID, err)
			return
		}
		log.Printf("Order %d cancelled after failed payment", evt.OrderID)
	default:
		// Other payment events are not ours to handle.
	}
}
