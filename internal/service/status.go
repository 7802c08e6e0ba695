package service

import "meal-orders/internal/domain"

// statusTransitions is the single source of truth for the order state
// machine. Any (from, to) pair not listed here is rejected before any
// mutation happens.
var statusTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.StatusPending:   {domain.StatusConfirmed, domain.StatusCancelled, domain.StatusRejected},
	domain.StatusConfirmed: {domain.StatusPreparing, domain.StatusCancelled},
	domain.StatusPreparing: {domain.StatusReady, domain.StatusCancelled},
	domain.StatusReady:     {domain.StatusDelivered},
	domain.StatusDelivered: {domain.StatusCompleted},
	domain.StatusCompleted: {},
	domain.StatusCancelled: {},
	domain.StatusRejected:  {},
}

// cancellableStatuses restricts user-facing cancellation; kitchen-side
// cancellation from preparing still goes through the full table.
var cancellableStatuses = map[domain.OrderStatus]bool{
	domain.StatusPending:   true,
	domain.StatusConfirmed: true,
}

// eventTypeForStatus maps a reached status to the lifecycle event published
// for it. Statuses without an event (completed, rejected) publish nothing.
var eventTypeForStatus = map[domain.OrderStatus]string{
	domain.StatusConfirmed: domain.EventOrderConfirmed,
	domain.StatusPreparing: domain.EventOrderPreparing,
	domain.StatusReady:     domain.EventOrderReady,
	domain.StatusDelivered: domain.EventOrderDelivered,
	domain.StatusCancelled: domain.EventOrderCancelled,
}

func CanTransition(from, to domain.OrderStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
