package domain

import "time"

// CallerContext is resolved by the gateway from the authenticated session.
// Company/employee ids are never taken from the request body.
type CallerContext struct {
	UserID     string
	CompanyID  string
	EmployeeID string
}

type CreateOrderRequest struct {
	OrderType       OrderType          `json:"order_type"`
	Items           []OrderItemRequest `json:"items"`
	MealType        string             `json:"meal_type,omitempty"`
	DeliveryDate    string             `json:"delivery_date"`
	DeliverySlot    string             `json:"delivery_slot,omitempty"`
	DeliveryAddress string             `json:"delivery_address,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	PromoCode       string             `json:"promo_code,omitempty"`
	FromCart        bool               `json:"from_cart,omitempty"`
}

// OrderItemRequest optionally carries a client-side name/price snapshot,
// used only as fallback data when the catalog is unreachable.
type OrderItemRequest struct {
	ItemID    string  `json:"item_id"`
	Quantity  int     `json:"quantity"`
	ItemName  string  `json:"item_name,omitempty"`
	UnitPrice float64 `json:"unit_price,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

type OrderFilters struct {
	Status    OrderStatus
	OrderType OrderType
	DateFrom  string
	DateTo    string
}

type AddCartItemRequest struct {
	ItemID    string  `json:"item_id"`
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Notes     string  `json:"notes,omitempty"`
}

type ReservationItemRequest struct {
	Date     time.Time `json:"date"`
	MealType string    `json:"meal_type"`
	ItemID   string    `json:"item_id"`
	Quantity int       `json:"quantity"`
}

type CreateReservationRequest struct {
	WeekStart time.Time                `json:"week_start"`
	Items     []ReservationItemRequest `json:"items"`
}
