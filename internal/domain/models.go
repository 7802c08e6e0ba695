package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
	StatusRejected  OrderStatus = "rejected"
)

type OrderType string

const (
	OrderTypePersonal  OrderType = "personal"
	OrderTypeCorporate OrderType = "corporate"
)

type Order struct {
	ID          int         `json:"id"`
	OrderNumber string      `json:"order_number"`
	UserID      string      `json:"user_id"`
	CompanyID   string      `json:"company_id,omitempty"`
	EmployeeID  string      `json:"employee_id,omitempty"`
	OrderType   OrderType   `json:"order_type"`
	Status      OrderStatus `json:"status"`

	Subtotal       float64 `json:"subtotal"`
	Discount       float64 `json:"discount"`
	SubsidyAmount  float64 `json:"subsidy_amount"`
	Tax            float64 `json:"tax"`
	DeliveryFee    float64 `json:"delivery_fee"`
	Total          float64 `json:"total"`
	UserPayable    float64 `json:"user_payable"`
	CompanyPayable float64 `json:"company_payable"`

	DeliveryDate    string `json:"delivery_date"`
	DeliverySlot    string `json:"delivery_slot,omitempty"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	Notes           string `json:"notes,omitempty"`
	PromoCode       string `json:"promo_code,omitempty"`

	// CatalogVerified is false when any line item was priced from
	// client-supplied fallback data because the catalog was unreachable.
	CatalogVerified bool `json:"catalog_verified"`

	Items []OrderItem `json:"items,omitempty"`

	ConfirmedAt      *time.Time `json:"confirmed_at,omitempty"`
	PreparingAt      *time.Time `json:"preparing_at,omitempty"`
	ReadyAt          *time.Time `json:"ready_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CancelledReason  string     `json:"cancelled_reason,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// OrderItem is a snapshot: name and unit price are frozen at order time and
// never re-read from the catalog.
type OrderItem struct {
	ID        int     `json:"id"`
	OrderID   int     `json:"order_id"`
	ItemID    string  `json:"item_id"`
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
	Notes     string  `json:"notes,omitempty"`
}

type OrderStatusHistory struct {
	ID        int         `json:"id"`
	OrderID   int         `json:"order_id"`
	Status    OrderStatus `json:"status"`
	ActorID   *string     `json:"actor_id,omitempty"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type Cart struct {
	ID        int        `json:"id"`
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        int     `json:"id"`
	CartID    int     `json:"cart_id"`
	ItemID    string  `json:"item_id"`
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Notes     string  `json:"notes,omitempty"`
}

// CartView is the materialized read model; the subtotal is always computed
// from the raw lines, never stored.
type CartView struct {
	ID       int        `json:"id"`
	UserID   string     `json:"user_id"`
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

type ReservationItemStatus string

const (
	ReservationItemScheduled ReservationItemStatus = "scheduled"
	ReservationItemOrdered   ReservationItemStatus = "ordered"
	ReservationItemCancelled ReservationItemStatus = "cancelled"
)

type WeeklyReservation struct {
	ID          int               `json:"id"`
	UserID      string            `json:"user_id"`
	WeekStart   time.Time         `json:"week_start"`
	Status      ReservationStatus `json:"status"`
	TotalAmount float64           `json:"total_amount"`
	Items       []ReservationItem `json:"items,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type ReservationItem struct {
	ID            int                   `json:"id"`
	ReservationID int                   `json:"reservation_id"`
	Date          time.Time             `json:"date"`
	MealType      string                `json:"meal_type"`
	ItemID        string                `json:"item_id"`
	ItemName      string                `json:"item_name"`
	Quantity      int                   `json:"quantity"`
	UnitPrice     float64               `json:"unit_price"`
	Status        ReservationItemStatus `json:"status"`
}

// ResolvedItem is the catalog's authoritative view of an item, or a fallback
// standing in for it when the catalog could not be reached.
type ResolvedItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// ItemFallback carries client-supplied name/price used only when the catalog
// cannot answer for that id.
type ItemFallback struct {
	Name  string
	Price float64
}

type SubsidyResult struct {
	SubsidyAmount float64 `json:"subsidy_amount"`
	RuleID        string  `json:"rule_id,omitempty"`
	Reason        string  `json:"reason,omitempty"`
}
