package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"meal-orders/internal/domain"
	"meal-orders/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders       service.OrderServiceInterface
	Carts        service.CartServiceInterface
	Reservations service.ReservationServiceInterface
}

func NewHandler(orders service.OrderServiceInterface, carts service.CartServiceInterface,
	reservations service.ReservationServiceInterface) *Handler {
	return &Handler{
		Orders:       orders,
		Carts:        carts,
		Reservations: reservations,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/history", h.getOrderHistory).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/reorder", h.reorder).Methods("POST")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")

	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/current", h.getCurrentReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", h.updateReservation).Methods("PUT")
	r.HandleFunc("/api/reservations/{id}", h.cancelReservation).Methods("DELETE")
	r.HandleFunc("/api/reservations/{id}/days/{date}", h.cancelReservationDay).Methods("DELETE")
}

// caller extracts the identity the gateway resolved from the session. The
// request body is never trusted for company or employee ids.
func caller(r *http.Request) domain.CallerContext {
	return domain.CallerContext{
		UserID:     r.Header.Get("X-User-Id"),
		CompanyID:  r.Header.Get("X-Company-Id"),
		EmployeeID: r.Header.Get("X-Employee-Id"),
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, warnings, err := h.Orders.Create(r.Context(), caller(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"order":    order,
		"warnings": warnings,
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := domain.OrderFilters{
		Status:    domain.OrderStatus(query.Get("status")),
		OrderType: domain.OrderType(query.Get("order_type")),
		DateFrom:  query.Get("date_from"),
		DateTo:    query.Get("date_to"),
	}

	orders, err := h.Orders.List(caller(r).UserID, filters)
	if err != nil {
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderHistory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	history, err := h.Orders.History(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if history == nil {
		history = []domain.OrderStatusHistory{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.QRCode(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(qr)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Status domain.OrderStatus `json:"status"`
		Notes  string             `json:"notes,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), id, payload.Status, caller(r).UserID, payload.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Cancel(r.Context(), id, caller(r).UserID, payload.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) reorder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, warnings, err := h.Orders.Reorder(r.Context(), id, caller(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"order":    order,
		"warnings": warnings,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidOrder),
		errors.Is(err, service.ErrReasonRequired),
		errors.Is(err, service.ErrDateOutsideWeek):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotOrderOwner),
		errors.Is(err, service.ErrNotReservationOwner):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrReservationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrInvalidStatusTransition),
		errors.Is(err, service.ErrCannotCancel),
		errors.Is(err, service.ErrReservationExists),
		errors.Is(err, service.ErrReservationNotActive):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
