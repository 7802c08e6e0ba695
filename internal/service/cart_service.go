package service

import (
	"errors"
	"fmt"

	"meal-orders/internal/domain"
)

var ErrCartItemNotFound = errors.New("item not found in cart")

type CartService struct {
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{repo: repo}
}

// Get materializes the cart view. The subtotal is computed from the raw
// lines on every read and never stored.
func (s *CartService) Get(userID string) (*domain.CartView, error) {
	cart, err := s.repo.GetOrCreateCart(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return s.view(cart)
}

func (s *CartService) AddItem(userID string, req *domain.AddCartItemRequest) (*domain.CartView, error) {
	if req.ItemID == "" || req.Quantity < 1 {
		return nil, fmt.Errorf("%w: item %q quantity %d", ErrInvalidOrder, req.ItemID, req.Quantity)
	}

	cart, err := s.repo.GetOrCreateCart(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if err := s.repo.UpsertItem(cart.ID, &domain.CartItem{
		CartID:    cart.ID,
		ItemID:    req.ItemID,
		ItemName:  req.ItemName,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Notes:     req.Notes,
	}); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return s.view(cart)
}

// UpdateItem sets an item's quantity; zero or less removes the line.
func (s *CartService) UpdateItem(userID, itemID string, quantity int) (*domain.CartView, error) {
	cart, err := s.repo.GetOrCreateCart(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var rows int64
	if quantity <= 0 {
		rows, err = s.repo.RemoveItem(cart.ID, itemID)
	} else {
		rows, err = s.repo.UpdateItemQuantity(cart.ID, itemID, quantity)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	if rows == 0 {
		return nil, ErrCartItemNotFound
	}

	return s.view(cart)
}

func (s *CartService) RemoveItem(userID, itemID string) (*domain.CartView, error) {
	cart, err := s.repo.GetOrCreateCart(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	rows, err := s.repo.RemoveItem(cart.ID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}
	if rows == 0 {
		return nil, ErrCartItemNotFound
	}

	return s.view(cart)
}

// Clear empties the cart; clearing an already-empty cart is a no-op.
func (s *CartService) Clear(userID string) error {
	cart, err := s.repo.GetOrCreateCart(userID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	return s.repo.ClearCart(cart.ID)
}

func (s *CartService) view(cart *domain.Cart) (*domain.CartView, error) {
	items, err := s.repo.GetCartItems(cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}

	var subtotal float64
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}

	return &domain.CartView{
		ID:       cart.ID,
		UserID:   cart.UserID,
		Items:    items,
		Subtotal: round2(subtotal),
	}, nil
}

var _ CartServiceInterface = (*CartService)(nil)
var _ CartClearer = (*CartService)(nil)
