package tests

import (
	"context"
	"testing"

	"meal-orders/internal/catalog"
	"meal-orders/internal/domain"
	"meal-orders/internal/mocks"
	"meal-orders/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func resolutionFor(items map[string]domain.ResolvedItem) *catalog.Resolution {
	return &catalog.Resolution{
		Items:        items,
		Verified:     true,
		FromFallback: map[string]bool{},
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	caller := domain.CallerContext{UserID: "user-1", CompanyID: "company-1", EmployeeID: "emp-1"}

	tests := []struct {
		name          string
		caller        domain.CallerContext
		req           *domain.CreateOrderRequest
		prepareMocks  func(repo *mocks.OrderRepository, prices *mocks.PriceResolver, subsidies *mocks.SubsidyResolver, publisher *mocks.EventPublisher, carts *mocks.CartClearer)
		expectedError error
		check         func(t *testing.T, order *domain.Order, warnings []string)
	}{
		{
			name:   "success_personal_order",
			caller: domain.CallerContext{UserID: "user-1"},
			req: &domain.CreateOrderRequest{
				OrderType:    domain.OrderTypePersonal,
				DeliveryDate: "2025-03-10",
				Items: []domain.OrderItemRequest{
					{ItemID: "item-a", Quantity: 2},
				},
			},
			prepareMocks: func(repo *mocks.OrderRepository, prices *mocks.PriceResolver, subsidies *mocks.SubsidyResolver, publisher *mocks.EventPublisher, carts *mocks.CartClearer) {
				prices.On("ResolveItems", ctx, []string{"item-a"}, map[string]domain.ItemFallback{}).
					Return(resolutionFor(map[string]domain.ResolvedItem{
						"item-a": {ID: "item-a", Name: "Plov", Price: 25000, Available: true},
					}), nil).Once()
				repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).
					Run(func(args mock.Arguments) {
						args.Get(0).(*domain.Order).ID = 41
					}).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(evt domain.OrderEvent) bool {
					return evt.Type == domain.EventOrderCreated && evt.OrderID == 41
				})).Return(nil).Once()
			},
			check: func(t *testing.T, order *domain.Order, warnings []string) {
				assert.Empty(t, warnings)
				assert.Equal(t, 50000.0, order.Subtotal)
				assert.Equal(t, 55000.0, order.Total)
				assert.Equal(t, 55000.0, order.UserPayable)
				assert.Equal(t, 0.0, order.CompanyPayable)
				assert.True(t, order.CatalogVerified)
				assert.Equal(t, domain.StatusPending, order.Status)
				assert.Equal(t, "Plov", order.Items[0].ItemName)
			},
		},
		{
			name:   "success_corporate_subsidy_split",
			caller: caller,
			req: &domain.CreateOrderRequest{
				OrderType:    domain.OrderTypeCorporate,
				MealType:     "lunch",
				DeliveryDate: "2025-03-10",
				Items: []domain.OrderItemRequest{
					{ItemID: "item-a", Quantity: 4},
				},
			},
			prepareMocks: func(repo *mocks.OrderRepository, prices *mocks.PriceResolver, subsidies *mocks.SubsidyResolver, publisher *mocks.EventPublisher, carts *mocks.CartClearer) {
				prices.On("ResolveItems", ctx, []string{"item-a"}, map[string]domain.ItemFallback{}).
					Return(resolutionFor(map[string]domain.ResolvedItem{
						"item-a": {ID: "item-a", Name: "Plov", Price: 25000, Available: true},
					}), nil).Once()
				subsidies.On("CalculateSubsidy", ctx, "company-1", "user-1", 100000.0, "lunch").
					Return(domain.SubsidyResult{SubsidyAmount: 30000, RuleID: "rule-7"}).Once()
				repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, order *domain.Order, warnings []string) {
				assert.Empty(t, warnings)
				assert.Equal(t, 100000.0, order.Subtotal)
				assert.Equal(t, 30000.0, order.SubsidyAmount)
				assert.Equal(t, 75000.0, order.UserPayable)
				assert.Equal(t, 30000.0, order.CompanyPayable)
				assert.Equal(t, order.Total, order.UserPayable+order.CompanyPayable)
			},
		},
		{
			name:   "subsidy_service_down_degrades_to_zero",
			caller: caller,
			req: &domain.CreateOrderRequest{
				OrderType:    domain.OrderTypeCorporate,
				MealType:     "lunch",
				DeliveryDate: "2025-03-10",
				Items: []domain.OrderItemRequest{
					{ItemID: "item-a", Quantity: 1},
				},
			},
			prepareMocks: func(repo *mocks.OrderRepository, prices *mocks.PriceResolver, subsidies *mocks.SubsidyResolver, publisher *mocks.EventPublisher, carts *mocks.CartClearer) {
				prices.On("ResolveItems", ctx, []string{"item-a"}, map[string]domain.ItemFallback{}).
					Return(resolutionFor(map[string]domain.ResolvedItem{
						"item-a": {ID: "item-a", Name: "Plov", Price: 25000, Available: true},
					}), nil).Once()
				subsidies.On("CalculateSubsidy", ctx, "company-1", "user-1", 25000.0, "lunch").
					Return(domain.SubsidyResult{SubsidyAmount: 0, Reason: "benefits service unavailable"}).Once()
				repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, order *domain.Order, warnings []string) {
				assert.Len(t, warnings, 1)
				assert.Contains(t, warnings[0], "subsidy not applied")
				assert.Equal(t, 0.0, order.SubsidyAmount)
				assert.Equal(t, order.Total, order.UserPayable)
			},
		},
		{
			name:   "catalog_down_uses_client_fallback",
			caller: domain.CallerContext{UserID: "user-1"},
			req: &domain.CreateOrderRequest{
				OrderType:    domain.OrderTypePersonal,
				DeliveryDate: "2025-03-10",
				Items: []domain.OrderItemRequest{
					{ItemID: "x", Quantity: 2, ItemName: "Soup", UnitPrice: 50000},
				},
			},
			prepareMocks: func(repo *mocks.OrderRepository, prices *mocks.PriceResolver, subsidies *mocks.SubsidyResolver, publisher *mocks.EventPublisher, carts *mocks.CartClearer) {
				prices.On("ResolveItems", ctx, []string{"x"},
					map[string]domain.ItemFallback{"x": {Name: "Soup", Price: 50000}}).
					Return(&catalog.Resolution{
						Items: map[string]domain.ResolvedItem{
							"x": {ID: "x", Name: "Soup", Price: 50000, Available: true},
						},
						Verified:     false,
						FromFallback: map[string]bool{"x": true},
					}, nil).Once()
				repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, order *domain.Order, warnings []string) {
				assert.Equal(t, 100000.0, order.Subtotal)
				assert.False(t, order.CatalogVerified)
				assert.NotEmpty(t, warnings)
				assert.Contains(t, warnings[0], "degraded")
			},
		},
		{
			name:   "error_item_not_found",
			caller: domain.CallerContext{UserID: "user-1"},
			req: &domain.CreateOrderRequest{
				DeliveryDate: "2025-03-10",
				Items: []domain.OrderItemRequest{
					{ItemID: "ghost", Quantity: 1},
				},
			},
			prepareMocks: func(repo *mocks.OrderRepository, prices *mocks.PriceResolver, subsidies *mocks.SubsidyResolver, publisher *mocks.EventPublisher, carts *mocks.CartClearer) {
				prices.On("ResolveItems", ctx, []string{"ghost"}, map[string]domain.ItemFallback{}).
					Return(resolutionFor(map[string]domain.ResolvedItem{}), nil).Once()
			},
			expectedError: service.ErrItemNotFound,
		},
		{
			name:   "error_item_unavailable",
			caller: domain.CallerContext{UserID: "user-1"},
			req: &domain.CreateOrderRequest{
				DeliveryDate: "2025-03-10",
				Items: []domain.OrderItemRequest{
					{ItemID: "item-a", Quantity: 1},
				},
			},
			prepareMocks: func(repo *mocks.OrderRepository, prices *mocks.PriceResolver, subsidies *mocks.SubsidyResolver, publisher *mocks.EventPublisher, carts *mocks.CartClearer) {
				prices.On("ResolveItems", ctx, []string{"item-a"}, map[string]domain.ItemFallback{}).
					Return(resolutionFor(map[string]domain.ResolvedItem{
						"item-a": {ID: "item-a", Name: "Plov", Price: 25000, Available: false},
					}), nil).Once()
			},
			expectedError: service.ErrItemUnavailable,
		},
		{
			name:   "error_empty_order",
			caller: domain.CallerContext{UserID: "user-1"},
			req: &domain.CreateOrderRequest{
				DeliveryDate: "2025-03-10",
			},
			prepareMocks:  func(repo *mocks.OrderRepository, prices *mocks.PriceResolver, subsidies *mocks.SubsidyResolver, publisher *mocks.EventPublisher, carts *mocks.CartClearer) {},
			expectedError: service.ErrInvalidOrder,
		},
		{
			name:   "cart_sourced_order_clears_cart",
			caller: domain.CallerContext{UserID: "user-1"},
			req: &domain.CreateOrderRequest{
				OrderType:    domain.OrderTypePersonal,
				DeliveryDate: "2025-03-10",
				FromCart:     true,
				Items: []domain.OrderItemRequest{
					{ItemID: "item-a", Quantity: 1},
				},
			},
			prepareMocks: func(repo *mocks.OrderRepository, prices *mocks.PriceResolver, subsidies *mocks.SubsidyResolver, publisher *mocks.EventPublisher, carts *mocks.CartClearer) {
				prices.On("ResolveItems", ctx, []string{"item-a"}, map[string]domain.ItemFallback{}).
					Return(resolutionFor(map[string]domain.ResolvedItem{
						"item-a": {ID: "item-a", Name: "Plov", Price: 25000, Available: true},
					}), nil).Once()
				repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
				carts.On("Clear", "user-1").Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, order *domain.Order, warnings []string) {
				assert.Equal(t, 25000.0, order.Subtotal)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			prices := mocks.NewPriceResolver(t)
			subsidies := mocks.NewSubsidyResolver(t)
			publisher := mocks.NewEventPublisher(t)
			carts := mocks.NewCartClearer(t)

			svc := service.NewOrderService(repo, prices, subsidies, publisher, carts, nil,
				service.OrderConfig{DeliveryFee: 5000})

			testCase.prepareMocks(repo, prices, subsidies, publisher, carts)

			order, warnings, err := svc.Create(ctx, testCase.caller, testCase.req)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, order)
				return
			}

			assert.NoError(t, err)
			if testCase.check != nil {
				testCase.check(t, order, warnings)
			}
		})
	}
}

func TestOrderService_Create_InvariantHolds(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewOrderRepository(t)
	prices := mocks.NewPriceResolver(t)
	subsidies := mocks.NewSubsidyResolver(t)

	prices.On("ResolveItems", ctx, []string{"item-a", "item-b"}, map[string]domain.ItemFallback{}).
		Return(resolutionFor(map[string]domain.ResolvedItem{
			"item-a": {ID: "item-a", Name: "Plov", Price: 32500.5, Available: true},
			"item-b": {ID: "item-b", Name: "Lagman", Price: 28999.99, Available: true},
		}), nil).Once()
	subsidies.On("CalculateSubsidy", ctx, "company-1", "user-1", mock.Anything, "dinner").
		Return(domain.SubsidyResult{SubsidyAmount: 40000}).Once()
	repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()

	svc := service.NewOrderService(repo, prices, subsidies, nil, nil, nil,
		service.OrderConfig{DeliveryFee: 7000, TaxRate: 0.12})

	order, _, err := svc.Create(ctx,
		domain.CallerContext{UserID: "user-1", CompanyID: "company-1"},
		&domain.CreateOrderRequest{
			OrderType:    domain.OrderTypeCorporate,
			MealType:     "dinner",
			DeliveryDate: "2025-03-10",
			Items: []domain.OrderItemRequest{
				{ItemID: "item-a", Quantity: 3},
				{ItemID: "item-b", Quantity: 2},
			},
		})

	assert.NoError(t, err)
	assert.InDelta(t, order.Subtotal-order.Discount+order.Tax+order.DeliveryFee, order.Total, 0.01)
	assert.InDelta(t, order.Total, order.UserPayable+order.CompanyPayable, 0.01)
	for _, item := range order.Items {
		assert.InDelta(t, float64(item.Quantity)*item.UnitPrice, item.LineTotal, 0.01)
	}
}

func TestOrderService_Reorder_CarriesSnapshotAsFallback(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewOrderRepository(t)
	prices := mocks.NewPriceResolver(t)
	publisher := mocks.NewEventPublisher(t)

	prior := &domain.Order{
		ID:        7,
		UserID:    "user-1",
		OrderType: domain.OrderTypePersonal,
		Status:    domain.StatusCompleted,
		Items: []domain.OrderItem{
			{ItemID: "retired", ItemName: "Old Soup", Quantity: 2, UnitPrice: 45000},
		},
	}

	repo.On("GetOrder", 7).Return(prior, nil).Once()
	// The catalog no longer knows the item, but the old snapshot is carried
	// as fallback so the replay still succeeds.
	prices.On("ResolveItems", ctx, []string{"retired"},
		map[string]domain.ItemFallback{"retired": {Name: "Old Soup", Price: 45000}}).
		Return(&catalog.Resolution{
			Items: map[string]domain.ResolvedItem{
				"retired": {ID: "retired", Name: "Old Soup", Price: 45000, Available: true},
			},
			Verified:     true,
			FromFallback: map[string]bool{"retired": true},
		}, nil).Once()
	repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

	svc := service.NewOrderService(repo, prices, nil, publisher, nil, nil, service.OrderConfig{})

	order, warnings, err := svc.Reorder(ctx, 7, domain.CallerContext{UserID: "user-1"})
	assert.NoError(t, err)
	assert.Equal(t, 90000.0, order.Subtotal)
	assert.NotEmpty(t, warnings)
}

func TestOrderService_Reorder_RejectsForeignOrder(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	repo.On("GetOrder", 7).Return(&domain.Order{ID: 7, UserID: "someone-else"}, nil).Once()

	svc := service.NewOrderService(repo, mocks.NewPriceResolver(t), nil, nil, nil, nil, service.OrderConfig{})

	_, _, err := svc.Reorder(context.Background(), 7, domain.CallerContext{UserID: "user-1"})
	assert.ErrorIs(t, err, service.ErrNotOrderOwner)
}
