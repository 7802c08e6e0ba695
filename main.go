package main

import (
	"context"

	"meal-orders/config"
	httpapi "meal-orders/internal/api/http"
	"meal-orders/internal/benefits"
	"meal-orders/internal/catalog"
	"meal-orders/internal/events"
	"meal-orders/internal/service"
	"meal-orders/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	ordersWriter := config.NewKafkaWriter("orders")
	defer ordersWriter.Close()

	paymentsReader := config.NewKafkaReader("payments", "order-svc")
	defer paymentsReader.Close()

	priceCache := storage.NewRedisPriceCache(rdb, config.PriceCacheTTL())
	catalogClient := catalog.NewClient(config.CatalogBaseURL(), config.ClientTimeout(), priceCache)
	benefitsClient := benefits.NewClient(config.BenefitsBaseURL(), config.ClientTimeout())
	publisher := events.NewKafkaPublisher(ordersWriter)

	orderRepo := storage.NewPostgresOrderRepository(db)
	cartRepo := storage.NewPostgresCartRepository(db)
	reservationRepo := storage.NewPostgresReservationRepository(db)

	cartService := service.NewCartService(cartRepo)
	orderService := service.NewOrderService(orderRepo, catalogClient, benefitsClient,
		publisher, cartService, service.DefaultQRGenerator{BaseURL: "http://localhost"},
		service.OrderConfig{DeliveryFee: config.DeliveryFee(), TaxRate: config.TaxRate()})
	reservationService := service.NewReservationService(reservationRepo, catalogClient)

	consumer := events.NewPaymentConsumer(paymentsReader, orderService)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(orderService, cartService, reservationService)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":8080", router)
}
