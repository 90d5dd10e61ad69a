package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/sarthakSixt/rental/pkg/config"
	"github.com/sarthakSixt/rental/pkg/db"
	"github.com/sarthakSixt/rental/pkg/mq"
	"github.com/sarthakSixt/rental/pkg/obs"
	"github.com/sarthakSixt/rental/services/rental-api/internal/repository"
	"github.com/sarthakSixt/rental/services/rental-api/internal/seed"
	"github.com/sarthakSixt/rental/services/rental-api/internal/service"
	httpx "github.com/sarthakSixt/rental/services/rental-api/internal/transport/http"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.LoadAPI()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if cfg.TracingEnabled {
		shutdown := obs.InitTracer("rental-api")
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("tracer shutdown: %v", err)
			}
		}()
	}

	gdb := db.Open(cfg.PGRentalDSN)

	users := repository.NewUserRepo(gdb)
	catalog := repository.NewCatalogRepo(gdb)
	pricing := repository.NewPricingRepo(gdb)
	bookings := repository.NewBookingRepo(gdb)
	payments := repository.NewPaymentRepo(gdb)
	for _, m := range []interface{ Migrate() error }{users, catalog, pricing, bookings, payments} {
		if err := m.Migrate(); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	if cfg.SeedOnStart {
		if err := seed.Run(gdb); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	var bookingPub, paymentPub *mq.Publisher
	if cfg.RabbitURL != "" {
		if bookingPub, err = mq.NewPublisher(cfg.RabbitURL, cfg.BookingExchange); err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer bookingPub.Close()
		if paymentPub, err = mq.NewPublisher(cfg.RabbitURL, cfg.PaymentExchange); err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer paymentPub.Close()
	} else {
		log.Println("RABBIT_URL unset, lifecycle events disabled")
	}

	tokenTTL := time.Duration(cfg.JWTExpireMin) * time.Minute
	authSvc := service.NewAuthSvc(users, tokenTTL)
	catalogSvc := service.NewCatalogSvc(catalog)
	pricingSvc := service.NewPricingSvc(pricing, catalog)
	bookingSvc := service.NewBookingSvc(bookings, users, catalog, pricing, bookingPub)
	paymentSvc := service.NewPaymentSvc(payments, bookingSvc, paymentPub)

	r := httpx.NewRouter(httpx.Handlers{
		Auth:     httpx.NewAuthHandler(authSvc),
		Car:      httpx.NewCarHandler(catalogSvc),
		Category: httpx.NewCategoryHandler(catalogSvc),
		Pricing:  httpx.NewPricingHandler(pricingSvc),
		Booking:  httpx.NewBookingHandler(bookingSvc),
		Payment:  httpx.NewPaymentHandler(paymentSvc),
	})

	log.Printf("rental-api listening on %s", cfg.APIHTTPAddr)
	if err := r.Run(cfg.APIHTTPAddr); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
