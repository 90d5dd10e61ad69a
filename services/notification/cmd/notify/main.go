package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sarthakSixt/rental/pkg/config"
	"github.com/sarthakSixt/rental/pkg/mq"
	"github.com/sarthakSixt/rental/services/notification/internal/notifier"
	"github.com/sarthakSixt/rental/services/notification/internal/worker"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.LoadNotify()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	consumer, err := mq.NewConsumer(cfg.RabbitURL, cfg.Queue,
		[]string{cfg.BookingExchange, cfg.PaymentExchange})
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer consumer.Close()

	notifiers := []notifier.Notifier{notifier.Console{}}
	if cfg.TelegramToken != "" {
		tg, err := notifier.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		notifiers = append(notifiers, tg)
		log.Println("telegram notifications enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("notification worker consuming %s", cfg.Queue)
	if err := worker.New(consumer, notifiers...).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("worker: %v", err)
	}
}
