// cmd/worker/main.go
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/comicden/comics-backend/internal/config"
	"github.com/comicden/comics-backend/internal/database"
	"github.com/comicden/comics-backend/internal/queue"
	"github.com/comicden/comics-backend/internal/services"
)

// The worker is the consumer side of the order pipeline: it attaches to
// the comics queue and materializes purchase notifications into order
// rows for the lifetime of the process.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	// Migrations are idempotent; running them here keeps the worker
	// independent of server startup order.
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	bridge, err := queue.Connect(cfg.AMQP)
	if err != nil {
		log.Fatal("Failed to connect to broker:", err)
	}
	defer bridge.Close()

	if err := bridge.Declare(cfg.AMQP.Queue); err != nil {
		log.Fatal("Failed to declare queue:", err)
	}

	orderService := services.NewOrderService(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Worker consuming from queue %q", cfg.AMQP.Queue)
	if err := bridge.Consume(ctx, cfg.AMQP.Queue, orderService.HandleMessage); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Consumer stopped:", err)
	}

	log.Println("Worker exited")
}
