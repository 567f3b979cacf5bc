// Command server runs the nashir content publishing backend.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/nashirhq/nashir-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
