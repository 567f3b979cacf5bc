// Command sweep triggers one scheduler sweep on a running server. It is
// meant to be invoked by cron or a systemd timer.
//
// Usage:
//
//	sweep
//
// Requires SWEEP_URL (e.g. http://localhost:8080/internal/sweep) and
// SCHEDULER_SWEEP_SECRET environment variables to be set.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

func main() {
	url := os.Getenv("SWEEP_URL")
	if url == "" {
		log.Fatal("SWEEP_URL environment variable is required")
	}
	secret := os.Getenv("SCHEDULER_SWEEP_SECRET")
	if secret == "" {
		log.Fatal("SCHEDULER_SWEEP_SECRET environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("X-Sweep-Secret", secret)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("trigger sweep: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("sweep failed: %s: %s", resp.Status, body)
	}

	fmt.Printf("Sweep finished: %s\n", body)
}
