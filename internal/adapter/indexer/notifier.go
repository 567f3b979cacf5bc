// Package indexer pings search engines after a page is published or
// updated. Notification is best-effort: failures are reported to the
// caller for logging but never block or roll back a publish.
package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultEndpoint = "https://api.indexnow.org/indexnow"

// Notifier submits freshly published URLs via the IndexNow protocol.
type Notifier struct {
	endpoint   string
	key        string
	siteHost   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewNotifier creates an IndexNow notifier. siteBaseURL is the public base
// of the website the URLs belong to.
func NewNotifier(key, siteBaseURL string, timeout time.Duration, logger *slog.Logger) (*Notifier, error) {
	u, err := url.Parse(siteBaseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("indexer: invalid site base url %q", siteBaseURL)
	}

	return &Notifier{
		endpoint:   defaultEndpoint,
		key:        key,
		siteHost:   u.Host,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "indexnow"),
	}, nil
}

// NewNotifierWithEndpoint creates a notifier against a custom endpoint (for testing).
func NewNotifierWithEndpoint(key, siteBaseURL, endpoint string, logger *slog.Logger) (*Notifier, error) {
	n, err := NewNotifier(key, siteBaseURL, 10*time.Second, logger)
	if err != nil {
		return nil, err
	}
	n.endpoint = endpoint
	return n, nil
}

// submission is the IndexNow batch submission payload.
type submission struct {
	Host    string   `json:"host"`
	Key     string   `json:"key"`
	URLList []string `json:"urlList"`
}

// Notify submits the URLs for recrawling. An empty list is a no-op.
func (n *Notifier) Notify(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	encoded, err := json.Marshal(submission{
		Host:    n.siteHost,
		Key:     n.key,
		URLList: urls,
	})
	if err != nil {
		return fmt.Errorf("indexer: encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("indexer: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(encoded)), nil
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.log.WarnContext(ctx, "indexnow submission failed", slog.String("error", err.Error()))
		return fmt.Errorf("indexer: submit: %w", err)
	}
	defer resp.Body.Close()

	// IndexNow returns 200 or 202 on acceptance.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		n.log.WarnContext(ctx, "indexnow submission rejected",
			slog.Int("status", resp.StatusCode),
			slog.Int("urls", len(urls)))
		return fmt.Errorf("indexer: submit status %d", resp.StatusCode)
	}

	n.log.DebugContext(ctx, "indexnow submission accepted", slog.Int("urls", len(urls)))
	return nil
}
