// Package drafter talks to the AI drafting gateway that turns topics into
// prompts, prompts into bilingual articles, and articles into social copy.
package drafter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

// Client calls the drafting gateway over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a drafting gateway client.
// Parameters come from config.DrafterConfig.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "drafter"),
	}
}

// promptRequest asks the gateway to draft a generation prompt for a topic.
type promptRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

type promptResponse struct {
	Prompt string `json:"prompt"`
}

// articleRequest asks the gateway to draft a full article from an approved prompt.
type articleRequest struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language"`
}

// Article is a drafted article in one language.
type Article struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// socialRequest asks the gateway to draft a social post promoting an article.
type socialRequest struct {
	ArticleTitle string `json:"articleTitle"`
	ArticleURL   string `json:"articleUrl"`
	Language     string `json:"language"`
}

type socialResponse struct {
	Text string `json:"text"`
}

// GeneratePrompt drafts a generation prompt from the topic's title,
// description and keywords.
func (c *Client) GeneratePrompt(ctx context.Context, t *domain.Topic) (string, error) {
	req := promptRequest{Title: t.Title, Keywords: t.Keywords}
	if t.Description != nil {
		req.Description = *t.Description
	}

	var resp promptResponse
	if err := c.post(ctx, "/v1/prompts", req, &resp); err != nil {
		return "", err
	}
	if resp.Prompt == "" {
		return "", fmt.Errorf("drafter: empty prompt for topic %s", t.ID)
	}

	return resp.Prompt, nil
}

// GenerateArticle drafts an article in the given language from an approved prompt.
func (c *Client) GenerateArticle(ctx context.Context, prompt string, lang domain.Language) (*Article, error) {
	var resp Article
	err := c.post(ctx, "/v1/articles", articleRequest{Prompt: prompt, Language: string(lang)}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Title == "" || resp.Body == "" {
		return nil, fmt.Errorf("drafter: incomplete %s article draft", lang)
	}

	return &resp, nil
}

// GenerateSocialPost drafts social copy promoting a published article.
func (c *Client) GenerateSocialPost(ctx context.Context, articleTitle, articleURL string, lang domain.Language) (string, error) {
	var resp socialResponse
	err := c.post(ctx, "/v1/social-posts", socialRequest{
		ArticleTitle: articleTitle,
		ArticleURL:   articleURL,
		Language:     string(lang),
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Text == "" {
		return "", fmt.Errorf("drafter: empty %s social draft", lang)
	}

	return resp.Text, nil
}

// post sends a JSON request and decodes the JSON response.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("drafter: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("drafter: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(encoded)), nil
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "drafter request failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("drafter: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "drafter request failed",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return fmt.Errorf("drafter: %s status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("drafter: decode response: %w", err)
	}

	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(500 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return c.httpClient.Do(req)
}
