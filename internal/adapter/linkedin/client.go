// Package linkedin talks to the LinkedIn OAuth and UGC post APIs.
package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

const (
	defaultAuthBaseURL = "https://www.linkedin.com"
	defaultAPIBaseURL  = "https://api.linkedin.com"
)

// Client exchanges OAuth authorization codes and creates UGC posts.
type Client struct {
	clientID     string
	clientSecret string
	redirectURI  string
	authBaseURL  string
	apiBaseURL   string
	httpClient   *http.Client
	log          *slog.Logger
}

// NewClient creates a LinkedIn client.
// Parameters come from config.LinkedInConfig.
func NewClient(clientID, clientSecret, redirectURI string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		authBaseURL:  defaultAuthBaseURL,
		apiBaseURL:   defaultAPIBaseURL,
		httpClient:   &http.Client{Timeout: timeout},
		log:          logger.With("adapter", "linkedin"),
	}
}

// NewClientWithURLs creates a client against custom endpoints (for testing).
func NewClientWithURLs(clientID, clientSecret, redirectURI, authBaseURL, apiBaseURL string, logger *slog.Logger) *Client {
	c := NewClient(clientID, clientSecret, redirectURI, 10*time.Second, logger)
	c.authBaseURL = authBaseURL
	c.apiBaseURL = apiBaseURL
	return c
}

// AuthorizeURL builds the member authorization URL for the connect redirect.
func (c *Client) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", c.clientID)
	q.Set("redirect_uri", c.redirectURI)
	q.Set("state", state)
	q.Set("scope", "w_member_social openid profile")

	return c.authBaseURL + "/oauth/v2/authorization?" + q.Encode()
}

// Token is the normalized result of a code exchange.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
	Scope       string
	MemberURN   string
}

// tokenResponse represents LinkedIn's token endpoint response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// errorResponse represents LinkedIn's error response format.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

// userinfoResponse represents the OpenID userinfo endpoint response.
type userinfoResponse struct {
	Sub string `json:"sub"`
}

// Exchange trades an authorization code for an access token and resolves
// the member URN the token belongs to.
func (c *Client) Exchange(ctx context.Context, code string) (*Token, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("client_id", c.clientID)
	data.Set("client_secret", c.clientSecret)
	data.Set("redirect_uri", c.redirectURI)

	encodedData := data.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.authBaseURL+"/oauth/v2/accessToken", strings.NewReader(encodedData))
	if err != nil {
		return nil, fmt.Errorf("linkedin: create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(encodedData)), nil
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "linkedin token exchange failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("linkedin: token exchange: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("linkedin: read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			c.log.ErrorContext(ctx, "linkedin token exchange failed",
				slog.Int("status", resp.StatusCode),
				slog.String("error", errResp.Error))
			if resp.StatusCode == http.StatusBadRequest {
				return nil, fmt.Errorf("linkedin: invalid or expired code: %w", domain.ErrValidation)
			}
		}
		c.log.ErrorContext(ctx, "linkedin token exchange failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("linkedin: token endpoint status %d", resp.StatusCode)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("linkedin: decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("linkedin: token response missing access_token")
	}

	memberURN, err := c.fetchMemberURN(ctx, tokenResp.AccessToken)
	if err != nil {
		return nil, err
	}

	return &Token{
		AccessToken: tokenResp.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
		Scope:       tokenResp.Scope,
		MemberURN:   memberURN,
	}, nil
}

// fetchMemberURN resolves the token owner's person URN via OpenID userinfo.
func (c *Client) fetchMemberURN(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/v2/userinfo", nil)
	if err != nil {
		return "", fmt.Errorf("linkedin: create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "linkedin userinfo failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("linkedin: userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "linkedin userinfo failed", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("linkedin: userinfo status %d", resp.StatusCode)
	}

	var userinfo userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&userinfo); err != nil {
		return "", fmt.Errorf("linkedin: decode userinfo: %w", err)
	}
	if userinfo.Sub == "" {
		return "", fmt.Errorf("linkedin: userinfo missing sub")
	}

	return "urn:li:person:" + userinfo.Sub, nil
}

// ugcPostRequest is the minimal UGC post creation payload.
type ugcPostRequest struct {
	Author          string                  `json:"author"`
	LifecycleState  string                  `json:"lifecycleState"`
	SpecificContent map[string]shareContent `json:"specificContent"`
	Visibility      map[string]string       `json:"visibility"`
}

type shareContent struct {
	ShareCommentary    shareText `json:"shareCommentary"`
	ShareMediaCategory string    `json:"shareMediaCategory"`
}

type shareText struct {
	Text string `json:"text"`
}

// Post creates a UGC post as the member and returns its public permalink.
// A 401 surfaces as domain.ErrTokenExpired so callers can prompt a reconnect.
func (c *Client) Post(ctx context.Context, accessToken, authorURN, text string) (string, error) {
	payload := ugcPostRequest{
		Author:         authorURN,
		LifecycleState: "PUBLISHED",
		SpecificContent: map[string]shareContent{
			"com.linkedin.ugc.ShareContent": {
				ShareCommentary:    shareText{Text: text},
				ShareMediaCategory: "NONE",
			},
		},
		Visibility: map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("linkedin: encode post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBaseURL+"/v2/ugcPosts", bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("linkedin: create post request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(encoded)), nil
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "linkedin post failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("linkedin: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.WarnContext(ctx, "linkedin token rejected", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("linkedin: %w", domain.ErrTokenExpired)
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		var errResp errorResponse
		msg := ""
		if err := json.Unmarshal(body, &errResp); err == nil {
			msg = errResp.Message
		}
		c.log.ErrorContext(ctx, "linkedin post failed",
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg))
		return "", fmt.Errorf("linkedin: post status %d", resp.StatusCode)
	}

	postID := resp.Header.Get("X-Restli-Id")
	if postID == "" {
		var created struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil || created.ID == "" {
			return "", fmt.Errorf("linkedin: post response missing id")
		}
		postID = created.ID
	}

	return "https://www.linkedin.com/feed/update/" + postID, nil
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
