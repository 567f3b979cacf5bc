package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/nashirhq/nashir-backend/internal/service/social"
)

// stateCookie carries the hash of the OAuth state across the redirect.
// The raw state travels through the provider; only its hash is stored
// client-side, so a leaked cookie cannot be replayed as a state value.
const stateCookie = "li_oauth_state"

// socialConnectService defines the minimal interface needed by SocialHandler.
type socialConnectService interface {
	BeginConnect(ctx context.Context) (*social.ConnectIntent, error)
	CompleteConnect(ctx context.Context, code, state, stateHash string) (*social.ConnectionStatus, error)
	Status(ctx context.Context) (*social.ConnectionStatus, error)
	Disconnect(ctx context.Context) error
}

// SocialHandler serves the LinkedIn account connection endpoints.
type SocialHandler struct {
	svc socialConnectService
	log *slog.Logger
}

// NewSocialHandler creates a SocialHandler. svc may be nil when the
// LinkedIn integration is not configured; every endpoint then answers 501.
func NewSocialHandler(svc socialConnectService, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{svc: svc, log: logger.With("handler", "social")}
}

func (h *SocialHandler) disabled(w http.ResponseWriter) bool {
	if h.svc == nil {
		writeError(w, http.StatusNotImplemented, "linkedin integration is disabled")
		return true
	}
	return false
}

type connectResponse struct {
	AuthorizeURL string `json:"authorizeUrl"`
}

type connectionStatusResponse struct {
	Connected bool       `json:"connected"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Scope     string     `json:"scope,omitempty"`
	MemberURN string     `json:"memberUrn,omitempty"`
}

// Connect handles POST /api/linkedin/connect. It hands the caller the
// provider authorize URL and binds the pending OAuth state to the browser
// via a short-lived cookie.
func (h *SocialHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if h.disabled(w) {
		return
	}

	intent, err := h.svc.BeginConnect(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    intent.StateHash,
		Path:     "/api/linkedin",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, connectResponse{AuthorizeURL: intent.AuthorizeURL})
}

// Callback handles GET /api/linkedin/callback?code=&state=. The state
// echoed by the provider must hash to the value in the cookie set by
// Connect; a missing cookie fails the same way as a mismatched state.
func (h *SocialHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if h.disabled(w) {
		return
	}

	var stateHash string
	if c, err := r.Cookie(stateCookie); err == nil {
		stateHash = c.Value
	}

	status, err := h.svc.CompleteConnect(
		r.Context(),
		r.URL.Query().Get("code"),
		r.URL.Query().Get("state"),
		stateHash,
	)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/api/linkedin",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, toConnectionStatusResponse(status))
}

// Status handles GET /api/linkedin/status.
func (h *SocialHandler) Status(w http.ResponseWriter, r *http.Request) {
	if h.disabled(w) {
		return
	}

	status, err := h.svc.Status(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toConnectionStatusResponse(status))
}

// Disconnect handles DELETE /api/linkedin/connection. Disconnecting an
// account that was never connected is a no-op.
func (h *SocialHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if h.disabled(w) {
		return
	}

	if err := h.svc.Disconnect(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toConnectionStatusResponse(s *social.ConnectionStatus) connectionStatusResponse {
	return connectionStatusResponse{
		Connected: s.Connected,
		ExpiresAt: s.ExpiresAt,
		Scope:     s.Scope,
		MemberURN: s.MemberURN,
	}
}
