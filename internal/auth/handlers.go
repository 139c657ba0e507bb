package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/AgriPanel/AP-Backend/internal/httputil"
	"github.com/AgriPanel/AP-Backend/internal/metrics"
	"github.com/AgriPanel/AP-Backend/internal/session"
	"gorm.io/gorm"
)

// Handler serves the auth gateway endpoints. Metrics may be nil (tests).
type Handler struct {
	Store   SessionStore
	Metrics *metrics.Metrics
}

type userInfo struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenRequest struct {
	SessionToken string `json:"sessionToken"`
}

func (h *Handler) countStoreFailure() {
	if h.Metrics != nil {
		h.Metrics.IncSessionStoreFailure()
	}
}

// LoginHandler checks the request against the static credential table and
// issues a session token. The session row write is best-effort: the panel
// keeps working off the token text alone when the store is down, at the cost
// of role fidelity, so a failed write never fails the login.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if req.Email == "" || req.Password == "" {
		httputil.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if !checkCredentials(req.Email, req.Password) {
		httputil.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token := session.Issue()
	now := time.Now()
	sess := Session{
		ID:        token,
		Username:  usernameFor(req.Email),
		Role:      roleFor(req.Email),
		CreatedAt: now,
		ExpiresAt: now.Add(session.TTL),
	}

	if err := h.Store.Create(&sess); err != nil {
		log.Printf("[auth] could not store session: %v", err)
		h.countStoreFailure()
	}

	httputil.JSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Login successful",
		"user":         userInfo{Username: sess.Username, Email: req.Email, Role: sess.Role},
		"sessionToken": token,
		"expiresAt":    sess.ExpiresAt,
	})
}

// LogoutHandler removes the session row if a token was sent. Always succeeds:
// a missing token, a malformed body, or a store failure all end the same way
// for the caller.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.SessionToken != "" {
		if err := h.Store.Delete(req.SessionToken); err != nil {
			log.Printf("[auth] could not remove session: %v", err)
			h.countStoreFailure()
		}
	}

	httputil.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logout successful",
	})
}

// ValidateHandler checks a token in two tiers. Tier one is the session store:
// a found row answers with the real username and role, deleting the row first
// if it expired. Tier two kicks in when the lookup errors or finds nothing —
// the timestamp embedded in the token text decides, and a generic admin
// identity is synthesized so the panel stays usable without the store.
func (h *Handler) ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if req.SessionToken == "" {
		httputil.Error(w, http.StatusBadRequest, "Session token is required")
		return
	}

	if !session.HasPrefix(req.SessionToken) {
		httputil.Error(w, http.StatusUnauthorized, "Invalid session format")
		return
	}

	now := time.Now()

	sess, err := h.Store.Find(req.SessionToken)
	if err == nil {
		if sess.ExpiresAt.Before(now) {
			if derr := h.Store.Delete(req.SessionToken); derr != nil {
				log.Printf("[auth] could not delete expired session: %v", derr)
				h.countStoreFailure()
			}
			httputil.Error(w, http.StatusUnauthorized, "Session expired")
			return
		}

		httputil.JSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"valid":     true,
			"user":      userInfo{Username: sess.Username, Role: sess.Role},
			"expiresAt": sess.ExpiresAt,
		})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[auth] session lookup failed, falling back to token check: %v", err)
	}

	expired, perr := session.IsExpired(req.SessionToken, now)
	if perr != nil {
		httputil.Error(w, http.StatusUnauthorized, "Invalid session")
		return
	}
	if expired {
		httputil.Error(w, http.StatusUnauthorized, "Session expired")
		return
	}

	expiresAt, _ := session.ExpiresAt(req.SessionToken)
	httputil.JSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"valid":     true,
		"user":      userInfo{Username: "admin", Role: "admin"},
		"expiresAt": expiresAt,
	})
}
