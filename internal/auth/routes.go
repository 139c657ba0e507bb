package auth

import (
	"net/http"

	"github.com/AgriPanel/AP-Backend/internal/metrics"
	"github.com/AgriPanel/AP-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

func SetupRoutes(m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	h := &Handler{Store: GormStore{}, Metrics: m}

	// Generous bucket: enough for a fat-fingered password, not for a script.
	r.With(middleware.LoginRateLimiter(rate.Limit(1), 5)).Post("/login", h.LoginHandler)
	r.Post("/logout", h.LogoutHandler)
	r.Post("/validate", h.ValidateHandler)

	return r
}
