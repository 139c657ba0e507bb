package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/AgriPanel/AP-Backend/internal/httputil"
	"github.com/AgriPanel/AP-Backend/internal/session"
	"golang.org/x/time/rate"
)

// ProtectedPrefixes are the page paths that require a session cookie.
var ProtectedPrefixes = []string{
	"/dashboard",
	"/farmers",
	"/vendors",
	"/organic-products",
	"/banners",
	"/news",
}

func isProtected(path string) bool {
	for _, prefix := range ProtectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// EdgeGuard is the request-time route gate for page routes. It only checks
// that the cookie exists and carries the admin_session_ prefix — never expiry
// and never the store. An expired but well-formed cookie therefore still
// passes here and is only caught by /api/auth/validate; that split is the
// documented behavior, not an oversight to patch.
//
// Protected path without a well-formed cookie → redirect to the login page.
// Login page with a well-formed cookie → redirect to the dashboard.
func EdgeGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		token := ""
		if cookie, err := r.Cookie(session.CookieName); err == nil {
			token = cookie.Value
		}
		wellFormed := session.HasPrefix(token)

		if isProtected(path) && !wellFormed {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		if (path == "/" || path == "/login") && wellFormed {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CORSMiddleware echoes the origin back only if it's on the allow-list.
func CORSMiddleware(allowed []string) func(http.Handler) http.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		allowedSet[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowedSet[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoginRateLimiter applies a per-IP token bucket to the login endpoint.
// Exhausted buckets get a 429. Buckets live for the life of the process;
// with three staff accounts the map stays tiny.
func LoginRateLimiter(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	var mu sync.Mutex
	visitors := make(map[string]*rate.Limiter)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		lim, ok := visitors[ip]
		if !ok {
			lim = rate.NewLimiter(limit, burst)
			visitors[ip] = lim
		}
		return lim
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiterFor(ip).Allow() {
				httputil.Error(w, http.StatusTooManyRequests, "Too many login attempts")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
