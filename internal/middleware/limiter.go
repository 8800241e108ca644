package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"shopswift-be/internal/session"

	"golang.org/x/time/rate"
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per caller and tier. Auth and payment
// calls get a strict tier at a fifth of the general rate.
type RateLimiter struct {
	general rate.Limit
	burst   int

	mu       sync.Mutex
	visitors map[string]*visitor
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		general:  rate.Limit(rps),
		burst:    burst,
		visitors: make(map[string]*visitor),
	}
}

// Run evicts idle visitors every minute until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			rl.cleanup(3 * time.Minute)
		}
	}
}

func (rl *RateLimiter) cleanup(idle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, v := range rl.visitors {
		if time.Since(v.lastSeen) > idle {
			delete(rl.visitors, key)
		}
	}
}

// getVisitor retrieves or creates a rate limiter for the given key.
func (rl *RateLimiter) getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		rl.visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// Middleware rejects callers over their budget with 429. It must run after
// SessionMiddleware so established sessions are keyed by session id; new
// sessions fall back to the client IP.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, burst, tier := rl.resolveTier(r)

		var identity string
		if sid, ok := session.IDFrom(r.Context()); ok && !session.IsFresh(r.Context()) {
			identity = "session:" + sid
		} else {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			identity = "ip:" + ip
		}

		if !rl.getVisitor(identity+":"+tier, limit, burst).Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) resolveTier(r *http.Request) (rate.Limit, int, string) {
	if strings.HasPrefix(r.URL.Path, "/api/auth/") || r.URL.Path == "/api/checkout/pay" {
		return rl.general / 5, max(1, rl.burst/4), "strict"
	}
	return rl.general, rl.burst, "general"
}
