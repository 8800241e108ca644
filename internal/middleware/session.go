package middleware

import (
	"net/http"

	"shopswift-be/internal/logger"
	"shopswift-be/internal/session"
	"shopswift-be/internal/storage"

	"go.uber.org/zap"
)

// SessionMiddleware resolves the storefront session of the request. A
// missing, expired or forged token is replaced by a freshly issued one, sent
// back as a cookie and in the X-Session-Token header.
func SessionMiddleware(mgr *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromCtx(r.Context())

			fresh := false
			sid, err := mgr.Parse(session.ExtractToken(r))
			if err != nil {
				var token string
				sid, token, err = mgr.Issue()
				if err != nil {
					log.Error("failed to issue session token", zap.Error(err))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				fresh = true

				http.SetCookie(w, &http.Cookie{
					Name:     session.CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(mgr.TTL().Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				w.Header().Set(session.HeaderToken, token)
			}

			ctx := session.WithID(r.Context(), sid, fresh)
			ctx = logger.WithSessionID(ctx, sid)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionLock runs requests of the same session one at a time. It must sit
// after SessionMiddleware and after the rate limiter, so rejected requests
// never queue on the lock.
func SessionLock(locks *storage.KeyedMutex) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid, ok := session.IDFrom(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			unlock := locks.Lock(sid)
			defer unlock()

			next.ServeHTTP(w, r)
		})
	}
}
