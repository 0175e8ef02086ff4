package idempotency

import (
	"context"
	"log/slog"
	"net/http"
)

const HeaderKey = "Idempotency-Key"

type Checker interface {
	Seen(ctx context.Context, key string) (bool, error)
}

// Middleware rejects a request whose Idempotency-Key header was already
// claimed inside the store's TTL window. Requests without the header pass
// through, and so do requests when the store itself is unreachable —
// availability wins over duplicate suppression there.
func Middleware(log *slog.Logger, checker Checker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderKey)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			seen, err := checker.Seen(r.Context(), RequestKey(r.Method, r.URL.Path, key))
			if err != nil {
				log.Error("idempotency check failed", "key", key, "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if seen {
				log.Info("duplicate request rejected", "key", key, "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(`{"error":"duplicate request"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
