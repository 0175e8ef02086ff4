package idempotency

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	seen map[string]bool
	err  error
}

func (f *fakeChecker) Seen(ctx context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.seen[key] {
		return true, nil
	}
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	f.seen[key] = true
	return false, nil
}

func serve(t *testing.T, checker Checker, header string) *httptest.ResponseRecorder {
	t.Helper()
	log := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	if header != "" {
		req.Header.Set(HeaderKey, header)
	}
	rec := httptest.NewRecorder()
	Middleware(log, checker)(next).ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_FirstRequestPasses(t *testing.T) {
	checker := &fakeChecker{}
	rec := serve(t, checker, "key-1")
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestMiddleware_DuplicateRejected(t *testing.T) {
	checker := &fakeChecker{}
	serve(t, checker, "key-1")
	rec := serve(t, checker, "key-1")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate request")
}

func TestMiddleware_NoHeaderPassesThrough(t *testing.T) {
	checker := &fakeChecker{}
	rec := serve(t, checker, "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, checker.seen)
}

func TestMiddleware_StoreErrorFailsOpen(t *testing.T) {
	checker := &fakeChecker{err: errors.New("redis down")}
	rec := serve(t, checker, "key-1")
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
