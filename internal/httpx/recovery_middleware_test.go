package httpx

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRecoveryMiddleware_ReturnsJSON500(t *testing.T) {
	var logs bytes.Buffer
	log := zerolog.New(&logs)

	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}), RequestIDMiddleware, RecoveryMiddleware(log))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/book/v1", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "INTERNAL_ERROR") {
		t.Errorf("Expected error envelope, got %s", w.Body.String())
	}
	if !strings.Contains(logs.String(), "panic recovered") || !strings.Contains(logs.String(), "request_id") {
		t.Errorf("Expected panic to be logged with request id, got %s", logs.String())
	}
}

func TestAccessLogMiddleware(t *testing.T) {
	var logs bytes.Buffer
	handler := AccessLogMiddleware(zerolog.New(&logs))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/book/v1/3", nil))

	out := logs.String()
	for _, want := range []string{`"method":"DELETE"`, `"path":"/api/book/v1/3"`, `"status":418`, `"bytes":15`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected access log to contain %s, got %s", want, out)
		}
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimitMiddleware(ctx, 1, 2)
	handler := rl.Middleware(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/book/v1", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("Expected burst of 2 then 429, got %v", codes)
	}

	other := httptest.NewRequest(http.MethodGet, "/api/book/v1", nil)
	other.RemoteAddr = "10.0.0.2:5555"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, other)
	if w.Code != http.StatusOK {
		t.Errorf("Expected separate budget per client, got %d", w.Code)
	}
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	if got := clientKey(req); got != "192.0.2.1" {
		t.Errorf("Expected host without port, got %s", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := clientKey(req); got != "203.0.113.9" {
		t.Errorf("Expected first forwarded address, got %s", got)
	}
}
