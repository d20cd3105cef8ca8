package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLogger_GeneratesID(t *testing.T) {
	var seen string
	h := NewRequestLogger(NewMockHandlerLogger()).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestIDFromContext(r)
		if !ok || id == "" {
			t.Fatalf("expected request id in context")
		}
		seen = id
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if rr.Header().Get("X-Request-ID") != seen {
		t.Fatalf("expected header to match context id")
	}
}

func TestRequestLogger_KeepsClientID(t *testing.T) {
	h := NewRequestLogger(NewMockHandlerLogger()).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, _ := GetRequestIDFromContext(r); id != "client-42" {
			t.Fatalf("expected client id, got %q", id)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") != "client-42" {
		t.Fatalf("unexpected header %q", rr.Header().Get("X-Request-ID"))
	}
}
