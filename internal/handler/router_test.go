package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdf-summary-agent/internal/domain"
)

func newTestRouter(svc domain.SummaryService) http.Handler {
	logger := NewMockHandlerLogger()
	return NewRouter(
		NewPageHandler(svc, "test-model", logger),
		NewSummaryHandler(svc, 1024, logger),
		NewRequestLogger(logger),
		[]string{"http://localhost:5173"},
	)
}

func TestNewRouter_Health(t *testing.T) {
	router := newTestRouter(&mockSummaryService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestNewRouter_Routes(t *testing.T) {
	router := newTestRouter(&mockSummaryService{})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/summaries/latest", http.StatusNotFound},
		{http.MethodPost, "/api/v1/summaries/latest/speech", http.StatusNotFound},
		{http.MethodGet, "/api/v1/session", http.StatusOK},
		{http.MethodDelete, "/api/v1/session", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			if rr.Code != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, rr.Code)
			}
		})
	}
}

func TestNewRouter_CORS(t *testing.T) {
	router := newTestRouter(&mockSummaryService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("expected allowed origin to be echoed, got %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set("Origin", "http://evil.test")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unexpected CORS header for unknown origin")
	}
}
