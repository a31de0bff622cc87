package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCors(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("handles OPTIONS preflight request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/validate", nil)
		rec := httptest.NewRecorder()

		Cors(handler).ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
		}

		if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin == "" {
			t.Error("expected Access-Control-Allow-Origin header to be set")
		}

		if methods := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(methods, "GET") {
			t.Errorf("expected GET to be allowed, got %q", methods)
		}
	})

	t.Run("passes GET request to next handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/group?sgi=1", nil)
		rec := httptest.NewRecorder()

		Cors(handler).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
	})

	t.Run("sets CORS headers on all requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		Cors(handler).ServeHTTP(rec, req)

		for _, header := range []string{
			"Access-Control-Allow-Origin",
			"Access-Control-Allow-Methods",
			"Access-Control-Allow-Headers",
			"Access-Control-Max-Age",
		} {
			if rec.Header().Get(header) == "" {
				t.Errorf("expected %s header to be set", header)
			}
		}
	})
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/group?sgi=99", nil)
	rec := httptest.NewRecorder()

	Logging(logger, handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	line := buf.String()
	if !strings.HasPrefix(line, "GET /group?sgi=99 404 ") {
		t.Errorf("unexpected log line %q", line)
	}
}
