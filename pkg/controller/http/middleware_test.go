package http_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/visastat/pkg/controller/http"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	var inner *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = ctxlog.From(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	h := middleware.RequestID(controller.LoggingMiddleware(ctx)(next))
	req := httptest.NewRequest(http.MethodGet, "/api/chart?location=Ireland", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusTeapot)
	gt.V(t, inner).NotNil()

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	gt.Equal(t, entry["msg"], any("HTTP request"))
	gt.Equal(t, entry["path"], any("/api/chart"))
	gt.Equal(t, entry["query"], any("location=Ireland"))
	gt.Equal(t, entry["status"], any(float64(http.StatusTeapot)))
	gt.NotEqual(t, entry["request_id"], nil)
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := controller.CORSMiddleware([]string{"https://dashboard.example.com"})(next)

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusOK)
	gt.Equal(t, w.Header().Get("Access-Control-Allow-Origin"), "https://dashboard.example.com")
}
