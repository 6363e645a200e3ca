package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"behavior-analytics/internal/domain"
	"behavior-analytics/internal/repository"
	"behavior-analytics/internal/service"
)

// brokenSummaryStore falla en las lecturas agregadas.
type brokenSummaryStore struct {
	*repository.MemoryHistoryStore
}

func (brokenSummaryStore) UserSummary(context.Context, string) (domain.UserSummary, error) {
	return domain.UserSummary{}, fmt.Errorf("user summary: %w", domain.ErrStorageUnavailable)
}

func setupRouter(store repository.HistoryStore, limiter service.IngestRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	users := service.NewUserService(logger, store)
	ingest := service.NewIngestService(logger, store, nil, limiter, 10)
	reports := service.NewReportService(logger, store, nil, nil, time.UTC)
	return NewRouter(logger,
		NewUserHandler(logger, users),
		NewMessageHandler(logger, ingest),
		NewReportHandler(logger, reports),
	)
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return out
}

func TestHealth(t *testing.T) {
	r := setupRouter(repository.NewMemoryHistoryStore(), nil)
	rec := performRequest(r, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandlerCreateUser(t *testing.T) {
	r := setupRouter(repository.NewMemoryHistoryStore(), nil)

	rec := performRequest(r, http.MethodPost, "/users", map[string]string{"user_id": "42", "display_name": "Ana"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = performRequest(r, http.MethodPost, "/users", map[string]string{"display_name": "Ana"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without user_id, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodGet, "/users/42", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = performRequest(r, http.MethodGet, "/users/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMessageHandlerPostMessage(t *testing.T) {
	r := setupRouter(repository.NewMemoryHistoryStore(), nil)

	rec := performRequest(r, http.MethodPost, "/messages", map[string]string{
		"user_id": "42",
		"text":    "The deadline pressure is too much",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	stress := body["stress"].(map[string]any)
	if stress["level"].(float64) != 6 || stress["category"] != string(domain.StressModerate) {
		t.Fatalf("unexpected stress: %v", stress)
	}
	if _, ok := body["feedback"]; ok {
		t.Fatalf("feedback must be absent on first message")
	}

	rec = performRequest(r, http.MethodPost, "/messages", map[string]string{"user_id": "42", "text": "   "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank text, got %d", rec.Code)
	}
}

func TestMessageHandlerFeedbackOnTenth(t *testing.T) {
	r := setupRouter(repository.NewMemoryHistoryStore(), nil)
	var last map[string]any
	for i := 1; i <= 10; i++ {
		rec := performRequest(r, http.MethodPost, "/messages", map[string]string{"user_id": "7", "text": "hello there"})
		if rec.Code != http.StatusCreated {
			t.Fatalf("message %d: expected 201, got %d", i, rec.Code)
		}
		last = decode(t, rec)
	}
	fb, ok := last["feedback"].(map[string]any)
	if !ok {
		t.Fatalf("expected feedback on 10th message: %v", last)
	}
	if fb["message_number"].(float64) != 10 || !strings.Contains(fb["text"].(string), "Message #10") {
		t.Fatalf("unexpected feedback: %v", fb)
	}
}

func TestMessageHandlerRateLimited(t *testing.T) {
	r := setupRouter(repository.NewMemoryHistoryStore(), service.NewMemoryRateLimiter(time.Minute, 1))
	performRequest(r, http.MethodPost, "/messages", map[string]string{"user_id": "7", "text": "one"})
	rec := performRequest(r, http.MethodPost, "/messages", map[string]string{"user_id": "7", "text": "two"})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestReportHandler(t *testing.T) {
	r := setupRouter(repository.NewMemoryHistoryStore(), nil)

	rec := performRequest(r, http.MethodGet, "/users/42/reports/mood", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "insufficient_data" || body["report"] != "mood" {
		t.Fatalf("expected insufficient data for mood, got %v", body)
	}

	performRequest(r, http.MethodPost, "/messages", map[string]string{"user_id": "42", "text": "what a wonderful day"})

	rec = performRequest(r, http.MethodGet, "/users/42/reports/mood", nil)
	body = decode(t, rec)
	if body["status"] != "ok" || !strings.Contains(body["text"].(string), "DETAILED MOOD ANALYSIS") {
		t.Fatalf("expected mood report, got %v", body)
	}

	rec = performRequest(r, http.MethodGet, "/users/42/reports/comprehensive", nil)
	body = decode(t, rec)
	if body["status"] != "insufficient_data" || body["required"].(float64) != 5 || body["available"].(float64) != 1 {
		t.Fatalf("expected insufficient comprehensive data, got %v", body)
	}

	rec = performRequest(r, http.MethodGet, "/users/42/reports/stats", nil)
	body = decode(t, rec)
	if body["status"] != "ok" {
		t.Fatalf("expected stats report, got %v", body)
	}

	rec = performRequest(r, http.MethodGet, "/users/42/reports/horoscope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown report, got %d", rec.Code)
	}
}

func TestReportHandlerStorageUnavailable(t *testing.T) {
	r := setupRouter(brokenSummaryStore{repository.NewMemoryHistoryStore()}, nil)
	rec := performRequest(r, http.MethodGet, "/users/42/reports/stats", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
