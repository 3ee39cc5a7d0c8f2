package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/weallth/weallth-backend/internal/domain"
)

func TestGetStrategiesEndpoint(t *testing.T) {
	h := NewStrategyHandler()

	c, rec := newTestContext(http.MethodGet, "/api/v1/strategies", "")
	if err := h.GetStrategies(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var strategies []domain.Strategy
	if err := json.Unmarshal(rec.Body.Bytes(), &strategies); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(strategies) != len(domain.Strategies) {
		t.Errorf("expected full catalog of %d, got %d", len(domain.Strategies), len(strategies))
	}
}

func TestGetStrategiesEndpointFiltered(t *testing.T) {
	h := NewStrategyHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/strategies?risk=high", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetStrategies(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var strategies []domain.Strategy
	if err := json.Unmarshal(rec.Body.Bytes(), &strategies); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(strategies) == 0 {
		t.Fatal("expected at least one high-risk strategy")
	}
	for _, strategy := range strategies {
		if strategy.Risk != domain.RiskHigh {
			t.Errorf("expected only high risk, got %s for %s", strategy.Risk, strategy.ID)
		}
	}
}

func TestGetStrategiesEndpointUnknownRisk(t *testing.T) {
	h := NewStrategyHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/strategies?risk=reckless", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetStrategies(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
