package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/weallth/weallth-backend/internal/domain"
)

// StrategyHandler serves the static investment-strategy catalog
type StrategyHandler struct{}

// NewStrategyHandler creates a new StrategyHandler
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// GetStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) GetStrategies(c echo.Context) error {
	risk := c.QueryParam("risk")
	if risk == "" {
		return c.JSON(http.StatusOK, domain.Strategies)
	}

	tolerance := domain.RiskTolerance(risk)
	if !tolerance.IsValid() {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "risk", Message: "Risk must be low, moderate, or high"},
		})
	}

	filtered := make([]domain.Strategy, 0, len(domain.Strategies))
	for _, strategy := range domain.Strategies {
		if strategy.Risk == tolerance {
			filtered = append(filtered, strategy)
		}
	}
	return c.JSON(http.StatusOK, filtered)
}
