package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/middleware"
	"github.com/weallth/weallth-backend/internal/service"
)

// ReportHandler renders downloadable goal reports
type ReportHandler struct {
	goalService    *service.GoalService
	profileService *service.ProfileService
	reportService  *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(goalService *service.GoalService, profileService *service.ProfileService, reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		goalService:    goalService,
		profileService: profileService,
		reportService:  reportService,
	}
}

// GetGoalReport handles GET /api/v1/goals/:id/report, returning a
// plain-text document
func (h *ReportHandler) GetGoalReport(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Session required")
	}

	goal, err := h.goalService.GetGoal(ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		log.Error().Err(err).Str("owner_id", ownerID).Msg("Failed to get goal for report")
		return NewInternalError(c, "Failed to build report")
	}

	plan, err := h.goalService.PlanFor(goal)
	if err != nil {
		log.Error().Err(err).Str("goal_id", goal.ID).Msg("Failed to compute plan for report")
		return NewInternalError(c, "Failed to build report")
	}

	report := h.reportService.BuildReport(goal, plan, h.recommendationsFor(ownerID, plan))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}

// recommendationsFor lists the catalog strategies matching the owner's
// risk tolerance, splitting the monthly saving evenly across them. A plain
// catalog filter; no scoring.
func (h *ReportHandler) recommendationsFor(ownerID string, plan *domain.GoalPlan) []service.Recommendation {
	tolerance := domain.RiskModerate
	if profile, err := h.profileService.GetProfile(ownerID); err == nil && profile.RiskTolerance.IsValid() {
		tolerance = profile.RiskTolerance
	}

	var matched []domain.Strategy
	for _, strategy := range domain.Strategies {
		if strategy.Risk == tolerance {
			matched = append(matched, strategy)
		}
	}
	if len(matched) == 0 || !plan.SIPAmount.IsPositive() {
		return nil
	}

	share := plan.SIPAmount.Div(decimal.NewFromInt(int64(len(matched)))).Round(0)
	recommendations := make([]service.Recommendation, len(matched))
	for i, strategy := range matched {
		recommendations[i] = service.Recommendation{
			Name:   strategy.Name,
			Amount: share,
			Risk:   strategy.Risk,
		}
	}
	return recommendations
}
