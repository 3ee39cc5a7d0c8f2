package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/middleware"
	"github.com/weallth/weallth-backend/internal/service"
	"github.com/weallth/weallth-backend/internal/websocket"
)

// GoalHandler handles goal-related HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
	planService *service.PlanService
	publisher   websocket.EventPublisher
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService, planService *service.PlanService, publisher websocket.EventPublisher) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		planService: planService,
		publisher:   publisher,
	}
}

// CreateGoalRequest represents the create goal request body
type CreateGoalRequest struct {
	Name              string          `json:"name"`
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	TimelineMonths    int             `json:"timelineMonths"`
	CurrentInvestment decimal.Decimal `json:"currentInvestment"`
}

// UpdateGoalRequest represents the update goal request body; omitted
// fields are left untouched
type UpdateGoalRequest struct {
	Name              *string            `json:"name"`
	TargetAmount      *decimal.Decimal   `json:"targetAmount"`
	TimelineMonths    *int               `json:"timelineMonths"`
	CurrentInvestment *decimal.Decimal   `json:"currentInvestment"`
	Status            *domain.GoalStatus `json:"status"`
}

// PlanRequest represents the stateless calculator request body
type PlanRequest struct {
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	TimelineMonths    int             `json:"timelineMonths"`
	CurrentInvestment decimal.Decimal `json:"currentInvestment"`
}

// PlanResponse represents a funding plan in API responses
type PlanResponse struct {
	RemainingAmount     string `json:"remainingAmount"`
	MonthlySavingLinear string `json:"monthlySavingLinear"`
	SIPAmount           string `json:"sipAmount"`
	ProjectedAmount     string `json:"projectedAmount"`
	ProgressPercentage  string `json:"progressPercentage"`
}

// GoalResponse represents a goal in API responses
type GoalResponse struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	TargetAmount      string        `json:"targetAmount"`
	TimelineMonths    int           `json:"timelineMonths"`
	CurrentInvestment string        `json:"currentInvestment"`
	MonthlySaving     string        `json:"monthlySaving"`
	Status            string        `json:"status"`
	CreatedAt         string        `json:"createdAt"`
	UpdatedAt         string        `json:"updatedAt"`
	Plan              *PlanResponse `json:"plan,omitempty"`
}

// CreateGoal handles POST /api/v1/goals
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Session required")
	}

	var req CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	goal, err := h.goalService.CreateGoal(ownerID, service.CreateGoalInput{
		Name:              req.Name,
		TargetAmount:      req.TargetAmount,
		TimelineMonths:    req.TimelineMonths,
		CurrentInvestment: req.CurrentInvestment,
	})
	if err != nil {
		if verr := goalValidationResponse(c, err); verr != nil {
			return verr
		}
		log.Error().Err(err).Str("owner_id", ownerID).Msg("Failed to create goal")
		return NewInternalError(c, "Failed to create goal")
	}

	h.publisher.Publish(ownerID, websocket.GoalCreated(toGoalResponse(goal, nil)))
	log.Info().Str("owner_id", ownerID).Str("goal_id", goal.ID).Str("name", goal.Name).Msg("Goal created")

	return c.JSON(http.StatusCreated, toGoalResponse(goal, nil))
}

// GetGoals handles GET /api/v1/goals
func (h *GoalHandler) GetGoals(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Session required")
	}

	goals := h.goalService.ListGoals(ownerID)
	response := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		response[i] = toGoalResponse(goal, nil)
	}
	return c.JSON(http.StatusOK, response)
}

// GetGoal handles GET /api/v1/goals/:id and includes a freshly computed
// funding plan for display refresh
func (h *GoalHandler) GetGoal(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Session required")
	}

	goal, err := h.goalService.GetGoal(ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		log.Error().Err(err).Str("owner_id", ownerID).Msg("Failed to get goal")
		return NewInternalError(c, "Failed to get goal")
	}

	plan, err := h.goalService.PlanFor(goal)
	if err != nil {
		log.Error().Err(err).Str("goal_id", goal.ID).Msg("Failed to compute plan for goal")
		return NewInternalError(c, "Failed to compute plan")
	}

	return c.JSON(http.StatusOK, toGoalResponse(goal, plan))
}

// UpdateGoal handles PUT /api/v1/goals/:id
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Session required")
	}

	var req UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	goal, err := h.goalService.UpdateGoal(ownerID, c.Param("id"), service.UpdateGoalInput{
		Name:              req.Name,
		TargetAmount:      req.TargetAmount,
		TimelineMonths:    req.TimelineMonths,
		CurrentInvestment: req.CurrentInvestment,
		Status:            req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		if verr := goalValidationResponse(c, err); verr != nil {
			return verr
		}
		log.Error().Err(err).Str("owner_id", ownerID).Msg("Failed to update goal")
		return NewInternalError(c, "Failed to update goal")
	}

	h.publisher.Publish(ownerID, websocket.GoalUpdated(toGoalResponse(goal, nil)))
	log.Info().Str("owner_id", ownerID).Str("goal_id", goal.ID).Msg("Goal updated")

	return c.JSON(http.StatusOK, toGoalResponse(goal, nil))
}

// DeleteGoal handles DELETE /api/v1/goals/:id. Deleting a goal that does
// not exist still succeeds.
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Session required")
	}

	goalID := c.Param("id")
	if ok := h.goalService.DeleteGoal(ownerID, goalID); !ok {
		return NewInternalError(c, "Failed to delete goal")
	}

	h.publisher.Publish(ownerID, websocket.GoalDeleted(map[string]string{"id": goalID}))
	log.Info().Str("owner_id", ownerID).Str("goal_id", goalID).Msg("Goal deleted")

	return c.NoContent(http.StatusNoContent)
}

// ComputePlan handles POST /api/v1/goals/plan, the stateless calculator
func (h *GoalHandler) ComputePlan(c echo.Context) error {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	plan, err := h.planService.ComputePlan(req.TargetAmount, req.TimelineMonths, req.CurrentInvestment)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTimeline) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "timelineMonths", Message: "Timeline must be a positive number of months"},
			})
		}
		log.Error().Err(err).Msg("Failed to compute plan")
		return NewInternalError(c, "Failed to compute plan")
	}

	return c.JSON(http.StatusOK, toPlanResponse(plan))
}

// goalValidationResponse maps goal domain errors to 400 responses; nil
// when err is not a validation failure
func goalValidationResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrGoalNameEmpty):
		return NewValidationError(c, "Validation failed", []ValidationError{{Field: "name", Message: "Name is required"}})
	case errors.Is(err, domain.ErrGoalNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{{Field: "name", Message: "Name must be 255 characters or less"}})
	case errors.Is(err, domain.ErrInvalidTargetAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{{Field: "targetAmount", Message: "Target amount must be positive"}})
	case errors.Is(err, domain.ErrInvalidTimeline):
		return NewValidationError(c, "Validation failed", []ValidationError{{Field: "timelineMonths", Message: "Timeline must be a positive number of months"}})
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, "Validation failed", nil)
	}
	return nil
}

func toPlanResponse(plan *domain.GoalPlan) *PlanResponse {
	return &PlanResponse{
		RemainingAmount:     plan.RemainingAmount.StringFixed(2),
		MonthlySavingLinear: plan.MonthlySavingLinear.StringFixed(2),
		SIPAmount:           plan.SIPAmount.StringFixed(2),
		ProjectedAmount:     plan.ProjectedAmount.StringFixed(2),
		ProgressPercentage:  plan.ProgressPercentage.StringFixed(2),
	}
}

func toGoalResponse(goal *domain.Goal, plan *domain.GoalPlan) GoalResponse {
	resp := GoalResponse{
		ID:                goal.ID,
		Name:              goal.Name,
		TargetAmount:      goal.TargetAmount.StringFixed(2),
		TimelineMonths:    goal.TimelineMonths,
		CurrentInvestment: goal.CurrentInvestment.StringFixed(2),
		MonthlySaving:     goal.MonthlySaving.StringFixed(2),
		Status:            string(goal.Status),
		CreatedAt:         goal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         goal.UpdatedAt.Format(time.RFC3339),
	}
	if plan != nil {
		resp.Plan = toPlanResponse(plan)
	}
	return resp
}
